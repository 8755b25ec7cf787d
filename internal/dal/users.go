package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// User is a chat identity that passed wallet verification. PremiumUntil is
// zero until a burn transaction is redeemed.
type User struct {
	ChatID       int64     `json:"chat_id"`
	Wallet       string    `json:"wallet"`
	VerifiedAt   time.Time `json:"verified_at"`
	PremiumUntil time.Time `json:"premium_until,omitempty"`
}

func (s *BoltDB) GetUser(chatID int64) (User, bool, error) {
	var res User
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(usersBucket)).Get(i64tob(chatID))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) PutUser(user User) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(&user)
		if err != nil {
			return fmt.Errorf("marshal user for chatID=%d: %w", user.ChatID, err)
		}
		if err := tx.Bucket([]byte(usersBucket)).Put(i64tob(user.ChatID), data); err != nil {
			return fmt.Errorf("put user for chatID=%d: %w", user.ChatID, err)
		}
		return nil
	})
}

func (s *BoltDB) DeleteUser(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(usersBucket)).Delete(i64tob(chatID)); err != nil {
			return fmt.Errorf("delete user with id=%d: %w", chatID, err)
		}
		return nil
	})
}
