package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Subscriber is an opted-in whale alert recipient. The set has to survive
// restarts, so every toggle is flushed in its own transaction before the user
// gets an acknowledgement.
type Subscriber struct {
	ChatID    int64     `json:"chat_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *BoltDB) CountSubscribers() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		res = tx.Bucket([]byte(subscribersBucket)).Stats().KeyN
		return nil
	})
	return res, err
}

func (s *BoltDB) ExistsSubscriber(chatID int64) (bool, error) {
	res := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(subscribersBucket)).Get(i64tob(chatID)) != nil {
			res = true
		}
		return nil
	})

	return res, err
}

func (s *BoltDB) GetAllSubscribers() ([]Subscriber, error) {
	var res []Subscriber

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(subscribersBucket)).Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			var sub Subscriber
			if err := json.Unmarshal(v, &sub); err != nil {
				return fmt.Errorf("unmarshal subscriber: %w", err)
			}
			res = append(res, sub)
		}

		return nil
	})

	return res, err
}

func (s *BoltDB) PutSubscriber(sub Subscriber) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))

		id := i64tob(sub.ChatID)
		if existing := b.Get(id); existing != nil {
			var prev Subscriber
			if err := json.Unmarshal(existing, &prev); err == nil {
				// keep the original opt-in time
				sub.CreatedAt = prev.CreatedAt
			}
		} else if sub.CreatedAt.IsZero() {
			sub.CreatedAt = s.now()
		}

		data, err := json.Marshal(&sub)
		if err != nil {
			return fmt.Errorf("marshal subscriber for chatID=%d: %w", sub.ChatID, err)
		}
		if err := b.Put(id, data); err != nil {
			return fmt.Errorf("put subscriber for chatID=%d: %w", sub.ChatID, err)
		}

		return nil
	})
}

func (s *BoltDB) DeleteSubscriber(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(subscribersBucket)).Delete(i64tob(chatID)); err != nil {
			return fmt.Errorf("delete subscriber with id=%d: %w", chatID, err)
		}
		return nil
	})
}
