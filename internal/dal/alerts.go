package dal

import (
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// AlertKey identifies a sent whale alert for duplicate suppression.
type AlertKey string

// BuildAlertKey creates a key for the alerts bucket from a token mint and the
// buyer (fee payer) address.
func BuildAlertKey(mint, buyer string) AlertKey {
	return AlertKey(fmt.Sprintf("%s_%s", mint, buyer))
}

// GetAlert checks if an alert was already sent for the given key
func (s *BoltDB) GetAlert(key AlertKey) (time.Time, bool, error) {
	var sentAt time.Time
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(alertsBucket))
		if b == nil {
			return nil
		}

		data := b.Get([]byte(key))
		if data == nil {
			return nil
		}

		found = true
		var parseErr error
		sentAt, parseErr = time.Parse(time.RFC3339, string(data))
		return parseErr
	})

	return sentAt, found, err
}

// PutAlert records that an alert was sent at the given time
func (s *BoltDB) PutAlert(key AlertKey, sentAt time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(alertsBucket))
		if b == nil {
			return errors.New("alerts bucket not found")
		}

		timestamp := []byte(sentAt.Format(time.RFC3339))
		if err := b.Put([]byte(key), timestamp); err != nil {
			return fmt.Errorf("put alert for key %s: %w", key, err)
		}

		return nil
	})
}

// DeleteAlert removes a single alert record
func (s *BoltDB) DeleteAlert(key AlertKey) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(alertsBucket))
		if b == nil {
			return nil
		}

		if err := b.Delete([]byte(key)); err != nil {
			return fmt.Errorf("delete alert for key %s: %w", key, err)
		}

		return nil
	})
}

func (s *BoltDB) CountAlerts() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		res = tx.Bucket([]byte(alertsBucket)).Stats().KeyN
		return nil
	})
	return res, err
}

// CleanupAlerts removes alert records older than the passed TTL so the dedup
// bucket does not grow without bound.
func (s *BoltDB) CleanupAlerts(olderThan time.Duration) error {
	if olderThan <= 0 {
		return nil
	}

	cutoff := s.now().Add(-olderThan)
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(alertsBucket))

		// mutating a bucket invalidates its cursor, so collect first
		var expired [][]byte
		if err := b.ForEach(func(k, v []byte) error {
			sentAt, err := time.Parse(time.RFC3339, string(v))
			if err != nil || !sentAt.After(cutoff) {
				// unparseable records are garbage either way
				expired = append(expired, append([]byte(nil), k...))
			}
			return nil
		}); err != nil {
			return err
		}

		for _, k := range expired {
			if err := b.Delete(k); err != nil {
				return fmt.Errorf("delete expired alert %s: %w", k, err)
			}
		}
		return nil
	})
}
