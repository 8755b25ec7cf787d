package dal

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	subscribersBucket = "subscribers"
	usersBucket       = "users"
	alertsBucket      = "alerts"
)

// BoltDB is the single durable store of the bot: the subscriber set, verified
// users with premium grants, and sent-alert records used for deduplication.
type BoltDB struct {
	db  *bbolt.DB
	now func() time.Time
}

func NewBoltDB(path string) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err := createBuckets(db, subscribersBucket, usersBucket, alertsBucket); err != nil {
		return nil, err
	}

	return &BoltDB{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

func createBuckets(db *bbolt.DB, names ...string) error {
	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range names {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

func i64tob(id int64) []byte {
	return []byte(fmt.Sprintf("%d", id))
}
