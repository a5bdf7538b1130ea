package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/amanah-dev/masjid-finance/internal/models"
)

// CreateUser persists a new user keyed by username.
func (s *Store) CreateUser(u models.User) (*models.User, error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketUsers))

		if b.Get([]byte(u.Username)) != nil {
			return fmt.Errorf("username %q: %w", u.Username, ErrDuplicateUsername)
		}

		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to generate ID: %w", err)
		}
		u.ID = int64(seq)
		if u.CreatedAt.IsZero() {
			u.CreatedAt = time.Now()
		}

		data, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("failed to marshal user: %w", err)
		}
		return b.Put([]byte(u.Username), data)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByUsername retrieves a user by username.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(BucketUsers)).Get([]byte(username))
		if data == nil {
			return ErrNotFound
		}
		return json.Unmarshal(data, &u)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}
