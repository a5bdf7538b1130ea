package store

import (
	"encoding/json"
	"fmt"
	"sort"

	bolt "go.etcd.io/bbolt"

	"github.com/amanah-dev/masjid-finance/internal/models"
)

// CreateAccount persists a new account. The account code must be
// unique; the uniqueness check and the write happen in the same bbolt
// transaction. Returns the stored account with its assigned ID.
func (s *Store) CreateAccount(acc models.Account) (*models.Account, error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketAccounts))

		err := b.ForEach(func(k, v []byte) error {
			var existing models.Account
			if err := json.Unmarshal(v, &existing); err != nil {
				return fmt.Errorf("failed to unmarshal account: %w", err)
			}
			if existing.Code == acc.Code {
				return fmt.Errorf("code %q: %w", acc.Code, ErrDuplicateCode)
			}
			return nil
		})
		if err != nil {
			return err
		}

		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to generate ID: %w", err)
		}
		acc.ID = int64(seq)

		data, err := json.Marshal(acc)
		if err != nil {
			return fmt.Errorf("failed to marshal account: %w", err)
		}
		return b.Put(itob(acc.ID), data)
	})
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// GetAccount retrieves an account by ID.
func (s *Store) GetAccount(id int64) (*models.Account, error) {
	var acc models.Account
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(BucketAccounts)).Get(itob(id))
		if data == nil {
			return ErrNotFound
		}
		return json.Unmarshal(data, &acc)
	})
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// ListAccounts retrieves all accounts ordered by code ascending.
func (s *Store) ListAccounts() ([]*models.Account, error) {
	accounts := make([]*models.Account, 0)

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(BucketAccounts)).ForEach(func(k, v []byte) error {
			var acc models.Account
			if err := json.Unmarshal(v, &acc); err != nil {
				return fmt.Errorf("failed to unmarshal account: %w", err)
			}
			accounts = append(accounts, &acc)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Code < accounts[j].Code
	})
	return accounts, nil
}
