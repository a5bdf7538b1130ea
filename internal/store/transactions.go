package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/amanah-dev/masjid-finance/internal/models"
)

// DefaultTransactionLimit is the number of transactions returned by
// ListTransactions when no limit is given.
const DefaultTransactionLimit = 100

// CreateTransaction persists a validated transaction with all its
// entries as a single bbolt transaction: either the header and every
// entry become visible together, or nothing does. Every referenced
// account must exist.
func (s *Store) CreateTransaction(in *models.TransactionInput) (*models.Transaction, error) {
	var created models.Transaction

	err := s.db.Update(func(tx *bolt.Tx) error {
		accounts := tx.Bucket([]byte(BucketAccounts))
		for _, e := range in.Entries() {
			if accounts.Get(itob(e.AccountID)) == nil {
				return fmt.Errorf("account %d: %w", e.AccountID, ErrUnknownAccount)
			}
		}

		b := tx.Bucket([]byte(BucketTransactions))
		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to generate ID: %w", err)
		}

		now := time.Now()
		date := in.Date()
		if date.IsZero() {
			date = now
		}

		created = models.Transaction{
			ID:              int64(seq),
			TransactionDate: date,
			Description:     in.Description(),
			ReferenceNo:     in.ReferenceNo(),
			CreatedAt:       now,
		}

		inputs := in.Entries()
		entries := make([]models.Entry, len(inputs))
		for i, e := range inputs {
			entrySeq, err := b.NextSequence()
			if err != nil {
				return fmt.Errorf("failed to generate entry ID: %w", err)
			}
			entries[i] = models.Entry{
				ID:            int64(entrySeq),
				TransactionID: created.ID,
				AccountID:     e.AccountID,
				EntryType:     e.EntryType,
				Amount:        e.Amount,
			}
		}
		created.Entries = entries

		data, err := json.Marshal(&created)
		if err != nil {
			return fmt.Errorf("failed to marshal transaction: %w", err)
		}
		return b.Put(itob(created.ID), data)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListTransactions retrieves the most recent transactions first,
// truncated to limit. Transactions on the same date keep insertion
// order. A non-positive limit falls back to DefaultTransactionLimit.
func (s *Store) ListTransactions(limit int) ([]*models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}

	txns, err := s.allTransactions()
	if err != nil {
		return nil, err
	}

	// Bucket iteration yields insertion order; a stable sort on date
	// alone keeps that order within equal dates.
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].TransactionDate.After(txns[j].TransactionDate)
	})

	if len(txns) > limit {
		txns = txns[:limit]
	}
	return txns, nil
}

// EntriesByAccount retrieves every journal entry posted to the given
// account, joined with its transaction header, ordered by transaction
// date ascending with ties broken by transaction ID.
func (s *Store) EntriesByAccount(accountID int64) ([]models.AccountEntry, error) {
	txns, err := s.allTransactions()
	if err != nil {
		return nil, err
	}

	entries := make([]models.AccountEntry, 0)
	for _, t := range txns {
		for _, e := range t.Entries {
			if e.AccountID != accountID {
				continue
			}
			entries = append(entries, models.AccountEntry{
				EntryID:         e.ID,
				TransactionID:   t.ID,
				TransactionDate: t.TransactionDate,
				Description:     t.Description,
				ReferenceNo:     t.ReferenceNo,
				EntryType:       e.EntryType,
				Amount:          e.Amount,
			})
		}
	}

	// Stable so entries of the same transaction keep journal order.
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].TransactionDate.Equal(entries[j].TransactionDate) {
			return entries[i].TransactionDate.Before(entries[j].TransactionDate)
		}
		return entries[i].TransactionID < entries[j].TransactionID
	})
	return entries, nil
}

func (s *Store) allTransactions() ([]*models.Transaction, error) {
	txns := make([]*models.Transaction, 0)

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(BucketTransactions)).ForEach(func(k, v []byte) error {
			var t models.Transaction
			if err := json.Unmarshal(v, &t); err != nil {
				return fmt.Errorf("failed to unmarshal transaction: %w", err)
			}
			txns = append(txns, &t)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return txns, nil
}
