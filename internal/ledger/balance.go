// Package ledger derives account balances and financial reports from
// the journal. Balances are always recomputed by full re-aggregation
// of stored entries, never read from cached totals.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amanah-dev/masjid-finance/internal/models"
	"github.com/amanah-dev/masjid-finance/internal/store"
)

// Service computes balances and generates reports.
type Service struct {
	store *store.Store
}

// NewService creates a ledger Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// entryDelta is the signed contribution of one entry to its account's
// balance under the normal-balance rule: debit-normal accounts grow
// with debits and shrink with credits, credit-normal accounts are
// mirrored. Every balance figure in this package is a sum of these
// deltas, so the sign convention lives in exactly one place.
func entryDelta(e models.AccountEntry, isNormalDebit bool) decimal.Decimal {
	if (e.EntryType == models.EntryTypeDebit) == isNormalDebit {
		return e.Amount
	}
	return e.Amount.Neg()
}

// Balance computes the signed balance of an account from all entries
// posted to it. An optional from/until pair restricts the computation
// to entries with from <= date <= until; a nil bound is open. An
// account with no entries has balance zero.
func (s *Service) Balance(accountID int64, accountType models.AccountType, from, until *time.Time) (decimal.Decimal, error) {
	entries, err := s.store.EntriesByAccount(accountID)
	if err != nil {
		return decimal.Zero, err
	}

	isNormalDebit := accountType.IsNormalDebit()
	balance := decimal.Zero
	for _, e := range entries {
		if from != nil && e.TransactionDate.Before(*from) {
			continue
		}
		if until != nil && e.TransactionDate.After(*until) {
			continue
		}
		balance = balance.Add(entryDelta(e, isNormalDebit))
	}
	return balance, nil
}
