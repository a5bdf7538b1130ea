package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amanah-dev/masjid-finance/internal/models"
)

// dateLayout is the wire format for period bounds.
const dateLayout = "2006-01-02"

// GeneralLedger reconstructs the ledger of one account over an
// optional period. The opening balance folds every entry dated
// strictly before startDate with the same sign convention Balance
// uses; period entries run from startDate through the end of the day
// of endDate, chronologically, with the running balance emitted after
// each entry. Returns store.ErrNotFound if the account is unknown.
func (s *Service) GeneralLedger(accountID int64, startDate, endDate *time.Time) (*models.Ledger, error) {
	acc, err := s.store.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.EntriesByAccount(accountID)
	if err != nil {
		return nil, err
	}

	isNormalDebit := acc.AccountType.IsNormalDebit()

	opening := decimal.Zero
	if startDate != nil {
		for _, e := range entries {
			if e.TransactionDate.Before(*startDate) {
				opening = opening.Add(entryDelta(e, isNormalDebit))
			}
		}
	}

	// end_date covers the whole day, so same-day transactions are included.
	var until *time.Time
	if endDate != nil {
		eod := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 59, 0, endDate.Location())
		until = &eod
	}

	lines := make([]models.LedgerLine, 0)
	running := opening
	for _, e := range entries {
		if startDate != nil && e.TransactionDate.Before(*startDate) {
			continue
		}
		if until != nil && e.TransactionDate.After(*until) {
			continue
		}

		running = running.Add(entryDelta(e, isNormalDebit))

		var debit, credit float64
		if e.EntryType == models.EntryTypeDebit {
			debit = e.Amount.InexactFloat64()
		} else {
			credit = e.Amount.InexactFloat64()
		}

		lines = append(lines, models.LedgerLine{
			TransactionDate: e.TransactionDate,
			Description:     e.Description,
			ReferenceNo:     e.ReferenceNo,
			Debit:           debit,
			Credit:          credit,
			Balance:         running.InexactFloat64(),
		})
	}

	return &models.Ledger{
		AccountID:      acc.ID,
		AccountCode:    acc.Code,
		AccountName:    acc.Name,
		PeriodStart:    formatDate(startDate),
		PeriodEnd:      formatDate(endDate),
		OpeningBalance: opening.InexactFloat64(),
		ClosingBalance: running.InexactFloat64(),
		Entries:        lines,
	}, nil
}

// formatDate echoes an optional period bound for display, nil if absent.
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
