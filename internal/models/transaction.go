package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the journal side of an entry.
type EntryType string

const (
	EntryTypeDebit  EntryType = "DEBIT"
	EntryTypeCredit EntryType = "CREDIT"
)

// ParseEntryType converts a string into an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case EntryTypeDebit, EntryTypeCredit:
		return EntryType(s), nil
	}
	return "", fmt.Errorf("unknown entry type %q", s)
}

// BalanceTolerance is the maximum allowed difference between total
// debits and total credits of a transaction, and between the two
// sides of the balance sheet.
var BalanceTolerance = decimal.New(1, -2) // 0.01

// Entry is a single journal line, owned by its Transaction and
// referencing an Account by ID.
type Entry struct {
	ID            int64           `json:"id"`
	TransactionID int64           `json:"transaction_id"`
	AccountID     int64           `json:"account_id"`
	EntryType     EntryType       `json:"entry_type"`
	Amount        decimal.Decimal `json:"amount"`
}

// Transaction is an atomic set of balanced journal entries.
type Transaction struct {
	ID              int64     `json:"id"`
	TransactionDate time.Time `json:"transaction_date"`
	Description     string    `json:"description"`
	ReferenceNo     string    `json:"reference_no,omitempty"`
	Entries         []Entry   `json:"entries"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateEntryRequest is one journal line in a create-transaction request.
type CreateEntryRequest struct {
	AccountID int64           `json:"account_id"`
	EntryType string          `json:"entry_type"`
	Amount    decimal.Decimal `json:"amount"`
}

// CreateTransactionRequest represents the request body for POST /transactions.
type CreateTransactionRequest struct {
	Description     string               `json:"description"`
	ReferenceNo     string               `json:"reference_no,omitempty"`
	TransactionDate string               `json:"transaction_date,omitempty"` // YYYY-MM-DD, defaults to today
	Entries         []CreateEntryRequest `json:"entries"`
}

var (
	// ErrMissingDescription is returned when a transaction has no description.
	ErrMissingDescription = errors.New("transaction description is required")

	// ErrTooFewEntries is returned when a transaction has fewer than two
	// entries. A single entry can never balance.
	ErrTooFewEntries = errors.New("transaction requires at least two entries")

	// ErrNonPositiveAmount is returned when an entry amount is zero or negative.
	ErrNonPositiveAmount = errors.New("entry amount must be greater than zero")
)

// UnbalancedJournalError is returned when total debits and total
// credits differ by more than BalanceTolerance. It carries both totals
// for diagnostics.
type UnbalancedJournalError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedJournalError) Error() string {
	return fmt.Sprintf("journal does not balance: debit %s, credit %s",
		e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2))
}

// EntryInput is one journal line of a transaction being created.
type EntryInput struct {
	AccountID int64
	EntryType EntryType
	Amount    decimal.Decimal
}

// TransactionInput is a validated set of balanced entries ready to be
// persisted. It can only be obtained through NewTransactionInput, so an
// unbalanced transaction never reaches the store.
type TransactionInput struct {
	description string
	referenceNo string
	date        time.Time
	entries     []EntryInput
}

// NewTransactionInput validates and builds a TransactionInput.
// A zero date means the transaction is dated at commit time.
func NewTransactionInput(description, referenceNo string, date time.Time, entries []EntryInput) (*TransactionInput, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrMissingDescription
	}
	if len(entries) < 2 {
		return nil, ErrTooFewEntries
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, e := range entries {
		if e.Amount.Sign() <= 0 {
			return nil, fmt.Errorf("entry %d: %w", i, ErrNonPositiveAmount)
		}
		switch e.EntryType {
		case EntryTypeDebit:
			totalDebit = totalDebit.Add(e.Amount)
		case EntryTypeCredit:
			totalCredit = totalCredit.Add(e.Amount)
		default:
			return nil, fmt.Errorf("entry %d: unknown entry type %q", i, string(e.EntryType))
		}
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(BalanceTolerance) {
		return nil, &UnbalancedJournalError{TotalDebit: totalDebit, TotalCredit: totalCredit}
	}

	in := &TransactionInput{
		description: description,
		referenceNo: referenceNo,
		date:        date,
		entries:     make([]EntryInput, len(entries)),
	}
	copy(in.entries, entries)
	return in, nil
}

// Description returns the transaction description.
func (in *TransactionInput) Description() string { return in.description }

// ReferenceNo returns the optional reference number.
func (in *TransactionInput) ReferenceNo() string { return in.referenceNo }

// Date returns the explicit transaction date, zero if unset.
func (in *TransactionInput) Date() time.Time { return in.date }

// Entries returns a copy of the validated entries.
func (in *TransactionInput) Entries() []EntryInput {
	out := make([]EntryInput, len(in.entries))
	copy(out, in.entries)
	return out
}
