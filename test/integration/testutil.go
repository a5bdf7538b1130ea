package integration

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amanah-dev/masjid-finance/internal/models"
)

// TestDataBuilder provides helper methods for building test data.
type TestDataBuilder struct{}

// NewTestDataBuilder creates a new TestDataBuilder.
func NewTestDataBuilder() *TestDataBuilder {
	return &TestDataBuilder{}
}

// Account creates a create-account request.
func (b *TestDataBuilder) Account(code, name, accountType string) models.CreateAccountRequest {
	return models.CreateAccountRequest{
		Code:        code,
		Name:        name,
		AccountType: accountType,
	}
}

// SimpleTransaction creates a balanced two-entry transaction request.
func (b *TestDataBuilder) SimpleTransaction(description string, debitAccount, creditAccount int64, amount float64, date string) models.CreateTransactionRequest {
	return models.CreateTransactionRequest{
		Description:     description,
		TransactionDate: date,
		Entries: []models.CreateEntryRequest{
			{
				AccountID: debitAccount,
				EntryType: "DEBIT",
				Amount:    decimal.NewFromFloat(amount),
			},
			{
				AccountID: creditAccount,
				EntryType: "CREDIT",
				Amount:    decimal.NewFromFloat(amount),
			},
		},
	}
}

// UnbalancedTransaction creates a transaction whose debits and credits
// do not match.
func (b *TestDataBuilder) UnbalancedTransaction(debitAccount, creditAccount int64) models.CreateTransactionRequest {
	return models.CreateTransactionRequest{
		Description: "tidak balance",
		Entries: []models.CreateEntryRequest{
			{AccountID: debitAccount, EntryType: "DEBIT", Amount: decimal.NewFromInt(100)},
			{AccountID: creditAccount, EntryType: "CREDIT", Amount: decimal.NewFromInt(50)},
		},
	}
}

// GenerateDateSequence generates a sequence of dates for testing.
func GenerateDateSequence(start time.Time, count int) []string {
	dates := make([]string, count)
	for i := 0; i < count; i++ {
		dates[i] = start.AddDate(0, 0, i).Format("2006-01-02")
	}
	return dates
}
