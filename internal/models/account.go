package models

import "fmt"

// AccountType classifies an account in the chart of accounts and fixes
// its normal-balance side.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// ParseAccountType converts a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return AccountType(s), nil
	}
	return "", fmt.Errorf("unknown account type %q", s)
}

// IsNormalDebit reports whether the account type increases on the
// debit side. Asset and expense accounts are debit-normal; liability,
// equity and revenue accounts are credit-normal.
func (t AccountType) IsNormalDebit() bool {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return true
	case AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue:
		return false
	}
	// Account types only enter the system through ParseAccountType.
	panic(fmt.Sprintf("unknown account type %q", string(t)))
}

// Account represents one account in the chart of accounts.
type Account struct {
	ID          int64       `json:"id"`
	Code        string      `json:"code"` // e.g. 101, 401
	Name        string      `json:"name"` // e.g. Kas Masjid, Infaq Jumat
	AccountType AccountType `json:"account_type"`
	Description string      `json:"description,omitempty"`
}

// CreateAccountRequest represents the request body for POST /accounts.
type CreateAccountRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	AccountType string `json:"account_type"`
	Description string `json:"description,omitempty"`
}
