package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountEntry is a journal entry joined with its transaction header,
// as seen from one account. Used by the balance engine and the general
// ledger.
type AccountEntry struct {
	EntryID         int64
	TransactionID   int64
	TransactionDate time.Time
	Description     string
	ReferenceNo     string
	EntryType       EntryType
	Amount          decimal.Decimal
}

// BalanceSheetLine is one account line on the balance sheet.
type BalanceSheetLine struct {
	AccountName string  `json:"account_name"`
	Amount      float64 `json:"amount"`
}

// BalanceSheet is the statement of financial position at a point in time.
type BalanceSheet struct {
	ReportDate       time.Time          `json:"report_date"`
	Assets           []BalanceSheetLine `json:"assets"`
	TotalAssets      float64            `json:"total_assets"`
	Liabilities      []BalanceSheetLine `json:"liabilities"`
	TotalLiabilities float64            `json:"total_liabilities"`
	Equities         []BalanceSheetLine `json:"equities"`
	TotalEquities    float64            `json:"total_equities"`
	IsBalance        bool               `json:"is_balance"`
	Diff             float64            `json:"diff"`
}

// LedgerLine is one row of a general ledger: a journal entry with the
// running balance after applying it.
type LedgerLine struct {
	TransactionDate time.Time `json:"transaction_date"`
	Description     string    `json:"description"`
	ReferenceNo     string    `json:"reference_no,omitempty"`
	Debit           float64   `json:"debit"`
	Credit          float64   `json:"credit"`
	Balance         float64   `json:"balance"`
}

// Ledger is the general ledger of one account over a period.
type Ledger struct {
	AccountID      int64        `json:"account_id"`
	AccountCode    string       `json:"account_code"`
	AccountName    string       `json:"account_name"`
	PeriodStart    *string      `json:"period_start"`
	PeriodEnd      *string      `json:"period_end"`
	OpeningBalance float64      `json:"opening_balance"`
	ClosingBalance float64      `json:"closing_balance"`
	Entries        []LedgerLine `json:"entries"`
}
