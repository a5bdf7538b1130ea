package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amanah-dev/masjid-finance/internal/models"
)

// surplusLineName is the synthetic equity line that closes the current
// period's revenue minus expense into the balance sheet.
const surplusLineName = "Surplus/Defisit Berjalan (Laba Rugi)"

// BalanceSheet generates the statement of financial position from the
// full journal. Zero-balance asset and liability accounts are omitted;
// equity accounts are always listed. Revenue minus expense is appended
// to equity as the current period surplus/deficit so that assets equal
// liabilities plus equity whenever the journal itself balances.
func (s *Service) BalanceSheet() (*models.BalanceSheet, error) {
	accounts, err := s.store.ListAccounts()
	if err != nil {
		return nil, err
	}

	var (
		assets           []models.BalanceSheetLine
		liabilities      []models.BalanceSheetLine
		equities         []models.BalanceSheetLine
		totalAssets      = decimal.Zero
		totalLiabilities = decimal.Zero
		totalBaseEquity  = decimal.Zero
		totalRevenue     = decimal.Zero
		totalExpense     = decimal.Zero
	)

	for _, acc := range accounts {
		balance, err := s.Balance(acc.ID, acc.AccountType, nil, nil)
		if err != nil {
			return nil, err
		}

		switch acc.AccountType {
		case models.AccountTypeAsset:
			if !balance.IsZero() {
				assets = append(assets, models.BalanceSheetLine{AccountName: acc.Name, Amount: balance.InexactFloat64()})
				totalAssets = totalAssets.Add(balance)
			}
		case models.AccountTypeLiability:
			if !balance.IsZero() {
				liabilities = append(liabilities, models.BalanceSheetLine{AccountName: acc.Name, Amount: balance.InexactFloat64()})
				totalLiabilities = totalLiabilities.Add(balance)
			}
		case models.AccountTypeEquity:
			equities = append(equities, models.BalanceSheetLine{AccountName: acc.Name, Amount: balance.InexactFloat64()})
			totalBaseEquity = totalBaseEquity.Add(balance)
		case models.AccountTypeRevenue:
			totalRevenue = totalRevenue.Add(balance)
		case models.AccountTypeExpense:
			totalExpense = totalExpense.Add(balance)
		}
	}

	currentEarnings := totalRevenue.Sub(totalExpense)
	equities = append(equities, models.BalanceSheetLine{
		AccountName: surplusLineName,
		Amount:      currentEarnings.InexactFloat64(),
	})
	totalEquities := totalBaseEquity.Add(currentEarnings)

	diff := totalAssets.Sub(totalLiabilities.Add(totalEquities))

	return &models.BalanceSheet{
		ReportDate:       time.Now(),
		Assets:           emptyIfNil(assets),
		TotalAssets:      totalAssets.InexactFloat64(),
		Liabilities:      emptyIfNil(liabilities),
		TotalLiabilities: totalLiabilities.InexactFloat64(),
		Equities:         equities,
		TotalEquities:    totalEquities.InexactFloat64(),
		IsBalance:        diff.Abs().LessThan(models.BalanceTolerance),
		Diff:             diff.InexactFloat64(),
	}, nil
}

// emptyIfNil keeps report sections as JSON arrays rather than null.
func emptyIfNil(lines []models.BalanceSheetLine) []models.BalanceSheetLine {
	if lines == nil {
		return []models.BalanceSheetLine{}
	}
	return lines
}
