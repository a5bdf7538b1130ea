package ledger_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanah-dev/masjid-finance/internal/ledger"
	"github.com/amanah-dev/masjid-finance/internal/models"
	"github.com/amanah-dev/masjid-finance/internal/store"
)

type fixture struct {
	store  *store.Store
	ledger *ledger.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "treasury.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	return &fixture{store: st, ledger: ledger.NewService(st)}
}

func (f *fixture) account(t *testing.T, code, name string, accountType models.AccountType) *models.Account {
	t.Helper()

	acc, err := f.store.CreateAccount(models.Account{Code: code, Name: name, AccountType: accountType})
	require.NoError(t, err)
	return acc
}

func (f *fixture) post(t *testing.T, description string, date time.Time, debitAccount, creditAccount int64, amount float64) {
	t.Helper()

	in, err := models.NewTransactionInput(description, "", date, []models.EntryInput{
		{AccountID: debitAccount, EntryType: models.EntryTypeDebit, Amount: decimal.NewFromFloat(amount)},
		{AccountID: creditAccount, EntryType: models.EntryTypeCredit, Amount: decimal.NewFromFloat(amount)},
	})
	require.NoError(t, err)
	_, err = f.store.CreateTransaction(in)
	require.NoError(t, err)
}

func TestBalanceNoEntries(t *testing.T) {
	f := newFixture(t)
	kas := f.account(t, "101", "Kas", models.AccountTypeAsset)

	balance, err := f.ledger.Balance(kas.ID, kas.AccountType, nil, nil)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestBalanceNormalSides(t *testing.T) {
	f := newFixture(t)
	kas := f.account(t, "101", "Kas", models.AccountTypeAsset)
	pendapatan := f.account(t, "401", "Pendapatan", models.AccountTypeRevenue)

	f.post(t, "Infaq Jumat", time.Time{}, kas.ID, pendapatan.ID, 50000)

	// Debiting an asset raises its balance; crediting a revenue
	// account raises its balance by the same amount.
	kasBalance, err := f.ledger.Balance(kas.ID, kas.AccountType, nil, nil)
	require.NoError(t, err)
	assert.True(t, kasBalance.Equal(decimal.NewFromInt(50000)), "kas balance %s", kasBalance)

	revBalance, err := f.ledger.Balance(pendapatan.ID, pendapatan.AccountType, nil, nil)
	require.NoError(t, err)
	assert.True(t, revBalance.Equal(decimal.NewFromInt(50000)), "revenue balance %s", revBalance)
}

func TestBalanceCreditNormalDecreasesOnDebit(t *testing.T) {
	f := newFixture(t)
	kas := f.account(t, "101", "Kas", models.AccountTypeAsset)
	hutang := f.account(t, "201", "Hutang", models.AccountTypeLiability)

	// Borrow 1000, repay 400.
	f.post(t, "Pinjaman", time.Time{}, kas.ID, hutang.ID, 1000)
	f.post(t, "Cicilan", time.Time{}, hutang.ID, kas.ID, 400)

	hutangBalance, err := f.ledger.Balance(hutang.ID, hutang.AccountType, nil, nil)
	require.NoError(t, err)
	assert.True(t, hutangBalance.Equal(decimal.NewFromInt(600)), "liability balance %s", hutangBalance)

	kasBalance, err := f.ledger.Balance(kas.ID, kas.AccountType, nil, nil)
	require.NoError(t, err)
	assert.True(t, kasBalance.Equal(decimal.NewFromInt(600)), "kas balance %s", kasBalance)
}

func TestBalanceDateRangeFilter(t *testing.T) {
	f := newFixture(t)
	kas := f.account(t, "101", "Kas", models.AccountTypeAsset)
	pendapatan := f.account(t, "401", "Pendapatan", models.AccountTypeRevenue)

	day := func(d int) time.Time { return time.Date(2023, 10, d, 0, 0, 0, 0, time.UTC) }
	f.post(t, "Minggu pertama", day(1), kas.ID, pendapatan.ID, 100)
	f.post(t, "Minggu kedua", day(8), kas.ID, pendapatan.ID, 200)
	f.post(t, "Minggu ketiga", day(15), kas.ID, pendapatan.ID, 400)

	from := day(8)
	until := day(8)
	balance, err := f.ledger.Balance(kas.ID, kas.AccountType, &from, &until)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(200)), "filtered balance %s", balance)

	balance, err = f.ledger.Balance(kas.ID, kas.AccountType, &from, nil)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(600)), "open-ended balance %s", balance)
}
