package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanah-dev/masjid-finance/internal/models"
)

func seedAccounts(t *testing.T, st *Store) (kas, infaq *models.Account) {
	t.Helper()

	kas, err := st.CreateAccount(models.Account{Code: "101", Name: "Kas", AccountType: models.AccountTypeAsset})
	require.NoError(t, err)
	infaq, err = st.CreateAccount(models.Account{Code: "401", Name: "Infaq Jumat", AccountType: models.AccountTypeRevenue})
	require.NoError(t, err)
	return kas, infaq
}

func balancedInput(t *testing.T, description string, date time.Time, debitAccount, creditAccount int64, amount int64) *models.TransactionInput {
	t.Helper()

	in, err := models.NewTransactionInput(description, "", date, []models.EntryInput{
		{AccountID: debitAccount, EntryType: models.EntryTypeDebit, Amount: decimal.NewFromInt(amount)},
		{AccountID: creditAccount, EntryType: models.EntryTypeCredit, Amount: decimal.NewFromInt(amount)},
	})
	require.NoError(t, err)
	return in
}

func TestCreateTransactionPersistsAllEntries(t *testing.T) {
	st := newTestStore(t)
	kas, infaq := seedAccounts(t, st)

	created, err := st.CreateTransaction(balancedInput(t, "Infaq Jumat", time.Time{}, kas.ID, infaq.ID, 50000))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.Len(t, created.Entries, 2)
	for _, e := range created.Entries {
		assert.NotZero(t, e.ID)
		assert.Equal(t, created.ID, e.TransactionID)
	}
	// Unset date defaults to commit time.
	assert.WithinDuration(t, time.Now(), created.TransactionDate, time.Minute)
}

func TestCreateTransactionUnknownAccount(t *testing.T) {
	st := newTestStore(t)
	kas, _ := seedAccounts(t, st)

	_, err := st.CreateTransaction(balancedInput(t, "Akun hilang", time.Time{}, kas.ID, 999, 100))
	assert.ErrorIs(t, err, ErrUnknownAccount)

	// Nothing was persisted.
	txns, err := st.ListTransactions(0)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestListTransactionsNewestFirst(t *testing.T) {
	st := newTestStore(t)
	kas, infaq := seedAccounts(t, st)

	day := func(d int) time.Time { return time.Date(2023, 10, d, 12, 0, 0, 0, time.UTC) }

	for i, date := range []time.Time{day(1), day(3), day(2)} {
		_, err := st.CreateTransaction(balancedInput(t, "Tx", date, kas.ID, infaq.ID, int64(100*(i+1))))
		require.NoError(t, err)
	}

	txns, err := st.ListTransactions(0)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, day(3), txns[0].TransactionDate)
	assert.Equal(t, day(2), txns[1].TransactionDate)
	assert.Equal(t, day(1), txns[2].TransactionDate)
}

func TestListTransactionsSameDateKeepsInsertionOrder(t *testing.T) {
	st := newTestStore(t)
	kas, infaq := seedAccounts(t, st)

	date := time.Date(2023, 10, 5, 12, 0, 0, 0, time.UTC)
	first, err := st.CreateTransaction(balancedInput(t, "Pertama", date, kas.ID, infaq.ID, 100))
	require.NoError(t, err)
	second, err := st.CreateTransaction(balancedInput(t, "Kedua", date, kas.ID, infaq.ID, 200))
	require.NoError(t, err)

	txns, err := st.ListTransactions(0)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, first.ID, txns[0].ID)
	assert.Equal(t, second.ID, txns[1].ID)
}

func TestListTransactionsLimit(t *testing.T) {
	st := newTestStore(t)
	kas, infaq := seedAccounts(t, st)

	for d := 1; d <= 5; d++ {
		date := time.Date(2023, 10, d, 0, 0, 0, 0, time.UTC)
		_, err := st.CreateTransaction(balancedInput(t, "Tx", date, kas.ID, infaq.ID, 100))
		require.NoError(t, err)
	}

	txns, err := st.ListTransactions(2)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, time.Date(2023, 10, 5, 0, 0, 0, 0, time.UTC), txns[0].TransactionDate)
}

func TestEntriesByAccountChronological(t *testing.T) {
	st := newTestStore(t)
	kas, infaq := seedAccounts(t, st)

	day := func(d int) time.Time { return time.Date(2023, 10, d, 9, 0, 0, 0, time.UTC) }

	// Insert out of order; entries must come back date-ascending.
	_, err := st.CreateTransaction(balancedInput(t, "Kedua", day(2), kas.ID, infaq.ID, 200))
	require.NoError(t, err)
	_, err = st.CreateTransaction(balancedInput(t, "Pertama", day(1), kas.ID, infaq.ID, 100))
	require.NoError(t, err)

	entries, err := st.EntriesByAccount(kas.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Pertama", entries[0].Description)
	assert.Equal(t, "Kedua", entries[1].Description)
	assert.Equal(t, models.EntryTypeDebit, entries[0].EntryType)

	// Only entries posted to the requested account are returned.
	for _, e := range entries {
		assert.True(t, e.Amount.Sign() > 0)
	}
}

func TestEntriesByAccountTieBrokenByTransactionID(t *testing.T) {
	st := newTestStore(t)
	kas, infaq := seedAccounts(t, st)

	date := time.Date(2023, 10, 7, 0, 0, 0, 0, time.UTC)
	first, err := st.CreateTransaction(balancedInput(t, "A", date, kas.ID, infaq.ID, 100))
	require.NoError(t, err)
	second, err := st.CreateTransaction(balancedInput(t, "B", date, kas.ID, infaq.ID, 200))
	require.NoError(t, err)

	entries, err := st.EntriesByAccount(kas.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].TransactionID)
	assert.Equal(t, second.ID, entries[1].TransactionID)
}
