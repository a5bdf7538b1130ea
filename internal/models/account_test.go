package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	for _, valid := range []string{"ASSET", "LIABILITY", "EQUITY", "REVENUE", "EXPENSE"} {
		parsed, err := ParseAccountType(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(parsed))
	}

	_, err := ParseAccountType("asset")
	assert.Error(t, err)
	_, err = ParseAccountType("")
	assert.Error(t, err)
}

func TestIsNormalDebit(t *testing.T) {
	tests := []struct {
		accountType AccountType
		want        bool
	}{
		{AccountTypeAsset, true},
		{AccountTypeExpense, true},
		{AccountTypeLiability, false},
		{AccountTypeEquity, false},
		{AccountTypeRevenue, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.accountType.IsNormalDebit(), "type %s", tt.accountType)
	}
}
