package accounting_test

import (
	"testing"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	"github.com/quillbooks/pocket_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestImpactMultiplier(t *testing.T) {
	tests := []struct {
		accountType     domain.AccountType
		transactionType domain.TransactionType
		want            float64
	}{
		{domain.Asset, domain.Debit, 1},
		{domain.Asset, domain.Credit, -1},
		{domain.Expense, domain.Debit, 1},
		{domain.Expense, domain.Credit, -1},
		{domain.Liability, domain.Debit, -1},
		{domain.Liability, domain.Credit, 1},
		{domain.Equity, domain.Debit, -1},
		{domain.Equity, domain.Credit, 1},
		{domain.Income, domain.Debit, -1},
		{domain.Income, domain.Credit, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType)+"_"+string(tt.transactionType), func(t *testing.T) {
			assert.Equal(t, tt.want, accounting.ImpactMultiplier(tt.accountType, tt.transactionType))
		})
	}
}

func TestImpactMultiplier_UnknownType(t *testing.T) {
	assert.Equal(t, 0.0, accounting.ImpactMultiplier(domain.AccountType("BOGUS"), domain.Debit))
	assert.Equal(t, 0.0, accounting.ImpactMultiplier(domain.AccountType(""), domain.Credit))
}

func TestIsIncrease(t *testing.T) {
	assert.True(t, accounting.IsIncrease(domain.Asset, domain.Debit))
	assert.False(t, accounting.IsIncrease(domain.Asset, domain.Credit))
	assert.True(t, accounting.IsIncrease(domain.Liability, domain.Credit))
	assert.False(t, accounting.IsIncrease(domain.AccountType("BOGUS"), domain.Debit))
}
