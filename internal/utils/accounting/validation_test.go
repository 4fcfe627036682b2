package accounting_test

import (
	"testing"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	"github.com/quillbooks/pocket_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestValidateLines_Valid(t *testing.T) {
	result := accounting.ValidateLines([]accounting.JournalLine{
		debit(100, nil),
		credit(100, nil),
	})

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateLines_SingleLine(t *testing.T) {
	result := accounting.ValidateLines([]accounting.JournalLine{debit(100, nil)})

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors[0], "at least two transaction lines")
}

func TestValidateLines_ZeroAmount(t *testing.T) {
	result := accounting.ValidateLines([]accounting.JournalLine{
		debit(0, nil),
		credit(0, nil),
	})

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "line 1 has a zero amount")
	assert.Contains(t, result.Errors, "line 2 has a zero amount")
}

func TestValidateLines_ImbalanceMessageIsSigned(t *testing.T) {
	result := accounting.ValidateLines([]accounting.JournalLine{
		debit(90, nil),
		credit(100, nil),
	})

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "journal does not balance: imbalance is -10.00")
}

func TestValidateLines_BadExchangeRate(t *testing.T) {
	result := accounting.ValidateLines([]accounting.JournalLine{
		debit(100, nil),
		credit(100, floatPtr(0)),
	})

	assert.False(t, result.IsValid)
	// Rate rule fires even though the arithmetic sums would otherwise pass.
	assert.Contains(t, result.Errors[len(result.Errors)-1], "invalid exchange rate")
}

// A journal violating several rules at once must report every one of them,
// not just the first detected.
func TestValidateLines_AllViolationsReported(t *testing.T) {
	result := accounting.ValidateLines([]accounting.JournalLine{
		{Amount: 10, TransactionType: domain.Debit, ExchangeRate: floatPtr(-1)},
	})

	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "at least two transaction lines")
	assert.Contains(t, result.Errors[1], "does not balance")
	assert.Contains(t, result.Errors[2], "invalid exchange rate")
}

func TestValidateLines_ZeroAmountAndImbalanceTogether(t *testing.T) {
	result := accounting.ValidateLines([]accounting.JournalLine{
		debit(10, nil),
		{Amount: 0, TransactionType: domain.Credit},
	})

	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "zero amount")
	assert.Contains(t, result.Errors[1], "imbalance is 10.00")
}

func TestCountDistinctAccounts(t *testing.T) {
	txns := []domain.Transaction{
		{AccountID: "acc-1"},
		{AccountID: "acc-1"},
		{AccountID: "acc-2"},
	}
	assert.Equal(t, 2, accounting.CountDistinctAccounts(txns))
	assert.Equal(t, 0, accounting.CountDistinctAccounts(nil))
}
