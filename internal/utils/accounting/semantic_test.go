package accounting_test

import (
	"testing"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	"github.com/quillbooks/pocket_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

var allAccountTypes = []domain.AccountType{
	domain.Asset, domain.Liability, domain.Equity, domain.Income, domain.Expense,
}

func TestSemanticType_MatrixTotality(t *testing.T) {
	// Every one of the 25 (source, destination) pairs maps to a non-default
	// label, distinct within its row and column position.
	seen := make(map[string][]string)
	for _, src := range allAccountTypes {
		for _, dst := range allAccountTypes {
			label := accounting.SemanticType(src, dst)
			assert.NotEqual(t, accounting.DefaultSemanticType, label, "pair %s->%s", src, dst)
			assert.NotEmpty(t, label)
			seen[label] = append(seen[label], string(src)+"->"+string(dst))
		}
	}
	// Each cell encodes a distinct meaning.
	for label, pairs := range seen {
		assert.Len(t, pairs, 1, "label %q reused by %v", label, pairs)
	}
}

func TestSemanticType_KnownCells(t *testing.T) {
	tests := []struct {
		src, dst domain.AccountType
		want     string
	}{
		{domain.Asset, domain.Asset, "Transfer"},
		{domain.Asset, domain.Liability, "Debt Payment"},
		{domain.Liability, domain.Asset, "New Debt"},
		{domain.Income, domain.Asset, "Income"},
		{domain.Expense, domain.Asset, "Refund"},
		{domain.Equity, domain.Expense, "Direct Draw"},
		{domain.Income, domain.Expense, "Direct Tax/Fee"},
		{domain.Expense, domain.Expense, "Reclassification"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, accounting.SemanticType(tt.src, tt.dst))
		})
	}
}

func TestSemanticType_UnknownPair(t *testing.T) {
	assert.Equal(t, accounting.DefaultSemanticType, accounting.SemanticType(domain.AccountType("BOGUS"), domain.Asset))
	assert.Equal(t, accounting.DefaultSemanticType, accounting.SemanticType(domain.Asset, domain.AccountType("")))
}

func TestClassifyJournal(t *testing.T) {
	accountTypes := map[string]domain.AccountType{
		"checking": domain.Asset,
		"card":     domain.Liability,
		"salary":   domain.Income,
		"food":     domain.Expense,
	}

	tests := []struct {
		name     string
		accounts []string
		want     domain.JournalDisplayType
	}{
		{name: "income and expense is mixed", accounts: []string{"salary", "food"}, want: domain.DisplayMixed},
		{name: "income only", accounts: []string{"salary", "checking"}, want: domain.DisplayIncome},
		{name: "expense only", accounts: []string{"checking", "food"}, want: domain.DisplayExpense},
		{name: "pure asset movement", accounts: []string{"checking", "card"}, want: domain.DisplayTransfer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns := make([]domain.Transaction, len(tt.accounts))
			for i, id := range tt.accounts {
				txns[i] = domain.Transaction{AccountID: id}
			}
			assert.Equal(t, tt.want, accounting.ClassifyJournal(txns, accountTypes))
		})
	}
}

func TestSemanticTypeForJournal(t *testing.T) {
	accountTypes := map[string]domain.AccountType{
		"checking": domain.Asset,
		"card":     domain.Liability,
		"salary":   domain.Income,
	}

	// Paying down a card from checking: credit side Asset, debit side Liability.
	txns := []domain.Transaction{
		{AccountID: "card", TransactionType: domain.Debit},
		{AccountID: "checking", TransactionType: domain.Credit},
	}
	assert.Equal(t, "Debt Payment", accounting.SemanticTypeForJournal(txns, accountTypes))

	// Salary deposit: credit side Income, debit side Asset.
	txns = []domain.Transaction{
		{AccountID: "checking", TransactionType: domain.Debit},
		{AccountID: "salary", TransactionType: domain.Credit},
	}
	assert.Equal(t, "Income", accounting.SemanticTypeForJournal(txns, accountTypes))

	// Debit-only set has no credit side to classify from.
	txns = []domain.Transaction{{AccountID: "checking", TransactionType: domain.Debit}}
	assert.Equal(t, accounting.DefaultSemanticType, accounting.SemanticTypeForJournal(txns, accountTypes))
}
