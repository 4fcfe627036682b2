package accounting

import "github.com/quillbooks/pocket_ledger/internal/core/domain"

// DefaultSemanticType is returned for any (source, destination) pair outside
// the authored matrix.
const DefaultSemanticType = "Transaction"

// semanticTypes maps (credit-side account type, debit-side account type) to a
// human-meaningful label. This is a closed, hand-authored enumeration: each
// cell encodes a distinct accounting meaning that cannot be derived from the
// two types alone, so it is kept as data.
var semanticTypes = map[domain.AccountType]map[domain.AccountType]string{
	domain.Asset: {
		domain.Asset:     "Transfer",
		domain.Liability: "Debt Payment",
		domain.Equity:    "Owner Draw",
		domain.Income:    "Income Refund",
		domain.Expense:   "Expense",
	},
	domain.Liability: {
		domain.Asset:     "New Debt",
		domain.Liability: "Debt Refinance",
		domain.Equity:    "Debt-to-Equity",
		domain.Income:    "Liability Adj",
		domain.Expense:   "Accrued Expense",
	},
	domain.Equity: {
		domain.Asset:     "Investment",
		domain.Liability: "Financing Obj",
		domain.Equity:    "Equity Transfer",
		domain.Income:    "Contrib. Adj",
		domain.Expense:   "Direct Draw",
	},
	domain.Income: {
		domain.Asset:     "Income",
		domain.Liability: "Direct Paydown",
		domain.Equity:    "Retained Savings",
		domain.Income:    "Income Reclass",
		domain.Expense:   "Direct Tax/Fee",
	},
	domain.Expense: {
		domain.Asset:     "Refund",
		domain.Liability: "Credit Refund",
		domain.Equity:    "Capitalization",
		domain.Income:    "Adj Reset",
		domain.Expense:   "Reclassification",
	},
}

// SemanticType returns the label for a journal whose credit side hits an
// account of sourceType and whose debit side hits an account of destType.
func SemanticType(sourceType, destType domain.AccountType) string {
	if row, ok := semanticTypes[sourceType]; ok {
		if label, ok := row[destType]; ok {
			return label
		}
	}
	return DefaultSemanticType
}

// ClassifyJournal scans the account types touched by a journal's lines and
// assigns the overall display category. Touching both an income and an
// expense account makes the journal Mixed; income alone wins over expense;
// pure asset/liability/equity movement is a Transfer.
func ClassifyJournal(transactions []domain.Transaction, accountTypes map[string]domain.AccountType) domain.JournalDisplayType {
	touchesIncome := false
	touchesExpense := false

	for _, txn := range transactions {
		switch accountTypes[txn.AccountID] {
		case domain.Income:
			touchesIncome = true
		case domain.Expense:
			touchesExpense = true
		}
	}

	switch {
	case touchesIncome && touchesExpense:
		return domain.DisplayMixed
	case touchesIncome:
		return domain.DisplayIncome
	case touchesExpense:
		return domain.DisplayExpense
	default:
		return domain.DisplayTransfer
	}
}

// SemanticTypeForJournal derives the semantic label for a whole journal from
// the account type on its credit side (source) and its debit side
// (destination). Journals with no clear two-sided shape fall back to the
// default label.
func SemanticTypeForJournal(transactions []domain.Transaction, accountTypes map[string]domain.AccountType) string {
	var sourceType, destType domain.AccountType
	for _, txn := range transactions {
		switch txn.TransactionType {
		case domain.Credit:
			if sourceType == "" {
				sourceType = accountTypes[txn.AccountID]
			}
		case domain.Debit:
			if destType == "" {
				destType = accountTypes[txn.AccountID]
			}
		}
	}
	return SemanticType(sourceType, destType)
}
