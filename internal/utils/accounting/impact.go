package accounting

import "github.com/quillbooks/pocket_ledger/internal/core/domain"

// ImpactMultiplier translates an (account type, transaction type) pair into a
// signed balance delta factor.
//
// DEBIT to ASSET/EXPENSE -> +1
// CREDIT to ASSET/EXPENSE -> -1
// DEBIT to LIABILITY/EQUITY/INCOME -> -1
// CREDIT to LIABILITY/EQUITY/INCOME -> +1
//
// An unknown account type yields 0; valid data never produces one, but a zero
// multiplier keeps a bad row from corrupting a balance.
func ImpactMultiplier(accountType domain.AccountType, transactionType domain.TransactionType) float64 {
	isDebit := transactionType == domain.Debit

	switch accountType {
	case domain.Asset, domain.Expense:
		if isDebit {
			return 1
		}
		return -1
	case domain.Liability, domain.Equity, domain.Income:
		if isDebit {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// IsIncrease reports whether the given transaction type increases the balance
// of an account of the given type.
func IsIncrease(accountType domain.AccountType, transactionType domain.TransactionType) bool {
	return ImpactMultiplier(accountType, transactionType) > 0
}
