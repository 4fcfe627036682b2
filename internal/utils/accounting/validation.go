package accounting

import (
	"fmt"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
)

// minExchangeRate is the smallest acceptable exchange rate on a line. A zero
// or negative rate is rejected even when the arithmetic would still balance.
const minExchangeRate = 0.000001

// ValidationResult reports every violated rule of a candidate journal.
// Validation failures are data, not exceptions: the UI shows all problems at
// once, so every rule is evaluated and none short-circuits.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateLines applies the structural and balance invariants to a candidate
// journal's lines. The distinct-accounts rule lives one layer up in the
// journal service, which is the only caller that knows account identities.
func ValidateLines(lines []JournalLine) ValidationResult {
	var errs []string

	if len(lines) < 2 {
		errs = append(errs, "journal must have at least two transaction lines")
	}

	for i, line := range lines {
		if line.Amount == 0 {
			errs = append(errs, fmt.Sprintf("line %d has a zero amount", i+1))
		}
	}

	if !IsBalanced(lines) {
		errs = append(errs, fmt.Sprintf("journal does not balance: imbalance is %.2f", CalculateImbalance(lines)))
	}

	for i, line := range lines {
		if line.ExchangeRate != nil && *line.ExchangeRate <= minExchangeRate {
			errs = append(errs, fmt.Sprintf("line %d has an invalid exchange rate %v", i+1, *line.ExchangeRate))
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// CountDistinctAccounts returns the number of distinct accounts referenced by
// the given transactions. A journal where every leg hits the same account is
// structurally meaningless even when it balances.
func CountDistinctAccounts(transactions []domain.Transaction) int {
	seen := make(map[string]struct{}, len(transactions))
	for _, txn := range transactions {
		seen[txn.AccountID] = struct{}{}
	}
	return len(seen)
}
