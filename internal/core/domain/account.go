package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account represents a financial account within the core domain.
// AccountType is immutable after creation: historical balances are replayed
// against it, so edits are restricted to the display name.
type Account struct {
	AccountID       string      `json:"accountID"`       // Primary Key (UUID)
	Name            string      `json:"name"`            // User-defined name
	AccountType     AccountType `json:"accountType"`     // ASSET, LIABILITY, etc.
	CurrencyCode    string      `json:"currencyCode"`    // FK -> currencies.code (NON-NULL)
	ParentAccountID string      `json:"parentAccountID"` // Nullable FK -> accounts.account_id (hierarchy only)
	Description     string      `json:"description"`     // Nullable user description
	IsActive        bool        `json:"isActive"`        // Soft delete flag; inactive accounts stay resolvable
	AuditFields
}
