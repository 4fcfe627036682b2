package domain

import "time"

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted  JournalStatus = "POSTED"
	Deleted JournalStatus = "DELETED"
)

// JournalDisplayType is the whole-journal category used for list icons and
// coloring. It is derived from the account types a journal touches, never
// stored.
type JournalDisplayType string

const (
	DisplayIncome   JournalDisplayType = "INCOME"
	DisplayExpense  JournalDisplayType = "EXPENSE"
	DisplayTransfer JournalDisplayType = "TRANSFER"
	DisplayMixed    JournalDisplayType = "MIXED"
)

// Journal represents a single, balanced financial event composed of multiple transactions.
// TotalAmount and TransactionCount are denormalized for list rendering; they are
// recomputed by the journal calculator on every write and never used as the
// source of truth for balance math.
type Journal struct {
	JournalID        string        `json:"journalID"`    // Primary Key (UUID)
	JournalDate      time.Time     `json:"journalDate"`  // Date the event occurred
	Description      string        `json:"description"`  // User description
	CurrencyCode     string        `json:"currencyCode"` // Display/reporting currency of the journal
	Status           JournalStatus `json:"status"`       // Default: Posted; Deleted on soft delete
	TotalAmount      float64       `json:"totalAmount"`  // Cached: total of the debit side in journal currency
	TransactionCount int           `json:"transactionCount"`
	Transactions     []Transaction `json:"transactions,omitempty"`

	// Derived at read time from the account types the journal touches.
	DisplayType  JournalDisplayType `json:"displayType,omitempty"`
	SemanticType string             `json:"semanticType,omitempty"`

	AuditFields
}
