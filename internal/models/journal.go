package models

import "time"

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted  JournalStatus = "POSTED"
	Deleted JournalStatus = "DELETED"
)

// Journal represents a journal row. TotalAmount and TransactionCount are
// denormalized columns kept in sync by the journal service on every write.
type Journal struct {
	JournalID        string        `db:"journal_id"`
	JournalDate      time.Time     `db:"journal_date"`
	Description      string        `db:"description"`
	CurrencyCode     string        `db:"currency_code"`
	Status           JournalStatus `db:"status"`
	TotalAmount      float64       `db:"total_amount"`
	TransactionCount int           `db:"transaction_count"`
	AuditFields
}
