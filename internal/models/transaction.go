package models

import "time"

// TransactionType indicates whether a transaction line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction represents a journal line row. IsDeleted mirrors the owning
// journal's deletion so the balance replay query never has to join journals.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	JournalID       string          `db:"journal_id"`
	AccountID       string          `db:"account_id"`
	Amount          float64         `db:"amount"`
	TransactionType TransactionType `db:"transaction_type"`
	ExchangeRate    *float64        `db:"exchange_rate"` // Nullable; NULL means same currency as journal
	TransactionDate time.Time       `db:"transaction_date"`
	Notes           string          `db:"notes"` // Nullable
	IsDeleted       bool            `db:"is_deleted"`
	AuditFields
}
