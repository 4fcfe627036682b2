package domain

import (
	"errors"
	"time"
)

// TransactionType indicates whether a transaction line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction represents a single line item within a Journal, affecting one account.
// Amount is always positive and denominated in the account's own currency;
// ExchangeRate converts it into the journal's reporting currency for balancing
// (nil means 1, i.e. same currency as the journal).
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	JournalID       string          `json:"journalID"`     // FK -> Journal.journalID (Not Null)
	AccountID       string          `json:"accountID"`     // FK -> Account.accountID (Not Null)
	Amount          float64         `json:"amount"`        // Positive value in the account's currency
	TransactionType TransactionType `json:"transactionType"`
	ExchangeRate    *float64        `json:"exchangeRate,omitempty"` // account currency -> journal currency; must be > 0 when set
	TransactionDate time.Time       `json:"transactionDate"`
	Notes           string          `json:"notes"` // Nullable
	AuditFields
}

// EffectiveRate returns the exchange rate to apply when converting this line's
// amount into the journal currency, defaulting to 1 when none is attached.
func (t Transaction) EffectiveRate() float64 {
	if t.ExchangeRate == nil {
		return 1
	}
	return *t.ExchangeRate
}

// Validate checks line-level invariants that hold regardless of the journal context.
func (t Transaction) Validate() error {
	if t.AccountID == "" {
		return errors.New("transaction must reference an account")
	}
	if t.Amount == 0 {
		return errors.New("transaction amount must be non-zero")
	}
	if t.Amount < 0 {
		return errors.New("transaction amount must be positive")
	}
	if t.TransactionType != Debit && t.TransactionType != Credit {
		return errors.New("transaction type must be DEBIT or CREDIT")
	}
	if t.ExchangeRate != nil && *t.ExchangeRate <= 0 {
		return errors.New("exchange rate must be positive")
	}
	return nil
}
