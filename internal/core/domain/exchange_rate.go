package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores an already-resolved conversion rate between two currencies
// for a specific date. The core never fetches rates itself; it only records and
// looks up values supplied by the caller.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`   // Primary Key (UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"` // FK -> Currency.currencyCode
	ToCurrencyCode   string          `json:"toCurrencyCode"`   // FK -> Currency.currencyCode
	Rate             decimal.Decimal `json:"rate"`             // Precise decimal type
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
