package models

// Currency represents a currency row.
type Currency struct {
	CurrencyCode string `db:"currency_code"` // ISO 4217-style code, primary key
	Symbol       string `db:"symbol"`
	Name         string `db:"name"`
	Precision    int    `db:"precision"` // Decimal places for display and rounding
	AuditFields
}
