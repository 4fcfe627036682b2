package repositories

import (
	"context"
	"time"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
)

// ExchangeRateReader defines read operations for stored exchange rates
type ExchangeRateReader interface {
	// FindLatestRate retrieves the most recent rate between two currencies
	// effective on or before the given date.
	FindLatestRate(ctx context.Context, fromCode, toCode string, onOrBefore time.Time) (*domain.ExchangeRate, error)

	// ListRates retrieves every stored rate for a currency pair.
	ListRates(ctx context.Context, fromCode, toCode string) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for stored exchange rates
type ExchangeRateWriter interface {
	// SaveExchangeRate persists an already-resolved rate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange-rate repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
