package services

import (
	"context"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	"github.com/quillbooks/pocket_ledger/internal/dto"
)

// CurrencySvcFacade defines operations on currencies.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// GetPrecision resolves the decimal precision for a currency code,
	// falling back to a built-in table when the currency is not stored.
	GetPrecision(ctx context.Context, currencyCode string) int

	// SeedDefaultCurrencies inserts the static default currency list on
	// first launch. Existing currencies are left untouched.
	SeedDefaultCurrencies(ctx context.Context) error
}
