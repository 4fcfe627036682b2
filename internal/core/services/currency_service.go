package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/quillbooks/pocket_ledger/internal/apperrors"
	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	portsrepo "github.com/quillbooks/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
	"github.com/quillbooks/pocket_ledger/internal/dto"
	"github.com/quillbooks/pocket_ledger/internal/middleware"
)

// defaultPrecision applies to any currency without a stored or known precision.
const defaultPrecision = 2

// fallbackPrecisions covers the known exceptions to two-decimal currencies.
// Used when the currency store has no entry for a code.
var fallbackPrecisions = map[string]int{
	"JPY": 0,
	"KRW": 0,
	"KWD": 3,
	"BHD": 3,
}

// defaultCurrencies is the static list seeded at first launch.
var defaultCurrencies = []domain.Currency{
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2},
	{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", Precision: 2},
	{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Precision: 0},
	{CurrencyCode: "KRW", Symbol: "₩", Name: "South Korean Won", Precision: 0},
	{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", Precision: 2},
	{CurrencyCode: "CAD", Symbol: "$", Name: "Canadian Dollar", Precision: 2},
	{CurrencyCode: "AUD", Symbol: "$", Name: "Australian Dollar", Precision: 2},
	{CurrencyCode: "CHF", Symbol: "Fr", Name: "Swiss Franc", Precision: 2},
	{CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan", Precision: 2},
	{CurrencyCode: "KWD", Symbol: "د.ك", Name: "Kuwaiti Dinar", Precision: 3},
	{CurrencyCode: "BHD", Symbol: ".د.ب", Name: "Bahraini Dinar", Precision: 3},
}

// currencyService provides currency lookup, seeding and precision resolution.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	now := time.Now().UTC()

	precision := defaultPrecision
	if req.Precision != nil {
		precision = *req.Precision
	}

	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		Precision:    precision,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// GetPrecision resolves the decimal precision for a currency code. A missing
// currency resolves through the fallback table rather than failing: balance
// replay must not abort because a currency row was never seeded.
func (s *currencyService) GetPrecision(ctx context.Context, currencyCode string) int {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err == nil && currency != nil {
		return currency.Precision
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		middleware.GetLoggerFromCtx(ctx).Warn("Currency lookup failed, using fallback precision",
			slog.String("currency_code", currencyCode), slog.String("error", err.Error()))
	}
	if p, ok := fallbackPrecisions[currencyCode]; ok {
		return p
	}
	return defaultPrecision
}

// SeedDefaultCurrencies inserts the static currency list. Currencies that
// already exist are skipped, so repeated startups are harmless.
func (s *currencyService) SeedDefaultCurrencies(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	for _, currency := range defaultCurrencies {
		existing, err := s.currencyRepo.FindCurrencyByCode(ctx, currency.CurrencyCode)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check currency %s during seed: %w", currency.CurrencyCode, err)
		}
		if existing != nil {
			continue
		}

		currency.CreatedAt = now
		currency.LastUpdatedAt = now
		if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return fmt.Errorf("failed to seed currency %s: %w", currency.CurrencyCode, err)
		}
	}

	logger.Info("Default currencies seeded", slog.Int("count", len(defaultCurrencies)))
	return nil
}
