package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quillbooks/pocket_ledger/internal/apperrors"
	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	portsrepo "github.com/quillbooks/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
	"github.com/quillbooks/pocket_ledger/internal/dto"
	"github.com/quillbooks/pocket_ledger/internal/middleware"
)

var ErrSameCurrencyPair = errors.New("from and to currency must differ")

// exchangeRateService records and looks up caller-supplied exchange rates.
// It never fetches rates from anywhere itself.
type exchangeRateService struct {
	rateRepo    portsrepo.ExchangeRateRepositoryFacade
	currencySvc portssvc.CurrencySvcFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencySvc portssvc.CurrencySvcFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:    rateRepo,
		currencySvc: currencySvc,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate stores an already-resolved rate after verifying both
// currencies are known and the rate is positive.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.FromCurrencyCode == req.ToCurrencyCode {
		return nil, fmt.Errorf("%w: %s", ErrSameCurrencyPair, req.FromCurrencyCode)
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive, got %s", apperrors.ErrValidation, req.Rate.String())
	}

	for _, code := range []string{req.FromCurrencyCode, req.ToCurrencyCode} {
		if _, err := s.currencySvc.GetCurrencyByCode(ctx, code); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, code)
			}
			return nil, fmt.Errorf("failed to verify currency %s: %w", code, err)
		}
	}

	now := time.Now().UTC()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: req.FromCurrencyCode,
		ToCurrencyCode:   req.ToCurrencyCode,
		Rate:             req.Rate,
		DateEffective:    req.DateEffective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		logger.Error("Failed to save exchange rate", slog.String("error", err.Error()), slog.String("pair", req.FromCurrencyCode+"/"+req.ToCurrencyCode))
		return nil, err
	}

	logger.Info("Exchange rate recorded", slog.String("pair", rate.FromCurrencyCode+"/"+rate.ToCurrencyCode), slog.String("rate", rate.Rate.String()))
	return &rate, nil
}

// GetLatestRate returns the most recent stored rate for a pair effective on
// or before the given date.
func (s *exchangeRateService) GetLatestRate(ctx context.Context, fromCode, toCode string, onOrBefore time.Time) (*domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rate, err := s.rateRepo.FindLatestRate(ctx, fromCode, toCode, onOrBefore)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find latest exchange rate", slog.String("error", err.Error()), slog.String("pair", fromCode+"/"+toCode))
		}
		return nil, err
	}
	return rate, nil
}

// ListRates returns every stored rate for a currency pair.
func (s *exchangeRateService) ListRates(ctx context.Context, fromCode, toCode string) ([]domain.ExchangeRate, error) {
	return s.rateRepo.ListRates(ctx, fromCode, toCode)
}
