package services

import (
	"context"
	"time"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	"github.com/quillbooks/pocket_ledger/internal/dto"
)

// ExchangeRateSvcFacade stores and looks up already-resolved exchange rates.
// Rate fetching/resolution is not this core's concern.
type ExchangeRateSvcFacade interface {
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
	GetLatestRate(ctx context.Context, fromCode, toCode string, onOrBefore time.Time) (*domain.ExchangeRate, error)
	ListRates(ctx context.Context, fromCode, toCode string) ([]domain.ExchangeRate, error)
}
