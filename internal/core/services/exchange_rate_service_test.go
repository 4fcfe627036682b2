package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/quillbooks/pocket_ledger/internal/apperrors"
	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
	"github.com/quillbooks/pocket_ledger/internal/core/services"
	"github.com/quillbooks/pocket_ledger/internal/dto"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockExchangeRateRepository
	mockCurrencySvc *MockCurrencyService
	service         portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExchangeRateRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewExchangeRateService(suite.mockRepo, suite.mockCurrencySvc)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_Success() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "EUR",
		ToCurrencyCode:   "USD",
		Rate:             decimal.RequireFromString("1.0835"),
		DateEffective:    time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").
		Return(&domain.Currency{CurrencyCode: "EUR", Precision: 2}, nil)
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").
		Return(&domain.Currency{CurrencyCode: "USD", Precision: 2}, nil)
	suite.mockRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.FromCurrencyCode == "EUR" && r.ToCurrencyCode == "USD" && r.Rate.Equal(req.Rate)
	})).Return(nil)

	rate, err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(rate.ExchangeRateID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_SamePairRejected() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "USD",
		Rate:             decimal.NewFromInt(1),
		DateEffective:    time.Now(),
	}

	rate, err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, services.ErrSameCurrencyPair)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_NonPositiveRateRejected() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "EUR",
		ToCurrencyCode:   "USD",
		Rate:             decimal.Zero,
		DateEffective:    time.Now(),
	}

	rate, err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "ZZZ",
		ToCurrencyCode:   "USD",
		Rate:             decimal.NewFromFloat(0.5),
		DateEffective:    time.Now(),
	}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "ZZZ").Return(nil, apperrors.ErrNotFound)

	rate, err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetLatestRate_NotFound() {
	ctx := context.Background()
	asOf := time.Now()

	suite.mockRepo.On("FindLatestRate", ctx, "EUR", "USD", asOf).Return(nil, apperrors.ErrNotFound)

	rate, err := suite.service.GetLatestRate(ctx, "EUR", "USD", asOf)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
