package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/quillbooks/pocket_ledger/internal/apperrors"
	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
	"github.com/quillbooks/pocket_ledger/internal/core/services"
	"github.com/quillbooks/pocket_ledger/internal/dto"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_DefaultsPrecision() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "SEK", Symbol: "kr", Name: "Swedish Krona"}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "SEK" && c.Precision == 2
	})).Return(nil)

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(2, currency.Precision)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_ExplicitPrecision() {
	ctx := context.Background()
	precision := 3
	req := dto.CreateCurrencyRequest{CurrencyCode: "TND", Symbol: "د.ت", Name: "Tunisian Dinar", Precision: &precision}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil)

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(3, currency.Precision)
}

func (suite *CurrencyServiceTestSuite) TestGetPrecision_StoredCurrencyWins() {
	ctx := context.Background()
	// A stored override beats the fallback table.
	suite.mockRepo.On("FindCurrencyByCode", ctx, "JPY").
		Return(&domain.Currency{CurrencyCode: "JPY", Precision: 1}, nil)

	suite.Equal(1, suite.service.GetPrecision(ctx, "JPY"))
}

func (suite *CurrencyServiceTestSuite) TestGetPrecision_FallbackTable() {
	ctx := context.Background()
	for code, want := range map[string]int{"JPY": 0, "KRW": 0, "KWD": 3, "BHD": 3, "USD": 2, "XYZ": 2} {
		suite.mockRepo.On("FindCurrencyByCode", ctx, code).Return(nil, apperrors.ErrNotFound).Once()
		suite.Equal(want, suite.service.GetPrecision(ctx, code), code)
	}
}

func (suite *CurrencyServiceTestSuite) TestGetPrecision_NeverFailsOnRepoError() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "KWD").Return(nil, errors.New("connection refused"))

	suite.Equal(3, suite.service.GetPrecision(ctx, "KWD"))
}

func (suite *CurrencyServiceTestSuite) TestSeedDefaultCurrencies_SkipsExisting() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(&domain.Currency{CurrencyCode: "USD", Precision: 2}, nil)
	suite.mockRepo.On("FindCurrencyByCode", ctx, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound)
	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil)

	err := suite.service.SeedDefaultCurrencies(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "USD"
	}))
}

func (suite *CurrencyServiceTestSuite) TestSeedDefaultCurrencies_TolerantOfRaces() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound)
	// A concurrent insert between the check and the save is harmless.
	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).
		Return(apperrors.ErrDuplicate)

	suite.NoError(suite.service.SeedDefaultCurrencies(ctx))
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx).Return([]domain.Currency(nil), nil)

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
