package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/quillbooks/pocket_ledger/internal/apperrors"
	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
	"github.com/quillbooks/pocket_ledger/internal/dto"
	"github.com/quillbooks/pocket_ledger/internal/handlers"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetAccountBalance(ctx context.Context, accountID string, asOf time.Time) (*domain.AccountBalance, error) {
	args := m.Called(ctx, accountID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}

func (m *MockBalanceService) GetAccountBalances(ctx context.Context, asOf time.Time) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockAccountSvc *MockAccountService
	mockBalanceSvc *MockBalanceService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockAccountSvc = new(MockAccountService)
	suite.mockBalanceSvc = new(MockBalanceService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Account: suite.mockAccountSvc,
		Balance: suite.mockBalanceSvc,
	})
}

func (suite *AccountHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{
		Name:         "Checking",
		AccountType:  domain.Asset,
		CurrencyCode: "USD",
	}
	created := &domain.Account{
		AccountID:    uuid.NewString(),
		Name:         "Checking",
		AccountType:  domain.Asset,
		CurrencyCode: "USD",
		IsActive:     true,
	}
	suite.mockAccountSvc.On("CreateAccount", mock.Anything, req).Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AccountID, resp.AccountID)
	suite.Equal(domain.Asset, resp.AccountType)
	suite.True(resp.IsActive)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_BadCurrencyCode() {
	req := dto.CreateAccountRequest{
		Name:         "Checking",
		AccountType:  domain.Asset,
		CurrencyCode: "usd", // must be uppercase ISO-style
	}

	w := suite.performRequest(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_UnknownCurrency() {
	req := dto.CreateAccountRequest{
		Name:         "Checking",
		AccountType:  domain.Asset,
		CurrencyCode: "XXX",
	}
	suite.mockAccountSvc.On("CreateAccount", mock.Anything, req).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()
	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeactivateAccount_NoContent() {
	accountID := uuid.NewString()
	suite.mockAccountSvc.On("DeactivateAccount", mock.Anything, accountID).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetBalance_Success() {
	accountID := uuid.NewString()
	balance := &domain.AccountBalance{
		AccountID:        accountID,
		AccountName:      "Checking",
		AccountType:      domain.Asset,
		Balance:          120.50,
		CurrencyCode:     "USD",
		Precision:        2,
		TransactionCount: 3,
	}
	suite.mockBalanceSvc.On("GetAccountBalance", mock.Anything, accountID, mock.AnythingOfType("time.Time")).
		Return(balance, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/accounts/"+accountID+"/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(120.50, resp.Balance)
	suite.Equal("120.50", resp.FormattedBalance)
	suite.Equal(3, resp.TransactionCount)
}

func (suite *AccountHandlerTestSuite) TestGetBalance_DateOnlyAsOfCoversWholeDay() {
	accountID := uuid.NewString()
	balance := &domain.AccountBalance{AccountID: accountID, AccountType: domain.Asset, CurrencyCode: "USD", Precision: 2}
	suite.mockBalanceSvc.On("GetAccountBalance", mock.Anything, accountID,
		mock.MatchedBy(func(asOf time.Time) bool {
			return asOf.Hour() == 23 && asOf.Minute() == 59
		})).Return(balance, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/accounts/"+accountID+"/balance?asOf=2025-06-30", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockBalanceSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetBalance_InvalidAsOf() {
	accountID := uuid.NewString()

	w := suite.performRequest(http.MethodGet, "/api/v1/accounts/"+accountID+"/balance?asOf=notadate", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBalanceSvc.AssertNotCalled(suite.T(), "GetAccountBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
