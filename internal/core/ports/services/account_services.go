package services

import (
	"context"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	"github.com/quillbooks/pocket_ledger/internal/dto"
)

// AccountReaderSvc defines read operations on accounts
type AccountReaderSvc interface {
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations on accounts
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	// UpdateAccount renames an account; the account type is immutable.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
