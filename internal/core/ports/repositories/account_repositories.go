package repositories

import (
	"context"
	"time"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListActiveAccounts retrieves every account that is not soft-deleted.
	ListActiveAccounts(ctx context.Context) ([]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts, including inactive ones.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountName updates an account's display name. The account type is
	// immutable after creation, so no broader update exists.
	UpdateAccountName(ctx context.Context, accountID string, name string, now time.Time) error

	// DeactivateAccount marks an account as inactive (soft delete).
	DeactivateAccount(ctx context.Context, accountID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
