package services

import (
	"context"
	"time"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
)

// BalanceSvcFacade derives account balances from transaction history.
// Balances are never stored as mutable state; every call replays the
// account's active transactions up to the cutoff.
type BalanceSvcFacade interface {
	// GetAccountBalance replays one account's history up to asOf.
	GetAccountBalance(ctx context.Context, accountID string, asOf time.Time) (*domain.AccountBalance, error)

	// GetAccountBalances computes balances for every active account.
	// Accounts are independent, so they are computed concurrently.
	GetAccountBalances(ctx context.Context, asOf time.Time) ([]domain.AccountBalance, error)
}
