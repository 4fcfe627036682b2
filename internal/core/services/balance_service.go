package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/quillbooks/pocket_ledger/internal/apperrors"
	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	portsrepo "github.com/quillbooks/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
	"github.com/quillbooks/pocket_ledger/internal/middleware"
	"github.com/quillbooks/pocket_ledger/internal/utils/accounting"
	"github.com/quillbooks/pocket_ledger/internal/utils/moneymath"
)

// balanceService derives account balances by replaying transaction history.
// Balances are never stored: the soft-deletable transaction log is the only
// source of truth, and the replay is deterministic over a given snapshot.
type balanceService struct {
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.TransactionReader
	currencySvc portssvc.CurrencySvcFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(
	accountRepo portsrepo.AccountReader,
	journalRepo portsrepo.TransactionReader,
	currencySvc portssvc.CurrencySvcFacade,
) portssvc.BalanceSvcFacade {
	return &balanceService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		currencySvc: currencySvc,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// GetAccountBalance replays the account's active transactions dated on or
// before asOf, in the order returned by storage. The balance is in the
// account's own currency; exchange rates are never applied here. The fold
// rounds after every single addition so that recomputation over the same
// snapshot is always bit-identical.
func (s *balanceService) GetAccountBalance(ctx context.Context, accountID string, asOf time.Time) (*domain.AccountBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account for balance", slog.String("account_id", accountID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	transactions, err := s.journalRepo.FindActiveTransactionsByAccountUpTo(ctx, accountID, asOf)
	if err != nil {
		logger.Error("Failed to fetch transactions for balance", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch transactions for account %s: %w", accountID, err)
	}

	precision := s.currencySvc.GetPrecision(ctx, account.CurrencyCode)

	balance := 0.0
	for _, txn := range transactions {
		delta := txn.Amount * accounting.ImpactMultiplier(account.AccountType, txn.TransactionType)
		balance = moneymath.SafeAdd(balance, delta, precision)
	}

	return &domain.AccountBalance{
		AccountID:        account.AccountID,
		AccountName:      account.Name,
		AccountType:      account.AccountType,
		Balance:          balance,
		CurrencyCode:     account.CurrencyCode,
		Precision:        precision,
		TransactionCount: len(transactions),
		AsOfDate:         asOf,
	}, nil
}

// GetAccountBalances computes the balance of every active account as of the
// given date. Each account operates on its own fetched snapshot with no
// shared mutable state, so the replays run concurrently.
func (s *balanceService) GetAccountBalances(ctx context.Context, asOf time.Time) ([]domain.AccountBalance, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active accounts: %w", err)
	}
	if len(accounts) == 0 {
		return []domain.AccountBalance{}, nil
	}

	balances := make([]domain.AccountBalance, len(accounts))
	errs := make([]error, len(accounts))

	var wg sync.WaitGroup
	for i, account := range accounts {
		wg.Add(1)
		go func(i int, accountID string) {
			defer wg.Done()
			balance, err := s.GetAccountBalance(ctx, accountID, asOf)
			if err != nil {
				errs[i] = err
				return
			}
			balances[i] = *balance
		}(i, account.AccountID)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return balances, nil
}
