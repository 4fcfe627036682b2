package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quillbooks/pocket_ledger/internal/apperrors"
	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	portsrepo "github.com/quillbooks/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
	"github.com/quillbooks/pocket_ledger/internal/dto"
	"github.com/quillbooks/pocket_ledger/internal/middleware"
)

// accountService provides account lifecycle operations.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	currencySvc portssvc.CurrencySvcFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, currencySvc portssvc.CurrencySvcFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		currencySvc: currencySvc,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a new account after validating its currency and
// optional parent.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.currencySvc.GetCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to verify currency %s: %w", req.CurrencyCode, err)
	}

	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parentID = *req.ParentAccountID
		if _, err := s.accountRepo.FindAccountByID(ctx, parentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, parentID)
			}
			return nil, fmt.Errorf("failed to verify parent account %s: %w", parentID, err)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Name:            req.Name,
		AccountType:     req.AccountType,
		CurrencyCode:    req.CurrencyCode,
		ParentAccountID: parentID,
		Description:     req.Description,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

// GetAccountByID retrieves a single account, active or not.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountByIDs retrieves multiple accounts keyed by ID. Missing IDs are
// simply absent from the map; the caller decides whether that is an error.
func (s *accountService) GetAccountByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to find accounts by IDs", slog.String("error", err.Error()), slog.Int("count", len(accountIDs)))
		return nil, err
	}
	return accounts, nil
}

// ListAccounts retrieves a page of accounts, including deactivated ones.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// UpdateAccount renames an account. The account type, currency and hierarchy
// are immutable after creation because historical balances replay against them.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account for update", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	if req.Name == nil || *req.Name == account.Name {
		return account, nil
	}
	if *req.Name == "" {
		return nil, fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	if err := s.accountRepo.UpdateAccountName(ctx, accountID, *req.Name, now); err != nil {
		logger.Error("Failed to rename account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	account.Name = *req.Name
	account.LastUpdatedAt = now
	logger.Info("Account renamed", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount soft-deletes an account. Its transaction history stays in
// place and historical journals keep resolving it.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account for deactivation", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}
	if !account.IsActive {
		return nil
	}

	now := time.Now().UTC()
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, now); err != nil {
		logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return err
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}
