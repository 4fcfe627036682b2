package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quillbooks/pocket_ledger/internal/apperrors"
	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	portsrepo "github.com/quillbooks/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
	"github.com/quillbooks/pocket_ledger/internal/dto"
	"github.com/quillbooks/pocket_ledger/internal/middleware"
	"github.com/quillbooks/pocket_ledger/internal/utils/accounting"
)

var (
	ErrJournalMinAccounts = errors.New("journal must affect at least two different accounts")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrDescriptionMissing = errors.New("journal description is required")
	ErrJournalDeleted     = errors.New("journal is deleted and cannot be modified")
)

// journalService provides core journal and transaction operations.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryWithTx
	accountSvc  portssvc.AccountSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, accountSvc portssvc.AccountSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildTransactions materializes domain transactions from the request lines,
// defaulting each line's date to the journal date.
func buildTransactions(journalID string, journalDate time.Time, reqs []dto.CreateTransactionRequest, now time.Time) []domain.Transaction {
	transactions := make([]domain.Transaction, len(reqs))
	for i, txnReq := range reqs {
		transactionDate := journalDate
		if txnReq.TransactionDate != nil {
			transactionDate = *txnReq.TransactionDate
		}

		transactions[i] = domain.Transaction{
			TransactionID:   uuid.NewString(),
			JournalID:       journalID,
			AccountID:       txnReq.AccountID,
			Amount:          txnReq.Amount,
			TransactionType: txnReq.TransactionType,
			ExchangeRate:    txnReq.ExchangeRate,
			TransactionDate: transactionDate,
			Notes:           txnReq.Notes,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}
	return transactions
}

// validateTransactions runs every structural and balance rule over the
// candidate lines and wraps the full list of violations in a single
// validation error. Nothing short-circuits: the caller gets all problems at once.
func (s *journalService) validateTransactions(transactions []domain.Transaction) error {
	result := accounting.ValidateLines(accounting.LinesFromTransactions(transactions))
	if !result.IsValid {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(result.Errors, "; "))
	}
	if accounting.CountDistinctAccounts(transactions) < 2 {
		return ErrJournalMinAccounts
	}
	return nil
}

// fetchAccountTypes loads the accounts referenced by the transactions,
// verifies that each exists and is active, and returns their types keyed by
// account ID.
func (s *journalService) fetchAccountTypes(ctx context.Context, transactions []domain.Transaction) (map[string]domain.AccountType, error) {
	seen := make(map[string]struct{}, len(transactions))
	accountIDs := make([]string, 0, len(transactions))
	for _, txn := range transactions {
		if _, ok := seen[txn.AccountID]; ok {
			continue
		}
		seen[txn.AccountID] = struct{}{}
		accountIDs = append(accountIDs, txn.AccountID)
	}

	accountsMap, err := s.accountSvc.GetAccountByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	accountTypes := make(map[string]domain.AccountType, len(accountIDs))
	for _, id := range accountIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountInactive, id)
		}
		accountTypes[id] = acc.AccountType
	}
	return accountTypes, nil
}

// classify stamps the derived display and semantic types onto a journal from
// its lines and the types of the accounts they touch.
func classify(journal *domain.Journal, accountTypes map[string]domain.AccountType) {
	journal.DisplayType = accounting.ClassifyJournal(journal.Transactions, accountTypes)
	journal.SemanticType = accounting.SemanticTypeForJournal(journal.Transactions, accountTypes)
}

// CreateJournal creates a new journal entry with its transactions after validation.
// Implements portssvc.JournalSvcFacade
func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Description == "" {
		return nil, ErrDescriptionMissing
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()
	transactions := buildTransactions(journalID, req.Date, req.Transactions, now)

	if err := s.validateTransactions(transactions); err != nil {
		return nil, err
	}

	accountTypes, err := s.fetchAccountTypes(ctx, transactions)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrAccountInactive) {
			return nil, err
		}
		logger.Error("Failed to fetch accounts for journal creation", slog.String("error", err.Error()))
		return nil, err
	}

	lines := accounting.LinesFromTransactions(transactions)
	journal := domain.Journal{
		JournalID:        journalID,
		JournalDate:      req.Date,
		Description:      req.Description,
		CurrencyCode:     req.CurrencyCode,
		Status:           domain.Posted,
		TotalAmount:      accounting.CalculateJournalAmount(lines),
		TransactionCount: len(transactions),
		Transactions:     transactions,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, transactions); err != nil {
		logger.Error("Failed to save journal", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	classify(&journal, accountTypes)

	logger.Info("Journal created", slog.String("journal_id", journal.JournalID), slog.Float64("total_amount", journal.TotalAmount))
	return &journal, nil
}

// GetJournalByID retrieves a journal with its transactions and derived
// display and semantic types.
// Implements portssvc.JournalSvcFacade
func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal by ID", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}

	transactions, err := s.journalRepo.FindTransactionsByJournalID(ctx, journalID)
	if err != nil {
		logger.Error("Failed to fetch transactions for journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve transactions for journal %s: %w", journalID, apperrors.ErrInternal)
	}
	journal.Transactions = transactions

	accountTypes, err := s.accountTypesForJournals(ctx, []domain.Journal{*journal})
	if err != nil {
		logger.Error("Failed to fetch accounts for journal classification", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, err
	}
	classify(journal, accountTypes)

	return journal, nil
}

// accountTypesForJournals resolves the account types touched by a set of
// journals in one account lookup. Unlike fetchAccountTypes it tolerates
// inactive accounts: historical journals legitimately reference deactivated ones.
func (s *journalService) accountTypesForJournals(ctx context.Context, journals []domain.Journal) (map[string]domain.AccountType, error) {
	seen := make(map[string]struct{})
	accountIDs := make([]string, 0)
	for _, j := range journals {
		for _, txn := range j.Transactions {
			if _, ok := seen[txn.AccountID]; ok {
				continue
			}
			seen[txn.AccountID] = struct{}{}
			accountIDs = append(accountIDs, txn.AccountID)
		}
	}
	if len(accountIDs) == 0 {
		return map[string]domain.AccountType{}, nil
	}

	accountsMap, err := s.accountSvc.GetAccountByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	accountTypes := make(map[string]domain.AccountType, len(accountsMap))
	for id, acc := range accountsMap {
		accountTypes[id] = acc.AccountType
	}
	return accountTypes, nil
}

// ListJournals retrieves a page of journals with their derived types
// populated. Transactions are loaded to classify each journal but stripped
// from the list payload.
// Implements portssvc.JournalSvcFacade
func (s *journalService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	journals, nextToken, err := s.journalRepo.ListJournals(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list journals", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}

	for i := range journals {
		transactions, err := s.journalRepo.FindTransactionsByJournalID(ctx, journals[i].JournalID)
		if err != nil {
			logger.Error("Failed to fetch transactions for journal list", slog.String("error", err.Error()), slog.String("journal_id", journals[i].JournalID))
			return nil, fmt.Errorf("failed to retrieve transactions for journal %s: %w", journals[i].JournalID, apperrors.ErrInternal)
		}
		journals[i].Transactions = transactions
	}

	accountTypes, err := s.accountTypesForJournals(ctx, journals)
	if err != nil {
		logger.Error("Failed to fetch accounts for journal list classification", slog.String("error", err.Error()))
		return nil, err
	}

	responses := make([]dto.JournalResponse, len(journals))
	for i := range journals {
		classify(&journals[i], accountTypes)
		journals[i].Transactions = nil
		responses[i] = dto.ToJournalResponse(&journals[i])
	}

	return &dto.ListJournalsResponse{
		Journals:  responses,
		NextToken: nextToken,
	}, nil
}

// UpdateJournal updates a journal's description and date, and optionally
// replaces its full set of transaction lines. A replacement re-runs every
// validation rule and recomputes the denormalized totals.
// Implements portssvc.JournalSvcFacade
func (s *journalService) UpdateJournal(ctx context.Context, journalID string, req dto.UpdateJournalRequest) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal for update", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}
	if journal.Status == domain.Deleted {
		return nil, fmt.Errorf("%w: %s", ErrJournalDeleted, journalID)
	}

	if req.Date != nil {
		journal.JournalDate = *req.Date
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, ErrDescriptionMissing
		}
		journal.Description = *req.Description
	}

	now := time.Now().UTC()
	journal.LastUpdatedAt = now

	if req.Transactions == nil {
		if err := s.journalRepo.UpdateJournal(ctx, *journal); err != nil {
			logger.Error("Failed to update journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
			return nil, fmt.Errorf("failed to update journal %s: %w", journalID, err)
		}
		return s.GetJournalByID(ctx, journalID)
	}

	transactions := buildTransactions(journalID, journal.JournalDate, *req.Transactions, now)
	if err := s.validateTransactions(transactions); err != nil {
		return nil, err
	}
	if _, err := s.fetchAccountTypes(ctx, transactions); err != nil {
		return nil, err
	}

	lines := accounting.LinesFromTransactions(transactions)
	journal.TotalAmount = accounting.CalculateJournalAmount(lines)
	journal.TransactionCount = len(transactions)

	if err := s.journalRepo.ReplaceJournalLines(ctx, *journal, transactions); err != nil {
		logger.Error("Failed to replace journal lines", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to replace lines for journal %s: %w", journalID, err)
	}

	logger.Info("Journal updated", slog.String("journal_id", journalID), slog.Int("transaction_count", journal.TransactionCount))
	return s.GetJournalByID(ctx, journalID)
}

// DeleteJournal soft-deletes a journal and all of its lines as one unit.
// Deleted lines vanish from every balance replay; deleting an already deleted
// journal is a no-op.
// Implements portssvc.JournalSvcFacade
func (s *journalService) DeleteJournal(ctx context.Context, journalID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal for delete", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}
	if journal.Status == domain.Deleted {
		return nil
	}

	now := time.Now().UTC()
	if err := s.journalRepo.SoftDeleteJournal(ctx, journalID, now); err != nil {
		logger.Error("Failed to soft delete journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return fmt.Errorf("failed to delete journal %s: %w", journalID, err)
	}

	logger.Info("Journal deleted", slog.String("journal_id", journalID))
	return nil
}

// ValidateJournalLines checks candidate lines without touching storage. It
// never fails: every totals figure and every violated rule comes back in the
// response so the UI can show live feedback while the user is still typing.
// Implements portssvc.JournalSvcFacade
func (s *journalService) ValidateJournalLines(req dto.ValidateJournalRequest) dto.JournalValidationResponse {
	lines := make([]accounting.JournalLine, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = accounting.JournalLine{
			Amount:          line.Amount,
			TransactionType: line.TransactionType,
			ExchangeRate:    line.ExchangeRate,
		}
	}

	result := accounting.ValidateLines(lines)
	return dto.JournalValidationResponse{
		IsValid:      result.IsValid,
		Errors:       result.Errors,
		TotalDebits:  accounting.CalculateTotalDebits(lines),
		TotalCredits: accounting.CalculateTotalCredits(lines),
		Imbalance:    accounting.CalculateImbalance(lines),
	}
}
