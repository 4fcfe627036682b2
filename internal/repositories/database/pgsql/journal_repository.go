package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quillbooks/pocket_ledger/internal/apperrors"
	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	portsrepo "github.com/quillbooks/pocket_ledger/internal/core/ports/repositories"
	"github.com/quillbooks/pocket_ledger/internal/models"
	"github.com/quillbooks/pocket_ledger/internal/utils/mapping"
	"github.com/quillbooks/pocket_ledger/internal/utils/pagination"
)

const journalColumns = `journal_id, journal_date, description, currency_code, status, total_amount, transaction_count, created_at, last_updated_at`

const transactionColumns = `transaction_id, journal_id, account_id, amount, transaction_type, exchange_rate, transaction_date, notes, is_deleted, created_at, last_updated_at`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal and transaction data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

func insertTransactions(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9, $10);
	`
	for _, txn := range transactions {
		m := mapping.ToModelTransaction(txn)
		_, err := tx.Exec(ctx, query,
			m.TransactionID,
			m.JournalID,
			m.AccountID,
			m.Amount,
			m.TransactionType,
			m.ExchangeRate,
			m.TransactionDate,
			m.Notes,
			m.CreatedAt,
			m.LastUpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
		}
	}
	return nil
}

// SaveJournal inserts a journal and its transaction lines atomically.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournal(journal)
	query := `
		INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		m.JournalID,
		m.JournalDate,
		m.Description,
		m.CurrencyCode,
		m.Status,
		m.TotalAmount,
		m.TransactionCount,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: journal %s already exists", apperrors.ErrDuplicate, m.JournalID)
		}
		return apperrors.NewAppError(500, "failed to insert journal "+m.JournalID, err)
	}

	if err := insertTransactions(ctx, tx, transactions); err != nil {
		return apperrors.NewAppError(500, "failed to insert transactions for journal "+m.JournalID, err)
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal header by its ID, deleted or not.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`

	var m models.Journal
	err := r.Pool.QueryRow(ctx, query, journalID).Scan(
		&m.JournalID,
		&m.JournalDate,
		&m.Description,
		&m.CurrencyCode,
		&m.Status,
		&m.TotalAmount,
		&m.TransactionCount,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("journal %s: %w", journalID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	journal := mapping.ToDomainJournal(m)
	return &journal, nil
}

// ListJournals retrieves a page of non-deleted journals in reverse
// chronological order, using token-based pagination keyed on
// (journal_date, created_at).
func (r *PgxJournalRepository) ListJournals(ctx context.Context, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + journalColumns + ` FROM journals WHERE status != 'DELETED'`
	orderByClause := `ORDER BY journal_date DESC, created_at DESC, journal_id DESC`

	args := []any{}
	cursorClause := ""
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause = ` AND (journal_date, created_at) < ($1, $2)`
		args = append(args, lastDate, lastCreatedAt)
	}

	query := baseQuery + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journals", err)
	}
	defer rows.Close()

	modelJournals := make([]models.Journal, 0, fetchLimit)
	for rows.Next() {
		var m models.Journal
		scanErr := rows.Scan(
			&m.JournalID,
			&m.JournalDate,
			&m.Description,
			&m.CurrencyCode,
			&m.Status,
			&m.TotalAmount,
			&m.TransactionCount,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal row", scanErr)
		}
		modelJournals = append(modelJournals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal rows", err)
	}

	var nextTokenVal *string
	results := modelJournals
	if len(modelJournals) > limit {
		lastJournal := modelJournals[limit-1]
		newToken := pagination.EncodeToken(lastJournal.JournalDate, lastJournal.CreatedAt)
		nextTokenVal = &newToken
		results = modelJournals[:limit]
	}

	domainJournals := make([]domain.Journal, len(results))
	for i, m := range results {
		domainJournals[i] = mapping.ToDomainJournal(m)
	}
	return domainJournals, nextTokenVal, nil
}

// UpdateJournal updates a journal's mutable header fields.
func (r *PgxJournalRepository) UpdateJournal(ctx context.Context, journal domain.Journal) error {
	m := mapping.ToModelJournal(journal)
	query := `
		UPDATE journals
		SET journal_date = $2, description = $3, total_amount = $4, transaction_count = $5, last_updated_at = $6
		WHERE journal_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.JournalID,
		m.JournalDate,
		m.Description,
		m.TotalAmount,
		m.TransactionCount,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal %s: %w", m.JournalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal %s: %w", m.JournalID, apperrors.ErrNotFound)
	}
	return nil
}

// ReplaceJournalLines updates a journal's header and swaps its full set of
// lines in one transaction. The old lines are kept as deleted rows so the
// journal's history survives the edit.
func (r *PgxJournalRepository) ReplaceJournalLines(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournal(journal)
	updateQuery := `
		UPDATE journals
		SET journal_date = $2, description = $3, total_amount = $4, transaction_count = $5, last_updated_at = $6
		WHERE journal_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		m.JournalID,
		m.JournalDate,
		m.Description,
		m.TotalAmount,
		m.TransactionCount,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal "+m.JournalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal %s: %w", m.JournalID, apperrors.ErrNotFound)
	}

	retireQuery := `
		UPDATE transactions
		SET is_deleted = TRUE, last_updated_at = $2
		WHERE journal_id = $1 AND is_deleted = FALSE;
	`
	if _, err := tx.Exec(ctx, retireQuery, m.JournalID, m.LastUpdatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to retire old lines for journal "+m.JournalID, err)
	}

	if err := insertTransactions(ctx, tx, transactions); err != nil {
		return apperrors.NewAppError(500, "failed to insert replacement lines for journal "+m.JournalID, err)
	}

	return r.Commit(ctx, tx)
}

// SoftDeleteJournal marks a journal deleted and retires all of its lines in
// one transaction, so the journal disappears from lists and balance replays
// as a single unit.
func (r *PgxJournalRepository) SoftDeleteJournal(ctx context.Context, journalID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	journalQuery := `
		UPDATE journals
		SET status = 'DELETED', last_updated_at = $2
		WHERE journal_id = $1 AND status != 'DELETED';
	`
	tag, err := tx.Exec(ctx, journalQuery, journalID, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal "+journalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal %s: %w", journalID, apperrors.ErrNotFound)
	}

	linesQuery := `
		UPDATE transactions
		SET is_deleted = TRUE, last_updated_at = $2
		WHERE journal_id = $1 AND is_deleted = FALSE;
	`
	if _, err := tx.Exec(ctx, linesQuery, journalID, now); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for journal "+journalID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionsByJournalID retrieves a journal's active lines in insertion order.
func (r *PgxJournalRepository) FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE journal_id = $1 AND is_deleted = FALSE
		ORDER BY created_at, transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// FindActiveTransactionsByAccountUpTo retrieves every active line touching the
// account dated on or before the cutoff. The ordering is part of the balance
// contract: replays over the same snapshot must fold in the same order.
func (r *PgxJournalRepository) FindActiveTransactionsByAccountUpTo(ctx context.Context, accountID string, cutoff time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1 AND is_deleted = FALSE AND transaction_date <= $2
		ORDER BY created_at, transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	modelTxns := make([]models.Transaction, 0)
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.JournalID,
			&m.AccountID,
			&m.Amount,
			&m.TransactionType,
			&m.ExchangeRate,
			&m.TransactionDate,
			&m.Notes,
			&m.IsDeleted,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactions(modelTxns), nil
}
