package repositories

import (
	"context"
	"time"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a specific journal by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals retrieves a paginated list of journals using token-based
	// pagination. It returns the journals, a token for the next page, and an error.
	ListJournals(ctx context.Context, limit int, nextToken *string) ([]domain.Journal, *string, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournal persists a journal and its transactions atomically.
	SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error

	// UpdateJournal updates a journal's description, date and denormalized totals.
	UpdateJournal(ctx context.Context, journal domain.Journal) error

	// ReplaceJournalLines atomically updates a journal together with a full
	// replacement of its transaction lines.
	ReplaceJournalLines(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error

	// SoftDeleteJournal marks a journal and all of its lines deleted as one unit.
	SoftDeleteJournal(ctx context.Context, journalID string, now time.Time) error
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionsByJournalID retrieves all active transactions belonging to a journal.
	FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error)

	// FindActiveTransactionsByAccountUpTo retrieves every active transaction for
	// the account dated on or before the cutoff, in stable insertion order.
	// Balance replay depends on that order being deterministic.
	FindActiveTransactionsByAccountUpTo(ctx context.Context, accountID string, cutoff time.Time) ([]domain.Transaction, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	TransactionReader
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
