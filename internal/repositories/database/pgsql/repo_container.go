package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/quillbooks/pocket_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		JournalRepo:      newPgxJournalRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
	}
}
