package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quillbooks/pocket_ledger/internal/apperrors"
	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	portsrepo "github.com/quillbooks/pocket_ledger/internal/core/ports/repositories"
	"github.com/quillbooks/pocket_ledger/internal/models"
	"github.com/quillbooks/pocket_ledger/internal/utils/mapping"
)

const exchangeRateColumns = `exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective, created_at, last_updated_at`

type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for exchange rate data.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a new stored rate.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (` + exchangeRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExchangeRateID,
		m.FromCurrencyCode,
		m.ToCurrencyCode,
		m.Rate,
		m.DateEffective,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: rate for %s/%s at %s already exists",
				apperrors.ErrDuplicate, m.FromCurrencyCode, m.ToCurrencyCode, m.DateEffective.Format(time.DateOnly))
		}
		return fmt.Errorf("failed to save exchange rate %s: %w", m.ExchangeRateID, err)
	}
	return nil
}

func scanExchangeRate(row pgx.Row) (*models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID,
		&m.FromCurrencyCode,
		&m.ToCurrencyCode,
		&m.Rate,
		&m.DateEffective,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindLatestRate retrieves the most recent rate for a pair effective on or
// before the given date.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context, fromCode, toCode string, onOrBefore time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2 AND date_effective <= $3
		ORDER BY date_effective DESC, created_at DESC
		LIMIT 1;
	`
	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, fromCode, toCode, onOrBefore))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("rate %s/%s: %w", fromCode, toCode, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find rate %s/%s: %w", fromCode, toCode, err)
	}

	rate := mapping.ToDomainExchangeRate(*m)
	return &rate, nil
}

// ListRates retrieves every stored rate for a pair, newest first.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context, fromCode, toCode string) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
		ORDER BY date_effective DESC;
	`
	rows, err := r.Pool.Query(ctx, query, fromCode, toCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates %s/%s: %w", fromCode, toCode, err)
	}
	defer rows.Close()

	rates := make([]domain.ExchangeRate, 0)
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate row: %w", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange rate rows: %w", err)
	}
	return rates, nil
}
