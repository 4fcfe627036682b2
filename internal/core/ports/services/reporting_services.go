package services

import (
	"context"
	"time"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
)

// ReportingSvcFacade rolls account balances into summary figures.
type ReportingSvcFacade interface {
	// GetWealthSummary computes total assets, total liabilities and net worth
	// as of the given date. No currency conversion is performed here; the
	// caller is responsible for having normalized balances if needed.
	GetWealthSummary(ctx context.Context, asOf time.Time) (*domain.WealthSummary, error)

	// GetIncomeExpenseSummary totals Income-type and Expense-type account
	// activity over a date window.
	GetIncomeExpenseSummary(ctx context.Context, from, to time.Time) (*domain.IncomeExpenseSummary, error)
}
