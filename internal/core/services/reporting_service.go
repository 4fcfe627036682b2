package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
	"github.com/quillbooks/pocket_ledger/internal/middleware"
	"github.com/quillbooks/pocket_ledger/internal/utils/moneymath"
)

// reportingPrecision is the precision used for summary totals, matching the
// journal-level reporting precision.
const reportingPrecision = 2

// reportingService rolls per-account balances into summary figures.
type reportingService struct {
	balanceSvc portssvc.BalanceSvcFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(balanceSvc portssvc.BalanceSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{balanceSvc: balanceSvc}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// SummarizeWealth reduces account balances to net worth figures. It performs
// no currency conversion: callers must have normalized balances into one
// target currency first. Equity, Income and Expense balances are excluded;
// they feed period income/expense reporting instead.
func SummarizeWealth(balances []domain.AccountBalance, asOf time.Time) domain.WealthSummary {
	totalAssets := 0.0
	totalLiabilities := 0.0

	for _, b := range balances {
		switch b.AccountType {
		case domain.Asset:
			totalAssets = moneymath.SafeAdd(totalAssets, b.Balance, reportingPrecision)
		case domain.Liability:
			totalLiabilities = moneymath.SafeAdd(totalLiabilities, b.Balance, reportingPrecision)
		}
	}

	return domain.WealthSummary{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         moneymath.SafeSubtract(totalAssets, totalLiabilities, reportingPrecision),
		AsOfDate:         asOf,
	}
}

// GetWealthSummary computes net worth over every active account as of the
// given date.
func (s *reportingService) GetWealthSummary(ctx context.Context, asOf time.Time) (*domain.WealthSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	balances, err := s.balanceSvc.GetAccountBalances(ctx, asOf)
	if err != nil {
		logger.Error("Failed to fetch balances for wealth summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute wealth summary: %w", err)
	}

	summary := SummarizeWealth(balances, asOf)
	return &summary, nil
}

// GetIncomeExpenseSummary totals Income-type and Expense-type account activity
// within [from, to]. It reuses the date-bounded replay: the windowed activity
// of an account is its balance at the end of the window minus its balance
// just before the window opened.
func (s *reportingService) GetIncomeExpenseSummary(ctx context.Context, from, to time.Time) (*domain.IncomeExpenseSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	endBalances, err := s.balanceSvc.GetAccountBalances(ctx, to)
	if err != nil {
		logger.Error("Failed to fetch end-of-window balances", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute income/expense summary: %w", err)
	}

	startBalances, err := s.balanceSvc.GetAccountBalances(ctx, from.Add(-time.Nanosecond))
	if err != nil {
		logger.Error("Failed to fetch start-of-window balances", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute income/expense summary: %w", err)
	}

	startByID := make(map[string]float64, len(startBalances))
	for _, b := range startBalances {
		startByID[b.AccountID] = b.Balance
	}

	summary := domain.IncomeExpenseSummary{FromDate: from, ToDate: to}
	for _, b := range endBalances {
		activity := moneymath.SafeSubtract(b.Balance, startByID[b.AccountID], reportingPrecision)
		switch b.AccountType {
		case domain.Income:
			summary.TotalIncome = moneymath.SafeAdd(summary.TotalIncome, activity, reportingPrecision)
		case domain.Expense:
			summary.TotalExpense = moneymath.SafeAdd(summary.TotalExpense, activity, reportingPrecision)
		}
	}

	return &summary, nil
}
