package dto

import (
	"time"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	"github.com/quillbooks/pocket_ledger/internal/utils"
)

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID        string             `json:"accountID"`
	AccountName      string             `json:"accountName"`
	AccountType      domain.AccountType `json:"accountType"`
	Balance          float64            `json:"balance"`
	FormattedBalance string             `json:"formattedBalance"`
	CurrencyCode     string             `json:"currencyCode"`
	TransactionCount int                `json:"transactionCount"`
	AsOfDate         time.Time          `json:"asOfDate"`
}

// ToAccountBalanceResponse converts a domain.AccountBalance to its DTO.
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID:        b.AccountID,
		AccountName:      b.AccountName,
		AccountType:      b.AccountType,
		Balance:          b.Balance,
		FormattedBalance: utils.FormatWithPrecision(b.Balance, b.Precision),
		CurrencyCode:     b.CurrencyCode,
		TransactionCount: b.TransactionCount,
		AsOfDate:         b.AsOfDate,
	}
}

// ToAccountBalanceResponses converts a slice of domain.AccountBalance to DTOs.
func ToAccountBalanceResponses(balances []domain.AccountBalance) []AccountBalanceResponse {
	res := make([]AccountBalanceResponse, len(balances))
	for i := range balances {
		res[i] = ToAccountBalanceResponse(&balances[i])
	}
	return res
}

// WealthSummaryResponse defines the net worth summary returned to clients.
type WealthSummaryResponse struct {
	TotalAssets      float64   `json:"totalAssets"`
	TotalLiabilities float64   `json:"totalLiabilities"`
	NetWorth         float64   `json:"netWorth"`
	AsOfDate         time.Time `json:"asOfDate"`
}

// IncomeExpenseSummaryResponse defines income/expense totals over a window.
type IncomeExpenseSummaryResponse struct {
	TotalIncome  float64   `json:"totalIncome"`
	TotalExpense float64   `json:"totalExpense"`
	FromDate     time.Time `json:"fromDate"`
	ToDate       time.Time `json:"toDate"`
}

// ToWealthSummaryResponse converts a domain.WealthSummary to its DTO.
func ToWealthSummaryResponse(s *domain.WealthSummary) WealthSummaryResponse {
	return WealthSummaryResponse{
		TotalAssets:      s.TotalAssets,
		TotalLiabilities: s.TotalLiabilities,
		NetWorth:         s.NetWorth,
		AsOfDate:         s.AsOfDate,
	}
}

// ToIncomeExpenseSummaryResponse converts a domain.IncomeExpenseSummary to its DTO.
func ToIncomeExpenseSummaryResponse(s *domain.IncomeExpenseSummary) IncomeExpenseSummaryResponse {
	return IncomeExpenseSummaryResponse{
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		FromDate:     s.FromDate,
		ToDate:       s.ToDate,
	}
}
