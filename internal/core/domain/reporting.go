package domain

import "time"

// AccountBalance is the result of replaying an account's transaction history
// up to a cutoff date. Balance is in the account's own currency; no exchange
// rates are applied during replay.
type AccountBalance struct {
	AccountID        string      `json:"accountID"`
	AccountName      string      `json:"accountName"`
	AccountType      AccountType `json:"accountType"`
	Balance          float64     `json:"balance"`
	CurrencyCode     string      `json:"currencyCode"`
	Precision        int         `json:"precision"`
	TransactionCount int         `json:"transactionCount"`
	AsOfDate         time.Time   `json:"asOfDate"`
}

// WealthSummary rolls per-account balances into net worth figures.
// Equity, Income and Expense balances are excluded; they feed period
// income/expense reporting instead.
type WealthSummary struct {
	TotalAssets      float64   `json:"totalAssets"`
	TotalLiabilities float64   `json:"totalLiabilities"`
	NetWorth         float64   `json:"netWorth"`
	AsOfDate         time.Time `json:"asOfDate"`
}

// IncomeExpenseSummary holds income and expense totals over a date window.
type IncomeExpenseSummary struct {
	TotalIncome  float64   `json:"totalIncome"`
	TotalExpense float64   `json:"totalExpense"`
	FromDate     time.Time `json:"fromDate"`
	ToDate       time.Time `json:"toDate"`
}
