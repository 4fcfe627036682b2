package dto

import (
	"time"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
)

// CreateTransactionRequest defines one leg of a journal to be created.
// Amount is in the account's own currency; ExchangeRate converts it into the
// journal currency (nil means same currency, rate 1).
type CreateTransactionRequest struct {
	AccountID       string                 `json:"accountID" binding:"required"`
	Amount          float64                `json:"amount" binding:"required,gt=0"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=DEBIT CREDIT"`
	ExchangeRate    *float64               `json:"exchangeRate" binding:"omitempty,gt=0"`
	TransactionDate *time.Time             `json:"transactionDate"` // Defaults to the journal date
	Notes           string                 `json:"notes"`
}

// CreateJournalRequest defines the data needed to create a journal with its lines.
type CreateJournalRequest struct {
	Date         time.Time                  `json:"date" binding:"required"`
	Description  string                     `json:"description" binding:"required"`
	CurrencyCode string                     `json:"currencyCode" binding:"required,currencycode"`
	Transactions []CreateTransactionRequest `json:"transactions" binding:"required,min=2,dive"`
}

// UpdateJournalRequest defines the data allowed for updating a journal.
// Pointers distinguish fields not provided from zero-value updates. When
// Transactions is non-nil the journal's lines are fully replaced and the
// whole set re-validated.
type UpdateJournalRequest struct {
	Date         *time.Time                  `json:"date"`
	Description  *string                     `json:"description"`
	Transactions *[]CreateTransactionRequest `json:"transactions"`
}

// PreviewLineRequest is one candidate line for a validation preview. No
// binding constraints apply: the UI calls this while the user is still
// typing, and every problem is reported in the result instead of rejected
// at the HTTP layer.
type PreviewLineRequest struct {
	Amount          float64                `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	ExchangeRate    *float64               `json:"exchangeRate"`
}

// ValidateJournalRequest wraps candidate lines for a validation preview.
type ValidateJournalRequest struct {
	Lines []PreviewLineRequest `json:"lines"`
}

// JournalValidationResponse reports the totals and every violated rule of a
// candidate journal.
type JournalValidationResponse struct {
	IsValid      bool     `json:"isValid"`
	Errors       []string `json:"errors"`
	TotalDebits  float64  `json:"totalDebits"`
	TotalCredits float64  `json:"totalCredits"`
	Imbalance    float64  `json:"imbalance"`
}

// TransactionResponse defines the data returned for a transaction line.
type TransactionResponse struct {
	TransactionID   string    `json:"transactionID"`
	AccountID       string    `json:"accountID"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"transactionType"`
	ExchangeRate    *float64  `json:"exchangeRate,omitempty"`
	TransactionDate time.Time `json:"transactionDate"`
	Notes           string    `json:"notes,omitempty"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID        string                    `json:"journalID"`
	Date             time.Time                 `json:"date"`
	Description      string                    `json:"description"`
	CurrencyCode     string                    `json:"currencyCode"`
	Status           domain.JournalStatus      `json:"status"`
	TotalAmount      float64                   `json:"totalAmount"`
	TransactionCount int                       `json:"transactionCount"`
	DisplayType      domain.JournalDisplayType `json:"displayType,omitempty"`
	SemanticType     string                    `json:"semanticType,omitempty"`
	Transactions     []TransactionResponse     `json:"transactions,omitempty"`
	CreatedAt        time.Time                 `json:"createdAt"`
}

// ListJournalsParams defines query parameters for listing journals.
type ListJournalsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListJournalsResponse wraps a page of journals plus the token for the next page.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		Amount:          txn.Amount,
		TransactionType: string(txn.TransactionType),
		ExchangeRate:    txn.ExchangeRate,
		TransactionDate: txn.TransactionDate,
		Notes:           txn.Notes,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:        j.JournalID,
		Date:             j.JournalDate,
		Description:      j.Description,
		CurrencyCode:     j.CurrencyCode,
		Status:           j.Status,
		TotalAmount:      j.TotalAmount,
		TransactionCount: j.TransactionCount,
		DisplayType:      j.DisplayType,
		SemanticType:     j.SemanticType,
		CreatedAt:        j.CreatedAt,
	}
	if len(j.Transactions) > 0 {
		resp.Transactions = ToTransactionResponses(j.Transactions)
	}
	return resp
}
