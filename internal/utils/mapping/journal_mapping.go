package mapping

import (
	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	"github.com/quillbooks/pocket_ledger/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal. Derived
// display and semantic types are not persisted.
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:        d.JournalID,
		JournalDate:      d.JournalDate,
		Description:      d.Description,
		CurrencyCode:     d.CurrencyCode,
		Status:           models.JournalStatus(d.Status),
		TotalAmount:      d.TotalAmount,
		TransactionCount: d.TransactionCount,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:        m.JournalID,
		JournalDate:      m.JournalDate,
		Description:      m.Description,
		CurrencyCode:     m.CurrencyCode,
		Status:           domain.JournalStatus(m.Status),
		TotalAmount:      m.TotalAmount,
		TransactionCount: m.TransactionCount,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		JournalID:       d.JournalID,
		AccountID:       d.AccountID,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.TransactionType),
		ExchangeRate:    d.ExchangeRate,
		TransactionDate: d.TransactionDate,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		JournalID:       m.JournalID,
		AccountID:       m.AccountID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		ExchangeRate:    m.ExchangeRate,
		TransactionDate: m.TransactionDate,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactions converts a slice of model Transactions to domain Transactions
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
