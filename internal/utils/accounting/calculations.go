// Package accounting holds the pure double-entry primitives shared by the
// journal and balance services: signed balance impact, debit/credit totals,
// imbalance checks, candidate-journal validation and semantic classification.
package accounting

import (
	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	"github.com/quillbooks/pocket_ledger/internal/utils/moneymath"
)

// imbalancePrecision is the reporting precision for journal imbalances,
// independent of any account currency's own precision.
const imbalancePrecision = 2

// imbalanceTolerance is the absolute threshold under which a journal is
// considered balanced. The same 0.01 applies regardless of currency
// precision; zero-decimal currencies inherit it unchanged.
const imbalanceTolerance = 0.01

// JournalLine is one proposed leg of a candidate journal. It is purely
// numeric: no account reference is needed to total or balance a journal.
type JournalLine struct {
	Amount          float64
	TransactionType domain.TransactionType
	ExchangeRate    *float64 // amount's currency -> journal currency; nil means 1
}

func (l JournalLine) convertedAmount() float64 {
	if l.ExchangeRate == nil {
		return l.Amount
	}
	return l.Amount * *l.ExchangeRate
}

// LineFromTransaction projects a domain transaction onto a calculator line.
func LineFromTransaction(txn domain.Transaction) JournalLine {
	return JournalLine{
		Amount:          txn.Amount,
		TransactionType: txn.TransactionType,
		ExchangeRate:    txn.ExchangeRate,
	}
}

// LinesFromTransactions projects a slice of domain transactions onto
// calculator lines.
func LinesFromTransactions(txns []domain.Transaction) []JournalLine {
	lines := make([]JournalLine, len(txns))
	for i, txn := range txns {
		lines[i] = LineFromTransaction(txn)
	}
	return lines
}

// CalculateTotalDebits sums amount x rate over the debit lines.
func CalculateTotalDebits(lines []JournalLine) float64 {
	total := 0.0
	for _, line := range lines {
		if line.TransactionType == domain.Debit {
			total += line.convertedAmount()
		}
	}
	return total
}

// CalculateTotalCredits sums amount x rate over the credit lines.
func CalculateTotalCredits(lines []JournalLine) float64 {
	total := 0.0
	for _, line := range lines {
		if line.TransactionType == domain.Credit {
			total += line.convertedAmount()
		}
	}
	return total
}

// CalculateImbalance returns total debits minus total credits, rounded to two
// decimals for reporting. A balanced journal yields 0.
func CalculateImbalance(lines []JournalLine) float64 {
	return moneymath.RoundToPrecision(CalculateTotalDebits(lines)-CalculateTotalCredits(lines), imbalancePrecision)
}

// IsBalanced reports whether the lines balance within the fixed tolerance.
func IsBalanced(lines []JournalLine) bool {
	imbalance := CalculateImbalance(lines)
	if imbalance < 0 {
		imbalance = -imbalance
	}
	return imbalance < imbalanceTolerance
}

// CalculateJournalAmount computes the denormalized economic value of a
// journal: the sum of the debit side in journal currency. It is cached on the
// journal for list rendering and recomputed on every mutation.
func CalculateJournalAmount(lines []JournalLine) float64 {
	return moneymath.RoundToPrecision(CalculateTotalDebits(lines), imbalancePrecision)
}
