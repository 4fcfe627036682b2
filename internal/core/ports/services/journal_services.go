package services

import (
	"context"

	"github.com/quillbooks/pocket_ledger/internal/core/domain"
	"github.com/quillbooks/pocket_ledger/internal/dto"
)

// JournalReaderSvc defines read operations on journals
type JournalReaderSvc interface {
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
}

// JournalWriterSvc defines write operations on journals
type JournalWriterSvc interface {
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.Journal, error)
	UpdateJournal(ctx context.Context, journalID string, req dto.UpdateJournalRequest) (*domain.Journal, error)
	// DeleteJournal soft-deletes a journal and its lines as one unit.
	DeleteJournal(ctx context.Context, journalID string) error
}

// JournalPreviewSvc validates candidate lines without persisting anything.
// It never fails: all problems come back in the response body.
type JournalPreviewSvc interface {
	ValidateJournalLines(req dto.ValidateJournalRequest) dto.JournalValidationResponse
}

// JournalSvcFacade combines all journal service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalPreviewSvc
}
