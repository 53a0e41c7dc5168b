package ingest

import (
	"context"

	"github.com/evozago/fluxo-e-dre-sub001/internal/entity"
)

// Upload is one document payload submitted in a batch. ReadErr carries an
// upstream read/decode failure so the orchestrator can count it against the
// file instead of rejecting the whole batch.
type Upload struct {
	Filename string
	Content  []byte
	ReadErr  error
}

// BatchError is one per-file failure surfaced to the caller.
type BatchError struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// BatchResult is the aggregate outcome of one orchestrator invocation.
// Success is true when at least one document was fully processed.
type BatchResult struct {
	Success        bool         `json:"success"`
	ProcessedCount uint32       `json:"processed_count"`
	ErrorCount     uint32       `json:"error_count"`
	Errors         []BatchError `json:"errors"`
	DocumentIDs    []string     `json:"document_ids"`
}

// ErrorKind tags the failure class of a single document.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindMalformed
	KindStore
	KindUnexpected
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindStore:
		return "store"
	case KindUnexpected:
		return "unexpected"
	}
	return "none"
}

// DocumentStore is the persistence gateway for fiscal documents.
type DocumentStore interface {
	Create(ctx context.Context, doc *entity.FiscalDocument) (*entity.FiscalDocument, error)
	ExistsByAccessKey(ctx context.Context, accessKey string) (bool, error)
}

// InstallmentStore is the persistence gateway for payable installments.
type InstallmentStore interface {
	Create(ctx context.Context, in *entity.Installment) (*entity.Installment, error)
}
