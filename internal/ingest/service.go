package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/evozago/fluxo-e-dre-sub001/internal/nfe"
	"github.com/evozago/fluxo-e-dre-sub001/internal/payables"
)

// Config holds orchestrator options.
type Config struct {
	// EnforceUniqueAccessKey rejects documents whose access key already
	// exists. Off by default: resubmitting a payload creates a second
	// document, matching current product behavior.
	EnforceUniqueAccessKey bool
	// MaxParallel caps concurrent per-document pipelines. <=1 processes
	// sequentially in input order.
	MaxParallel int
}

// Service is the batch orchestrator: it runs each uploaded document through
// extract -> normalize -> persist document -> derive -> persist installment,
// containing every failure at the document boundary.
type Service struct {
	docs         DocumentStore
	installments InstallmentStore
	deriver      *payables.Deriver
	cfg          Config
	logger       *slog.Logger
}

func NewService(docs DocumentStore, installments InstallmentStore, deriver *payables.Deriver, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		docs:         docs,
		installments: installments,
		deriver:      deriver,
		cfg:          cfg,
		logger:       logger,
	}
}

// ProcessBatch processes uploads and returns the aggregate result. A batch
// always runs to completion; per-document errors are counted and listed but
// never abort the remaining documents. The batch reports failure only when
// zero documents succeed.
func (s *Service) ProcessBatch(ctx context.Context, uploads []Upload) *BatchResult {
	res := &BatchResult{}
	var mu sync.Mutex

	limit := s.cfg.MaxParallel
	if limit < 1 {
		limit = 1
	}
	g := new(errgroup.Group)
	g.SetLimit(limit)

	for _, up := range uploads {
		g.Go(func() error {
			docID, kind, err := s.processOne(ctx, up)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.ErrorCount++
				res.Errors = append(res.Errors, BatchError{Source: up.Filename, Message: err.Error()})
				s.logger.Error("ingest.document.failed", "file", up.Filename, "kind", kind.String(), "err", err)
				// A store failure on the installment leaves the document
				// persisted; still expose its id to the caller.
				if docID != "" {
					res.DocumentIDs = append(res.DocumentIDs, docID)
				}
				return nil
			}
			res.ProcessedCount++
			res.DocumentIDs = append(res.DocumentIDs, docID)
			s.logger.Info("ingest.document.ok", "file", up.Filename, "document_id", docID)
			return nil
		})
	}
	_ = g.Wait()

	res.Success = res.ProcessedCount > 0
	s.logger.Info("ingest.batch.done",
		"submitted", len(uploads),
		"processed", res.ProcessedCount,
		"failed", res.ErrorCount,
		"success", res.Success,
	)
	return res
}

// processOne runs the per-document pipeline. It returns the created document
// id (possibly set even on error, when the installment insert failed after the
// document insert succeeded) and a tagged error kind.
func (s *Service) processOne(ctx context.Context, up Upload) (docID string, kind ErrorKind, err error) {
	defer func() {
		if r := recover(); r != nil {
			kind = KindUnexpected
			err = fmt.Errorf("unexpected: %v", r)
		}
	}()

	if up.ReadErr != nil {
		return "", KindUnexpected, fmt.Errorf("read %s: %w", up.Filename, up.ReadErr)
	}

	raw, err := nfe.Extract(up.Content)
	if err != nil {
		return "", KindMalformed, err
	}
	doc := nfe.Normalize(raw, up.Content)

	if s.cfg.EnforceUniqueAccessKey && doc.AccessKey != "" {
		exists, err := s.docs.ExistsByAccessKey(ctx, doc.AccessKey)
		if err != nil {
			return "", KindStore, fmt.Errorf("access key lookup: %w", err)
		}
		if exists {
			return "", KindStore, fmt.Errorf("document with access key %s already exists", doc.AccessKey)
		}
	}

	created, err := s.docs.Create(ctx, doc)
	if err != nil {
		return "", KindStore, fmt.Errorf("persist document: %w", err)
	}

	inst := s.deriver.Derive(doc, created.ID)
	if _, err := s.installments.Create(ctx, inst); err != nil {
		// No compensating delete: the document row stays.
		return created.ID.String(), KindStore, fmt.Errorf("persist installment: %w", err)
	}

	return created.ID.String(), KindNone, nil
}
