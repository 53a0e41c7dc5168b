package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evozago/fluxo-e-dre-sub001/gen/ent"
	entdoc "github.com/evozago/fluxo-e-dre-sub001/gen/ent/fiscaldocument"
	"github.com/evozago/fluxo-e-dre-sub001/internal/entity"
	"github.com/evozago/fluxo-e-dre-sub001/internal/utils"
)

// StoreError wraps a persistence failure so callers can tell gateway errors
// apart from domain errors.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

// ListDocumentsFilter narrows document listings.
type ListDocumentsFilter struct {
	Issuer   string
	FromDate *time.Time
	ToDate   *time.Time
}

type FiscalDocumentRepository interface {
	Create(ctx context.Context, doc *entity.FiscalDocument) (*entity.FiscalDocument, error)
	ExistsByAccessKey(ctx context.Context, accessKey string) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FiscalDocument, error)
	List(ctx context.Context, filter ListDocumentsFilter) ([]*entity.FiscalDocument, error)
}

type fiscalDocumentRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFiscalDocumentRepository(client *ent.Client, logger *slog.Logger) FiscalDocumentRepository {
	return &fiscalDocumentRepo{
		client: client,
		logger: logger,
	}
}

func (r *fiscalDocumentRepo) Create(ctx context.Context, doc *entity.FiscalDocument) (*entity.FiscalDocument, error) {
	builder := r.client.FiscalDocument.Create().
		SetAccessKey(doc.AccessKey).
		SetNumber(doc.Number).
		SetSeries(doc.Series).
		SetIssuerTaxID(doc.IssuerTaxID).
		SetIssuerName(doc.IssuerName).
		SetRecipientTaxID(doc.RecipientTaxID).
		SetRecipientName(doc.RecipientName).
		SetTotalAmount(doc.TotalAmount).
		SetIcmsAmount(doc.ICMSAmount).
		SetPisAmount(doc.PISAmount).
		SetCofinsAmount(doc.COFINSAmount).
		SetRawContent(doc.RawContent)

	// empty issue dates stay NULL; consumers handle the absence
	if doc.IssueDate != "" {
		d, err := utils.ParseYMD(doc.IssueDate)
		if err == nil {
			builder = builder.SetIssueDate(d)
		}
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create fiscal document", "access_key", doc.AccessKey, "error", err)
		return nil, &StoreError{Op: "insert fiscal_documents", Err: err}
	}
	return utils.ToFiscalDocument(row), nil
}

func (r *fiscalDocumentRepo) ExistsByAccessKey(ctx context.Context, accessKey string) (bool, error) {
	exists, err := r.client.FiscalDocument.Query().
		Where(entdoc.AccessKey(accessKey)).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check access key", "access_key", accessKey, "error", err)
		return false, &StoreError{Op: "select fiscal_documents", Err: err}
	}
	return exists, nil
}

func (r *fiscalDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.FiscalDocument, error) {
	row, err := r.client.FiscalDocument.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get fiscal document", "id", id, "error", err)
		return nil, &StoreError{Op: "select fiscal_documents", Err: err}
	}
	return utils.ToFiscalDocument(row), nil
}

func (r *fiscalDocumentRepo) List(ctx context.Context, filter ListDocumentsFilter) ([]*entity.FiscalDocument, error) {
	q := r.client.FiscalDocument.Query()
	if filter.Issuer != "" {
		q = q.Where(entdoc.IssuerNameContainsFold(filter.Issuer))
	}
	if filter.FromDate != nil {
		q = q.Where(entdoc.IssueDateGTE(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where(entdoc.IssueDateLTE(*filter.ToDate))
	}
	rows, err := q.Order(entdoc.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list fiscal documents", "error", err)
		return nil, &StoreError{Op: "select fiscal_documents", Err: err}
	}

	result := make([]*entity.FiscalDocument, len(rows))
	for i, row := range rows {
		result[i] = utils.ToFiscalDocument(row)
	}
	return result, nil
}
