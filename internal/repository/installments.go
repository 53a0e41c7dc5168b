package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evozago/fluxo-e-dre-sub001/constants"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent"
	entinst "github.com/evozago/fluxo-e-dre-sub001/gen/ent/installment"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/predicate"
	"github.com/evozago/fluxo-e-dre-sub001/internal/entity"
	"github.com/evozago/fluxo-e-dre-sub001/internal/utils"
)

// ListInstallmentsFilter narrows installment listings. Status accepts the
// derived OVERDUE value, which is translated into OPEN + past-due predicates.
type ListInstallmentsFilter struct {
	Status   constants.InstallmentStatus
	Supplier string
	DueFrom  *time.Time
	DueTo    *time.Time
}

// StatusSummary is one dashboard card: count and amount total per status.
type StatusSummary struct {
	Status      constants.InstallmentStatus
	Count       int
	TotalAmount float64
}

type InstallmentRepository interface {
	Create(ctx context.Context, in *entity.Installment) (*entity.Installment, error)
	List(ctx context.Context, filter ListInstallmentsFilter, today time.Time) ([]*entity.Installment, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.Installment, error)
	MarkPaid(ctx context.Context, ids []uuid.UUID, paidAt time.Time) (int, error)
	Summary(ctx context.Context, today time.Time) ([]StatusSummary, error)
}

type installmentRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInstallmentRepository(client *ent.Client, logger *slog.Logger) InstallmentRepository {
	return &installmentRepo{
		client: client,
		logger: logger,
	}
}

func (r *installmentRepo) Create(ctx context.Context, in *entity.Installment) (*entity.Installment, error) {
	row, err := r.client.Installment.Create().
		SetDocumentID(in.DocumentID).
		SetDescription(in.Description).
		SetSupplierName(in.SupplierName).
		SetAmount(in.Amount).
		SetDueDate(in.DueDate).
		SetStatus(in.Status).
		SetCategory(in.Category).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create installment", "document_id", in.DocumentID, "error", err)
		return nil, &StoreError{Op: "insert installments", Err: err}
	}
	return utils.ToInstallment(row), nil
}

func (r *installmentRepo) List(ctx context.Context, filter ListInstallmentsFilter, today time.Time) ([]*entity.Installment, error) {
	q := r.client.Installment.Query()
	day := utils.Midnight(today)

	switch filter.Status {
	case constants.StatusOpen:
		q = q.Where(entinst.StatusEQ(string(constants.StatusOpen)), entinst.DueDateGTE(day))
	case constants.StatusOverdue:
		q = q.Where(entinst.StatusEQ(string(constants.StatusOpen)), entinst.DueDateLT(day))
	case constants.StatusPaid:
		q = q.Where(entinst.StatusEQ(string(constants.StatusPaid)))
	}

	if filter.Supplier != "" {
		q = q.Where(entinst.SupplierNameContainsFold(filter.Supplier))
	}
	if filter.DueFrom != nil {
		q = q.Where(entinst.DueDateGTE(*filter.DueFrom))
	}
	if filter.DueTo != nil {
		q = q.Where(entinst.DueDateLTE(*filter.DueTo))
	}

	rows, err := q.Order(entinst.ByDueDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list installments", "error", err)
		return nil, &StoreError{Op: "select installments", Err: err}
	}

	result := make([]*entity.Installment, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInstallment(row)
	}
	return result, nil
}

func (r *installmentRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.Installment, error) {
	rows, err := r.client.Installment.Query().
		Where(entinst.DocumentID(documentID)).
		Order(entinst.ByDueDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list installments for document", "document_id", documentID, "error", err)
		return nil, &StoreError{Op: "select installments", Err: err}
	}
	result := make([]*entity.Installment, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInstallment(row)
	}
	return result, nil
}

// MarkPaid transitions OPEN installments to PAID. Already-paid ids are left
// untouched; the returned count covers rows actually updated.
func (r *installmentRepo) MarkPaid(ctx context.Context, ids []uuid.UUID, paidAt time.Time) (int, error) {
	n, err := r.client.Installment.Update().
		Where(
			entinst.IDIn(ids...),
			entinst.StatusEQ(string(constants.StatusOpen)),
		).
		SetStatus(string(constants.StatusPaid)).
		SetPaidAt(paidAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark installments paid", "ids", len(ids), "error", err)
		return 0, &StoreError{Op: "update installments", Err: err}
	}
	return n, nil
}

// Summary aggregates count and amount per effective status (OPEN, OVERDUE,
// PAID) for the dashboard cards.
func (r *installmentRepo) Summary(ctx context.Context, today time.Time) ([]StatusSummary, error) {
	day := utils.Midnight(today)

	buckets := []struct {
		status constants.InstallmentStatus
		preds  []predicate.Installment
	}{
		{constants.StatusOpen, []predicate.Installment{entinst.StatusEQ(string(constants.StatusOpen)), entinst.DueDateGTE(day)}},
		{constants.StatusOverdue, []predicate.Installment{entinst.StatusEQ(string(constants.StatusOpen)), entinst.DueDateLT(day)}},
		{constants.StatusPaid, []predicate.Installment{entinst.StatusEQ(string(constants.StatusPaid))}},
	}

	out := make([]StatusSummary, 0, len(buckets))
	for _, b := range buckets {
		var rows []struct {
			Count int      `json:"count"`
			Total *float64 `json:"total"`
		}
		err := r.client.Installment.Query().
			Where(b.preds...).
			Aggregate(ent.Count(), ent.As(ent.Sum(entinst.FieldAmount), "total")).
			Scan(ctx, &rows)
		if err != nil {
			r.logger.Error("failed to aggregate installments", "status", b.status, "error", err)
			return nil, &StoreError{Op: "select installments", Err: err}
		}
		s := StatusSummary{Status: b.status}
		if len(rows) > 0 {
			s.Count = rows[0].Count
			if rows[0].Total != nil {
				s.TotalAmount = *rows[0].Total
			}
		}
		out = append(out, s)
	}
	return out, nil
}
