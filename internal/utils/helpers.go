package utils

import (
	"fmt"
	"time"

	"github.com/evozago/fluxo-e-dre-sub001/gen/ent"
	payablespb "github.com/evozago/fluxo-e-dre-sub001/gen/proto/payables/v1"
	"github.com/evozago/fluxo-e-dre-sub001/internal/entity"
)

// ParseYMD parses a YYYY-MM-DD string to midnight UTC to match DATE semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Midnight truncates t to date precision in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ToFiscalDocument(e *ent.FiscalDocument) *entity.FiscalDocument {
	issueDate := ""
	if e.IssueDate != nil {
		issueDate = e.IssueDate.Format("2006-01-02")
	}
	return &entity.FiscalDocument{
		ID:             e.ID,
		AccessKey:      e.AccessKey,
		Number:         e.Number,
		Series:         e.Series,
		IssueDate:      issueDate,
		IssuerTaxID:    e.IssuerTaxID,
		IssuerName:     e.IssuerName,
		RecipientTaxID: e.RecipientTaxID,
		RecipientName:  e.RecipientName,
		TotalAmount:    e.TotalAmount,
		ICMSAmount:     e.IcmsAmount,
		PISAmount:      e.PisAmount,
		COFINSAmount:   e.CofinsAmount,
		RawContent:     e.RawContent,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToInstallment(e *ent.Installment) *entity.Installment {
	return &entity.Installment{
		ID:           e.ID,
		DocumentID:   e.DocumentID,
		Description:  e.Description,
		SupplierName: e.SupplierName,
		Amount:       e.Amount,
		DueDate:      e.DueDate,
		Status:       e.Status,
		Category:     e.Category,
		PaidAt:       e.PaidAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToPBDocument(d *entity.FiscalDocument) *payablespb.FiscalDocument {
	return &payablespb.FiscalDocument{
		Id:             d.ID.String(),
		AccessKey:      d.AccessKey,
		Number:         d.Number,
		Series:         d.Series,
		IssueDate:      d.IssueDate,
		IssuerTaxId:    d.IssuerTaxID,
		IssuerName:     d.IssuerName,
		RecipientTaxId: d.RecipientTaxID,
		RecipientName:  d.RecipientName,
		TotalAmount:    fmt.Sprintf("%.2f", d.TotalAmount),
		IcmsAmount:     fmt.Sprintf("%.2f", d.ICMSAmount),
		PisAmount:      fmt.Sprintf("%.2f", d.PISAmount),
		CofinsAmount:   fmt.Sprintf("%.2f", d.COFINSAmount),
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToPBInstallment converts an installment, resolving the derived status
// against today's date.
func ToPBInstallment(in *entity.Installment, status string) *payablespb.Installment {
	paidAt := ""
	if in.PaidAt != nil {
		paidAt = in.PaidAt.UTC().Format(time.RFC3339)
	}
	return &payablespb.Installment{
		Id:           in.ID.String(),
		DocumentId:   in.DocumentID.String(),
		Description:  in.Description,
		SupplierName: in.SupplierName,
		Amount:       fmt.Sprintf("%.2f", in.Amount),
		DueDate:      in.DueDate.Format("2006-01-02"),
		Status:       status,
		Category:     in.Category,
		PaidAt:       paidAt,
		CreatedAt:    in.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    in.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
