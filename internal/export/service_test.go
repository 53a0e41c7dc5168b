package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/evozago/fluxo-e-dre-sub001/internal/entity"
	"github.com/evozago/fluxo-e-dre-sub001/internal/repository"
)

type fakeInstallments struct {
	rows   []*entity.Installment
	filter repository.ListInstallmentsFilter
}

func (f *fakeInstallments) Create(context.Context, *entity.Installment) (*entity.Installment, error) {
	return nil, nil
}

func (f *fakeInstallments) List(_ context.Context, filter repository.ListInstallmentsFilter, _ time.Time) ([]*entity.Installment, error) {
	f.filter = filter
	return f.rows, nil
}

func (f *fakeInstallments) ListByDocument(context.Context, uuid.UUID) ([]*entity.Installment, error) {
	return nil, nil
}

func (f *fakeInstallments) MarkPaid(context.Context, []uuid.UUID, time.Time) (int, error) {
	return 0, nil
}

func (f *fakeInstallments) Summary(context.Context, time.Time) ([]repository.StatusSummary, error) {
	return nil, nil
}

func TestInstallmentsXLSX(t *testing.T) {
	paidAt := time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)
	repo := &fakeInstallments{rows: []*entity.Installment{
		{
			Description:  "NFe 46 - ACME Industria Ltda",
			SupplierName: "ACME Industria Ltda",
			DueDate:      time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			Amount:       150.75,
			Status:       "OPEN",
			Category:     "NFe",
		},
		{
			Description:  "NFe 47 - Beta Comercio SA",
			SupplierName: "Beta Comercio SA",
			DueDate:      time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			Amount:       9.9,
			Status:       "OPEN",
			Category:     "NFe",
		},
		{
			Description:  "NFe 48 - Gama Servicos ME",
			SupplierName: "Gama Servicos ME",
			DueDate:      time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			Amount:       42,
			Status:       "PAID",
			Category:     "NFe",
			PaidAt:       &paidAt,
		},
	}}

	now := func() time.Time {
		return time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)
	}
	svc := NewService(repo, now, slog.New(slog.NewTextHandler(io.Discard, nil)))

	data, err := svc.InstallmentsXLSX(context.Background(), repository.ListInstallmentsFilter{Supplier: "a"})
	if err != nil {
		t.Fatal(err)
	}
	if repo.filter.Supplier != "a" {
		t.Errorf("filter not forwarded: %+v", repo.filter)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated workbook does not open: %v", err)
	}
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue("Payables", ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", ref, err)
		}
		return v
	}

	if got := cell("A1"); got != "Description" {
		t.Errorf("A1 = %q", got)
	}
	if got := cell("D2"); got != "150.75" {
		t.Errorf("D2 = %q", got)
	}
	// due 2024-01-10, still OPEN in storage, exported as OVERDUE on 2024-05-15
	if got := cell("E3"); got != "OVERDUE" {
		t.Errorf("E3 = %q", got)
	}
	if got := cell("E2"); got != "OPEN" {
		t.Errorf("E2 = %q", got)
	}
	if got := cell("G4"); got != "2024-05-02" {
		t.Errorf("G4 = %q", got)
	}

	rows, err := f.GetRows("Payables")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Errorf("row count = %d, want header + 3", len(rows))
	}
}

func TestExportFilename(t *testing.T) {
	now := func() time.Time {
		return time.Date(2024, time.May, 15, 23, 30, 0, 0, time.UTC)
	}
	svc := NewService(&fakeInstallments{}, now, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if got := svc.Filename(); got != "payables-2024-05-15.xlsx" {
		t.Errorf("Filename = %q", got)
	}
}
