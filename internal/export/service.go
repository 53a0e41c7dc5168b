package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/evozago/fluxo-e-dre-sub001/internal/payables"
	"github.com/evozago/fluxo-e-dre-sub001/internal/repository"
)

// Service is a tiny façade over the installment repository that produces XLSX
// bytes for dashboard exports.
type Service struct {
	installments repository.InstallmentRepository
	now          func() time.Time
	logger       *slog.Logger
}

func NewService(installments repository.InstallmentRepository, now func() time.Time, logger *slog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{installments: installments, now: now, logger: logger}
}

// InstallmentsXLSX returns an XLSX workbook (as bytes) for the filtered
// installment table, one row per installment with its effective status.
func (s *Service) InstallmentsXLSX(ctx context.Context, filter repository.ListInstallmentsFilter) ([]byte, error) {
	start := s.now()
	today := start.UTC()

	recs, err := s.installments.List(ctx, filter, today)
	if err != nil {
		return nil, fmt.Errorf("query installments: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Payables"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Description",
		"Supplier",
		"Due Date",
		"Amount",
		"Status",
		"Category",
		"Paid At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Description)
		write(2, r.SupplierName)
		write(3, r.DueDate.Format("2006-01-02"))
		write(4, fmt.Sprintf("%.2f", r.Amount))
		write(5, string(payables.EffectiveStatus(r, today)))
		write(6, r.Category)
		if r.PaidAt != nil {
			write(7, r.PaidAt.Format("2006-01-02"))
		} else {
			write(7, "")
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 44) // description
	_ = f.SetColWidth(sheet, "B", "B", 30) // supplier
	_ = f.SetColWidth(sheet, "C", "C", 12) // due date
	_ = f.SetColWidth(sheet, "D", "D", 14) // amount
	_ = f.SetColWidth(sheet, "E", "F", 12) // status, category
	_ = f.SetColWidth(sheet, "G", "G", 12) // paid at

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// Filename returns the suggested attachment name for an export produced now.
func (s *Service) Filename() string {
	return fmt.Sprintf("payables-%s.xlsx", s.now().UTC().Format("2006-01-02"))
}
