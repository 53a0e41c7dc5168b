package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/evozago/fluxo-e-dre-sub001/constants"
	payablespb "github.com/evozago/fluxo-e-dre-sub001/gen/proto/payables/v1"
	"github.com/evozago/fluxo-e-dre-sub001/internal/export"
	"github.com/evozago/fluxo-e-dre-sub001/internal/payables"
	"github.com/evozago/fluxo-e-dre-sub001/internal/repository"
	"github.com/evozago/fluxo-e-dre-sub001/internal/utils"
)

type PayablesService struct {
	payablespb.UnimplementedPayablesServiceServer
	installmentRepo repository.InstallmentRepository
	exporter        *export.Service
	now             func() time.Time
	logger          *slog.Logger
}

func NewPayablesService(installmentRepo repository.InstallmentRepository, exporter *export.Service, now func() time.Time, logger *slog.Logger) *PayablesService {
	if now == nil {
		now = time.Now
	}
	return &PayablesService{
		installmentRepo: installmentRepo,
		exporter:        exporter,
		now:             now,
		logger:          logger,
	}
}

func buildInstallmentsFilter(statusStr, supplier, dueFromStr, dueToStr string) (repository.ListInstallmentsFilter, error) {
	var filter repository.ListInstallmentsFilter

	if st := strings.TrimSpace(statusStr); st != "" {
		parsed, ok := constants.ParseStatus(strings.ToUpper(st))
		if !ok {
			return filter, status.Errorf(codes.InvalidArgument, "status must be one of OPEN, OVERDUE, PAID")
		}
		filter.Status = parsed
	}
	filter.Supplier = strings.TrimSpace(supplier)

	if df := strings.TrimSpace(dueFromStr); df != "" {
		from, err := utils.ParseYMD(df)
		if err != nil {
			return filter, status.Errorf(codes.InvalidArgument, "due_from invalid (YYYY-MM-DD): %v", err)
		}
		filter.DueFrom = &from
	}
	if dt := strings.TrimSpace(dueToStr); dt != "" {
		to, err := utils.ParseYMD(dt)
		if err != nil {
			return filter, status.Errorf(codes.InvalidArgument, "due_to invalid (YYYY-MM-DD): %v", err)
		}
		filter.DueTo = &to
	}
	return filter, nil
}

func (s *PayablesService) ListInstallments(ctx context.Context, req *payablespb.ListInstallmentsRequest) (*payablespb.ListInstallmentsResponse, error) {
	filter, err := buildInstallmentsFilter(req.GetStatus(), req.GetSupplier(), req.GetDueFrom(), req.GetDueTo())
	if err != nil {
		s.logger.Error("invalid list installments filter", "error", err)
		return nil, err
	}

	today := s.now().UTC()
	recs, err := s.installmentRepo.List(ctx, filter, today)
	if err != nil {
		s.logger.Error("failed to list installments", "error", err)
		return nil, status.Errorf(codes.Internal, "list installments: %v", err)
	}
	s.logger.Info("installments listed successfully", "count", len(recs))

	out := make([]*payablespb.Installment, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBInstallment(r, string(payables.EffectiveStatus(r, today))))
	}
	return &payablespb.ListInstallmentsResponse{Installments: out}, nil
}

func (s *PayablesService) MarkPaid(ctx context.Context, req *payablespb.MarkPaidRequest) (*payablespb.MarkPaidResponse, error) {
	rawIDs := req.GetInstallmentIds()
	if len(rawIDs) == 0 {
		return nil, status.Error(codes.InvalidArgument, "installment_ids is required")
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			s.logger.Error("invalid installment id for mark paid", "id", raw, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "installment id %q must be a UUID", raw)
		}
		ids = append(ids, id)
	}

	n, err := s.installmentRepo.MarkPaid(ctx, ids, s.now().UTC())
	if err != nil {
		s.logger.Error("failed to mark installments paid", "error", err)
		return nil, status.Errorf(codes.Internal, "mark paid: %v", err)
	}
	s.logger.Info("installments marked paid", "requested", len(ids), "updated", n)

	return &payablespb.MarkPaidResponse{UpdatedCount: uint32(n)}, nil
}

func (s *PayablesService) GetSummary(ctx context.Context, _ *payablespb.GetSummaryRequest) (*payablespb.GetSummaryResponse, error) {
	sums, err := s.installmentRepo.Summary(ctx, s.now().UTC())
	if err != nil {
		s.logger.Error("failed to summarize installments", "error", err)
		return nil, status.Errorf(codes.Internal, "summary: %v", err)
	}

	out := make([]*payablespb.StatusSummary, 0, len(sums))
	for _, sum := range sums {
		out = append(out, &payablespb.StatusSummary{
			Status:      string(sum.Status),
			Count:       uint32(sum.Count),
			TotalAmount: formatAmount(sum.TotalAmount),
		})
	}
	return &payablespb.GetSummaryResponse{Summaries: out}, nil
}

func (s *PayablesService) ExportInstallments(ctx context.Context, req *payablespb.ExportInstallmentsRequest) (*payablespb.ExportInstallmentsResponse, error) {
	filter, err := buildInstallmentsFilter(req.GetStatus(), req.GetSupplier(), req.GetDueFrom(), req.GetDueTo())
	if err != nil {
		s.logger.Error("invalid export filter", "error", err)
		return nil, err
	}

	data, err := s.exporter.InstallmentsXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("failed to export installments", "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}

	return &payablespb.ExportInstallmentsResponse{
		Xlsx:     data,
		Filename: s.exporter.Filename(),
	}, nil
}
