package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	payablespb "github.com/evozago/fluxo-e-dre-sub001/gen/proto/payables/v1"
	"github.com/evozago/fluxo-e-dre-sub001/internal/payables"
	"github.com/evozago/fluxo-e-dre-sub001/internal/repository"
	"github.com/evozago/fluxo-e-dre-sub001/internal/utils"
)

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

type DocumentsService struct {
	payablespb.UnimplementedDocumentsServiceServer
	documentRepo    repository.FiscalDocumentRepository
	installmentRepo repository.InstallmentRepository
	now             func() time.Time
	logger          *slog.Logger
}

func NewDocumentsService(documentRepo repository.FiscalDocumentRepository, installmentRepo repository.InstallmentRepository, now func() time.Time, logger *slog.Logger) *DocumentsService {
	if now == nil {
		now = time.Now
	}
	return &DocumentsService{
		documentRepo:    documentRepo,
		installmentRepo: installmentRepo,
		now:             now,
		logger:          logger,
	}
}

func (s *DocumentsService) ListDocuments(ctx context.Context, req *payablespb.ListDocumentsRequest) (*payablespb.ListDocumentsResponse, error) {
	var filter repository.ListDocumentsFilter
	filter.Issuer = strings.TrimSpace(req.GetIssuer())

	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.FromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.ToDate = &to
	}

	recs, err := s.documentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list documents", "error", err)
		return nil, status.Errorf(codes.Internal, "list documents: %v", err)
	}
	s.logger.Info("documents listed successfully", "count", len(recs))

	out := make([]*payablespb.FiscalDocument, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBDocument(r))
	}
	return &payablespb.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentsService) GetDocument(ctx context.Context, req *payablespb.GetDocumentRequest) (*payablespb.GetDocumentResponse, error) {
	raw := strings.TrimSpace(req.GetId())
	if raw == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		s.logger.Error("invalid document id", "id", raw, "error", err)
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get document", "id", id, "error", err)
		return nil, status.Errorf(codes.NotFound, "document %s not found", id)
	}

	insts, err := s.installmentRepo.ListByDocument(ctx, id)
	if err != nil {
		s.logger.Error("failed to list document installments", "id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "list installments: %v", err)
	}

	today := s.now().UTC()
	resp := &payablespb.GetDocumentResponse{
		Document:     utils.ToPBDocument(doc),
		Installments: make([]*payablespb.Installment, 0, len(insts)),
	}
	for _, in := range insts {
		resp.Installments = append(resp.Installments, utils.ToPBInstallment(in, string(payables.EffectiveStatus(in, today))))
	}
	if req.GetIncludeRaw() {
		resp.RawContent = doc.RawContent
	}
	return resp, nil
}
