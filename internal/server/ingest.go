package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/evozago/fluxo-e-dre-sub001/gen/proto/payables/v1"
	"github.com/evozago/fluxo-e-dre-sub001/internal/ingest"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	orchestrator *ingest.Service
	logger       *slog.Logger
}

func NewIngestionService(orchestrator *ingest.Service, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// UploadDocuments implements v1.IngestionServiceServer
func (s *IngestionService) UploadDocuments(ctx context.Context, req *v1.UploadDocumentsRequest) (*v1.UploadDocumentsResponse, error) {
	files := req.GetFiles()
	if len(files) == 0 {
		s.logger.Error("upload request missing files")
		return nil, status.Error(codes.InvalidArgument, "at least one file is required")
	}

	uploads := make([]ingest.Upload, 0, len(files))
	for _, f := range files {
		uploads = append(uploads, ingest.Upload{
			Filename: f.GetFilename(),
			Content:  f.GetContent(),
		})
	}

	s.logger.Info("starting document upload batch", "file_count", len(uploads))
	res := s.orchestrator.ProcessBatch(ctx, uploads)

	out := &v1.UploadDocumentsResponse{
		Success:        res.Success,
		ProcessedCount: res.ProcessedCount,
		ErrorCount:     res.ErrorCount,
		DocumentIds:    res.DocumentIDs,
		Errors:         make([]*v1.UploadError, 0, len(res.Errors)),
	}
	for _, e := range res.Errors {
		out.Errors = append(out.Errors, &v1.UploadError{Source: e.Source, Message: e.Message})
	}
	return out, nil
}
