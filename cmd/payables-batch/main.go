package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/evozago/fluxo-e-dre-sub001/constants"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent"
	"github.com/evozago/fluxo-e-dre-sub001/internal/export"
	"github.com/evozago/fluxo-e-dre-sub001/internal/ingest"
	"github.com/evozago/fluxo-e-dre-sub001/internal/payables"
	repo "github.com/evozago/fluxo-e-dre-sub001/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem         = flag.Bool("inmem", false, "use in-memory SQLite database")
		sqlitePath    = flag.String("sqlite", "", "SQLite database file (overrides DB_URL)")
		dir           = flag.String("dir", "", "directory to ingest NFe XML files from (required)")
		out           = flag.String("out", "", "output XLSX file path (optional)")
		parallel      = flag.Int("parallel", 1, "concurrent document pipelines")
		enforceUnique = flag.Bool("enforce-unique", false, "reject documents whose access key already exists")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	entc, cleanup, err := openClient(ctx, *inmem, *sqlitePath, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	documentsRepo := repo.NewFiscalDocumentRepository(entc, logger)
	installmentsRepo := repo.NewInstallmentRepository(entc, logger)
	deriver := payables.NewDeriver(nil, time.Now)
	orchestrator := ingest.NewService(documentsRepo, installmentsRepo, deriver, ingest.Config{
		EnforceUniqueAccessKey: *enforceUnique,
		MaxParallel:            *parallel,
	}, logger)

	uploads, err := collectUploads(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(uploads) == 0 {
		printError("No .xml files found under %s\n", *dir)
		os.Exit(1)
	}

	res := orchestrator.ProcessBatch(ctx, uploads)
	fmt.Printf("processed %d, failed %d\n", res.ProcessedCount, res.ErrorCount)
	for _, e := range res.Errors {
		printError("  %s: %s\n", e.Source, e.Message)
	}

	if *out != "" {
		exporter := export.NewService(installmentsRepo, time.Now, logger)
		data, err := exporter.InstallmentsXLSX(ctx, repo.ListInstallmentsFilter{})
		if err != nil {
			logger.Error("failed to export installments", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			logger.Error("failed to write XLSX", "path", *out, "error", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *out)
	}

	if !res.Success {
		os.Exit(1)
	}
}

// collectUploads walks dir and reads every .xml file. Read failures are
// carried on the upload so the orchestrator counts them per file.
func collectUploads(dir string) ([]ingest.Upload, error) {
	var uploads []ingest.Upload
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if !constants.IsAllowedExt(constants.NormalizeExt(filepath.Ext(path))) {
			return nil
		}
		up := ingest.Upload{Filename: filepath.Base(path)}
		up.Content, up.ReadErr = os.ReadFile(path)
		uploads = append(uploads, up)
		return nil
	})
	return uploads, err
}

// openClient opens SQLite (in-memory or file) when requested, otherwise
// Postgres via DB_URL. SQLite schemas are migrated in place.
func openClient(ctx context.Context, inmem bool, sqlitePath string, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem || sqlitePath != "" {
		dsn := ""
		if sqlitePath != "" {
			dsn = "file:" + sqlitePath
		}
		entc, err := repo.OpenSQLite(dsn, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := entc.Schema.Create(ctx); err != nil {
			_ = entc.Close()
			return nil, nil, fmt.Errorf("migrate sqlite schema: %w", err)
		}
		return entc, func() { _ = entc.Close() }, nil
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, nil, fmt.Errorf("DB_URL env var is required (or pass --inmem / --sqlite)")
	}
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dbURL,
		MaxConns:        10,
		MinConns:        2,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return entc, func() { repo.Close(entc, pool, logger) }, nil
}
