// Command loadclaims ingests the claim list and claim detail export files
// into the database. Inputs may be local paths or s3:// URIs.
// Usage: go run ./cmd/loadclaims [--csv-list FILE] [--csv-detail FILE]
// [--clear] [--append] [--batch-size N] [--verbose]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Zoh007/claims-management-system/internal/config"
	"github.com/Zoh007/claims-management-system/internal/domain"
	"github.com/Zoh007/claims-management-system/internal/ingest"
	"github.com/Zoh007/claims-management-system/internal/logging"
	"github.com/Zoh007/claims-management-system/internal/port"
	"github.com/Zoh007/claims-management-system/internal/repository/postgres"
	"github.com/Zoh007/claims-management-system/internal/service"
	s3storage "github.com/Zoh007/claims-management-system/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	listPath := flag.String("csv-list", cfg.Ingest.ClaimListFile, "claim list file (local path or s3:// URI)")
	detailPath := flag.String("csv-detail", cfg.Ingest.ClaimDetailFile, "claim detail file (local path or s3:// URI)")
	clear := flag.Bool("clear", false, "delete all existing claims, details, flags, and notes first")
	appendOnly := flag.Bool("append", false, "only create new records, never update existing ones")
	batchSize := flag.Int("batch-size", cfg.Ingest.BatchSize, "rows per progress report")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		cfg.Log.Level = "debug"
	}
	logger := logging.Setup(cfg.Log)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	claimRepo := postgres.NewClaimRepo(db)
	detailRepo := postgres.NewClaimDetailRepo(db)
	flagRepo := postgres.NewFlagRepo(db)
	noteRepo := postgres.NewNoteRepo(db)

	var storage port.ObjectStorage
	if strings.HasPrefix(*listPath, "s3://") || strings.HasPrefix(*detailPath, "s3://") {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("initializing s3 client: %w", err)
		}
	}

	engine := ingest.NewEngine(claimRepo, detailRepo, logger)
	svc := service.NewIngestService(engine, claimRepo, detailRepo, flagRepo, noteRepo, storage, logger)

	ctx := context.Background()

	if *clear {
		if err := svc.Clear(ctx); err != nil {
			return err
		}
	}

	mode := domain.ModeUpsert
	if *appendOnly {
		mode = domain.ModeAppend
	}

	result, err := svc.Run(ctx, *listPath, *detailPath, ingest.Options{
		Mode:      mode,
		BatchSize: *batchSize,
	})
	if err != nil {
		return err
	}

	logOutcome(logger, "claims", result.Claims)
	logOutcome(logger, "details", result.Details)
	return nil
}

func logOutcome(logger zerolog.Logger, pass string, o ingest.Outcome) {
	evt := logger.Info().
		Str("pass", pass).
		Int("created", o.Created).
		Int("updated", o.Updated).
		Int("skipped", o.Skipped).
		Int("failed", o.Failed)
	if o.MissingRefs > 0 {
		evt = evt.Int("missing_refs", o.MissingRefs)
	}
	evt.Msg("ingestion pass complete")

	for _, re := range o.RowErrors {
		logger.Warn().Int("line", re.Line).Str("reason", re.Reason).Msg("row failed")
	}
}
