package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Zoh007/claims-management-system/internal/ingest"
	"github.com/Zoh007/claims-management-system/internal/port"
)

// IngestResult pairs the outcomes of the claim list and claim detail passes.
type IngestResult struct {
	Claims  ingest.Outcome `json:"claims"`
	Details ingest.Outcome `json:"details"`
}

// IngestService runs the two-file ingestion pipeline. Inputs may be local
// paths or s3:// URIs; remote objects are staged to a temp file first.
type IngestService interface {
	IngestClaims(ctx context.Context, path string, opts ingest.Options) (*ingest.Outcome, error)
	IngestClaimDetails(ctx context.Context, path string, opts ingest.Options) (*ingest.Outcome, error)
	Run(ctx context.Context, claimListPath, claimDetailPath string, opts ingest.Options) (*IngestResult, error)
	Clear(ctx context.Context) error
}

type ingestService struct {
	engine     *ingest.Engine
	claimRepo  port.ClaimRepository
	detailRepo port.ClaimDetailRepository
	flagRepo   port.FlagRepository
	noteRepo   port.NoteRepository
	storage    port.ObjectStorage
	log        zerolog.Logger
}

// NewIngestService creates a new IngestService implementation. storage may be
// nil when only local files are ingested.
func NewIngestService(
	engine *ingest.Engine,
	claimRepo port.ClaimRepository,
	detailRepo port.ClaimDetailRepository,
	flagRepo port.FlagRepository,
	noteRepo port.NoteRepository,
	storage port.ObjectStorage,
	log zerolog.Logger,
) IngestService {
	return &ingestService{
		engine:     engine,
		claimRepo:  claimRepo,
		detailRepo: detailRepo,
		flagRepo:   flagRepo,
		noteRepo:   noteRepo,
		storage:    storage,
		log:        log.With().Str("component", "ingest").Logger(),
	}
}

// IngestClaims stages the input if remote and runs the claim-list pass.
func (s *ingestService) IngestClaims(ctx context.Context, path string, opts ingest.Options) (*ingest.Outcome, error) {
	local, cleanup, err := s.resolve(ctx, path)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	outcome, err := s.engine.IngestClaims(ctx, local, opts)
	if err != nil {
		return nil, fmt.Errorf("ingest.IngestClaims: %w", err)
	}
	return outcome, nil
}

// IngestClaimDetails stages the input if remote and runs the detail pass.
func (s *ingestService) IngestClaimDetails(ctx context.Context, path string, opts ingest.Options) (*ingest.Outcome, error) {
	local, cleanup, err := s.resolve(ctx, path)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	outcome, err := s.engine.IngestClaimDetails(ctx, local, opts)
	if err != nil {
		return nil, fmt.Errorf("ingest.IngestClaimDetails: %w", err)
	}
	return outcome, nil
}

// Run executes both passes in order. Claims load first so detail rows can
// resolve their references.
func (s *ingestService) Run(ctx context.Context, claimListPath, claimDetailPath string, opts ingest.Options) (*IngestResult, error) {
	var result IngestResult

	claimOutcome, err := s.IngestClaims(ctx, claimListPath, opts)
	if err != nil {
		return nil, err
	}
	result.Claims = *claimOutcome

	detailOutcome, err := s.IngestClaimDetails(ctx, claimDetailPath, opts)
	if err != nil {
		return nil, err
	}
	result.Details = *detailOutcome

	return &result, nil
}

// Clear removes all ingested data. Children go first to satisfy foreign keys.
func (s *ingestService) Clear(ctx context.Context) error {
	if err := s.flagRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("ingest.Clear flags: %w", err)
	}
	if err := s.noteRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("ingest.Clear notes: %w", err)
	}
	if err := s.detailRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("ingest.Clear details: %w", err)
	}
	if err := s.claimRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("ingest.Clear claims: %w", err)
	}
	s.log.Info().Msg("cleared all claims, details, flags, and notes")
	return nil
}

// resolve stages s3:// inputs into a temp file and returns a local path plus
// a cleanup func. Local paths pass through untouched.
func (s *ingestService) resolve(ctx context.Context, path string) (string, func(), error) {
	noop := func() {}
	if !strings.HasPrefix(path, "s3://") {
		return path, noop, nil
	}
	if s.storage == nil {
		return "", noop, fmt.Errorf("ingest.resolve: s3 input %q but no object storage configured", path)
	}

	bucket, key, err := splitS3URI(path)
	if err != nil {
		return "", noop, err
	}

	tmp, err := os.CreateTemp("", "claims-ingest-*"+filepath.Ext(key))
	if err != nil {
		return "", noop, fmt.Errorf("ingest.resolve: %w", err)
	}
	cleanup := func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}

	n, err := s.storage.Download(ctx, bucket, key, tmp)
	if err != nil {
		cleanup()
		return "", noop, fmt.Errorf("ingest.resolve %s: %w", path, err)
	}
	s.log.Debug().Str("uri", path).Int64("bytes", n).Msg("staged remote input")

	return tmp.Name(), cleanup, nil
}

func splitS3URI(uri string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(uri, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 uri %q", uri)
	}
	return bucket, key, nil
}
