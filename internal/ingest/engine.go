package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Zoh007/claims-management-system/internal/domain"
)

// ClaimStore is the record store surface the engine needs for claims:
// find by natural key, create, and update-in-place. A single row's create
// or update must be atomic.
type ClaimStore interface {
	GetByClaimID(ctx context.Context, claimID string) (*domain.Claim, error)
	Create(ctx context.Context, claim *domain.Claim) error
	Update(ctx context.Context, claim *domain.Claim) error
}

// ClaimDetailStore is the record store surface for claim details.
type ClaimDetailStore interface {
	GetByClaimID(ctx context.Context, claimID uuid.UUID) (*domain.ClaimDetail, error)
	Create(ctx context.Context, detail *domain.ClaimDetail) error
	Update(ctx context.Context, detail *domain.ClaimDetail) error
}

var (
	errMissingClaimID   = errors.New("missing claim id")
	errMissingReference = errors.New("referenced claim not found")
)

// Options control a single ingestion pass.
type Options struct {
	// Mode defaults to upsert.
	Mode domain.IngestMode
	// BatchSize chunks progress logging. It has no effect on ordering or
	// per-row atomicity.
	BatchSize int
}

func (o Options) mode() domain.IngestMode {
	if o.Mode == "" {
		return domain.ModeUpsert
	}
	return o.Mode
}

func (o Options) batchSize() int {
	if o.BatchSize <= 0 {
		return 1000
	}
	return o.BatchSize
}

// rowState is the terminal state of a successfully processed row. Failures
// are reported as errors and collected into the Outcome.
type rowState int

const (
	rowCreated rowState = iota
	rowUpdated
	rowSkipped
)

func (s rowState) String() string {
	switch s {
	case rowCreated:
		return "created"
	case rowUpdated:
		return "updated"
	default:
		return "skipped"
	}
}

// Engine reconciles tabular claim data against the record store. Rows are
// processed strictly in file order, one at a time; a failing row is recorded
// and never aborts the batch.
type Engine struct {
	claims  ClaimStore
	details ClaimDetailStore
	log     zerolog.Logger
	now     func() time.Time
}

// NewEngine creates a reconciliation engine over the given record store.
func NewEngine(claims ClaimStore, details ClaimDetailStore, log zerolog.Logger) *Engine {
	return &Engine{
		claims:  claims,
		details: details,
		log:     log,
		now:     time.Now,
	}
}

// IngestClaims runs the claim-list pass over the file at path. A missing
// file skips the pass with a warning and an empty outcome; it is not fatal.
func (e *Engine) IngestClaims(ctx context.Context, path string, opts Options) (*Outcome, error) {
	rows, err := ReadRows(path)
	if errors.Is(err, fs.ErrNotExist) {
		e.log.Warn().Str("file", path).Msg("claim list file not found, skipping pass")
		return &Outcome{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading claim list: %w", err)
	}

	outcome := &Outcome{}
	for i, row := range rows {
		line := i + 2 // 1-based, after the header row

		state, err := e.applyClaimRow(ctx, row, opts.mode())
		if err != nil {
			outcome.recordFailure(line, row, err.Error())
			e.log.Debug().Int("line", line).Err(err).Msg("claim row failed")
			continue
		}
		e.countRow(outcome, state)
		e.log.Debug().Int("line", line).Stringer("state", state).Msg("claim row")

		if (i+1)%opts.batchSize() == 0 {
			e.log.Info().Int("rows", i+1).Msg("claim ingestion progress")
		}
	}

	e.log.Info().
		Int("created", outcome.Created).
		Int("updated", outcome.Updated).
		Int("skipped", outcome.Skipped).
		Int("failed", outcome.Failed).
		Msg("claim list pass complete")
	return outcome, nil
}

func (e *Engine) applyClaimRow(ctx context.Context, row Row, mode domain.IngestMode) (rowState, error) {
	f := resolveClaimFields(row)
	if f.ClaimID == "" {
		return 0, errMissingClaimID
	}

	existing, err := e.claims.GetByClaimID(ctx, f.ClaimID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("looking up claim %q: %w", f.ClaimID, err)
	}

	if existing == nil {
		claim := e.buildClaim(f)
		if err := e.claims.Create(ctx, claim); err != nil {
			return 0, fmt.Errorf("creating claim %q: %w", f.ClaimID, err)
		}
		return rowCreated, nil
	}

	if mode == domain.ModeAppend {
		return rowSkipped, nil
	}

	// Upsert: overwrite all mutable fields; the claim ID itself is immutable.
	fresh := e.buildClaim(f)
	existing.PatientName = fresh.PatientName
	existing.InsurerName = fresh.InsurerName
	existing.BilledAmount = fresh.BilledAmount
	existing.PaidAmount = fresh.PaidAmount
	existing.Status = fresh.Status
	existing.DischargeDate = fresh.DischargeDate
	if err := e.claims.Update(ctx, existing); err != nil {
		return 0, fmt.Errorf("updating claim %q: %w", f.ClaimID, err)
	}
	return rowUpdated, nil
}

// buildClaim normalizes resolved fields into a domain Claim. Normalization
// never fails: unparsable money becomes zero, an unparsable or missing
// discharge date becomes the ingestion date, and absent names get sentinel
// values.
func (e *Engine) buildClaim(f claimFields) *domain.Claim {
	discharge, ok := ParseDate(f.DischargeDate)
	if !ok {
		now := e.now().UTC()
		discharge = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return &domain.Claim{
		ClaimID:       f.ClaimID,
		PatientName:   defaultIfEmpty(f.PatientName, domain.UnknownPatient),
		InsurerName:   defaultIfEmpty(f.InsurerName, domain.UnknownInsurer),
		BilledAmount:  ParseMoney(f.BilledAmount),
		PaidAmount:    ParseMoney(f.PaidAmount),
		Status:        domain.ParseClaimStatus(f.Status),
		DischargeDate: discharge,
	}
}

func (e *Engine) countRow(outcome *Outcome, state rowState) {
	switch state {
	case rowCreated:
		outcome.Created++
	case rowUpdated:
		outcome.Updated++
	case rowSkipped:
		outcome.Skipped++
	}
}

func defaultIfEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
