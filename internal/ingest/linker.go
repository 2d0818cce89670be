package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/Zoh007/claims-management-system/internal/domain"
)

// IngestClaimDetails runs the claim-detail pass over the file at path.
// Detail rows attach to previously loaded claims by natural key; a row whose
// claim cannot be found is counted as a missing reference, never silently
// dropped, and never auto-creates the parent claim.
func (e *Engine) IngestClaimDetails(ctx context.Context, path string, opts Options) (*Outcome, error) {
	rows, err := ReadRows(path)
	if errors.Is(err, fs.ErrNotExist) {
		e.log.Warn().Str("file", path).Msg("claim detail file not found, skipping pass")
		return &Outcome{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading claim details: %w", err)
	}

	outcome := &Outcome{}
	for i, row := range rows {
		line := i + 2

		state, err := e.applyDetailRow(ctx, row, opts.mode())
		switch {
		case errors.Is(err, errMissingReference):
			outcome.recordMissingRef(line, row, err.Error())
			e.log.Debug().Int("line", line).Err(err).Msg("detail row missing reference")
			continue
		case err != nil:
			outcome.recordFailure(line, row, err.Error())
			e.log.Debug().Int("line", line).Err(err).Msg("detail row failed")
			continue
		}
		e.countRow(outcome, state)
		e.log.Debug().Int("line", line).Stringer("state", state).Msg("detail row")

		if (i+1)%opts.batchSize() == 0 {
			e.log.Info().Int("rows", i+1).Msg("claim detail ingestion progress")
		}
	}

	e.log.Info().
		Int("created", outcome.Created).
		Int("updated", outcome.Updated).
		Int("skipped", outcome.Skipped).
		Int("failed", outcome.Failed).
		Int("missing_refs", outcome.MissingRefs).
		Msg("claim detail pass complete")
	return outcome, nil
}

func (e *Engine) applyDetailRow(ctx context.Context, row Row, mode domain.IngestMode) (rowState, error) {
	f := resolveDetailFields(row)
	if f.ClaimID == "" {
		return 0, errMissingClaimID
	}

	claim, err := e.claims.GetByClaimID(ctx, f.ClaimID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("%w: %q", errMissingReference, f.ClaimID)
	}
	if err != nil {
		return 0, fmt.Errorf("looking up claim %q: %w", f.ClaimID, err)
	}

	existing, err := e.details.GetByClaimID(ctx, claim.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("looking up detail for claim %q: %w", f.ClaimID, err)
	}

	if existing == nil {
		detail := &domain.ClaimDetail{
			ClaimID:      claim.ID,
			CPTCodes:     f.CPTCodes,
			DenialReason: f.DenialReason,
		}
		if err := e.details.Create(ctx, detail); err != nil {
			return 0, fmt.Errorf("creating detail for claim %q: %w", f.ClaimID, err)
		}
		return rowCreated, nil
	}

	// Append mode leaves an already-linked detail untouched even when the
	// incoming content differs; this is an explicit skip, not a merge.
	if mode == domain.ModeAppend {
		return rowSkipped, nil
	}

	existing.CPTCodes = f.CPTCodes
	existing.DenialReason = f.DenialReason
	if err := e.details.Update(ctx, existing); err != nil {
		return 0, fmt.Errorf("updating detail for claim %q: %w", f.ClaimID, err)
	}
	return rowUpdated, nil
}
