package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zoh007/claims-management-system/internal/domain"
)

// fakeClaimStore is an in-memory ClaimStore keyed by natural key. Reads
// return copies so engine-side mutation is only visible after Update.
type fakeClaimStore struct {
	claims   map[string]domain.Claim
	failOn   string
	failWith error
}

func newFakeClaimStore() *fakeClaimStore {
	return &fakeClaimStore{claims: make(map[string]domain.Claim)}
}

func (s *fakeClaimStore) GetByClaimID(_ context.Context, claimID string) (*domain.Claim, error) {
	if s.failOn == claimID && s.failWith != nil {
		return nil, s.failWith
	}
	c, ok := s.claims[claimID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (s *fakeClaimStore) Create(_ context.Context, claim *domain.Claim) error {
	if s.failOn == claim.ClaimID && s.failWith != nil {
		return s.failWith
	}
	claim.ID = uuid.New()
	s.claims[claim.ClaimID] = *claim
	return nil
}

func (s *fakeClaimStore) Update(_ context.Context, claim *domain.Claim) error {
	s.claims[claim.ClaimID] = *claim
	return nil
}

type fakeDetailStore struct {
	details map[uuid.UUID]domain.ClaimDetail
}

func newFakeDetailStore() *fakeDetailStore {
	return &fakeDetailStore{details: make(map[uuid.UUID]domain.ClaimDetail)}
}

func (s *fakeDetailStore) GetByClaimID(_ context.Context, claimID uuid.UUID) (*domain.ClaimDetail, error) {
	d, ok := s.details[claimID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (s *fakeDetailStore) Create(_ context.Context, detail *domain.ClaimDetail) error {
	detail.ID = uuid.New()
	s.details[detail.ClaimID] = *detail
	return nil
}

func (s *fakeDetailStore) Update(_ context.Context, detail *domain.ClaimDetail) error {
	s.details[detail.ClaimID] = *detail
	return nil
}

func newTestEngine(claims *fakeClaimStore, details *fakeDetailStore) *Engine {
	e := NewEngine(claims, details, zerolog.Nop())
	e.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return e
}

const claimListContent = "id|patient|billed_amount|paid_amount|status|insurer|discharge_date\n" +
	"30001|A|$100.00|0|Denied|X|2023-07-02\n" +
	"30002|B|200|200|Paid|Y|07/03/2023\n"

func TestIngestClaimsCreates(t *testing.T) {
	claims := newFakeClaimStore()
	e := newTestEngine(claims, newFakeDetailStore())

	outcome, err := e.IngestClaims(context.Background(), writeTempFile(t, claimListContent), Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.Created)
	assert.Zero(t, outcome.Updated)
	assert.Zero(t, outcome.Failed)
	assert.Empty(t, outcome.RowErrors)

	first := claims.claims["30001"]
	assert.Equal(t, "A", first.PatientName)
	assert.Equal(t, "X", first.InsurerName)
	assert.True(t, first.BilledAmount.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, first.PaidAmount.Equal(decimal.Zero))
	assert.Equal(t, domain.StatusDenied, first.Status)
	assert.Equal(t, time.Date(2023, 7, 2, 0, 0, 0, 0, time.UTC), first.DischargeDate)

	second := claims.claims["30002"]
	assert.True(t, second.BilledAmount.Equal(decimal.RequireFromString("200")))
	assert.True(t, second.PaidAmount.Equal(decimal.RequireFromString("200")))
	assert.Equal(t, domain.StatusPaid, second.Status)
	assert.Equal(t, time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC), second.DischargeDate)
}

func TestIngestClaimsUpsertIdempotent(t *testing.T) {
	claims := newFakeClaimStore()
	e := newTestEngine(claims, newFakeDetailStore())
	path := writeTempFile(t, claimListContent)

	_, err := e.IngestClaims(context.Background(), path, Options{})
	require.NoError(t, err)
	before := make(map[string]domain.Claim, len(claims.claims))
	for k, v := range claims.claims {
		before[k] = v
	}

	outcome, err := e.IngestClaims(context.Background(), path, Options{})
	require.NoError(t, err)

	assert.Zero(t, outcome.Created)
	assert.Equal(t, 2, outcome.Updated)
	assert.Len(t, claims.claims, 2)
	for key, prev := range before {
		cur := claims.claims[key]
		assert.Equal(t, prev.PatientName, cur.PatientName)
		assert.True(t, prev.BilledAmount.Equal(cur.BilledAmount))
		assert.True(t, prev.PaidAmount.Equal(cur.PaidAmount))
		assert.Equal(t, prev.Status, cur.Status)
		assert.Equal(t, prev.DischargeDate, cur.DischargeDate)
		assert.Equal(t, prev.ID, cur.ID, "claim id must stay immutable across upserts")
	}
}

func TestIngestClaimsAppendNeverMutates(t *testing.T) {
	claims := newFakeClaimStore()
	e := newTestEngine(claims, newFakeDetailStore())

	_, err := e.IngestClaims(context.Background(), writeTempFile(t, claimListContent), Options{})
	require.NoError(t, err)
	original := claims.claims["30001"]

	changed := "id|patient|billed_amount|status\n30001|Someone Else|$999.99|Paid\n30003|C|50|Pending\n"
	outcome, err := e.IngestClaims(context.Background(), writeTempFile(t, changed),
		Options{Mode: domain.ModeAppend})
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Created)
	assert.Equal(t, 1, outcome.Skipped)
	assert.Zero(t, outcome.Updated)

	after := claims.claims["30001"]
	assert.Equal(t, original.PatientName, after.PatientName)
	assert.True(t, original.BilledAmount.Equal(after.BilledAmount))
	assert.Equal(t, original.Status, after.Status)
	assert.Contains(t, claims.claims, "30003")
}

func TestIngestClaimsMissingNaturalKey(t *testing.T) {
	claims := newFakeClaimStore()
	e := newTestEngine(claims, newFakeDetailStore())

	content := "patient|billed_amount\nNo Key|100\n"
	outcome, err := e.IngestClaims(context.Background(), writeTempFile(t, content), Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Failed)
	assert.Empty(t, claims.claims)
	require.Len(t, outcome.RowErrors, 1)
	assert.Equal(t, 2, outcome.RowErrors[0].Line)
	assert.Contains(t, outcome.RowErrors[0].Reason, "missing claim id")
	assert.Contains(t, outcome.RowErrors[0].Raw, "patient=No Key")
}

func TestIngestClaimsStoreErrorIsolated(t *testing.T) {
	claims := newFakeClaimStore()
	claims.failOn = "30001"
	claims.failWith = errors.New("connection reset")
	e := newTestEngine(claims, newFakeDetailStore())

	outcome, err := e.IngestClaims(context.Background(), writeTempFile(t, claimListContent), Options{})
	require.NoError(t, err)

	// The bad row is recorded; the rest of the batch still lands.
	assert.Equal(t, 1, outcome.Failed)
	assert.Equal(t, 1, outcome.Created)
	assert.Contains(t, claims.claims, "30002")
	assert.NotContains(t, claims.claims, "30001")
}

func TestIngestClaimsDefaults(t *testing.T) {
	claims := newFakeClaimStore()
	e := newTestEngine(claims, newFakeDetailStore())

	content := "id|billed_amount|paid_amount|status|discharge_date\n" +
		"30009|not-money||Escalated|soon\n"
	outcome, err := e.IngestClaims(context.Background(), writeTempFile(t, content), Options{})
	require.NoError(t, err)
	require.Equal(t, 1, outcome.Created)

	c := claims.claims["30009"]
	assert.Equal(t, domain.UnknownPatient, c.PatientName)
	assert.Equal(t, domain.UnknownInsurer, c.InsurerName)
	assert.True(t, c.BilledAmount.Equal(decimal.Zero))
	assert.True(t, c.PaidAmount.Equal(decimal.Zero))
	assert.Equal(t, domain.StatusPending, c.Status)
	// Unparsable discharge date falls back to the ingestion date.
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), c.DischargeDate)
}

func TestIngestClaimsFileAbsent(t *testing.T) {
	e := newTestEngine(newFakeClaimStore(), newFakeDetailStore())

	outcome, err := e.IngestClaims(context.Background(), "/nonexistent/claims.csv", Options{})
	require.NoError(t, err)
	assert.Zero(t, outcome.Created+outcome.Updated+outcome.Skipped+outcome.Failed)
}
