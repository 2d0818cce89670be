package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zoh007/claims-management-system/internal/domain"
)

func sampleClaims() ([]domain.Claim, map[string]*domain.ClaimDetail) {
	claims := []domain.Claim{
		{
			ID:            uuid.New(),
			ClaimID:       "30001",
			PatientName:   "Jane Roe",
			InsurerName:   "Acme Health",
			BilledAmount:  decimal.RequireFromString("100.00"),
			PaidAmount:    decimal.Zero,
			Status:        domain.StatusDenied,
			DischargeDate: time.Date(2023, 7, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            uuid.New(),
			ClaimID:       "30002",
			PatientName:   "John Roe",
			InsurerName:   "Acme Health",
			BilledAmount:  decimal.RequireFromString("200"),
			PaidAmount:    decimal.RequireFromString("200"),
			Status:        domain.StatusPaid,
			DischargeDate: time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
		},
	}
	details := map[string]*domain.ClaimDetail{
		"30001": {
			ID:           uuid.New(),
			ClaimID:      claims[0].ID,
			CPTCodes:     "99213, 99214",
			DenialReason: "Prior authorization missing",
		},
	}
	return claims, details
}

func TestWriteClaimsCSV(t *testing.T) {
	claims, details := sampleClaims()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteClaims(claims, details))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	r.Comma = '|'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Claim ID", rows[0][0])
	assert.Equal(t, []string{
		"30001", "Jane Roe", "Acme Health", "100.00", "0.00", "100.00",
		"Denied", "2023-07-02", "99213, 99214", "Prior authorization missing",
	}, rows[1])
	// No detail row: trailing columns stay empty.
	assert.Equal(t, "30002", rows[2][0])
	assert.Equal(t, "0.00", rows[2][5])
	assert.Empty(t, rows[2][8])
	assert.Empty(t, rows[2][9])
}

func TestWriteJSON(t *testing.T) {
	claims, details := sampleClaims()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, claims, details))

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)

	assert.Equal(t, "30001", out[0]["claim_id"])
	assert.Equal(t, "100.00", out[0]["billed_amount"])
	assert.Equal(t, "100.00", out[0]["underpayment"])
	assert.Equal(t, []interface{}{"99213", "99214"}, out[0]["cpt_codes"])
	_, hasCodes := out[1]["cpt_codes"]
	assert.False(t, hasCodes)
}

func TestWriteXLSX(t *testing.T) {
	claims, details := sampleClaims()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, claims, details))
	// XLSX files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "claims_export", SanitizeFilename("claims export!"))
	assert.Equal(t, "a_b", SanitizeFilename("a///b"))
	assert.Equal(t, "trimmed", SanitizeFilename("__trimmed__"))
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("all claims", "csv")
	assert.Regexp(t, `^all_claims_\d{4}-\d{2}-\d{2}\.csv$`, name)
}
