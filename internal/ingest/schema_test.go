package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowLookupAliasOrder(t *testing.T) {
	// "id" wins over "claim_id" for the claim-list file because it appears
	// earlier in the alias list, regardless of map contents.
	row := Row{"id": "30001", "claim_id": "99999"}
	got, ok := row.Lookup(claimIDAliases...)
	assert.True(t, ok)
	assert.Equal(t, "30001", got)

	// The detail file prefers "claim_id".
	got, ok = row.Lookup(detailClaimIDAliases...)
	assert.True(t, ok)
	assert.Equal(t, "99999", got)
}

func TestRowLookupAbsent(t *testing.T) {
	row := Row{"patient_name": "John Doe"}
	_, ok := row.Lookup(insurerAliases...)
	assert.False(t, ok)
}

func TestResolveClaimFields(t *testing.T) {
	row := Row{
		"claim id":       "30007",
		"patient":        "Amy Pond",
		"insurer":        "Acme Health",
		"billed":         "$500.00",
		"paid":           "250",
		"status":         "Denied",
		"discharge date": "2023-01-15",
		"extra_column":   "ignored",
	}

	f := resolveClaimFields(row)
	assert.Equal(t, "30007", f.ClaimID)
	assert.Equal(t, "Amy Pond", f.PatientName)
	assert.Equal(t, "Acme Health", f.InsurerName)
	assert.Equal(t, "$500.00", f.BilledAmount)
	assert.Equal(t, "250", f.PaidAmount)
	assert.Equal(t, "Denied", f.Status)
	assert.Equal(t, "2023-01-15", f.DischargeDate)
}

func TestResolveClaimFieldsMissingOptional(t *testing.T) {
	f := resolveClaimFields(Row{"id": "30001"})
	assert.Equal(t, "30001", f.ClaimID)
	assert.Empty(t, f.PatientName)
	assert.Empty(t, f.Status)
	assert.Empty(t, f.DischargeDate)
}

func TestResolveDetailFields(t *testing.T) {
	row := Row{
		"claim_id": "30001",
		"cpt":      "99204, 82947",
		"denial":   "Policy terminated",
	}

	f := resolveDetailFields(row)
	assert.Equal(t, "30001", f.ClaimID)
	assert.Equal(t, "99204, 82947", f.CPTCodes)
	assert.Equal(t, "Policy terminated", f.DenialReason)
}
