package ingest

import "strings"

// Row maps normalized column names to trimmed raw values. Keys are lowercased
// and whitespace-trimmed once when a row is built, so lookups are exact string
// equality against normalized aliases.
type Row map[string]string

// normalizeKey canonicalizes a column name for alias matching.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Lookup returns the value for the first alias present in the row. Alias
// order is fixed per logical field; there is no fuzzy matching.
func (r Row) Lookup(aliases ...string) (string, bool) {
	for _, alias := range aliases {
		if v, ok := r[alias]; ok {
			return v, true
		}
	}
	return "", false
}

// Accepted column aliases per logical field, in lookup order. The claim-list
// file conventionally names its key column "id" while the detail file names
// it "claim_id", hence the differing orders.
var (
	claimIDAliases       = []string{"id", "claim_id", "claim id", "claimid"}
	detailClaimIDAliases = []string{"claim_id", "id", "claim id", "claimid"}
	patientAliases       = []string{"patient_name", "patient"}
	insurerAliases       = []string{"insurer_name", "insurer"}
	billedAliases        = []string{"billed_amount", "billed"}
	paidAliases          = []string{"paid_amount", "paid"}
	statusAliases        = []string{"status"}
	dischargeDateAliases = []string{"discharge_date", "discharge date", "date"}
	cptCodesAliases      = []string{"cpt_codes", "cpt", "codes"}
	denialReasonAliases  = []string{"denial_reason", "denial", "reason"}
)

// claimFields is the typed intermediate between raw row text and a domain
// Claim. Absent optional fields are empty strings; defaulting happens during
// normalization, not here.
type claimFields struct {
	ClaimID       string
	PatientName   string
	InsurerName   string
	BilledAmount  string
	PaidAmount    string
	Status        string
	DischargeDate string
}

func resolveClaimFields(row Row) claimFields {
	var f claimFields
	f.ClaimID, _ = row.Lookup(claimIDAliases...)
	f.PatientName, _ = row.Lookup(patientAliases...)
	f.InsurerName, _ = row.Lookup(insurerAliases...)
	f.BilledAmount, _ = row.Lookup(billedAliases...)
	f.PaidAmount, _ = row.Lookup(paidAliases...)
	f.Status, _ = row.Lookup(statusAliases...)
	f.DischargeDate, _ = row.Lookup(dischargeDateAliases...)
	return f
}

// detailFields is the typed intermediate for a claim-detail row.
type detailFields struct {
	ClaimID      string
	CPTCodes     string
	DenialReason string
}

func resolveDetailFields(row Row) detailFields {
	var f detailFields
	f.ClaimID, _ = row.Lookup(detailClaimIDAliases...)
	f.CPTCodes, _ = row.Lookup(cptCodesAliases...)
	f.DenialReason, _ = row.Lookup(denialReasonAliases...)
	return f
}
