package domain

import "strings"

// ClaimStatus is the adjudication status of a claim.
type ClaimStatus string

const (
	StatusDenied      ClaimStatus = "Denied"
	StatusUnderReview ClaimStatus = "Under Review"
	StatusPaid        ClaimStatus = "Paid"
	StatusPending     ClaimStatus = "Pending"
)

// ClaimStatuses lists every valid status, in display order.
var ClaimStatuses = []ClaimStatus{
	StatusDenied,
	StatusUnderReview,
	StatusPaid,
	StatusPending,
}

// ParseClaimStatus canonicalizes raw status text case-insensitively.
// Unknown or empty values default to Pending so that a sloppy exporter
// cannot fail a row on this field alone.
func ParseClaimStatus(s string) ClaimStatus {
	s = strings.TrimSpace(s)
	for _, st := range ClaimStatuses {
		if strings.EqualFold(s, string(st)) {
			return st
		}
	}
	return StatusPending
}

// IngestMode controls how the reconciliation engine treats rows whose
// natural key already exists in the store.
type IngestMode string

const (
	// ModeUpsert creates absent records and overwrites mutable fields of
	// existing ones. This is the default.
	ModeUpsert IngestMode = "upsert"
	// ModeAppend creates absent records and leaves existing ones untouched.
	ModeAppend IngestMode = "append"
)

// Sentinel field defaults substituted when a source row omits a value.
const (
	UnknownPatient = "Unknown Patient"
	UnknownInsurer = "Unknown Insurer"
)
