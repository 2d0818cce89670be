package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Claim represents an insurance claim reconciled by its external claim ID.
type Claim struct {
	ID            uuid.UUID       `db:"id" json:"-"`
	ClaimID       string          `db:"claim_id" json:"id"`
	PatientName   string          `db:"patient_name" json:"patient_name"`
	InsurerName   string          `db:"insurer_name" json:"insurer_name"`
	BilledAmount  decimal.Decimal `db:"billed_amount" json:"billed_amount"`
	PaidAmount    decimal.Decimal `db:"paid_amount" json:"paid_amount"`
	Status        ClaimStatus     `db:"status" json:"status"`
	DischargeDate time.Time       `db:"discharge_date" json:"discharge_date"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// UnderpaymentAmount is the portion of the billed amount the insurer has not paid.
func (c *Claim) UnderpaymentAmount() decimal.Decimal {
	return c.BilledAmount.Sub(c.PaidAmount)
}

// ClaimDetail holds supplemental claim information. At most one detail row
// exists per claim; re-ingestion replaces its fields in place.
type ClaimDetail struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ClaimID      uuid.UUID `db:"claim_id" json:"claim_id"`
	CPTCodes     string    `db:"cpt_codes" json:"cpt_codes"`
	DenialReason string    `db:"denial_reason" json:"denial_reason"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// CPTCodeList splits the free-text CPT codes field into individual codes,
// deduplicated while preserving order. Codes may be separated by commas,
// whitespace, or line breaks depending on the source exporter.
func (d *ClaimDetail) CPTCodeList() []string {
	fields := strings.FieldsFunc(d.CPTCodes, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\t' || r == ' '
	})
	seen := make(map[string]struct{}, len(fields))
	codes := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		codes = append(codes, f)
	}
	return codes
}

// Flag marks a claim for review by a user.
type Flag struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ClaimID   uuid.UUID `db:"claim_id" json:"claim_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Reason    string    `db:"reason" json:"reason"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Note is a user annotation attached to a claim.
type Note struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ClaimID   uuid.UUID `db:"claim_id" json:"claim_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated operator of the claims dashboard.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Stats holds aggregate claim figures for the dashboard.
type Stats struct {
	TotalClaims       int             `db:"total_claims" json:"total_claims"`
	FlaggedClaims     int             `db:"flagged_claims" json:"flagged_claims"`
	TotalBilled       decimal.Decimal `db:"total_billed" json:"total_billed"`
	TotalPaid         decimal.Decimal `db:"total_paid" json:"total_paid"`
	TotalUnderpayment decimal.Decimal `db:"total_underpayment" json:"total_underpayment"`
	StatusDenied      int             `db:"status_denied" json:"status_denied"`
	StatusUnderReview int             `db:"status_under_review" json:"status_under_review"`
	StatusPaid        int             `db:"status_paid" json:"status_paid"`
	StatusPending     int             `db:"status_pending" json:"status_pending"`
}
