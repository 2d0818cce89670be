package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseClaimStatus(t *testing.T) {
	tests := []struct {
		in   string
		want ClaimStatus
	}{
		{"Denied", StatusDenied},
		{"denied", StatusDenied},
		{"UNDER REVIEW", StatusUnderReview},
		{"Paid", StatusPaid},
		{"Pending", StatusPending},
		{"", StatusPending},
		{"Escalated", StatusPending},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseClaimStatus(tt.in), "input %q", tt.in)
	}
}

func TestClaimUnderpaymentAmount(t *testing.T) {
	c := Claim{
		BilledAmount: decimal.RequireFromString("150.50"),
		PaidAmount:   decimal.RequireFromString("100.25"),
	}
	assert.True(t, c.UnderpaymentAmount().Equal(decimal.RequireFromString("50.25")))

	// Overpayment yields a negative underpayment rather than clamping.
	over := Claim{
		BilledAmount: decimal.RequireFromString("100"),
		PaidAmount:   decimal.RequireFromString("120"),
	}
	assert.True(t, over.UnderpaymentAmount().Equal(decimal.RequireFromString("-20")))
}

func TestCPTCodeList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"comma separated", "99213, 99214,99215", []string{"99213", "99214", "99215"}},
		{"newline separated", "99213\n99214", []string{"99213", "99214"}},
		{"deduplicated preserving order", "99214, 99213, 99214", []string{"99214", "99213"}},
		{"empty", "", []string{}},
		{"whitespace only", "  \n\t ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ClaimDetail{CPTCodes: tt.raw}
			assert.Equal(t, tt.want, d.CPTCodeList())
		})
	}
}
