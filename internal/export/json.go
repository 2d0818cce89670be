package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Zoh007/claims-management-system/internal/domain"
)

// jsonClaim is the export-facing JSON shape for a claim plus its detail.
type jsonClaim struct {
	ClaimID       string   `json:"claim_id"`
	PatientName   string   `json:"patient_name"`
	InsurerName   string   `json:"insurer_name"`
	BilledAmount  string   `json:"billed_amount"`
	PaidAmount    string   `json:"paid_amount"`
	Underpayment  string   `json:"underpayment"`
	Status        string   `json:"status"`
	DischargeDate string   `json:"discharge_date"`
	CPTCodes      []string `json:"cpt_codes,omitempty"`
	DenialReason  string   `json:"denial_reason,omitempty"`
}

// WriteJSON writes the claims as a JSON array. Amounts are emitted as fixed
// two-decimal strings so no precision is lost to float encoding.
func WriteJSON(w io.Writer, claims []domain.Claim, details map[string]*domain.ClaimDetail) error {
	out := make([]jsonClaim, 0, len(claims))
	for i := range claims {
		c := &claims[i]
		jc := jsonClaim{
			ClaimID:       c.ClaimID,
			PatientName:   c.PatientName,
			InsurerName:   c.InsurerName,
			BilledAmount:  c.BilledAmount.StringFixed(2),
			PaidAmount:    c.PaidAmount.StringFixed(2),
			Underpayment:  c.UnderpaymentAmount().StringFixed(2),
			Status:        string(c.Status),
			DischargeDate: c.DischargeDate.Format("2006-01-02"),
		}
		if d := details[c.ClaimID]; d != nil {
			jc.CPTCodes = d.CPTCodeList()
			jc.DenialReason = d.DenialReason
		}
		out = append(out, jc)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("export.WriteJSON: %w", err)
	}
	return nil
}
