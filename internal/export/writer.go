package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/Zoh007/claims-management-system/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the claim export header row.
var columns = []string{
	"Claim ID",
	"Patient Name",
	"Insurer Name",
	"Billed Amount",
	"Paid Amount",
	"Underpayment",
	"Status",
	"Discharge Date",
	"CPT Codes",
	"Denial Reason",
}

// Writer wraps csv.Writer for exporting claims as pipe-delimited CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes pipe-delimited CSV to w.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '|'
	return &Writer{csv: cw}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteClaims converts a batch of claims to CSV rows and writes them.
// details maps each claim's external claim ID to its detail row, when present.
func (w *Writer) WriteClaims(claims []domain.Claim, details map[string]*domain.ClaimDetail) error {
	for i := range claims {
		row := claimToRow(&claims[i], details[claims[i].ClaimID])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func claimToRow(claim *domain.Claim, detail *domain.ClaimDetail) []string {
	row := make([]string, len(columns))
	row[0] = claim.ClaimID
	row[1] = claim.PatientName
	row[2] = claim.InsurerName
	row[3] = claim.BilledAmount.StringFixed(2)
	row[4] = claim.PaidAmount.StringFixed(2)
	row[5] = claim.UnderpaymentAmount().StringFixed(2)
	row[6] = string(claim.Status)
	row[7] = claim.DischargeDate.Format("2006-01-02")
	if detail != nil {
		row[8] = detail.CPTCodes
		row[9] = detail.DenialReason
	}
	return row
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
