package ingest

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// moneyReplacer strips currency symbols and grouping separators before
// decimal parsing.
var moneyReplacer = strings.NewReplacer("$", "", "€", "", "£", "", ",", "")

// ParseMoney converts raw currency text to a fixed-point decimal. Empty or
// unparsable input yields zero; this function never fails a row.
func ParseMoney(s string) decimal.Decimal {
	s = strings.TrimSpace(moneyReplacer.Replace(s))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// dateLayouts in trial order: ISO, US, US 2-digit year, year-first slashed.
// One-digit layout components accept zero-padded input as well.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"1/2/06",
	"2006/1/2",
}

// ParseDate tries each accepted calendar format in order. When none match it
// reports ok=false rather than guessing; the caller substitutes a default.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
