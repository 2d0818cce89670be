package ingest

import (
	"fmt"
	"sort"
	"strings"
)

// RowError describes a single row that could not be applied, with the raw
// content preserved for operator diagnosis.
type RowError struct {
	Line   int    `json:"line"`
	Raw    string `json:"raw"`
	Reason string `json:"reason"`
}

func (e RowError) String() string {
	return fmt.Sprintf("line %d: %s (%s)", e.Line, e.Reason, e.Raw)
}

// Outcome aggregates per-row results for a single ingestion pass.
// MissingRefs counts detail rows whose parent claim could not be found;
// those rows are not included in Failed so operators can distinguish a bad
// row from out-of-order files.
type Outcome struct {
	Created     int        `json:"created"`
	Updated     int        `json:"updated"`
	Skipped     int        `json:"skipped"`
	Failed      int        `json:"failed"`
	MissingRefs int        `json:"missing_refs"`
	RowErrors   []RowError `json:"row_errors,omitempty"`
}

// Processed is the number of rows the pass successfully applied or
// intentionally left alone.
func (o *Outcome) Processed() int {
	return o.Created + o.Updated + o.Skipped
}

func (o *Outcome) recordFailure(line int, row Row, reason string) {
	o.Failed++
	o.RowErrors = append(o.RowErrors, RowError{Line: line, Raw: rowString(row), Reason: reason})
}

func (o *Outcome) recordMissingRef(line int, row Row, reason string) {
	o.MissingRefs++
	o.RowErrors = append(o.RowErrors, RowError{Line: line, Raw: rowString(row), Reason: reason})
}

// rowString renders a row deterministically for error reporting.
func rowString(row Row) string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+row[k])
	}
	return strings.Join(parts, " ")
}
