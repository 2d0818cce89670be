package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// ReadRows reads an entire delimited text file into row maps. The file is
// read once into memory, the delimiter is sniffed from its prefix, and the
// first row is taken as the header. Fully empty rows are dropped. Unknown
// columns are carried through and ignored by the schema resolver.
func ReadRows(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rows, err := parseRows(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}

func parseRows(data string) ([]Row, error) {
	delim := SniffDelimiter(data)

	r := csv.NewReader(strings.NewReader(data))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = normalizeKey(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		empty := true
		for _, v := range record {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		row := make(Row, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(record) {
				row[key] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
