package ingest

import "strings"

// DefaultDelimiter is used when no candidate scores unambiguously. The
// conventional export format for claim data is pipe-delimited.
const DefaultDelimiter = '|'

// sniffSampleSize bounds how much of the file the sniffer inspects.
const sniffSampleSize = 2048

// delimiterCandidates in preference order for tie-breaking.
var delimiterCandidates = []rune{'|', ',', '\t'}

// SniffDelimiter inspects a bounded prefix of raw file content and picks the
// field delimiter among pipe, comma, and tab. A candidate scores when it
// appears on the first line and splits every sampled line into the same
// number of fields. It never fails: when nothing scores, it returns
// DefaultDelimiter.
func SniffDelimiter(sample string) rune {
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}

	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	// The trailing line of the sample is usually truncated mid-row; ignore
	// it when a complete line precedes it.
	if len(lines) > 1 && !strings.HasSuffix(sample, "\n") {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return DefaultDelimiter
	}

	best := rune(0)
	bestCount := 0
	for _, cand := range delimiterCandidates {
		count := countUnquoted(lines[0], cand)
		if count == 0 {
			continue
		}
		consistent := true
		for _, line := range lines[1:] {
			if countUnquoted(line, cand) != count {
				consistent = false
				break
			}
		}
		if consistent && count > bestCount {
			best = cand
			bestCount = count
		}
	}
	if best == 0 {
		return DefaultDelimiter
	}
	return best
}

// countUnquoted counts occurrences of delim outside double-quoted sections,
// so commas inside quoted values do not skew the score.
func countUnquoted(line string, delim rune) int {
	count := 0
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			count++
		}
	}
	return count
}
