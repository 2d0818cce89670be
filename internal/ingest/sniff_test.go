package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   rune
	}{
		{
			name:   "pipe delimited",
			sample: "id|patient_name|billed_amount\n30001|John Doe|100.00\n30002|Jane Doe|250.50\n",
			want:   '|',
		},
		{
			name:   "comma delimited",
			sample: "id,patient_name,billed_amount\n30001,John Doe,100.00\n",
			want:   ',',
		},
		{
			name:   "tab delimited",
			sample: "id\tpatient_name\tbilled\n30001\tJohn Doe\t100.00\n",
			want:   '\t',
		},
		{
			name:   "no delimiter falls back to pipe",
			sample: "justoneword\nanotherword\n",
			want:   '|',
		},
		{
			name:   "empty sample falls back to pipe",
			sample: "",
			want:   '|',
		},
		{
			name: "commas inside values do not beat a consistent pipe",
			sample: "id|patient_name|billed_amount\n" +
				"30001|Doe, John|1,000.00\n" +
				"30002|Doe, Jane|200.00\n",
			want: '|',
		},
		{
			name:   "inconsistent candidate falls back to pipe",
			sample: "a,b\nc,d,e\nf\n",
			want:   '|',
		},
		{
			name:   "truncated trailing line is ignored",
			sample: "id,patient\n30001,John\n30002,Ja",
			want:   ',',
		},
		{
			name:   "single header line only",
			sample: "id,patient_name,billed_amount",
			want:   ',',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffDelimiter(tt.sample))
		})
	}
}
