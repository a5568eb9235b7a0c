package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deckgen/deckgen/pkg/config"
)

func newTestNamer() *Namer {
	return NewNamer(config.Default().Naming)
}

func TestJobName(t *testing.T) {
	tests := []struct {
		name  string
		row   Row
		index int
		want  string
	}{
		{
			name:  "job_name column wins",
			row:   Row{"job_name": "Example_Job"},
			index: 0,
			want:  "Example_Job",
		},
		{
			name:  "column priority order",
			row:   Row{"case": "from_case", "job_name": "from_job_name"},
			index: 0,
			want:  "from_job_name",
		},
		{
			name:  "case variant column recognized",
			row:   Row{"Case": "MyCase"},
			index: 0,
			want:  "MyCase",
		},
		{
			name:  "whitespace-only value falls through",
			row:   Row{"job_name": "   ", "case": "real_name"},
			index: 0,
			want:  "real_name",
		},
		{
			name:  "fallback to padded index",
			row:   Row{},
			index: 1,
			want:  "case_002",
		},
		{
			name:  "fallback pads to width three",
			row:   Row{"unrelated": "x"},
			index: 41,
			want:  "case_042",
		},
		{
			name:  "name value is sanitized",
			row:   Row{"job_name": "My Job!*"},
			index: 0,
			want:  "My_Job_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestNamer().JobName(tt.row, tt.index))
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces and punctuation", "My Job!*", "My_Job_"},
		{"already safe", "case-01_b", "case-01_b"},
		{"run of invalid characters collapses", "a!!!b", "a_b"},
		{"all invalid becomes default", "!*?", "case_000"},
		{"empty becomes default", "", "case_000"},
	}

	namer := newTestNamer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := namer.Sanitize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}
