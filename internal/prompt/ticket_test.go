package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketFromBranch(t *testing.T) {
	tests := []struct {
		name   string
		branch string
		want   string
	}{
		{"feature branch with ticket", "feature/ABC-42", "ABC-42"},
		{"ticket only", "PROJ-1234", "PROJ-1234"},
		{"ticket embedded mid-name", "bugfix/OPS-7-retry-loop", "OPS-7"},
		{"no ticket", "main", ""},
		{"lowercase is not a ticket", "feature/abc-42", ""},
		{"digits without letters", "release/2024-01", ""},
		{"empty branch", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TicketFromBranch(tt.branch))
		})
	}
}

func TestTicketFromBranch_Idempotent(t *testing.T) {
	branch := "feature/ABC-42-login"
	first := TicketFromBranch(branch)
	assert.Equal(t, first, TicketFromBranch(branch))

	// Extracting from the extraction result is also stable
	assert.Equal(t, first, TicketFromBranch(first))
}
