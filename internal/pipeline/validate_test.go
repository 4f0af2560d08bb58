package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCommitMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		valid   bool
	}{
		{"well-formed message", "FEAT:[ABC-42]: Add session timeout", true},
		{"plain uppercase sentence", "Add session timeout to the login flow", true},
		{"leading whitespace tolerated", "  FEAT: Add timeout", true},
		{"multi-line message", "FEAT: Add timeout\n\n- details", true},

		{"lowercase start", "feat: add session timeout", false},
		{"digit start", "42 fixes", false},
		{"meta commentary", "Based on the changes, this adds a feature.", false},
		{"meta commentary mid-message", "Summary: Based on the changes I see...", false},
		{"empty", "", false},
		{"whitespace only", "   \n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCommitMessage(tt.message))
		})
	}
}

func TestStripEmptyBrackets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"colon bracket artifact", "FEAT:[]: Add timeout", "FEAT: Add timeout"},
		{"spaced bracket artifact", "FEAT: [] Add timeout", "FEAT: Add timeout"},
		{"no artifact", "FEAT:[ABC-42]: Add timeout", "FEAT:[ABC-42]: Add timeout"},
		{"plain message untouched", "Add timeout", "Add timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripEmptyBrackets(tt.in))
		})
	}
}
