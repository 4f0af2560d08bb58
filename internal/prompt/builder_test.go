package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitscribe/gitscribe/pkg/lang"
)

func TestBuild_SectionOrdering(t *testing.T) {
	out, err := Build(Request{
		Kind:     KindCommit,
		Evidence: "File: auth.py (modified)",
		Branch:   "feature/ABC-42",
		Ticket:   "ABC-42",
		Context:  "part of the auth rework",
		Language: lang.English,
	})
	require.NoError(t, err)

	role := strings.Index(out, roleCommit)
	evidence := strings.Index(out, "=== STAGED CHANGES ===")
	instructions := strings.Index(out, "Required shape:")
	params := strings.Index(out, "Branch: feature/ABC-42")
	userContext := strings.Index(out, "=== ADDITIONAL CONTEXT FROM THE DEVELOPER ===")

	require.NotEqual(t, -1, role)
	require.NotEqual(t, -1, evidence)
	require.NotEqual(t, -1, instructions)
	require.NotEqual(t, -1, params)
	require.NotEqual(t, -1, userContext)

	// Instructions follow evidence; user context comes last
	assert.Less(t, role, evidence)
	assert.Less(t, evidence, instructions)
	assert.Less(t, instructions, params)
	assert.Less(t, params, userContext)

	assert.Contains(t, out, "Ticket reference: ABC-42")
	assert.Contains(t, out, "part of the auth rework")
}

func TestBuild_EvidenceLabels(t *testing.T) {
	tests := []struct {
		name  string
		req   Request
		label string
	}{
		{"staged changes", Request{Kind: KindCommit}, "=== STAGED CHANGES ==="},
		{"recent commits", Request{Kind: KindCommit, RecentCommits: true}, "=== RECENT COMMITS ==="},
		{"ticket from staged changes", Request{Kind: KindTicket}, "=== STAGED CHANGES ==="},
		{"consistency fix", Request{Kind: KindConsistencyFix}, "=== ORIGINAL MESSAGE ==="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Evidence = "evidence"
			out, err := Build(tt.req)
			require.NoError(t, err)
			assert.Contains(t, out, tt.label)
		})
	}
}

func TestBuild_MissingTicketDegradesGracefully(t *testing.T) {
	out, err := Build(Request{
		Kind:     KindCommit,
		Evidence: "File: auth.py (modified)",
		Branch:   "main",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Ticket reference: (none)")
	assert.NotContains(t, out, "Ticket reference: \n")
}

func TestBuild_NoContextSectionWithoutContext(t *testing.T) {
	out, err := Build(Request{Kind: KindTicket, Evidence: "e", Branch: "main"})
	require.NoError(t, err)
	assert.NotContains(t, out, "ADDITIONAL CONTEXT")
}

func TestBuild_InstructionContracts(t *testing.T) {
	t.Run("commit template carries the category vocabulary", func(t *testing.T) {
		out, err := Build(Request{Kind: KindCommit, Evidence: "e"})
		require.NoError(t, err)
		assert.Contains(t, out, "FEAT, BUGFIX, REFACTOR, CHORE, CICD, ETC")
		assert.Contains(t, out, "Output only the commit message itself.")
		assert.Contains(t, out, "FEAT:[ABC-42]:")
	})

	t.Run("ticket template mandates title and description", func(t *testing.T) {
		out, err := Build(Request{Kind: KindTicket, Evidence: "e"})
		require.NoError(t, err)
		assert.Contains(t, out, "Title:")
		assert.Contains(t, out, "Description:")
	})

	t.Run("change request title carries the category prefix", func(t *testing.T) {
		out, err := Build(Request{Kind: KindChangeRequest, Evidence: "e"})
		require.NoError(t, err)
		assert.Contains(t, out, "Title: CATEGORY:[TICKET-ID]:")
	})

	t.Run("consistency template reformats instead of regenerating", func(t *testing.T) {
		out, err := Build(Request{Kind: KindConsistencyFix, Evidence: "raw message"})
		require.NoError(t, err)
		assert.Contains(t, out, "only reformat it")
		assert.Contains(t, out, "bullet points, line breaks")
	})
}

func TestBuild_LanguageInjection(t *testing.T) {
	out, err := Build(Request{Kind: KindCommit, Evidence: "e", Language: lang.Japanese})
	require.NoError(t, err)
	assert.Contains(t, out, "Output language: Japanese")

	out, err = Build(Request{Kind: KindCommit, Evidence: "e"})
	require.NoError(t, err)
	assert.Contains(t, out, "Output language: English")
}

func TestBuild_UnknownKind(t *testing.T) {
	_, err := Build(Request{Kind: Kind(99), Evidence: "e"})
	assert.Error(t, err)
}
