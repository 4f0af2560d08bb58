package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// metaCommentaryMarker is the phrase a backend emits when it describes
// the change instead of producing the artifact itself
const metaCommentaryMarker = "Based on the changes"

// ValidateCommitMessage is the structural acceptance test for commit
// messages. It catches the two failure modes seen in practice: preamble
// leakage and lowercase drift. It is not a grammar check.
func ValidateCommitMessage(message string) bool {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return false
	}

	first, _ := utf8.DecodeRuneInString(trimmed)
	if !unicode.IsUpper(first) {
		return false
	}

	return !strings.Contains(trimmed, metaCommentaryMarker)
}
