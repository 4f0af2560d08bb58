package prompt

import "regexp"

// ticketPattern matches an issue-tracker reference such as ABC-42
var ticketPattern = regexp.MustCompile(`[A-Z]+-[0-9]+`)

// TicketFromBranch extracts a ticket reference from a branch name.
// Absence of a match yields the empty string, never an error.
func TicketFromBranch(branch string) string {
	return ticketPattern.FindString(branch)
}
