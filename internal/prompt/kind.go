package prompt

import "fmt"

// Kind selects the instruction template and the output contract of a
// generated artifact
type Kind int

const (
	KindCommit Kind = iota
	KindTicket
	KindChangeRequest
	KindConsistencyFix
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindCommit:
		return "commit"
	case KindTicket:
		return "ticket"
	case KindChangeRequest:
		return "change-request"
	case KindConsistencyFix:
		return "consistency-fix"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
