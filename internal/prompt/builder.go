package prompt

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/gitscribe/gitscribe/pkg/lang"
)

// Request carries everything that determines the backend input. There
// is no hidden state: two equal requests build the same prompt.
type Request struct {
	Kind          Kind
	Evidence      string // digest of staged changes, recent commits, or the message being reformatted
	RecentCommits bool   // evidence came from commit history rather than the staged diff
	Branch        string
	Ticket        string // extracted ticket reference, may be empty
	Context       string // caller-supplied context, appended last
	Language      lang.Language
}

// promptTemplate fixes the section ordering: role first, then evidence,
// then instructions, then the parameter line, with user context last so
// it can override ambiguous cases.
var promptTemplate = template.Must(template.New("prompt").Parse(`{{.Role}}

=== {{.Label}} ===
{{.Evidence}}

{{.Instructions}}

Branch: {{.Branch}}
Ticket reference: {{.TicketLine}}
Output language: {{.Language}}
{{- if .Context}}

=== ADDITIONAL CONTEXT FROM THE DEVELOPER ===
{{.Context}}
{{- end}}
`))

type templateData struct {
	Role         string
	Label        string
	Evidence     string
	Instructions string
	Branch       string
	TicketLine   string
	Language     string
	Context      string
}

// Build assembles the full backend prompt for a request
func Build(req Request) (string, error) {
	role, instructions, err := templateFor(req.Kind)
	if err != nil {
		return "", err
	}

	ticketLine := req.Ticket
	if ticketLine == "" {
		ticketLine = "(none)"
	}

	language := req.Language
	if language == "" {
		language = lang.Default()
	}

	data := templateData{
		Role:         role,
		Label:        labelFor(req),
		Evidence:     req.Evidence,
		Instructions: instructions,
		Branch:       req.Branch,
		TicketLine:   ticketLine,
		Language:     language.DisplayName(),
		Context:      req.Context,
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}

// templateFor selects the role sentence and instruction template for a
// kind. An unknown kind is an error, not a silent fallback.
func templateFor(kind Kind) (role, instructions string, err error) {
	switch kind {
	case KindCommit:
		return roleCommit, fmt.Sprintf(commitInstructions, categoryList()), nil
	case KindTicket:
		return roleTicket, ticketInstructions, nil
	case KindChangeRequest:
		return roleChangeRequest, fmt.Sprintf(changeRequestInstructions, categoryList()), nil
	case KindConsistencyFix:
		return roleConsistencyFix, fmt.Sprintf(consistencyFixInstructions, categoryList()), nil
	default:
		return "", "", fmt.Errorf("unknown artifact kind: %s", kind)
	}
}

// labelFor picks the evidence block label
func labelFor(req Request) string {
	if req.Kind == KindConsistencyFix {
		return labelOriginalMessage
	}
	if req.RecentCommits {
		return labelRecentCommits
	}
	return labelStagedChanges
}
