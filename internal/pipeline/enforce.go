package pipeline

import (
	"context"
	"regexp"

	"github.com/gitscribe/gitscribe/internal/log"
	"github.com/gitscribe/gitscribe/internal/prompt"
)

// emptyBrackets matches the artifact the consistency template leaves
// behind when the backend fills the ticket position with nothing
var emptyBrackets = regexp.MustCompile(`:?\[\] ?`)

// enforceConsistency runs the bounded one-shot reformatting pass on a
// commit message the validator rejected. It never loops: if this pass
// also produces nothing, the run fails with RefinementFailure.
func (p *Pipeline) enforceConsistency(ctx context.Context, raw string, opts Options, branch, ticket string) (string, error) {
	log.Step("message failed validation, running consistency pass")

	req := prompt.Request{
		Kind:     prompt.KindConsistencyFix,
		Evidence: raw,
		Branch:   branch,
		Ticket:   ticket,
		Language: opts.Language,
	}
	fixPrompt, err := prompt.Build(req)
	if err != nil {
		return "", wrap(KindBackendFailure, "building consistency prompt", err)
	}

	fixed, err := p.backend.Complete(ctx, fixPrompt)
	if err != nil {
		return "", wrap(KindBackendFailure, "consistency pass", err)
	}
	if fixed == "" {
		return "", failf(KindRefinementFailure, "consistency pass returned an empty message")
	}

	if ticket == "" {
		fixed = stripEmptyBrackets(fixed)
	}
	return fixed, nil
}

// stripEmptyBrackets removes the literal empty bracket pair the
// template cannot avoid when no ticket reference exists, turning
// "FEAT:[]: summary" into "FEAT: summary".
func stripEmptyBrackets(message string) string {
	return emptyBrackets.ReplaceAllString(message, "")
}
