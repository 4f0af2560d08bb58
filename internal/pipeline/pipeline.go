package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitscribe/gitscribe/internal/analysis"
	"github.com/gitscribe/gitscribe/internal/config"
	"github.com/gitscribe/gitscribe/internal/git"
	"github.com/gitscribe/gitscribe/internal/llm"
	"github.com/gitscribe/gitscribe/internal/log"
	"github.com/gitscribe/gitscribe/internal/prompt"
	"github.com/gitscribe/gitscribe/pkg/lang"
)

// Options parameterize a single pipeline run
type Options struct {
	Kind             prompt.Kind
	RecentCommits    int  // commit window size, used when UseRecentCommits is set
	UseRecentCommits bool // analyze recent commits instead of the staged diff
	Context          string
	MessageOnly      bool // suppress the commit side effect
	Language         lang.Language

	// ConfirmCommit, when set, is asked before the commit is created.
	// A nil hook commits without prompting.
	ConfirmCommit func(message string) (bool, error)
}

// Artifact is the result of one pipeline run. It exists only within
// the invocation; nothing is persisted beyond the commit itself.
type Artifact struct {
	Kind      prompt.Kind
	Message   string
	Ticket    string
	Refined   bool // the consistency pass replaced the raw response
	Committed bool
}

// Pipeline sequences evidence gathering, prompt construction, backend
// completion, validation and the optional commit into one synchronous
// run
type Pipeline struct {
	inspector git.Inspector
	backend   llm.Backend
	cfg       config.Config
}

// New creates a Pipeline over its two collaborators
func New(inspector git.Inspector, backend llm.Backend, cfg config.Config) *Pipeline {
	return &Pipeline{inspector: inspector, backend: backend, cfg: cfg}
}

// Generate runs the pipeline to completion and returns the artifact or
// a typed terminal error
func (p *Pipeline) Generate(ctx context.Context, opts Options) (*Artifact, error) {
	inRepo, err := p.inspector.IsRepository(ctx)
	if err != nil {
		return nil, wrap(KindNotARepository, "checking repository", err)
	}
	if !inRepo {
		return nil, failf(KindNotARepository, "current directory is not inside a git repository")
	}

	branch, err := p.inspector.CurrentBranch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current branch: %w", err)
	}
	ticket := prompt.TicketFromBranch(branch)
	log.Step("branch %q, ticket reference %q", branch, ticket)

	evidence, err := p.gatherEvidence(ctx, opts)
	if err != nil {
		return nil, err
	}
	log.Step("evidence digest built (%d bytes)", len(evidence))

	req := prompt.Request{
		Kind:          opts.Kind,
		Evidence:      evidence,
		RecentCommits: opts.UseRecentCommits,
		Branch:        branch,
		Ticket:        ticket,
		Context:       opts.Context,
		Language:      opts.Language,
	}
	builtPrompt, err := prompt.Build(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}
	log.Step("prompt built (%d bytes), requesting completion from model %q", len(builtPrompt), p.cfg.Model)

	message, err := p.backend.Complete(ctx, builtPrompt)
	if err != nil {
		return nil, wrap(KindBackendFailure, "generation", err)
	}
	if message == "" {
		return nil, failf(KindBackendFailure, "backend returned an empty response")
	}

	artifact := &Artifact{Kind: opts.Kind, Message: message, Ticket: ticket}

	// Only commit messages carry the structural contract; tickets and
	// change requests have freer prose shape and skip validation.
	if opts.Kind == prompt.KindCommit && !ValidateCommitMessage(message) {
		fixed, err := p.enforceConsistency(ctx, message, opts, branch, ticket)
		if err != nil {
			return nil, err
		}
		artifact.Message = fixed
		artifact.Refined = true
	}

	if p.shouldCommit(opts) {
		if err := p.createCommit(ctx, artifact, opts); err != nil {
			return nil, err
		}
	}

	return artifact, nil
}

// gatherEvidence builds the digest for the chosen evidence mode,
// failing fast when the mode yields nothing
func (p *Pipeline) gatherEvidence(ctx context.Context, opts Options) (string, error) {
	if opts.UseRecentCommits {
		if opts.RecentCommits <= 0 {
			return "", failf(KindNoEvidence, "commit count must be a positive integer, got %d", opts.RecentCommits)
		}
		records, err := p.inspector.RecentCommits(ctx, opts.RecentCommits)
		if err != nil {
			return "", fmt.Errorf("failed to list recent commits: %w", err)
		}
		if len(records) == 0 {
			return "", failf(KindNoEvidence, "no commits found in the requested window")
		}
		log.Step("analyzing %d recent commits", len(records))

		var sb strings.Builder
		for _, r := range records {
			sb.WriteString(r.ShortHash)
			sb.WriteString(" ")
			sb.WriteString(r.Subject)
			sb.WriteString("\n")
		}
		return strings.TrimRight(sb.String(), "\n"), nil
	}

	files, err := p.inspector.StagedFiles(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list staged files: %w", err)
	}
	if len(files) == 0 {
		return "", failf(KindNoEvidence, "no staged changes found")
	}
	log.Step("analyzing %d staged files", len(files))

	classification := analysis.Classify(files)
	digest, err := analysis.Summarize(ctx, p.inspector, files)
	if err != nil {
		return "", fmt.Errorf("failed to summarize staged diff: %w", err)
	}

	return classification.Render() + "\n\n" + digest, nil
}

// shouldCommit reports whether this run performs the commit side
// effect: commit kind, staged-change mode, and not message-only
func (p *Pipeline) shouldCommit(opts Options) bool {
	return opts.Kind == prompt.KindCommit && !opts.UseRecentCommits && !opts.MessageOnly
}

// createCommit asks the optional confirmation hook and invokes the
// commit collaborator, at most once per run
func (p *Pipeline) createCommit(ctx context.Context, artifact *Artifact, opts Options) error {
	if opts.ConfirmCommit != nil {
		confirmed, err := opts.ConfirmCommit(artifact.Message)
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			log.Step("commit declined by user")
			return nil
		}
	}

	if err := p.inspector.Commit(ctx, artifact.Message); err != nil {
		return wrap(KindCommitFailure, "creating commit", err)
	}
	artifact.Committed = true
	log.Step("commit created")
	return nil
}
