package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitscribe/gitscribe/internal/config"
	"github.com/gitscribe/gitscribe/internal/git"
	"github.com/gitscribe/gitscribe/internal/llm"
	"github.com/gitscribe/gitscribe/internal/log"
	"github.com/gitscribe/gitscribe/internal/pipeline"
	"github.com/gitscribe/gitscribe/internal/prompt"
	"github.com/gitscribe/gitscribe/internal/ui"
	"github.com/gitscribe/gitscribe/pkg/lang"
)

var (
	// Flags
	ticketMode        bool
	changeRequestMode bool
	recentCommits     int
	messageOnly       bool
	userContext       string
	modelName         string
	languageFlag      string
	autoYes           bool
	verboseMode       bool
	configFile        string

	// Version info
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

// rootCmd generates a commit message by default; -t and -r switch the
// artifact kind
var rootCmd = &cobra.Command{
	Use:   "gitscribe",
	Short: "Turn your staged changes into commit messages, tickets and change requests",
	Long: `gitscribe analyzes the state of your git working tree (staged changes,
or a window of recent commits), sends a bounded, redacted summary of it
to a generative text backend, and prints a normalized artifact:

  - a commit message (default; committed unless --message-only)
  - an issue-tracker ticket description (--ticket)
  - a change-request description (--change-request)

Sensitive files (keys, credentials, dumps, logs) never leave the machine;
only a redaction marker is sent in their place.

Examples:
  gitscribe
  gitscribe --message-only
  gitscribe -t -c "part of the auth rework"
  gitscribe -r -n 15
  gitscribe -m gpt-4o`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, commit, time string) {
	version = v
	gitCommit = commit
	buildTime = time
}

func init() {
	rootCmd.Flags().BoolVarP(&ticketMode, "ticket", "t", false, "Generate an issue-tracker ticket description")
	rootCmd.Flags().BoolVarP(&changeRequestMode, "change-request", "r", false, "Generate a change-request description")
	rootCmd.Flags().IntVarP(&recentCommits, "commits", "n", 0, "Analyze the last N commits instead of the staged diff")
	rootCmd.Flags().BoolVar(&messageOnly, "message-only", false, "Print the message without creating a commit")
	rootCmd.Flags().StringVarP(&userContext, "context", "c", "", "Additional context for the backend")
	rootCmd.Flags().StringVarP(&modelName, "model", "m", "", "Model to use (overrides configuration)")
	rootCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Output language (en, zh, ja, ...)")
	rootCmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "Commit without asking for confirmation")
	rootCmd.Flags().BoolVarP(&verboseMode, "verbose", "v", false, "Emit step-by-step trace output")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Config file path (default: <repo>/.gitscribe.conf, ~/.gitscribe.conf)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if ticketMode && changeRequestMode {
		return &pipeline.Error{
			Kind: pipeline.KindMutuallyExclusiveOptions,
			Step: "--ticket and --change-request cannot be combined",
		}
	}

	if !git.Available() {
		return &pipeline.Error{
			Kind: pipeline.KindMissingDependency,
			Step: "git binary not found on PATH",
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	inspector := git.NewInspector(cwd)

	inRepo, err := inspector.IsRepository(ctx)
	if err != nil || !inRepo {
		return &pipeline.Error{
			Kind: pipeline.KindNotARepository,
			Step: "current directory is not inside a git repository",
			Err:  err,
		}
	}

	repoRoot, err := inspector.TopLevel(ctx)
	if err != nil {
		return fmt.Errorf("failed to locate repository root: %w", err)
	}

	cfg, err := config.Load(configFile, repoRoot)
	if err != nil {
		return &pipeline.Error{Kind: pipeline.KindInvalidConfiguration, Step: "loading configuration", Err: err}
	}

	// CLI flags override configuration-resolved values
	if modelName != "" {
		cfg.Model = modelName
	}
	if languageFlag != "" {
		cfg.Language = languageFlag
	}
	if verboseMode {
		cfg.Verbose = true
	}
	log.SetVerbose(cfg.Verbose)

	if err := cfg.Validate(); err != nil {
		return &pipeline.Error{Kind: pipeline.KindInvalidConfiguration, Step: "validating configuration", Err: err}
	}
	log.Step("using model %q via provider %q", cfg.Model, cfg.Provider)

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		return &pipeline.Error{Kind: pipeline.KindInvalidConfiguration, Step: "creating backend provider", Err: err}
	}
	backend := llm.NewBackend(provider, llm.DefaultRetryConfig())

	opts := pipeline.Options{
		Kind:             artifactKind(),
		RecentCommits:    recentCommits,
		UseRecentCommits: cmd.Flags().Changed("commits"),
		Context:          userContext,
		MessageOnly:      messageOnly,
		Language:         lang.Parse(cfg.Language),
	}
	if !autoYes {
		opts.ConfirmCommit = func(message string) (bool, error) {
			return ui.ConfirmWithDefault("\nCommit with this message?", true, os.Stdin, os.Stderr)
		}
	}

	pipe := pipeline.New(inspector, backend, cfg)
	artifact, err := pipe.Generate(ctx, opts)
	if err != nil {
		return err
	}

	if err := ui.ShowArtifact(artifactTitle(artifact.Kind), artifact.Message, os.Stdout); err != nil {
		return err
	}
	if artifact.Committed {
		log.Info("Commit created.")
	}
	return nil
}

// artifactKind maps the kind flags to the artifact kind
func artifactKind() prompt.Kind {
	switch {
	case ticketMode:
		return prompt.KindTicket
	case changeRequestMode:
		return prompt.KindChangeRequest
	default:
		return prompt.KindCommit
	}
}

// artifactTitle names the printed artifact
func artifactTitle(kind prompt.Kind) string {
	switch kind {
	case prompt.KindTicket:
		return "Ticket description"
	case prompt.KindChangeRequest:
		return "Change-request description"
	default:
		return "Commit message"
	}
}
