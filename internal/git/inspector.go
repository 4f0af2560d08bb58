package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Operation is the kind of change recorded for a staged file
type Operation int

const (
	OpModified Operation = iota
	OpAdded
	OpDeleted
)

// String returns the lowercase name of the operation
func (o Operation) String() string {
	switch o {
	case OpAdded:
		return "added"
	case OpDeleted:
		return "deleted"
	default:
		return "modified"
	}
}

// StagedFile is one entry of the staged-file listing
type StagedFile struct {
	Path string
	Op   Operation
}

// CommitRecord is one entry of the recent-commit listing
type CommitRecord struct {
	ShortHash string
	Subject   string
}

// Inspector defines the read/write surface of the version-control
// collaborator consumed by the pipeline. Tests substitute deterministic
// fakes for it.
type Inspector interface {
	// IsRepository reports whether the working directory is inside a git work tree
	IsRepository(ctx context.Context) (bool, error)

	// TopLevel returns the absolute path of the repository root
	TopLevel(ctx context.Context) (string, error)

	// CurrentBranch returns the current branch name
	CurrentBranch(ctx context.Context) (string, error)

	// StagedFiles lists the files staged for the next commit
	StagedFiles(ctx context.Context) ([]StagedFile, error)

	// StagedDiff returns the staged diff for a single file
	StagedDiff(ctx context.Context, path string) (string, error)

	// RecentCommits returns the last n commits, newest first
	RecentCommits(ctx context.Context, n int) ([]CommitRecord, error)

	// Commit creates a commit with the given message
	Commit(ctx context.Context, message string) error
}

// Available reports whether the git binary can be found on PATH
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// CLIInspector implements Inspector by shelling out to the git binary
type CLIInspector struct {
	workDir string
}

// NewInspector creates a CLIInspector rooted at workDir
func NewInspector(workDir string) *CLIInspector {
	return &CLIInspector{workDir: workDir}
}

// runGit runs a git command and returns the trimmed output
func (i *CLIInspector) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = i.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w\n%s", strings.Join(args, " "), err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsRepository reports whether the working directory is inside a git work tree
func (i *CLIInspector) IsRepository(ctx context.Context) (bool, error) {
	out, err := i.runGit(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		if strings.Contains(err.Error(), "not a git repository") {
			return false, nil
		}
		return false, err
	}
	return out == "true", nil
}

// TopLevel returns the absolute path of the repository root
func (i *CLIInspector) TopLevel(ctx context.Context) (string, error) {
	return i.runGit(ctx, "rev-parse", "--show-toplevel")
}

// CurrentBranch returns the current branch name
func (i *CLIInspector) CurrentBranch(ctx context.Context) (string, error) {
	return i.runGit(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// StagedFiles lists the files staged for the next commit, in the order
// git reports them
func (i *CLIInspector) StagedFiles(ctx context.Context) ([]StagedFile, error) {
	out, err := i.runGit(ctx, "diff", "--cached", "--name-status")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	var files []StagedFile
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		// Renames and copies carry two paths; the last one is the
		// path the commit will contain.
		files = append(files, StagedFile{
			Path: fields[len(fields)-1],
			Op:   operationFromStatus(fields[0]),
		})
	}
	return files, nil
}

// operationFromStatus maps a --name-status letter to an Operation
func operationFromStatus(status string) Operation {
	switch {
	case strings.HasPrefix(status, "A"):
		return OpAdded
	case strings.HasPrefix(status, "D"):
		return OpDeleted
	default:
		return OpModified
	}
}

// StagedDiff returns the staged diff for a single file
func (i *CLIInspector) StagedDiff(ctx context.Context, path string) (string, error) {
	return i.runGit(ctx, "diff", "--cached", "--", path)
}

// RecentCommits returns the last n commits, newest first
func (i *CLIInspector) RecentCommits(ctx context.Context, n int) ([]CommitRecord, error) {
	out, err := i.runGit(ctx, "log", "-n", strconv.Itoa(n), "--format=%h%x09%s")
	if err != nil {
		// Empty repo returns an error, report no commits instead
		if strings.Contains(err.Error(), "does not have any commits") {
			return nil, nil
		}
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	var records []CommitRecord
	for _, line := range strings.Split(out, "\n") {
		hash, subject, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		records = append(records, CommitRecord{ShortHash: hash, Subject: subject})
	}
	return records, nil
}

// Commit creates a commit with the given message
func (i *CLIInspector) Commit(ctx context.Context, message string) error {
	_, err := i.runGit(ctx, "commit", "-m", message)
	return err
}
