package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitscribe/gitscribe/internal/git"
)

// Base per-file line budgets by category. Tests carry the least signal
// per line, docs rarely need much, everything else gets a moderate or
// default budget.
const (
	budgetTests   = 30
	budgetSource  = 120
	budgetDocs    = 40
	budgetDefault = 80
)

// budgetFor returns the per-file excerpt budget for a category and the
// raw diff size. The budget backs off as the raw diff grows so that no
// single file can dominate the prompt: over 300 raw lines the base is
// divided by 3, over 100 by 2.
func budgetFor(category Category, rawLineCount int) int {
	var base int
	switch category {
	case CategoryTests:
		base = budgetTests
	case CategorySource:
		base = budgetSource
	case CategoryDocs:
		base = budgetDocs
	default:
		base = budgetDefault
	}

	switch {
	case rawLineCount > 300:
		return base / 3
	case rawLineCount > 100:
		return base / 2
	default:
		return base
	}
}

// DiffProvider supplies the staged diff for a single file. The
// repository Inspector satisfies it.
type DiffProvider interface {
	StagedDiff(ctx context.Context, path string) (string, error)
}

// Summarize produces the bounded per-file diff digest for the staged
// changeset, preserving file order. Sensitive paths emit only the
// redaction marker. Deterministic for a fixed set of diffs.
func Summarize(ctx context.Context, provider DiffProvider, files []git.StagedFile) (string, error) {
	var sections []string
	for _, f := range files {
		if IsSensitive(f.Path) {
			sections = append(sections, Redact(f.Path))
			continue
		}

		diff, err := provider.StagedDiff(ctx, f.Path)
		if err != nil {
			return "", fmt.Errorf("failed to get diff for %s: %w", f.Path, err)
		}

		header := fmt.Sprintf("File: %s (%s)", f.Path, f.Op)
		if diff == "" {
			sections = append(sections, header)
			continue
		}

		lines := strings.Split(diff, "\n")
		budget := budgetFor(CategoryOf(f.Path), len(lines))
		if len(lines) > budget {
			omitted := len(lines) - budget
			lines = append(lines[:budget], fmt.Sprintf("... (%d more lines truncated)", omitted))
		}
		sections = append(sections, header+"\n"+strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n"), nil
}
