package analysis

import (
	"path/filepath"
	"strings"

	"github.com/gitscribe/gitscribe/internal/git"
)

// Category buckets a changed file for classification and for the diff
// line budget
type Category int

const (
	CategoryTests Category = iota
	CategorySource
	CategoryDocs
	CategoryOther
)

// String returns the human-readable bucket label
func (c Category) String() string {
	switch c {
	case CategoryTests:
		return "Test Files"
	case CategorySource:
		return "Source Files"
	case CategoryDocs:
		return "Documentation"
	default:
		return "Other Files"
	}
}

// codeExtensions covers source, config and markup files. They share the
// moderate diff budget.
var codeExtensions = map[string]bool{
	".go": true, ".py": true, ".js": true, ".ts": true, ".jsx": true,
	".tsx": true, ".java": true, ".rb": true, ".rs": true, ".c": true,
	".h": true, ".cpp": true, ".cc": true, ".cs": true, ".kt": true,
	".swift": true, ".php": true, ".scala": true, ".sh": true,
	".yaml": true, ".yml": true, ".toml": true, ".json": true,
	".xml": true, ".html": true, ".css": true,
}

var docExtensions = map[string]bool{
	".md":  true,
	".rst": true,
}

// CategoryOf buckets a single path by its name and extension
func CategoryOf(path string) Category {
	base := strings.ToLower(filepath.Base(path))
	ext := filepath.Ext(base)

	if codeExtensions[ext] {
		if strings.Contains(base, ".test.") || strings.Contains(base, ".spec.") || strings.Contains(base, "_test.") {
			return CategoryTests
		}
		return CategorySource
	}
	if docExtensions[ext] {
		return CategoryDocs
	}
	return CategoryOther
}

// Classification groups a changeset into render-ready buckets. Input
// order is preserved within each bucket; no path is ever dropped.
type Classification struct {
	Tests    []string
	Source   []string
	Docs     []string
	Other    []string
	Redacted []string
}

// Classify buckets staged files by category. Sensitive paths land in
// the redacted bucket as marker lines and are not categorized further.
func Classify(files []git.StagedFile) Classification {
	var c Classification
	for _, f := range files {
		if IsSensitive(f.Path) {
			c.Redacted = append(c.Redacted, Redact(f.Path))
			continue
		}
		entry := f.Path + " (" + f.Op.String() + ")"
		switch CategoryOf(f.Path) {
		case CategoryTests:
			c.Tests = append(c.Tests, entry)
		case CategorySource:
			c.Source = append(c.Source, entry)
		case CategoryDocs:
			c.Docs = append(c.Docs, entry)
		default:
			c.Other = append(c.Other, entry)
		}
	}
	return c
}

// Render writes the non-empty buckets, each prefixed with its label
func (c Classification) Render() string {
	var sb strings.Builder
	writeBucket(&sb, CategoryTests.String()+":", c.Tests)
	writeBucket(&sb, CategorySource.String()+":", c.Source)
	writeBucket(&sb, CategoryDocs.String()+":", c.Docs)
	writeBucket(&sb, CategoryOther.String()+":", c.Other)
	writeBucket(&sb, "Excluded Files:", c.Redacted)
	return strings.TrimRight(sb.String(), "\n")
}

func writeBucket(sb *strings.Builder, label string, entries []string) {
	if len(entries) == 0 {
		return
	}
	sb.WriteString(label)
	sb.WriteString("\n")
	for _, e := range entries {
		sb.WriteString("  ")
		sb.WriteString(e)
		sb.WriteString("\n")
	}
}
