package analysis

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitscribe/gitscribe/internal/git"
)

// fakeDiffProvider serves staged diffs from a map and records which
// paths were fetched
type fakeDiffProvider struct {
	diffs   map[string]string
	fetched []string
}

func (f *fakeDiffProvider) StagedDiff(_ context.Context, path string) (string, error) {
	f.fetched = append(f.fetched, path)
	diff, ok := f.diffs[path]
	if !ok {
		return "", fmt.Errorf("no diff for %s", path)
	}
	return diff, nil
}

// diffOfLines builds a synthetic diff with n lines
func diffOfLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("+line %d", i)
	}
	return strings.Join(lines, "\n")
}

func TestBudgetFor(t *testing.T) {
	t.Run("backoff thresholds", func(t *testing.T) {
		tests := []struct {
			name     string
			category Category
			rawLines int
			want     int
		}{
			{"source small", CategorySource, 50, 120},
			{"source over 100", CategorySource, 150, 60},
			{"source over 300", CategorySource, 400, 40},
			{"tests small", CategoryTests, 10, 30},
			{"tests over 300", CategoryTests, 301, 10},
			{"docs small", CategoryDocs, 99, 40},
			{"docs over 100", CategoryDocs, 101, 20},
			{"other small", CategoryOther, 1, 80},
			{"other over 300", CategoryOther, 1000, 26},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, budgetFor(tt.category, tt.rawLines))
			})
		}
	})

	t.Run("monotonic non-increasing with raw size", func(t *testing.T) {
		for _, cat := range []Category{CategoryTests, CategorySource, CategoryDocs, CategoryOther} {
			prev := budgetFor(cat, 0)
			for _, raw := range []int{50, 100, 101, 300, 301, 5000} {
				cur := budgetFor(cat, raw)
				assert.LessOrEqual(t, cur, prev, "category %v raw %d", cat, raw)
				prev = cur
			}
		}
	})
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("small diff is kept whole", func(t *testing.T) {
		provider := &fakeDiffProvider{diffs: map[string]string{
			"auth.py": diffOfLines(10),
		}}
		files := []git.StagedFile{{Path: "auth.py", Op: git.OpModified}}

		out, err := Summarize(ctx, provider, files)
		require.NoError(t, err)

		assert.Contains(t, out, "File: auth.py (modified)")
		assert.Contains(t, out, "+line 9")
		assert.NotContains(t, out, "truncated")
	})

	t.Run("large source diff truncated to a third of the base budget", func(t *testing.T) {
		provider := &fakeDiffProvider{diffs: map[string]string{
			"server.go": diffOfLines(400),
		}}
		files := []git.StagedFile{{Path: "server.go", Op: git.OpModified}}

		out, err := Summarize(ctx, provider, files)
		require.NoError(t, err)
		require.Contains(t, out, "truncated")

		// header + excerpt + truncation notice
		lines := strings.Split(out, "\n")
		assert.Len(t, lines, 1+40+1)
		assert.Contains(t, lines[len(lines)-1], "360 more lines")
	})

	t.Run("medium diff truncated to half of the base budget", func(t *testing.T) {
		provider := &fakeDiffProvider{diffs: map[string]string{
			"server.go": diffOfLines(150),
		}}
		files := []git.StagedFile{{Path: "server.go", Op: git.OpModified}}

		out, err := Summarize(ctx, provider, files)
		require.NoError(t, err)

		lines := strings.Split(out, "\n")
		assert.Len(t, lines, 1+60+1)
	})

	t.Run("sensitive path emits only the marker and is never fetched", func(t *testing.T) {
		provider := &fakeDiffProvider{diffs: map[string]string{}}
		files := []git.StagedFile{{Path: "secrets/.env", Op: git.OpAdded}}

		out, err := Summarize(ctx, provider, files)
		require.NoError(t, err)

		assert.Equal(t, "[SENSITIVE FILE EXCLUDED] secrets/.env", out)
		assert.Empty(t, provider.fetched)
	})

	t.Run("file order preserved", func(t *testing.T) {
		provider := &fakeDiffProvider{diffs: map[string]string{
			"b.go": diffOfLines(3),
			"a.go": diffOfLines(3),
		}}
		files := []git.StagedFile{
			{Path: "b.go", Op: git.OpModified},
			{Path: "a.go", Op: git.OpModified},
		}

		out, err := Summarize(ctx, provider, files)
		require.NoError(t, err)
		assert.Less(t, strings.Index(out, "File: b.go"), strings.Index(out, "File: a.go"))
		assert.Equal(t, []string{"b.go", "a.go"}, provider.fetched)
	})

	t.Run("deterministic for fixed diffs", func(t *testing.T) {
		files := []git.StagedFile{
			{Path: "a.go", Op: git.OpModified},
			{Path: "docs/guide.md", Op: git.OpAdded},
		}
		diffs := map[string]string{
			"a.go":          diffOfLines(250),
			"docs/guide.md": diffOfLines(120),
		}

		first, err := Summarize(ctx, &fakeDiffProvider{diffs: diffs}, files)
		require.NoError(t, err)
		second, err := Summarize(ctx, &fakeDiffProvider{diffs: diffs}, files)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("diff fetch error propagates", func(t *testing.T) {
		provider := &fakeDiffProvider{diffs: map[string]string{}}
		files := []git.StagedFile{{Path: "a.go", Op: git.OpModified}}

		_, err := Summarize(ctx, provider, files)
		assert.Error(t, err)
	})
}
