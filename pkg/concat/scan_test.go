package concat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMatchFiles(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		dirs    []string
		pattern string
		want    []string
	}{
		{
			name:    "matches only pattern extension",
			files:   []string{"a.ts", "b.ts", "readme.md", "c.js"},
			pattern: "*.ts",
			want:    []string{"a.ts", "b.ts"},
		},
		{
			name:    "no matches",
			files:   []string{"readme.md", "c.js"},
			pattern: "*.ts",
			want:    nil,
		},
		{
			name:    "empty directory",
			pattern: "*.ts",
			want:    nil,
		},
		{
			name:    "directory entries never match",
			files:   []string{"a.ts"},
			dirs:    []string{"fake.ts"},
			pattern: "*.ts",
			want:    []string{"a.ts"},
		},
		{
			name:    "results are in lexical order",
			files:   []string{"zeta.ts", "alpha.ts", "mid.ts"},
			pattern: "*.ts",
			want:    []string{"alpha.ts", "mid.ts", "zeta.ts"},
		},
		{
			name:    "custom pattern",
			files:   []string{"a.ts", "a_test.ts", "b.go"},
			pattern: "*_test.ts",
			want:    []string{"a_test.ts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				writeFile(t, dir, f, "x")
			}
			for _, d := range tt.dirs {
				require.NoError(t, os.Mkdir(filepath.Join(dir, d), 0755))
			}

			got, err := MatchFiles(dir, tt.pattern, zap.NewNop())
			require.NoError(t, err)

			var want []string
			for _, name := range tt.want {
				want = append(want, filepath.Join(dir, name))
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestMatchFilesNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.ts", "top")

	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(nested, 0755))
	writeFile(t, nested, "inner.ts", "inner")

	got, err := MatchFiles(dir, "*.ts", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "top.ts")}, got)
}

func TestMatchFilesMissingDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := MatchFiles(filepath.Join(dir, "absent"), "*.ts", zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMatchFilesInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", "x")

	_, err := MatchFiles(dir, "[", zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob pattern")
}
