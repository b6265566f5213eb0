package concat

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// MatchFiles enumerates the entries of a single directory and returns the
// paths of regular files whose names match the glob pattern. The scan is
// non-recursive: subdirectories are never descended into, and an entry
// that is itself a directory never matches. os.ReadDir returns entries
// sorted by filename, so the result order is deterministic.
func MatchFiles(dir, pattern string, logger *zap.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("Failed to read directory", zap.String("dir", dir), zap.Error(err))
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			logger.Error("Invalid glob pattern", zap.String("pattern", pattern), zap.Error(err))
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if matched {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}

	logger.Debug("Matched files in directory",
		zap.String("dir", dir),
		zap.String("pattern", pattern),
		zap.Int("matchCount", len(matches)))
	return matches, nil
}
