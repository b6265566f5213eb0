package concat

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Execute runs the concatenation with default arguments rooted at the
// current directory. It is the entry point for callers that do not
// build their own Arguments.
func Execute(logger *zap.Logger) error {
	if logger == nil {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()
	}

	if err := Run(DefaultArguments("."), logger); err != nil {
		logger.Error("Failed to execute concat process", zap.Error(err))
		return fmt.Errorf("concat execution failed: %w", err)
	}
	return nil
}

// Run orchestrates the concatenation process. It enumerates matching
// files in the source and test directories, then writes their contents
// into the output file: every source match first, then every test
// match, each file's raw contents followed by exactly one newline.
//
// Both directories are enumerated before the output file is opened, so
// a missing directory fails without truncating a previous output.
// Every error is fatal to the run; there is no partial-success mode,
// and an error during writing leaves the output file incomplete.
func Run(args *Arguments, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting concatenation process",
		zap.String("root", args.Root),
		zap.String("pattern", args.Pattern))

	root, err := filepath.Abs(args.Root)
	if err != nil {
		logger.Error("Failed to resolve root path", zap.Error(err))
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	sourceDir := filepath.Join(root, args.SourceDir)
	testDir := filepath.Join(root, args.TestDir)
	outputPath := filepath.Join(root, args.Output)

	sourceFiles, err := MatchFiles(sourceDir, args.Pattern, logger)
	if err != nil {
		return fmt.Errorf("failed to scan source directory: %w", err)
	}

	testFiles, err := MatchFiles(testDir, args.Pattern, logger)
	if err != nil {
		return fmt.Errorf("failed to scan test directory: %w", err)
	}

	if len(sourceFiles) == 0 && len(testFiles) == 0 {
		logger.Warn("No files matched in either directory",
			zap.String("sourceDir", sourceDir),
			zap.String("testDir", testDir))
	}

	if err := writeCombinedFile(outputPath, append(sourceFiles, testFiles...), logger); err != nil {
		return fmt.Errorf("failed to write combined file: %w", err)
	}

	logger.Info("Concatenation process completed",
		zap.String("outputFile", outputPath),
		zap.Int("sourceFiles", len(sourceFiles)),
		zap.Int("testFiles", len(testFiles)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// writeCombinedFile truncates the output file and writes each listed
// file's contents into it, appending one newline after every file.
func writeCombinedFile(outputPath string, files []string, logger *zap.Logger) error {
	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)

	for _, file := range files {
		if err := appendFile(writer, file, logger); err != nil {
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// appendFile writes one file's raw contents to the writer, followed by
// a single newline. Contents are passed through untouched.
func appendFile(writer *bufio.Writer, path string, logger *zap.Logger) error {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("error reading file %s: %w", path, err)
	}

	if _, err := writer.Write(fileBytes); err != nil {
		logger.Error("Failed to write file contents", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("failed to write contents of %s: %w", path, err)
	}
	if err := writer.WriteByte('\n'); err != nil {
		logger.Error("Failed to write separator", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("failed to write separator after %s: %w", path, err)
	}

	logger.Debug("Appended file to output",
		zap.String("file", path),
		zap.Int("contentSizeBytes", len(fileBytes)))
	return nil
}
