package cmd

import (
	"fmt"

	"classcat/pkg/concat"
	"classcat/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// concatCmd runs the concatenation: source directory matches first,
// then test directory matches, into a single output file.
var concatCmd = &cobra.Command{
	Use:   "concat",
	Short: "Concatenate matching files from src/ and tests/ into one file",
	Long: `Concatenate every file matching the glob pattern from the source
subdirectory, then from the tests subdirectory, into the output file.
Each file's contents are followed by exactly one newline. The output
file is truncated and rewritten in full on every run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		root, err := flags.GetString("root")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		sourceDir, err := flags.GetString("source")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		testDir, err := flags.GetString("tests")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		output, err := flags.GetString("output")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		pattern, err := flags.GetString("pattern")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		debug, err := flags.GetBool("debug")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		logger := rootLogger
		if debug {
			if err := logging.Setup(true, "classcat"); err != nil {
				return fmt.Errorf("failed to set up debug logging: %w", err)
			}
			logger = logging.Logger
		}

		concatArgs := &concat.Arguments{
			Root:      root,
			SourceDir: sourceDir,
			TestDir:   testDir,
			Output:    output,
			Pattern:   pattern,
		}

		if err := concat.Run(concatArgs, logger); err != nil {
			logger.Error("concat execution failed", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	concatCmd.Flags().StringP("root", "r", ".", "Root directory containing the source and test subdirectories")
	concatCmd.Flags().String("source", concat.DefaultSourceDir, "Source subdirectory name under the root")
	concatCmd.Flags().String("tests", concat.DefaultTestDir, "Test subdirectory name under the root")
	concatCmd.Flags().StringP("output", "o", concat.DefaultOutput, "Output file path, relative to the root")
	concatCmd.Flags().StringP("pattern", "p", concat.DefaultPattern, "Glob pattern matched against file names (non-recursive)")
	concatCmd.Flags().BoolP("debug", "d", false, "Enable debug logging")

	RootCmd.AddCommand(concatCmd)
}
