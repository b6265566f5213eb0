package cmd

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// rootLogger is shared with subcommands via Execute.
var rootLogger *zap.Logger

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "classcat",
	Short: "classcat concatenates matching source and test files into one artifact",
	Long: `classcat collects all files matching a glob pattern from a source
directory and a test directory and writes their contents, in that order,
into a single flat output file for downstream tooling or LLM context.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	rootLogger = logger
	return RootCmd.Execute()
}
