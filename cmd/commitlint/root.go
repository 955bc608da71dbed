package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// createRootCommand creates the main root command that shows help by
// default.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "commitlint",
		Short:         "Conventional Commits message linter",
		Long:          "commitlint validates commit messages against the Conventional Commits format.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", ".commitlint.yaml", "Path to config file")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		createLintCommand(),
		createHookCommand(),
		createInstallCommand(),
		createUninstallCommand(),
		createHistoryCommand(),
		createVersionCommand(),
	)

	return rootCmd
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the commitlint version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commitlint %s\n", version)
		},
	}
}
