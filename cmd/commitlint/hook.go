package main

import (
	"github.com/spf13/cobra"

	"github.com/commitlint-go/commitlint/internal/git"
	"github.com/commitlint-go/commitlint/internal/reporter"
)

// createHookCommand creates the commit-msg hook entry point. Git invokes
// it with the path of the message file; a non-zero exit aborts the
// commit.
func createHookCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "hook <message-file>",
		Short:        "Validate a commit message file (git commit-msg hook)",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setupEnv(cmd)
			if err != nil {
				return err
			}

			source := git.FileSource{Fs: env.fs, Path: args[0]}
			return runLint(env, cmd, source, "hook", reporter.Options{})
		},
	}
}
