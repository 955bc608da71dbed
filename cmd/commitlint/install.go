package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/commitlint-go/commitlint/internal/config"
	"github.com/commitlint-go/commitlint/internal/hooks"
	"github.com/commitlint-go/commitlint/internal/project"
)

// createInstallCommand creates the install command.
func createInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "install",
		Short:        "Install the commit-msg hook in this repository",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("failed to get force flag: %w", err)
			}
			initConfig, err := cmd.Flags().GetBool("init-config")
			if err != nil {
				return fmt.Errorf("failed to get init-config flag: %w", err)
			}

			repoRoot, err := project.FindRoot()
			if err != nil {
				return fmt.Errorf("failed to find repository root: %w", err)
			}

			fs := afero.NewOsFs()
			if err := hooks.Install(fs, repoRoot, force); err != nil {
				if errors.Is(err, hooks.ErrForeignHook) {
					return fmt.Errorf("%w; use --force to replace it", err)
				}
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Installed commit-msg hook at %s\n", hooks.HookPath(repoRoot))

			if initConfig {
				if err := writeStarterConfig(cmd, fs, repoRoot); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Replace an existing commit-msg hook")
	cmd.Flags().Bool("init-config", false, "Write a starter .commitlint.yaml with the defaults")
	return cmd
}

// writeStarterConfig writes the default configuration into the repository
// root. An existing config file is never touched.
func writeStarterConfig(cmd *cobra.Command, fs afero.Fs, repoRoot string) error {
	configPath := filepath.Join(repoRoot, config.DefaultFilename)

	exists, err := afero.Exists(fs, configPath)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if exists {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config file %s already exists, leaving it unchanged\n", configPath)
		return nil
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote starter config to %s\n", configPath)
	return nil
}

// createUninstallCommand creates the uninstall command.
func createUninstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "uninstall",
		Short:        "Remove the commit-msg hook from this repository",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repoRoot, err := project.FindRoot()
			if err != nil {
				return fmt.Errorf("failed to find repository root: %w", err)
			}

			fs := afero.NewOsFs()
			if err := hooks.Uninstall(fs, repoRoot); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Removed commit-msg hook")
			return nil
		},
	}
}
