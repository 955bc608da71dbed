package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/commitlint-go/commitlint/internal/config"
	"github.com/commitlint-go/commitlint/internal/git"
	"github.com/commitlint-go/commitlint/internal/history"
	"github.com/commitlint-go/commitlint/internal/lint"
	"github.com/commitlint-go/commitlint/internal/logging"
	"github.com/commitlint-go/commitlint/internal/project"
	"github.com/commitlint-go/commitlint/internal/reporter"
	"github.com/commitlint-go/commitlint/internal/storage"
)

// lintEnv bundles everything a lint invocation needs: the logging
// context, the loaded configuration, and the repository root.
type lintEnv struct {
	ctx      context.Context
	fs       afero.Fs
	cfg      *config.Config
	repoRoot string
	quiet    bool
}

// setupEnv loads configuration and initializes logging for a command.
func setupEnv(cmd *cobra.Command) (*lintEnv, error) {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	repoRoot, err := project.FindRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to find repository root: %w", err)
	}

	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(repoRoot, configPath)
	}

	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if verbose {
		level = logging.DebugLevel
	}

	ctx, err := logging.New(context.Background(), fs, logging.Config{
		RepoPath:   repoRoot,
		Level:      level,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &lintEnv{
		ctx:      ctx,
		fs:       fs,
		cfg:      cfg,
		repoRoot: repoRoot,
		quiet:    quiet,
	}, nil
}

// runLint evaluates all messages from the source, reports the outcome,
// and records the run. It returns a LintExitError when validation fails.
func runLint(env *lintEnv, cmd *cobra.Command, source git.Source, label string, opts reporter.Options) error {
	messages, err := source.Messages(env.ctx)
	if err != nil {
		return err
	}

	rules, err := env.cfg.LintConfig()
	if err != nil {
		return err
	}

	report := lint.EvaluateAll(messages, rules)

	logging.Get(env.ctx).Info().
		Str("source", label).
		Int("total", report.Total).
		Int("failed", report.FailedCount()).
		Msg("lint run finished")

	opts.Quiet = opts.Quiet || env.quiet
	reporter.New(cmd.OutOrStdout(), opts).Report(report)

	recordRun(env, label, report)

	if code := reporter.ExitCode(report); code != 0 {
		return &LintExitError{Code: code, Message: "commit validation failed"}
	}
	return nil
}

// recordRun stores the run in the history database. Best-effort: a
// broken or unavailable store never fails the lint itself.
func recordRun(env *lintEnv, label string, report lint.Report) {
	log := logging.Get(env.ctx)

	dbPath, err := storage.New(env.fs).HistoryPath()
	if err != nil {
		log.Warn().Err(err).Msg("skipping history record")
		return
	}

	store, err := history.Open(env.ctx, dbPath)
	if err != nil {
		log.Warn().Err(err).Msg("skipping history record")
		return
	}
	defer func() { _ = store.Close() }()

	if _, err := store.RecordRun(env.ctx, label, report); err != nil {
		log.Warn().Err(err).Msg("failed to record lint run")
	}
}

// createLintCommand creates the lint command.
func createLintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [message]",
		Short: "Validate commit messages",
		Long: "Validate a commit message given directly, from a file, from a commit " +
			"hash, or for every commit in a hash range.",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runLintCommand,
	}

	cmd.Flags().String("file", "", "Path to a file containing the commit message")
	cmd.Flags().String("hash", "", "Commit hash to validate")
	cmd.Flags().String("from", "", "Start of commit range (exclusive)")
	cmd.Flags().String("to", "HEAD", "End of commit range")
	cmd.Flags().Int("max-header-length", 0, "Override the maximum header length")
	cmd.Flags().Bool("skip-detail", false, "Skip the detailed error report")
	cmd.Flags().Bool("hide-input", false, "Do not echo the offending commit header")
	cmd.MarkFlagsMutuallyExclusive("file", "hash", "from")

	return cmd
}

func runLintCommand(cmd *cobra.Command, args []string) error {
	env, err := setupEnv(cmd)
	if err != nil {
		return err
	}

	if maxLength, err := cmd.Flags().GetInt("max-header-length"); err == nil && maxLength != 0 {
		env.cfg.MaxHeaderLength = maxLength
		if err := env.cfg.Validate(); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}

	skipDetail, _ := cmd.Flags().GetBool("skip-detail")
	hideInput, _ := cmd.Flags().GetBool("hide-input")
	opts := reporter.Options{SkipDetail: skipDetail, HideInput: hideInput}

	source, label, err := selectSource(env, cmd, args)
	if err != nil {
		return err
	}

	return runLint(env, cmd, source, label, opts)
}

// selectSource picks the commit source from the lint command's flags.
func selectSource(env *lintEnv, cmd *cobra.Command, args []string) (git.Source, string, error) {
	file, _ := cmd.Flags().GetString("file")
	hash, _ := cmd.Flags().GetString("hash")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	switch {
	case file != "":
		return git.FileSource{Fs: env.fs, Path: file}, "file:" + file, nil
	case hash != "":
		repo, err := git.Open(env.repoRoot)
		if err != nil {
			return nil, "", err
		}
		return git.HashSource{Repo: repo, Rev: hash}, "hash:" + hash, nil
	case from != "":
		repo, err := git.Open(env.repoRoot)
		if err != nil {
			return nil, "", err
		}
		return git.RangeSource{Repo: repo, From: from, To: to}, "range:" + from + ".." + to, nil
	case len(args) == 1:
		return git.MessageSource{Message: args[0]}, "message", nil
	default:
		return nil, "", fmt.Errorf("a commit message, --file, --hash, or --from is required")
	}
}
