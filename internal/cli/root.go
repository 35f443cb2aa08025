package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/errors"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger and globalConfig store the state initialized during
// PersistentPreRunE for use by subcommands. Access is protected by
// globalMu for thread safety.
var (
	globalLogger zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalConfig *config.Config //nolint:gochecknoglobals // Effective config for subcommands
	globalMu     sync.RWMutex   //nolint:gochecknoglobals // Protects the above
)

// GetLogger returns the initialized logger for use by subcommands.
//
// IMPORTANT: This function MUST only be called after the root command's
// PersistentPreRunE has executed. Calling it before initialization will
// return a zero-value logger that discards all log output.
func GetLogger() zerolog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// GetConfig returns the effective configuration for use by subcommands.
// Like GetLogger, it is only valid after PersistentPreRunE has executed.
func GetConfig() *config.Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// newRootCmd creates and returns the root command for the taskdeck CLI.
// This function-based approach avoids package-level command globals,
// making the code more testable.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "taskdeck",
		Short: "taskdeck - a crash-safe task list for your terminal",
		Long: `taskdeck manages a personal task list persisted to a local JSON file.

Every change is written with an atomic replace protocol, so the task file
is never left torn or half-written, even if the process or machine crashes
mid-save.`,
		Version: formatVersion(info),
		// Run displays help when the root command is invoked without
		// subcommands. This ensures PersistentPreRunE runs for flag validation.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Bind flags to Viper
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			// Validate output format
			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			// Load effective configuration with the --store flag as the
			// highest-precedence override.
			cfg, err := config.LoadWithOverrides(cmd.Context(), &config.Config{
				Store: config.StoreConfig{Path: flags.Store},
			})
			if err != nil {
				return err
			}

			logger := InitLogger(flags.Verbose, flags.Quiet, &cfg.Logging)

			globalMu.Lock()
			globalLogger = logger
			globalConfig = cfg
			globalMu.Unlock()

			// Make the logger reachable from the context handed to the
			// store and manager layers.
			cmd.SetContext(logger.WithContext(cmd.Context()))

			return nil
		},
		// SilenceUsage and SilenceErrors prevent cobra from printing usage
		// and raw errors; Execute reports errors with user-facing messages.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	AddGlobalFlags(cmd, flags)

	// Add subcommands
	AddAddCommand(cmd, flags)
	AddListCommand(cmd, flags)
	AddDoneCommand(cmd, flags)
	AddDeleteCommand(cmd, flags)
	AddConfigCommand(cmd)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are reported to stderr with user-facing messages; the returned
// error is for exit-code mapping by the caller.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, info)
	defer CloseLogFile()

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		ReportError(cmd.ErrOrStderr(), err)
	}
	return err
}
