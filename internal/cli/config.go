package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/constants"
)

// AddConfigCommand adds the 'config' subcommand group to the root command.
func AddConfigCommand(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage taskdeck configuration",
	}

	addConfigInitCmd(cmd)
	addConfigShowCmd(cmd)
	addConfigPathCmd(cmd)

	parent.AddCommand(cmd)
}

// addConfigInitCmd adds the init subcommand: writes a commented example
// config to the global location.
func addConfigInitCmd(parent *cobra.Command) {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example global config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(force, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	parent.AddCommand(cmd)
}

// runConfigInit writes the example config to ~/.taskdeck/config.yaml.
func runConfigInit(force bool, w io.Writer) error {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		_, _ = fmt.Fprintf(w, "Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.DirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.ExampleConfig()), constants.FilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Wrote example config to %s\n", path)
	return nil
}

// addConfigShowCmd adds the show subcommand: prints the effective config.
func addConfigShowCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := config.Render(GetConfig())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

// addConfigPathCmd adds the path subcommand: prints config file locations.
func addConfigPathCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file locations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			globalPath, err := config.GlobalConfigPath()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "global:  %s\n", globalPath)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "project: %s\n", config.ProjectConfigPath())
			return nil
		},
	}
	parent.AddCommand(cmd)
}
