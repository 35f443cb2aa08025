package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// AddAddCommand adds the 'add' subcommand to the root command.
func AddAddCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Create a new task with the given title.

The title is trimmed of surrounding whitespace; an empty title is rejected.
Multiple arguments are joined with spaces, so quoting is optional:

  taskdeck add "Buy milk"
  taskdeck add Read the release notes`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd.Context(), flags, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
	parent.AddCommand(cmd)
}

// runAdd executes the add command.
func runAdd(ctx context.Context, flags *GlobalFlags, title string, w io.Writer) error {
	logger := GetLogger()

	mgr, err := newManager(GetConfig())
	if err != nil {
		return err
	}

	t, err := mgr.Add(ctx, title)
	if err != nil {
		logger.Debug().Err(err).Msg("add failed")
		return err
	}

	if flags.Output == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	}

	_, _ = fmt.Fprintf(w, "Created task #%d: %s\n", t.ID, t.Title)
	return nil
}
