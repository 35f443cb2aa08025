package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// AddDeleteCommand adds the 'delete' subcommand to the root command.
func AddDeleteCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long: `Delete the task with the given id.

Deleted ids are never reused: the id counter only moves forward, so a new
task never takes over an id that previously referred to something else.`,
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), flags, args[0], cmd.OutOrStdout())
		},
	}
	parent.AddCommand(cmd)
}

// runDelete executes the delete command.
func runDelete(ctx context.Context, _ *GlobalFlags, arg string, w io.Writer) error {
	logger := GetLogger()

	id, err := parseTaskID(arg)
	if err != nil {
		return err
	}

	mgr, err := newManager(GetConfig())
	if err != nil {
		return err
	}

	if err := mgr.Delete(ctx, id); err != nil {
		logger.Debug().Err(err).Int64("task_id", id).Msg("delete failed")
		return err
	}

	_, _ = fmt.Fprintf(w, "Deleted task #%d\n", id)
	return nil
}
