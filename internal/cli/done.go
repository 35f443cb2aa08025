package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// AddDoneCommand adds the 'done' subcommand to the root command.
func AddDoneCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Long: `Mark the task with the given id as completed.

Completing a task that is already done succeeds without changing the file,
so repeated invocations are safe in scripts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDone(cmd.Context(), flags, args[0], cmd.OutOrStdout())
		},
	}
	parent.AddCommand(cmd)
}

// runDone executes the done command.
func runDone(ctx context.Context, _ *GlobalFlags, arg string, w io.Writer) error {
	logger := GetLogger()

	id, err := parseTaskID(arg)
	if err != nil {
		return err
	}

	mgr, err := newManager(GetConfig())
	if err != nil {
		return err
	}

	t, err := mgr.Complete(ctx, id)
	if err != nil {
		logger.Debug().Err(err).Int64("task_id", id).Msg("done failed")
		return err
	}

	_, _ = fmt.Fprintf(w, "Completed task #%d: %s\n", t.ID, t.Title)
	return nil
}
