package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/tui"
)

// AddListCommand adds the 'list' subcommand to the root command.
func AddListCommand(parent *cobra.Command, flags *GlobalFlags) {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display tasks in the order they were created.

Completed tasks are hidden by default; pass --all to include them.

Examples:
  taskdeck list                # open tasks as a styled table
  taskdeck list --all          # include completed tasks
  taskdeck list --output json  # machine-readable output`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), flags, showAll, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "include completed tasks")
	parent.AddCommand(cmd)
}

// runList executes the list command.
func runList(ctx context.Context, flags *GlobalFlags, showAll bool, w io.Writer) error {
	logger := GetLogger()

	// Respect NO_COLOR before any styled rendering.
	tui.CheckNoColor()

	mgr, err := newManager(GetConfig())
	if err != nil {
		return err
	}

	tasks, err := mgr.List(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("list failed")
		return err
	}

	if !showAll {
		tasks = filterOpen(tasks)
	}

	if len(tasks) == 0 {
		if flags.Output == OutputJSON {
			_, _ = fmt.Fprintln(w, "[]")
		} else {
			_, _ = fmt.Fprintln(w, "No tasks. Run 'taskdeck add <title>' to create one.")
		}
		return nil
	}

	if flags.Output == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	}

	_, _ = fmt.Fprint(w, tui.RenderTaskTable(tasks))
	return nil
}

// filterOpen returns the tasks that are not yet completed, preserving order.
func filterOpen(tasks []domain.Task) []domain.Task {
	open := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Done {
			open = append(open, t)
		}
	}
	return open
}
