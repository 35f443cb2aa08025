package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/taskdeck/taskdeck/internal/config"
	taskdeckerrors "github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/task"
)

// newManager builds the task manager for the effective configuration.
func newManager(cfg *config.Config) (*task.Manager, error) {
	s, err := store.NewFileStore(cfg.Store.Path, store.WithLockTimeout(cfg.Store.LockTimeout))
	if err != nil {
		return nil, taskdeckerrors.Wrap(err, "failed to open task store")
	}
	return task.NewManager(s, nil), nil
}

// parseTaskID parses a command-line task id argument.
// Anything that is not a positive integer wraps errors.ErrInvalidTaskID.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", taskdeckerrors.ErrInvalidTaskID, arg)
	}
	return id, nil
}

// ReportError writes a user-facing message for err, including a suggested
// action when one is known for the underlying sentinel.
func ReportError(w io.Writer, err error) {
	if info, ok := taskdeckerrors.UserInfo(err); ok {
		_, _ = fmt.Fprintln(w, "Error:", info.Message)
		if info.Action != "" {
			_, _ = fmt.Fprintln(w, "Hint:", info.Action)
		}
		return
	}
	_, _ = fmt.Fprintln(w, "Error:", err.Error())
}
