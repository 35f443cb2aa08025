package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	{
		err: ErrEmptyTitle,
		info: ErrorInfo{
			Message: "The task title is empty.",
			Action:  "Provide a non-empty title, e.g. taskdeck add \"Buy milk\".",
		},
	},
	{
		err: ErrInvalidTaskID,
		info: ErrorInfo{
			Message: "The task id is not a positive integer.",
			Action:  "Run 'taskdeck list' to see valid task ids.",
		},
	},
	{
		err: ErrTaskNotFound,
		info: ErrorInfo{
			Message: "No task exists with that id.",
			Action:  "Run 'taskdeck list --all' to see all tasks, including completed ones.",
		},
	},
	{
		err: ErrStoreCorrupt,
		info: ErrorInfo{
			Message: "The task file is corrupted and was not modified.",
			Action:  "Inspect the file manually; taskdeck never auto-repairs to avoid masking data loss.",
		},
	},
	{
		err: ErrLockTimeout,
		info: ErrorInfo{
			Message: "Another taskdeck process is holding the task file lock.",
			Action:  "Wait for the other invocation to finish and retry.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "The requested output format is not supported.",
			Action:  "Use --output text or --output json.",
		},
	},
}

// UserInfo returns the user-facing info for err, matching against the
// sentinel mapping with errors.Is(). The second return value reports
// whether a mapping was found.
func UserInfo(err error) (ErrorInfo, bool) {
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info, true
		}
	}
	return ErrorInfo{}, false
}
