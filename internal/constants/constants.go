// Package constants provides centralized constant values used throughout taskdeck.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// File names used by taskdeck for state persistence.
const (
	// StoreFileName is the default name of the JSON file that stores tasks.
	// It is resolved relative to the working directory unless overridden
	// by configuration or the --store flag.
	StoreFileName = "tasks.json"

	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"

	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "taskdeck.log"
)

// Directory names used by taskdeck for organizing data.
const (
	// TaskdeckHome is the hidden directory name where taskdeck stores
	// configuration and logs. It is created in the user's home directory.
	TaskdeckHome = ".taskdeck"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// EnvPrefix is the prefix for taskdeck environment variables
// (e.g., TASKDECK_STORE_PATH).
const EnvPrefix = "TASKDECK"

// Lock configuration for the store's advisory file lock.
const (
	// DefaultLockTimeout is the maximum duration to wait when acquiring
	// the store's advisory lock.
	DefaultLockTimeout = 5 * time.Second

	// LockRetryInterval is the delay between lock acquisition attempts.
	LockRetryInterval = 50 * time.Millisecond
)

// File and directory permission constants.
const (
	// DirPerm is the permission mode for directories created by taskdeck.
	DirPerm = 0o750

	// FilePerm is the permission mode for files created by taskdeck.
	FilePerm = 0o600
)

// Log rotation defaults for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before log rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of rotated log files.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)
