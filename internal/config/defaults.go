package config

import (
	"github.com/taskdeck/taskdeck/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			// Path: a file in the working directory, so the default
			// configuration never depends on a directory that might
			// not exist (the store refuses to create directories).
			Path: constants.StoreFileName,

			// LockTimeout: 5 seconds is generous for a tool whose
			// operations complete near-instantly on local storage.
			LockTimeout: constants.DefaultLockTimeout,
		},
		Logging: LoggingConfig{
			// Dir: empty means ~/.taskdeck/logs.
			Dir: "",

			MaxSizeMB:  constants.LogMaxSizeMB,
			MaxBackups: constants.LogMaxBackups,
			MaxAgeDays: constants.LogMaxAgeDays,
			Compress:   constants.LogCompress,
		},
	}
}
