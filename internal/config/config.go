// Package config provides configuration management for taskdeck with
// layered precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (TASKDECK_* prefix)
//  3. Project config (.taskdeck/config.yaml)
//  4. Global config (~/.taskdeck/config.yaml)
//  5. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and
// internal/errors, but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for taskdeck.
type Config struct {
	// Store contains settings for the task file persistence layer.
	Store StoreConfig `yaml:"store" mapstructure:"store"`

	// Logging contains settings for the rotating CLI log file.
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// StoreConfig contains settings for the task file persistence layer.
type StoreConfig struct {
	// Path is the location of the task store file.
	// Relative paths resolve against the working directory.
	// Default: "tasks.json"
	Path string `yaml:"path" mapstructure:"path"`

	// LockTimeout is the maximum duration to wait for the store's
	// advisory lock before failing.
	// Default: 5s
	LockTimeout time.Duration `yaml:"lock_timeout" mapstructure:"lock_timeout"`
}

// LoggingConfig contains settings for the rotating CLI log file.
// Log level is controlled by the --verbose/--quiet flags, not by config.
type LoggingConfig struct {
	// Dir is the directory for log files.
	// Default: empty, meaning ~/.taskdeck/logs.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// MaxSizeMB is the maximum size in megabytes before rotation.
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is the maximum number of rotated files to retain.
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`

	// MaxAgeDays is the maximum age in days of rotated files.
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`

	// Compress enables gzip compression of rotated files.
	Compress bool `yaml:"compress" mapstructure:"compress"`
}
