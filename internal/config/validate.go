package config

import (
	"fmt"

	"github.com/taskdeck/taskdeck/internal/errors"
)

// Validate checks the configuration for invalid values.
// It returns an error wrapping errors.ErrConfigInvalid naming the first
// offending key.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", errors.ErrConfigInvalid)
	}
	if cfg.Store.Path == "" {
		return fmt.Errorf("%w: store.path must not be empty", errors.ErrConfigInvalid)
	}
	if cfg.Store.LockTimeout <= 0 {
		return fmt.Errorf("%w: store.lock_timeout must be positive, got %s", errors.ErrConfigInvalid, cfg.Store.LockTimeout)
	}
	if cfg.Logging.MaxSizeMB < 0 {
		return fmt.Errorf("%w: logging.max_size_mb must not be negative, got %d", errors.ErrConfigInvalid, cfg.Logging.MaxSizeMB)
	}
	if cfg.Logging.MaxBackups < 0 {
		return fmt.Errorf("%w: logging.max_backups must not be negative, got %d", errors.ErrConfigInvalid, cfg.Logging.MaxBackups)
	}
	if cfg.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("%w: logging.max_age_days must not be negative, got %d", errors.ErrConfigInvalid, cfg.Logging.MaxAgeDays)
	}
	return nil
}
