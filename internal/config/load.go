package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/taskdeck/taskdeck/internal/constants"
	"github.com/taskdeck/taskdeck/internal/errors"
)

// newViperInstance creates a new Viper instance with standard taskdeck
// configuration: defaults, TASKDECK_ environment prefix, and key replacer.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults configures all default values on the Viper instance.
// These defaults match the values from DefaultConfig().
// IMPORTANT: Keys must match the YAML tag names exactly.
func setDefaults(v *viper.Viper) {
	v.SetDefault("store.path", constants.StoreFileName)
	v.SetDefault("store.lock_timeout", constants.DefaultLockTimeout.String())

	v.SetDefault("logging.dir", "")
	v.SetDefault("logging.max_size_mb", constants.LogMaxSizeMB)
	v.SetDefault("logging.max_backups", constants.LogMaxBackups)
	v.SetDefault("logging.max_age_days", constants.LogMaxAgeDays)
	v.SetDefault("logging.compress", constants.LogCompress)
}

// isConfigNotFoundError returns true if the error is a viper config file
// not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to handle time.Duration conversion from strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

// unmarshalAndValidate unmarshals viper config into Config and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper
// precedence. Missing config files are not an error — they are expected
// in many scenarios; only actual configuration problems are reported.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	// Global config first (lower precedence).
	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	// Project config merges over global (higher precedence).
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("store.path", cfg.Store.Path).
		Dur("store.lock_timeout", cfg.Store.LockTimeout).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadWithOverrides loads configuration and applies CLI flag overrides,
// which have the highest precedence. Only non-zero override values are
// applied, allowing partial overrides.
func LoadWithOverrides(ctx context.Context, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}

	return cfg, nil
}

// LoadFromPaths loads configuration from specific file paths for testing.
// Either path can be empty to skip that level.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// loadGlobalConfig attempts to load the global config file
// (~/.taskdeck/config.yaml). Missing file or home dir is skipped silently.
func loadGlobalConfig(v *viper.Viper) error {
	globalConfigPath, ok := getGlobalConfigPathIfExists()
	if !ok {
		return nil
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// getGlobalConfigPathIfExists returns the global config path if it exists.
func getGlobalConfigPathIfExists() (string, bool) {
	path, err := GlobalConfigPath()
	if err != nil {
		return "", false
	}
	if !fileExists(path) {
		return "", false
	}
	return path, true
}

// loadProjectConfig attempts to load the project config file
// (.taskdeck/config.yaml). A missing file is skipped silently.
func loadProjectConfig(v *viper.Viper) error {
	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		return nil
	}

	v.SetConfigFile(projectConfigPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// applyOverrides merges non-zero override values into the config.
//
// IMPORTANT: Boolean fields (Compress) cannot be overridden to false here
// because Go's zero value for bool is false. CLI implementations should
// handle boolean flags separately via cmd.Flags().Changed().
func applyOverrides(cfg, overrides *Config) {
	if overrides.Store.Path != "" {
		cfg.Store.Path = overrides.Store.Path
	}
	if overrides.Store.LockTimeout != 0 {
		cfg.Store.LockTimeout = overrides.Store.LockTimeout
	}
	if overrides.Logging.Dir != "" {
		cfg.Logging.Dir = overrides.Logging.Dir
	}
	if overrides.Logging.MaxSizeMB != 0 {
		cfg.Logging.MaxSizeMB = overrides.Logging.MaxSizeMB
	}
	if overrides.Logging.MaxBackups != 0 {
		cfg.Logging.MaxBackups = overrides.Logging.MaxBackups
	}
	if overrides.Logging.MaxAgeDays != 0 {
		cfg.Logging.MaxAgeDays = overrides.Logging.MaxAgeDays
	}
}
