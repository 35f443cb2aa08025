package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExampleConfig returns a commented example configuration file showing
// all available options with their default values. Used by
// 'taskdeck config init'.
func ExampleConfig() string {
	return `# taskdeck configuration file
# Precedence: flags > TASKDECK_* env vars > .taskdeck/config.yaml > ~/.taskdeck/config.yaml

store:
  # Location of the task store file. Relative paths resolve against the
  # working directory. The containing directory must already exist.
  path: tasks.json

  # Maximum time to wait for the store's advisory lock when another
  # taskdeck process is mid-write.
  lock_timeout: 5s

logging:
  # Directory for log files. Empty means ~/.taskdeck/logs.
  dir: ""

  # Rotation settings for the CLI log file.
  max_size_mb: 10
  max_backups: 3
  max_age_days: 30
  compress: true
`
}

// Render serializes the given config to YAML, for 'taskdeck config show'.
func Render(cfg *Config) (string, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to render config: %w", err)
	}
	return string(out), nil
}
