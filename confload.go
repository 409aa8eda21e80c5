package logger

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment overrides, e.g. ELEM6_LOGGER_LEVEL
// or ELEM6_LOGGER_RETENTION_DAYS.
const envPrefix = "ELEM6_LOGGER"

// configKeys are the settings recognized in files and the environment.
var configKeys = []string{
	"level",
	"directory",
	"module_name",
	"retention_days",
	"format_string",
	"date_format",
	"environment",
	"disable_console",
	"disable_file",
	"max_size_mb",
	"extra_fields",
}

// fileConfig is the on-disk shape of a Config: the level is a name rather
// than a numeric constant.
type fileConfig struct {
	Config `mapstructure:",squash"`
	Level  string `mapstructure:"level"`
}

// LoadConfig reads a Config from path (YAML, TOML or JSON, by extension) with
// environment overrides under the ELEM6_LOGGER_ prefix. The result is not yet
// merged with defaults; pass it to Init as usual.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read logger config %s: %w", path, err)
	}

	var parsed fileConfig
	if err := v.Unmarshal(&parsed); err != nil {
		return nil, fmt.Errorf("parse logger config %s: %w", path, err)
	}

	cfg := parsed.Config
	if parsed.Level != "" {
		level, err := ParseLevel(parsed.Level)
		if err != nil {
			return nil, err
		}
		cfg.Level = level
	}
	return &cfg, nil
}
