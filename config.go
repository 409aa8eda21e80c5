package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Log level constants match slog levels for consistency with applications that use it.
// LevelCritical extends the slog range the same way slog-based code commonly adds FATAL.
const (
	LevelDebug    int64 = -4 // matches slog.LevelDebug
	LevelInfo     int64 = 0  // matches slog.LevelInfo
	LevelWarn     int64 = 4  // matches slog.LevelWarn
	LevelError    int64 = 8  // matches slog.LevelError
	LevelCritical int64 = 12
)

// Field is a single extra key/value pair appended to formatted log lines.
type Field struct {
	Key   string `json:"key" toml:"key" mapstructure:"key"`
	Value string `json:"value" toml:"value" mapstructure:"value"`
}

// Fields is an ordered list of extra fields. Order is preserved in output,
// which is why this is a slice rather than a map.
type Fields []Field

// Config defines the logger configuration parameters.
// All fields can be configured via JSON, TOML or YAML configuration files.
// A Config is treated as immutable once passed to Init; reconfiguration
// replaces the active configuration wholesale.
type Config struct {
	Level          int64  `json:"level" toml:"level" mapstructure:"-"`                                     // LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCritical
	Directory      string `json:"directory" toml:"directory" mapstructure:"directory"`                     // Directory to store log files, created on demand
	ModuleName     string `json:"module_name" toml:"module_name" mapstructure:"module_name"`               // Base name for log files; inferred from the binary name when empty
	RetentionDays  int64  `json:"retention_days" toml:"retention_days" mapstructure:"retention_days"`      // Days to keep log files; 0 disables cleanup
	FormatString   string `json:"format_string" toml:"format_string" mapstructure:"format_string"`         // Line template, see format.go for tokens
	DateFormat     string `json:"date_format" toml:"date_format" mapstructure:"date_format"`               // Go reference layout for {timestamp}
	Environment    string `json:"environment" toml:"environment" mapstructure:"environment"`               // Free-form environment tag
	DisableConsole bool   `json:"disable_console" toml:"disable_console" mapstructure:"disable_console"`   // Zero value keeps the console sink enabled
	DisableFile    bool   `json:"disable_file" toml:"disable_file" mapstructure:"disable_file"`            // Zero value keeps the file sink enabled
	MaxSizeMB      int64  `json:"max_size_mb" toml:"max_size_mb" mapstructure:"max_size_mb"`               // >0 switches the file sink to size-based rotation
	ExtraFields    Fields `json:"extra_fields,omitempty" toml:"extra_fields" mapstructure:"extra_fields"` // Appended to every record from this configuration
}

// DefaultFormat is the line template applied when Config.FormatString is empty.
const DefaultFormat = "{timestamp} - {name} - {level} - {pid} - {tid} - {message}"

// DefaultDateFormat is the {timestamp} layout applied when Config.DateFormat is empty.
const DefaultDateFormat = "2006-01-02 15:04:05"

// DefaultConfig returns the configuration used when Init is called without one.
func DefaultConfig() *Config {
	return &Config{
		Level:         LevelInfo,
		Directory:     "logs",
		RetentionDays: 30,
		FormatString:  DefaultFormat,
		DateFormat:    DefaultDateFormat,
		Environment:   "production",
	}
}

// mergeConfig fills unset user fields from the defaults. A nil user config
// yields the defaults unchanged. The boolean toggles are zero-is-enabled, so
// they pass through as-is.
func mergeConfig(userConfig *Config) *Config {
	defaultConfig := DefaultConfig()
	if userConfig == nil {
		return defaultConfig
	}
	return &Config{
		Level:          userConfig.Level, // LevelInfo is the zero value, nothing to merge
		Directory:      getConfigValue(defaultConfig.Directory, userConfig.Directory),
		ModuleName:     userConfig.ModuleName, // empty means infer at build time
		RetentionDays:  getConfigValue(defaultConfig.RetentionDays, userConfig.RetentionDays),
		FormatString:   getConfigValue(defaultConfig.FormatString, userConfig.FormatString),
		DateFormat:     getConfigValue(defaultConfig.DateFormat, userConfig.DateFormat),
		Environment:    getConfigValue(defaultConfig.Environment, userConfig.Environment),
		DisableConsole: userConfig.DisableConsole,
		DisableFile:    userConfig.DisableFile,
		MaxSizeMB:      userConfig.MaxSizeMB,
		ExtraFields:    userConfig.ExtraFields,
	}
}

// getConfigValue returns defaultVal if cfgVal equals the zero value for type T,
// otherwise returns cfgVal. Type T must satisfy the comparable constraint.
func getConfigValue[T comparable](defaultVal, cfgVal T) T {
	var zero T
	if cfgVal == zero {
		return defaultVal
	}
	return cfgVal
}

// validate rejects configurations that cannot be applied.
func validate(cfg *Config) error {
	if !validLevel(cfg.Level) {
		return &ConfigError{Field: "level", Err: fmt.Errorf("%w: %d", ErrInvalidLevel, cfg.Level)}
	}
	if cfg.RetentionDays < 0 {
		return &ConfigError{Field: "retention_days", Err: ErrInvalidRetention}
	}
	if cfg.MaxSizeMB < 0 {
		return &ConfigError{Field: "max_size_mb", Err: fmt.Errorf("max size must be non-negative: %d", cfg.MaxSizeMB)}
	}
	return nil
}

func validLevel(level int64) bool {
	switch level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCritical:
		return true
	}
	return false
}

// ParseLevel converts a level name to its numeric constant.
// Both short and long variants are accepted, case-insensitively.
func ParseLevel(level string) (int64, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "CRIT", "CRITICAL":
		return LevelCritical, nil
	default:
		return 0, &ConfigError{Field: "level", Err: fmt.Errorf("%w: %q", ErrInvalidLevel, level)}
	}
}

// levelToString converts the numeric levels to the name written in log lines.
func levelToString(level int64) string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("UNKNOWN (%d)", level)
	}
}

// resolveModuleName returns the configured module name, falling back to the
// base name of the running binary without its extension. Interpreter-style
// invocations where the first argument is a flag resolve to "app".
func resolveModuleName(configured string) string {
	if configured != "" {
		return configured
	}
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "app"
	}
	base := filepath.Base(os.Args[0])
	if strings.HasPrefix(base, "-") {
		return "app"
	}
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return "app"
}
