package quick

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	logger "github.com/elem6-s-r-o/elem6-logger"
)

// config parses configuration strings into a Config.
// Each argument should be in "key=value" format where key matches a Config
// toml tag. The function handles type conversion and validation for each field.
func config(args ...string) (*logger.Config, error) {
	cfg := &logger.Config{}
	for _, arg := range args {
		key, value, err := parseKeyValue(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid config format: %s", arg)
		}

		if err := setValue(cfg, key, value); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}
	return cfg, nil
}

// parseKeyValue splits a configuration string into key and value parts at the
// first "=". Leading and trailing spaces are removed from both parts.
func parseKeyValue(arg string) (string, string, error) {
	key, value, found := strings.Cut(strings.TrimSpace(arg), "=")
	if !found || strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("invalid format")
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), nil
}

// setValue updates a Config field using reflection.
// Field matching is case-insensitive against the lower-case toml tags.
// Special handling is provided for "level" (accepts level names) and
// "extra_fields" (comma-separated key:value pairs).
func setValue(cfg *logger.Config, key, value string) error {
	key = strings.ToLower(key)

	if key == "level" {
		level, err := logger.ParseLevel(value)
		if err != nil {
			return err
		}
		cfg.Level = level
		return nil
	}
	if key == "extra_fields" {
		fields, err := parseFields(value)
		if err != nil {
			return err
		}
		cfg.ExtraFields = fields
		return nil
	}

	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("toml"); tag != key {
			continue
		}
		f := v.Field(i)

		switch f.Kind() {
		case reflect.Int64:
			val, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid int64 value for %s: %s", key, value)
			}
			f.SetInt(val)

		case reflect.String:
			f.SetString(value)

		case reflect.Bool:
			val, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid bool value for %s: %s", key, value)
			}
			f.SetBool(val)

		default:
			return fmt.Errorf("unsupported config type for %s", key)
		}

		return nil
	}
	return fmt.Errorf("unknown config key: %s", key)
}

// parseFields converts "key:value,key:value" into ordered extra fields.
func parseFields(value string) (logger.Fields, error) {
	if value == "" {
		return nil, nil
	}
	var fields logger.Fields
	for _, pair := range strings.Split(value, ",") {
		k, v, found := strings.Cut(pair, ":")
		if !found || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid extra field: %s", pair)
		}
		fields = append(fields, logger.Field{Key: strings.TrimSpace(k), Value: strings.TrimSpace(v)})
	}
	return fields, nil
}
