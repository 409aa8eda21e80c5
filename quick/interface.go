// Package quick offers zero-ceremony bootstrap and logging on top of the
// shared logger registry, configured through "key=value" strings.
//
//	quick.Init("level=debug", "directory=/tmp/logs", "retention_days=7")
//	quick.Info("service started")
package quick

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/elem6-s-r-o/elem6-logger"
)

// Init initializes the shared registry from configuration strings.
// e.g. quick.Init("level=debug", "disable_file=true")
func Init(args ...string) error {
	cfg, err := config(args...)
	if err != nil {
		return err
	}
	return logger.Init(cfg)
}

// Config reconfigures the running logger with string statements.
// e.g. quick.Config("level=debug")
func Config(args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no config provided")
	}
	return Init(args...)
}

// Debug logs a debug message through the process-named handle.
func Debug(msg string, fields ...logger.Field) {
	handle().Debug(msg, fields...)
}

// Info logs an info message through the process-named handle.
func Info(msg string, fields ...logger.Field) {
	handle().Info(msg, fields...)
}

// Warn logs a warning message through the process-named handle.
func Warn(msg string, fields ...logger.Field) {
	handle().Warn(msg, fields...)
}

// Error logs an error message through the process-named handle.
func Error(msg string, fields ...logger.Field) {
	handle().Error(msg, fields...)
}

// Critical logs a critical message through the process-named handle.
func Critical(msg string, fields ...logger.Field) {
	handle().Critical(msg, fields...)
}

// handle resolves the default handle, named after the running binary.
// GetLogger initializes the registry with defaults on first use.
func handle() *logger.Logger {
	return logger.GetLogger(processName())
}

func processName() string {
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
