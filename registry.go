package logger

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Package level variables maintaining logger state and configuration.
// All mutation happens under regMu; emission reads the atomic sink-set
// snapshot and the atomic level without taking the lock.
var (
	regMu         sync.Mutex
	currentConfig *Config            // guarded by regMu, nil before initialization
	namedLoggers  map[string]*Logger // guarded by regMu
	activeSinks   atomic.Pointer[sinkSet]
	logLevel      atomic.Int64
	isInitialized atomic.Bool
)

// internalName is the logger name used for the registry's own records:
// the configuration summary, level changes and sweep warnings.
const internalName = "logger"

// sinkSet is one immutable generation of attached sinks plus the formatter
// they share. Reconfiguration swaps the whole set atomically.
type sinkSet struct {
	sinks     []*sink
	formatter *formatter
}

// Init initializes the logger with the provided configuration, or with
// DefaultConfig when called without one. Unset fields are filled from the
// defaults. Calling Init again tears down the previous sinks and rebuilds
// everything from the new configuration; the rebuild happens under the
// registry lock, so concurrent callers observe either the old or the new
// state in full, never a partial one.
func Init(cfg ...*Config) error {
	var userConfig *Config
	if len(cfg) > 0 {
		userConfig = cfg[0]
	}

	regMu.Lock()
	defer regMu.Unlock()
	return initLocked(mergeConfig(userConfig))
}

// initLocked performs the rebuild. Callers must hold regMu. On error the
// previous state is left fully intact.
func initLocked(cfg *Config) error {
	if err := validate(cfg); err != nil {
		return err
	}

	moduleName := resolveModuleName(cfg.ModuleName)
	sinks, err := buildSinks(cfg, moduleName, time.Now())
	if err != nil {
		return err
	}

	next := &sinkSet{sinks: sinks, formatter: newFormatter(cfg)}
	prev := activeSinks.Swap(next)
	if prev != nil {
		for _, s := range prev.sinks {
			s.close()
		}
	}

	logLevel.Store(cfg.Level)
	cfgCopy := *cfg
	currentConfig = &cfgCopy
	namedLoggers = make(map[string]*Logger)
	isInitialized.Store(true)

	// One synchronous retention pass; periodic scheduling is the caller's
	// responsibility.
	if !cfg.DisableFile {
		sweepFiles(cfg.Directory, cfg.RetentionDays, next, activeFileNames(next))
	}

	emit(next, LevelInfo, internalName, "logger configured", Fields{
		{Key: "directory", Value: cfg.Directory},
		{Key: "level", Value: levelToString(cfg.Level)},
		{Key: "retention_days", Value: fmt.Sprintf("%d", cfg.RetentionDays)},
		{Key: "file_pattern", Value: moduleName + "_YYYYMMDD_HHMM.log"},
		{Key: "environment", Value: cfg.Environment},
		{Key: "console_handler", Value: fmt.Sprintf("%t", !cfg.DisableConsole)},
		{Key: "file_handler", Value: fmt.Sprintf("%t", !cfg.DisableFile)},
	})
	return nil
}

// GetLogger returns the stable logger handle for name, creating it on first
// use. If Init was never called, the registry is first initialized with
// DefaultConfig; when that implicit initialization fails (for example the
// default log directory cannot be created), the returned handle silently
// drops records until a later Init succeeds.
func GetLogger(name string) *Logger {
	regMu.Lock()
	defer regMu.Unlock()

	if !isInitialized.Load() {
		_ = initLocked(mergeConfig(nil))
	}

	if l, ok := namedLoggers[name]; ok {
		return l
	}
	l := &Logger{name: name}
	if namedLoggers == nil {
		namedLoggers = make(map[string]*Logger)
	}
	namedLoggers[name] = l
	return l
}

// SetLogLevel atomically updates the level filter on every attached sink.
// Filtering happens at the sink set, so the change takes effect immediately
// for all previously issued handles.
func SetLogLevel(level int64) error {
	regMu.Lock()
	defer regMu.Unlock()

	if !validLevel(level) {
		emit(activeSinks.Load(), LevelError, internalName,
			fmt.Sprintf("attempted to set invalid log level: %d", level), nil)
		return &ConfigError{Field: "level", Err: fmt.Errorf("%w: %d", ErrInvalidLevel, level)}
	}

	logLevel.Store(level)
	if currentConfig != nil {
		currentConfig.Level = level
	}

	emit(activeSinks.Load(), LevelInfo, internalName, "log level changed", Fields{
		{Key: "level", Value: levelToString(level)},
	})
	return nil
}

// CurrentConfig returns a copy of the last applied configuration, or nil
// before initialization.
func CurrentConfig() *Config {
	regMu.Lock()
	defer regMu.Unlock()
	if currentConfig == nil {
		return nil
	}
	cfgCopy := *currentConfig
	return &cfgCopy
}

// Reset tears down all sinks and returns the registry to its uninitialized
// state. It exists for tests; production processes keep the registry for
// their whole lifetime.
func Reset() {
	regMu.Lock()
	defer regMu.Unlock()

	if prev := activeSinks.Swap(nil); prev != nil {
		for _, s := range prev.sinks {
			s.close()
		}
	}
	currentConfig = nil
	namedLoggers = nil
	logLevel.Store(LevelInfo)
	isInitialized.Store(false)
}

// emit renders one record and delivers it to every sink in the set. It never
// takes the registry lock. Write errors are the backend's concern and are not
// retried.
func emit(set *sinkSet, level int64, name, msg string, extra Fields) {
	if set == nil {
		return
	}
	if level < logLevel.Load() {
		return
	}
	line := set.formatter.render(time.Now(), name, level, msg, extra)
	for _, s := range set.sinks {
		_ = s.write(line)
	}
}

// activeFileNames lists the file names currently owned by the set's file
// sinks, so the retention sweep never deletes the file it is writing to.
func activeFileNames(set *sinkSet) map[string]bool {
	if set == nil {
		return nil
	}
	names := make(map[string]bool, 1)
	for _, s := range set.sinks {
		if s.path != "" {
			names[s.path] = true
		}
	}
	return names
}
