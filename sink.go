package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// consoleOut is the console sink destination, injectable for tests.
var consoleOut io.Writer = os.Stdout

// sink is a single output destination for formatted log lines. Writing and
// closing are mutually exclusive, so a goroutine holding a stale sink snapshot
// can never write into a torn-down sink.
type sink struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer // nil for the console sink
	path   string    // file name on disk, empty for the console sink
	closed bool
}

func (s *sink) write(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	_, err := s.w.Write(line)
	return err
}

func (s *sink) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.closer != nil {
		s.closer.Close()
	}
}

// logFileName computes the on-disk file name for a file sink built at ts.
// The format is a compatibility contract and must not change.
func logFileName(moduleName string, ts time.Time) string {
	return fmt.Sprintf("%s_%s.log", moduleName, ts.Format("20060102_1504"))
}

// buildSinks translates a configuration into concrete sinks. Construction is
// synchronous and fails fast: a file sink that cannot be created aborts the
// whole build rather than degrading to console-only.
func buildSinks(cfg *Config, moduleName string, now time.Time) ([]*sink, error) {
	var sinks []*sink

	if !cfg.DisableConsole {
		sinks = append(sinks, &sink{w: consoleOut})
	}

	if !cfg.DisableFile {
		if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
			return nil, &ConfigError{Field: "directory", Err: fmt.Errorf("failed to create log directory: %w", err)}
		}

		name := logFileName(moduleName, now)
		path := filepath.Join(cfg.Directory, name)

		if cfg.MaxSizeMB > 0 {
			// lumberjack opens lazily and rotates in place once the file
			// exceeds MaxSize megabytes.
			writer := &lumberjack.Logger{
				Filename: path,
				MaxSize:  int(cfg.MaxSizeMB),
			}
			sinks = append(sinks, &sink{w: writer, closer: writer, path: name})
		} else {
			file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return nil, &ConfigError{Field: "directory", Err: fmt.Errorf("failed to create log file: %w", err)}
			}
			sinks = append(sinks, &sink{w: file, closer: file, path: name})
		}
	}

	return sinks, nil
}
