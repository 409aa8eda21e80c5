package logger

import (
	"os"
	"path/filepath"
	"time"
)

// Sweep deletes log files in dir older than retentionDays days, judged by
// filesystem modification time. It is a no-op when retentionDays is 0 or the
// directory does not exist. The sweep is best-effort: failures on individual
// files are reported as warnings through the attached sinks and do not abort
// the rest of the pass. Init runs one sweep synchronously; callers wanting
// periodic cleanup schedule Sweep themselves.
func Sweep(dir string, retentionDays int64) error {
	if retentionDays < 0 {
		return &ConfigError{Field: "retention_days", Err: ErrInvalidRetention}
	}
	set := activeSinks.Load()
	return sweepFiles(dir, retentionDays, set, activeFileNames(set))
}

// sweepFiles is the sweep pass proper. Age is derived from mtime rather than
// the timestamp embedded in the file name, so renamed or copied files are
// still aged correctly. Only regular *.log files directly inside dir are
// considered; the currently open log file is always skipped.
func sweepFiles(dir string, retentionDays int64, set *sinkSet, skip map[string]bool) error {
	if retentionDays <= 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".log" {
			continue
		}
		if skip[name] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// File vanished between the listing and the stat.
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				emit(set, LevelWarn, internalName, "failed to delete expired log file", Fields{
					{Key: "file", Value: name},
					{Key: "error", Value: err.Error()},
				})
			}
		}
	}
	return nil
}
