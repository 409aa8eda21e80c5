package logger

import (
	"bytes"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Line template tokens expanded by the formatter:
//
//	{timestamp}  record time in the configured date layout
//	{name}       logical logger name
//	{level}      level name (DEBUG..CRITICAL)
//	{pid}        process id
//	{tid}        goroutine id of the emitting goroutine
//	{message}    message text
//
// Unknown tokens are written through verbatim. Extra fields are appended after
// the expanded template as " - key=value" pairs.

// formatter renders log records into their final line form. It is immutable
// after construction and safe for concurrent use; each render call works on
// its own buffer.
type formatter struct {
	format    string
	layout    string
	cfgFields Fields
}

func newFormatter(cfg *Config) *formatter {
	return &formatter{
		format:    cfg.FormatString,
		layout:    cfg.DateFormat,
		cfgFields: cfg.ExtraFields,
	}
}

// render expands the line template and appends merged extra fields, returning
// a complete newline-terminated line.
func (f *formatter) render(ts time.Time, name string, level int64, msg string, extra Fields) []byte {
	buf := make([]byte, 0, len(f.format)+len(msg)+64)

	tmpl := f.format
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			buf = append(buf, tmpl...)
			break
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			buf = append(buf, tmpl...)
			break
		}
		end += open

		buf = append(buf, tmpl[:open]...)
		switch tmpl[open+1 : end] {
		case "timestamp":
			buf = ts.AppendFormat(buf, f.layout)
		case "name":
			buf = append(buf, name...)
		case "level":
			buf = append(buf, levelToString(level)...)
		case "pid":
			buf = strconv.AppendInt(buf, int64(os.Getpid()), 10)
		case "tid":
			buf = append(buf, goroutineID()...)
		case "message":
			buf = append(buf, msg...)
		default:
			buf = append(buf, tmpl[open:end+1]...)
		}
		tmpl = tmpl[end+1:]
	}

	for _, field := range mergeFields(f.cfgFields, extra) {
		buf = append(buf, " - "...)
		buf = append(buf, field.Key...)
		buf = append(buf, '=')
		buf = append(buf, field.Value...)
	}

	buf = append(buf, '\n')
	return buf
}

// mergeFields combines configuration-level fields with per-call fields.
// Base order is preserved, per-call values win on key collision, and per-call
// keys not present in the base are appended in their own order. Neither input
// is mutated.
func mergeFields(base, over Fields) Fields {
	if len(over) == 0 {
		return base
	}
	if len(base) == 0 {
		return over
	}

	overIdx := make(map[string]int, len(over))
	for i, field := range over {
		overIdx[field.Key] = i // last occurrence wins
	}

	merged := make(Fields, 0, len(base)+len(over))
	fromBase := make(map[string]bool, len(base))
	for _, field := range base {
		if i, ok := overIdx[field.Key]; ok {
			merged = append(merged, over[i])
		} else {
			merged = append(merged, field)
		}
		fromBase[field.Key] = true
	}
	for i, field := range over {
		if fromBase[field.Key] || overIdx[field.Key] != i {
			continue
		}
		merged = append(merged, field)
	}
	return merged
}

// goroutineID extracts the numeric goroutine id from the runtime stack header,
// the only place the runtime exposes it.
func goroutineID() string {
	var stack [64]byte
	n := runtime.Stack(stack[:], false)
	header := stack[:n]
	header = bytes.TrimPrefix(header, []byte("goroutine "))
	if i := bytes.IndexByte(header, ' '); i > 0 {
		return string(header[:i])
	}
	return "0"
}
