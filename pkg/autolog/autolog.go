// Package autolog is the logger instrumented Go code calls into by default.
//
// Every function takes the "[file:line:column]" location and the name of the
// instrumented function, followed by whatever the call site passes along,
// typically the checked error. Records go through log/slog.
package autolog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
)

// env vars read on start-up
const (
	EnvFile   = "AUTOLOG_FILE"
	EnvLevel  = "AUTOLOG_LEVEL"
	EnvFormat = "AUTOLOG_FORMAT"
)

// LevelLog is used for plain function entries and sits below debug.
const LevelLog = slog.Level(-8)

var (
	mu     sync.RWMutex
	logger *slog.Logger
)

func init() {
	SetLogger(FromEnv(os.LookupEnv))
}

// New returns a logger writing text, or JSON when format is "json", at level
// and above.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevel,
	}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// FromEnv builds a logger from AUTOLOG_FILE, AUTOLOG_LEVEL and
// AUTOLOG_FORMAT. Without a file it writes to stderr; a file that cannot be
// opened falls back to stderr too.
func FromEnv(lookup func(string) (string, bool)) *slog.Logger {
	var w io.Writer = os.Stderr
	if path, ok := lookup(EnvFile); ok && path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600); err == nil {
			w = f
		}
	}

	level, _ := lookup(EnvLevel)
	format, _ := lookup(EnvFormat)
	return New(w, ParseLevel(level), format)
}

// ParseLevel maps a level name to a slog level. Unknown names keep every
// record.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return LevelLog
	}
}

// SetLogger replaces the logger. A nil logger discards every record.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Log(location, name string, args ...any) {
	emit(LevelLog, location, name, args)
}

func Debug(location, name string, args ...any) {
	emit(slog.LevelDebug, location, name, args)
}

func Info(location, name string, args ...any) {
	emit(slog.LevelInfo, location, name, args)
}

func Warn(location, name string, args ...any) {
	emit(slog.LevelWarn, location, name, args)
}

func Error(location, name string, args ...any) {
	emit(slog.LevelError, location, name, args)
}

func emit(level slog.Level, location, name string, args []any) {
	l := current()
	ctx := context.Background()
	if !l.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, len(args)+1)
	attrs = append(attrs, slog.String("location", location))
	for i, arg := range args {
		if err, ok := arg.(error); ok {
			attrs = append(attrs, slog.String("error", err.Error()))
			continue
		}
		attrs = append(attrs, slog.Any("arg"+strconv.Itoa(i), arg))
	}

	l.LogAttrs(ctx, level, name, attrs...)
}

func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level == LevelLog {
		a.Value = slog.StringValue("LOG")
	}
	return a
}
