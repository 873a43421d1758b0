// Package logging builds the zerolog loggers used by the pagenav CLI and
// carries them, together with a per-invocation trace ID, through context.
package logging

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Output formats and destinations.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	OutputStderr  = "stderr"
	OutputFile    = "file"
)

// Field names shared by every component logger.
const (
	FieldComponent = "component"
	FieldTraceID   = "trace_id"
)

// Default rotation limits for log files.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 28
)

// Config controls how NewLoggerWithPath builds a logger. Zero rotation
// limits fall back to the defaults above.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// LogPathResult is the outcome of building a logger: the logger itself plus
// whether a log file is in use or the file could not be opened.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file io.Closer
}

// Close releases the log file, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLoggerWithPath builds a logger from cfg. When a file is requested but
// cannot be opened, it falls back to stderr and records why.
func NewLoggerWithPath(cfg Config) LogPathResult {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, stderr io.Writer) LogPathResult {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var result LogPathResult
	var out io.Writer = stderr

	if cfg.Output == OutputFile && cfg.File != "" {
		f, openErr := openLogFile(cfg)
		if openErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = openErr.Error()
		} else {
			out = f
			result.file = f
			result.UsingFile = true
			result.FilePath = cfg.File
		}
	}

	if cfg.Format != FormatJSON && !result.UsingFile {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	result.Logger = ctx.Logger()
	return result
}

// openLogFile returns a size-rotated writer for cfg.File. The file is opened
// once up front so an unwritable path is reported here, not on first write.
func openLogFile(cfg Config) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	if err = f.Close(); err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    orDefault(cfg.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: orDefault(cfg.MaxBackups, DefaultMaxBackups),
		MaxAge:     orDefault(cfg.MaxAgeDays, DefaultMaxAgeDays),
	}, nil
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

// ComponentLogger returns a child of l tagged with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str(FieldComponent, component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		l := zerolog.Nop()
		return &l
	}
	return zerolog.Ctx(ctx)
}

// PrintLogPathMessage tells the user where logs are going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user the log file could not be used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: log file unavailable, logging to stderr: %s\n", reason)
}

type traceIDKey struct{}

// NewTraceID returns a fresh ULID string.
func NewTraceID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ContextWithTraceID stores traceID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// GetOrGenerateTraceID returns the trace ID in ctx, generating one if absent.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewTraceID()
}
