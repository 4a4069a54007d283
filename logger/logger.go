// Package logger configures the process-wide zerolog logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config selects level, encoding and destination of log output.
type Config struct {
	Level      string `yaml:"level" envconfig:"LEVEL"`
	Format     string `yaml:"format" envconfig:"FORMAT"`
	Output     string `yaml:"output" envconfig:"OUTPUT"`
	FilePath   string `yaml:"file_path" envconfig:"FILE_PATH"`
	TimeFormat string `yaml:"time_format" envconfig:"TIME_FORMAT"`
}

// Logger is the configured global logger. Until Init runs it discards output.
var Logger = zerolog.Nop()

var initialized bool

// Init initializes the global logger with the provided configuration.
// The returned closer releases the log file when Output is "file".
func Init(config Config) (io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level '%s': %w", config.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	zerolog.TimeFieldFormat = timeLayout(config.TimeFormat)

	var (
		output io.Writer
		closer io.Closer = nopCloser{}
		toFile bool
	)
	switch strings.ToLower(config.Output) {
	case "stdout":
		output = os.Stdout
	case "file":
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file '%s': %w", config.FilePath, err)
		}
		output, closer, toFile = file, file, true
	default:
		output = os.Stderr
	}

	if strings.ToLower(config.Format) == "console" {
		output = consoleWriter(output, zerolog.TimeFieldFormat, toFile)
	}

	Logger = New(output)
	log.Logger = Logger
	initialized = true

	Logger.Debug().
		Str("level", config.Level).
		Str("format", config.Format).
		Str("output", config.Output).
		Msg("logger initialized")

	return closer, nil
}

// Initialized reports whether Init has completed at least once.
func Initialized() bool { return initialized }

// timeLayout maps a configured time format name to a zerolog field format.
func timeLayout(name string) string {
	switch strings.ToLower(name) {
	case "unix":
		return zerolog.TimeFormatUnix
	case "iso8601":
		return "2006-01-02T15:04:05.000Z07:00"
	default:
		return time.RFC3339
	}
}

// consoleWriter renders timestamps with the same layout as the JSON
// encoder. Unix timestamps are printed as the raw seconds.
func consoleWriter(out io.Writer, layout string, noColor bool) zerolog.ConsoleWriter {
	w := zerolog.ConsoleWriter{Out: out, TimeFormat: layout, NoColor: noColor}
	if layout == zerolog.TimeFormatUnix {
		w.FormatTimestamp = func(i any) string { return fmt.Sprint(i) }
	}
	return w
}

// New builds a timestamped logger writing to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// WithContext attaches the global logger to ctx so that library code can
// reach it through zerolog.Ctx.
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}

// Info, Debug, Warn and Error start an event on the global logger.
func Info() *zerolog.Event  { return Logger.Info() }
func Debug() *zerolog.Event { return Logger.Debug() }
func Warn() *zerolog.Event  { return Logger.Warn() }
func Error() *zerolog.Event { return Logger.Error() }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
