package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog logger carrying the fields of one component
type Logger struct {
	logger zerolog.Logger
}

// Fields are attached to every event of a derived logger
type Fields map[string]interface{}

// Default is the process-wide logger, set by Init or InitWithWriter
var Default *Logger

// Init logs human-readable lines to stdout
func Init() {
	InitWithWriter(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})
}

// InitWithWriter makes Default write JSON lines to out at the level chosen
// by LOG_LEVEL or PRODLINK_ENVIRONMENT
func InitWithWriter(out io.Writer) {
	level := getLogLevel()

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)

	Default = &Logger{logger: zerolog.New(out).With().Timestamp().Logger()}
	Default.Debug().Str("level", level.String()).Msg("Logger initialized")
}

// getLogLevel prefers LOG_LEVEL; without it production logs at info and
// everything else at debug. Unparseable levels fall back to info.
func getLogLevel() zerolog.Level {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		if os.Getenv("PRODLINK_ENVIRONMENT") == "production" {
			return zerolog.InfoLevel
		}
		return zerolog.DebugLevel
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func defaultLogger() *Logger {
	if Default == nil {
		Init()
	}
	return Default
}

// WithFields derives a logger that adds fields to every event
func (l *Logger) WithFields(fields Fields) *Logger {
	ctx := l.logger.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{logger: ctx.Logger()}
}

// WithError derives a logger that attaches err to every event
func (l *Logger) WithError(err error) *Logger {
	return &Logger{logger: l.logger.With().Err(err).Logger()}
}

func (l *Logger) Debug() *zerolog.Event { return l.logger.Debug() }

func (l *Logger) Info() *zerolog.Event { return l.logger.Info() }

func (l *Logger) Warn() *zerolog.Event { return l.logger.Warn() }

func (l *Logger) Error() *zerolog.Event { return l.logger.Error() }

func (l *Logger) Fatal() *zerolog.Event { return l.logger.Fatal() }

// Debug logs a formatted message on the default logger
func Debug(format string, v ...interface{}) {
	defaultLogger().Debug().Msgf(format, v...)
}

// Info logs a formatted message on the default logger
func Info(format string, v ...interface{}) {
	defaultLogger().Info().Msgf(format, v...)
}

// Warn logs a formatted message on the default logger
func Warn(format string, v ...interface{}) {
	defaultLogger().Warn().Msgf(format, v...)
}

// IsDebugEnabled reports whether debug events are written
func IsDebugEnabled() bool {
	defaultLogger()
	return zerolog.GlobalLevel() <= zerolog.DebugLevel
}

func component(name string) *Logger {
	return defaultLogger().WithFields(Fields{"component": name})
}

// ForExtractor tags events with the extractor component and the page domain
func ForExtractor(domain string) *Logger {
	return component("extractor").WithFields(Fields{"domain": domain})
}

func ForServer() *Logger { return component("server") }

func ForWorker() *Logger { return component("worker") }

func ForPublisher() *Logger { return component("publisher") }

func ForCache() *Logger { return component("cache") }

// LogError logs err at error level under the given component
func LogError(name string, err error, format string, v ...interface{}) {
	defaultLogger().Error().
		Str("component", name).
		Err(err).
		Msg(fmt.Sprintf(format, v...))
}
