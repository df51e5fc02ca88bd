// pkg/logger/logger.go

package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var (
	mu  sync.Mutex
	log *zap.Logger
)

// Config controls where logs go. Passwords are never part of log output;
// callers log crypto.Redact values instead.
type Config struct {
	// Level is the console level: debug, info, warn or error. LOG_LEVEL wins
	// over it when set.
	Level string
	// File, when set, receives JSON logs at info level or above.
	File string
	// Console defaults to stderr so stdout stays reserved for passwords.
	Console zapcore.WriteSyncer
}

// Initialize builds the global logger from cfg and installs it for both zap
// and otelzap. A log file that cannot be opened degrades to console only and
// is reported in the returned error.
func Initialize(cfg Config) (*zap.Logger, error) {
	level := ParseLogLevel(cfg.Level)
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = ParseLogLevel(env)
	}

	console := cfg.Console
	colour := false
	if console == nil {
		console = zapcore.Lock(os.Stderr)
		colour = term.IsTerminal(int(os.Stderr.Fd()))
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig(colour)), console, level),
	}

	var fileErr error
	if cfg.File != "" {
		writer, err := GetLogFileWriter(cfg.File)
		if err != nil {
			fileErr = err
		} else {
			jsonCfg := zap.NewProductionEncoderConfig()
			jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
			jsonCfg.EncodeLevel = zapcore.CapitalLevelEncoder
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), writer, minLevel(level, zapcore.InfoLevel)))
		}
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	SetLogger(l)

	l.Debug("Logger initialized",
		zap.String("log_level", level.String()),
		zap.String("log_file", cfg.File))
	if fileErr != nil {
		l.Warn("Log file unavailable, logging to console only", zap.Error(fileErr))
	}
	return l, fileErr
}

// InitFallback installs a console-only logger at the LOG_LEVEL level
// (warn by default). Used before configuration is read.
func InitFallback() {
	_, _ = Initialize(Config{Level: "warn"})
}

// SetLogger replaces the global zap and otelzap loggers.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
	zap.ReplaceGlobals(l)
	otelzap.ReplaceGlobals(otelzap.New(l))
}

// L returns the global logger, initializing the fallback if needed.
func L() *zap.Logger {
	mu.Lock()
	l := log
	mu.Unlock()
	if l == nil {
		InitFallback()
		return L()
	}
	return l
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() error {
	mu.Lock()
	l := log
	mu.Unlock()
	if l == nil {
		return nil
	}
	if err := l.Sync(); err != nil && !isIgnorableSyncError(err) {
		return fmt.Errorf("sync logger: %w", err)
	}
	return nil
}

// GenerateTraceID returns a short 8-char trace ID.
func GenerateTraceID() string {
	return uuid.New().String()[:8]
}

func ParseLogLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE", "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func DefaultConsoleEncoderConfig(colour bool) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = "C"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if colour {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}

func minLevel(a, b zapcore.Level) zapcore.Level {
	if a < b {
		return a
	}
	return b
}

// isIgnorableSyncError matches the EINVAL/ENOTTY zap reports when syncing
// stderr attached to a terminal.
func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "invalid argument") || strings.Contains(msg, "inappropriate ioctl")
}
