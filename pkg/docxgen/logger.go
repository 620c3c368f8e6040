package docxgen

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
	LogOff
)

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "DEBUG"
	case LogInfo:
		return "INFO"
	case LogWarn:
		return "WARN"
	case LogError:
		return "ERROR"
	case LogOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) zerologLevel() zerolog.Level {
	switch l {
	case LogDebug:
		return zerolog.DebugLevel
	case LogInfo:
		return zerolog.InfoLevel
	case LogWarn:
		return zerolog.WarnLevel
	case LogError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

type Fields map[string]interface{}

// Logger is a leveled printf-style logger backed by zerolog.
type Logger struct {
	mu    sync.Mutex
	zl    zerolog.Logger
	level LogLevel
}

var (
	globalLogger     *Logger
	globalLoggerOnce sync.Once
	globalLoggerMu   sync.RWMutex
	initLoggingOnce  sync.Once
)

func initGlobalLogger() {
	globalLoggerOnce.Do(func() {
		config := GetGlobalConfig()
		logger := NewConsoleLogger(os.Stderr, parseLogLevel(config.LogLevel))
		if config.LogTag != "" {
			logger = logger.WithField("tag", config.LogTag)
		}
		globalLoggerMu.Lock()
		if globalLogger == nil {
			globalLogger = logger
		}
		globalLoggerMu.Unlock()
	})
}

func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LogDebug
	case "info":
		return LogInfo
	case "warn", "warning":
		return LogWarn
	case "error":
		return LogError
	case "off", "none":
		return LogOff
	default:
		return LogInfo
	}
}

// NewLogger returns a logger writing JSON lines to w.
func NewLogger(w io.Writer, level LogLevel) *Logger {
	if w == nil {
		w = io.Discard
	}
	return newLogger(zerolog.New(w).With().Timestamp().Logger(), level)
}

// NewConsoleLogger returns a logger writing human-readable lines to w.
func NewConsoleLogger(w io.Writer, level LogLevel) *Logger {
	if w == nil {
		w = io.Discard
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	return newLogger(zerolog.New(out).With().Timestamp().Logger(), level)
}

func newLogger(zl zerolog.Logger, level LogLevel) *Logger {
	return &Logger{zl: zl.Level(level.zerologLevel()), level: level}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.zl = l.zl.Level(level.zerologLevel())
}

func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) IsDebugMode() bool {
	return l.Level() == LogDebug
}

func (l *Logger) snapshot() (zerolog.Logger, LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.zl, l.level
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

func (l *Logger) WithFields(fields Fields) *Logger {
	zl, level := l.snapshot()
	ctx := zl.With()
	for k, v := range fields {
		switch val := v.(type) {
		case error:
			ctx = ctx.AnErr(k, val)
		case string:
			ctx = ctx.Str(k, val)
		case fmt.Stringer:
			ctx = ctx.Stringer(k, val)
		default:
			ctx = ctx.Interface(k, val)
		}
	}
	return newLogger(ctx.Logger(), level)
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	zl, _ := l.snapshot()
	evt := zl.WithLevel(level.zerologLevel())
	if evt == nil {
		return
	}
	if len(args) == 0 {
		evt.Msg(format)
		return
	}
	evt.Msgf(format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogDebug, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LogWarn, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogError, format, args...)
}

// InitLogging installs the process-wide logger at the given level, tagging
// every line with tag. Only the first call has an effect; it returns false
// for every later call. There is no teardown.
func InitLogging(level, tag string) bool {
	initialised := false
	initLoggingOnce.Do(func() {
		logger := NewConsoleLogger(os.Stderr, parseLogLevel(level))
		if tag != "" {
			logger = logger.WithField("tag", tag)
		}
		SetLogger(logger)
		logger.Info("logging initialised")
		initialised = true
	})
	return initialised
}

// Global logging functions
func SetLogger(logger *Logger) {
	// Consume the lazy default so it cannot replace logger later.
	globalLoggerOnce.Do(func() {})
	globalLoggerMu.Lock()
	globalLogger = logger
	globalLoggerMu.Unlock()
}

func GetLogger() *Logger {
	initGlobalLogger()
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// UpdateLoggerFromConfig updates the global logger based on the current global configuration
func UpdateLoggerFromConfig() {
	GetLogger().SetLevel(parseLogLevel(GetGlobalConfig().LogLevel))
}
