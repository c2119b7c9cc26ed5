package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/acdsyn/acdsyn/internal/config"
)

// LogContext tags a logger with the ecosystem component it reports for.
type LogContext string

const (
	ContextSynthesis     LogContext = "synthesis"
	ContextCommunication LogContext = "communication"
	ContextFeedback      LogContext = "feedback"
	ContextDomain        LogContext = "domain"
	ContextSystem        LogContext = "system"
	ContextError         LogContext = "error"
)

// New creates a structured logger driven by the loaded settings: the JSON
// encoder when structured logging is enabled with the json format, a
// console-style development encoder otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.EnableStructuredLogging && cfg.LogFormat == config.FormatJSON {
		zapCfg = zap.NewProductionConfig()
		zapCfg.Encoding = "json"
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
	}

	zapCfg.Level = zap.NewAtomicLevelAt(zapLevel(cfg.LogLevel))
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.EncoderConfig.StacktraceKey = "stacktrace"
	zapCfg.DisableStacktrace = false

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// For returns a child logger named after the given context and carrying it as
// a constant field, so every entry from a component is attributable.
func For(logger *zap.Logger, ctx LogContext) *zap.Logger {
	return logger.Named(string(ctx)).With(zap.String("context", string(ctx)))
}

// zapLevel maps the configured level onto zap's severity scale. CRITICAL has
// no direct zap counterpart and maps to Fatal.
func zapLevel(level config.LogLevel) zapcore.Level {
	switch level {
	case config.LevelDebug:
		return zapcore.DebugLevel
	case config.LevelWarning:
		return zapcore.WarnLevel
	case config.LevelError:
		return zapcore.ErrorLevel
	case config.LevelCritical:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
