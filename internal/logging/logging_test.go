package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/acdsyn/acdsyn/internal/config"
)

func testConfig(level config.LogLevel, format config.LogFormat, structured bool) *config.Config {
	return &config.Config{
		LogLevel:                level,
		LogFormat:               format,
		EnableStructuredLogging: structured,
	}
}

func TestNewJSON(t *testing.T) {
	logger, err := New(testConfig(config.LevelInfo, config.FormatJSON, true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug entries to be filtered at INFO")
	}
	_ = logger.Sync()
}

func TestNewConsole(t *testing.T) {
	logger, err := New(testConfig(config.LevelDebug, config.FormatText, false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug entries to be enabled at DEBUG")
	}
	_ = logger.Sync()
}

func TestZapLevelMapping(t *testing.T) {
	cases := map[config.LogLevel]zapcore.Level{
		config.LevelDebug:    zapcore.DebugLevel,
		config.LevelInfo:     zapcore.InfoLevel,
		config.LevelWarning:  zapcore.WarnLevel,
		config.LevelError:    zapcore.ErrorLevel,
		config.LevelCritical: zapcore.FatalLevel,
	}
	for level, want := range cases {
		if got := zapLevel(level); got != want {
			t.Fatalf("level %s mapped to %s, want %s", level, got, want)
		}
	}
}

func TestForTagsContext(t *testing.T) {
	logger, err := New(testConfig(config.LevelInfo, config.FormatJSON, true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tagged := For(logger, ContextSynthesis)
	if tagged == nil {
		t.Fatalf("expected tagged logger")
	}
	if tagged == logger {
		t.Fatalf("expected a child logger, got the parent")
	}
	_ = tagged.Sync()
}
