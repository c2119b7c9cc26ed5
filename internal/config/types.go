package config

import "fmt"

// DomainType identifies an application area the synthesis engine can target.
type DomainType string

const (
	DomainDataScience         DomainType = "data_science"
	DomainSoftwareEngineering DomainType = "software_engineering"
	DomainResearch            DomainType = "research"
	DomainAutomation          DomainType = "automation"
	DomainFinance             DomainType = "finance"
	DomainHealthcare          DomainType = "healthcare"
)

var domainTypes = map[DomainType]struct{}{
	DomainDataScience:         {},
	DomainSoftwareEngineering: {},
	DomainResearch:            {},
	DomainAutomation:          {},
	DomainFinance:             {},
	DomainHealthcare:          {},
}

// ParseDomainType converts a raw string into a DomainType. The match is
// case-sensitive; anything outside the declared set is rejected.
func ParseDomainType(raw string) (DomainType, error) {
	d := DomainType(raw)
	if _, ok := domainTypes[d]; !ok {
		return "", fmt.Errorf("%w: unknown domain type %q", ErrValidation, raw)
	}
	return d, nil
}

// SynthesisStrategy selects how the synthesis engine combines components.
type SynthesisStrategy string

const (
	StrategyParallel   SynthesisStrategy = "parallel"
	StrategySequential SynthesisStrategy = "sequential"
	StrategyHybrid     SynthesisStrategy = "hybrid"
	StrategyEmergent   SynthesisStrategy = "emergent"
)

// ParseSynthesisStrategy converts a raw string into a SynthesisStrategy.
func ParseSynthesisStrategy(raw string) (SynthesisStrategy, error) {
	switch s := SynthesisStrategy(raw); s {
	case StrategyParallel, StrategySequential, StrategyHybrid, StrategyEmergent:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown synthesis strategy %q", ErrValidation, raw)
	}
}

// LogLevel is the configured logging severity threshold.
type LogLevel string

const (
	LevelDebug    LogLevel = "DEBUG"
	LevelInfo     LogLevel = "INFO"
	LevelWarning  LogLevel = "WARNING"
	LevelError    LogLevel = "ERROR"
	LevelCritical LogLevel = "CRITICAL"
)

// ParseLogLevel converts a raw string into a LogLevel.
func ParseLogLevel(raw string) (LogLevel, error) {
	switch l := LogLevel(raw); l {
	case LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical:
		return l, nil
	default:
		return "", fmt.Errorf("%w: unknown log level %q", ErrValidation, raw)
	}
}

// LogFormat selects the log output rendering.
type LogFormat string

const (
	FormatJSON LogFormat = "json"
	FormatText LogFormat = "text"
)

// ParseLogFormat converts a raw string into a LogFormat.
func ParseLogFormat(raw string) (LogFormat, error) {
	switch f := LogFormat(raw); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown log format %q", ErrValidation, raw)
	}
}

// DomainSettings holds the open-ended per-domain limits and allow-lists.
// Its shape is domain-specific; consumers narrow the keys they use.
type DomainSettings map[string]any
