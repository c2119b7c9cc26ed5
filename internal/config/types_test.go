package config

import (
	"errors"
	"testing"
)

func TestParseDomainType(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, raw := range []string{"data_science", "software_engineering", "research", "automation", "finance", "healthcare"} {
			if _, err := ParseDomainType(raw); err != nil {
				t.Fatalf("unexpected error for %q: %v", raw, err)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"", "DATA_SCIENCE", "astrology"} {
			if _, err := ParseDomainType(raw); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error for %q", raw)
			}
		}
	})
}

func TestParseSynthesisStrategy(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, raw := range []string{"parallel", "sequential", "hybrid", "emergent"} {
			if _, err := ParseSynthesisStrategy(raw); err != nil {
				t.Fatalf("unexpected error for %q: %v", raw, err)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"", "Hybrid", "recursive"} {
			if _, err := ParseSynthesisStrategy(raw); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error for %q", raw)
			}
		}
	})
}

func TestParseLogLevel(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, raw := range []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"} {
			if _, err := ParseLogLevel(raw); err != nil {
				t.Fatalf("unexpected error for %q: %v", raw, err)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"", "info", "TRACE"} {
			if _, err := ParseLogLevel(raw); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error for %q", raw)
			}
		}
	})
}

func TestParseLogFormat(t *testing.T) {
	if _, err := ParseLogFormat("json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseLogFormat("text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseLogFormat("xml"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for xml")
	}
}
