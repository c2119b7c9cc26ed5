package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const defaultCollectionPrefix = "acdsyn_"

// Config aggregates the validated runtime settings for the synthesis
// ecosystem, resolved from multiple sources.
// Precedence: live environment > .env file > defaults.
// Instances are immutable once Load returns; changing configuration requires
// restarting the process with a different environment.
type Config struct {
	// Firebase
	FirebaseProjectID         string `yaml:"firebase_project_id" env:"FIREBASE_PROJECT_ID" validate:"required"`
	FirebaseCredentialsPath   string `yaml:"firebase_credentials_path" env:"FIREBASE_CREDENTIALS_PATH" validate:"required"`
	FirestoreCollectionPrefix string `yaml:"firestore_collection_prefix" env:"FIRESTORE_COLLECTION_PREFIX"`

	// Network
	MaxDomainConnections    int `yaml:"max_domain_connections" env:"MAX_DOMAIN_CONNECTIONS" validate:"gt=0"`
	SynthesisTimeoutSeconds int `yaml:"synthesis_timeout_seconds" env:"SYNTHESIS_TIMEOUT_SECONDS" validate:"gt=0"`
	RetryAttempts           int `yaml:"retry_attempts" env:"RETRY_ATTEMPTS" validate:"gt=0"`
	RetryDelaySeconds       int `yaml:"retry_delay_seconds" env:"RETRY_DELAY_SECONDS" validate:"gt=0"`

	// Performance
	MetricsCollectionInterval int     `yaml:"metrics_collection_interval" env:"METRICS_COLLECTION_INTERVAL" validate:"gt=0"`
	OptimizationCycleHours    int     `yaml:"optimization_cycle_hours" env:"OPTIMIZATION_CYCLE_HOURS" validate:"gt=0"`
	PerformanceThreshold      float64 `yaml:"performance_threshold" env:"PERFORMANCE_THRESHOLD" validate:"gte=0,lte=1"`

	// Logging
	LogLevel                LogLevel  `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat               LogFormat `yaml:"log_format" env:"LOG_FORMAT"`
	EnableStructuredLogging bool      `yaml:"enable_structured_logging" env:"ENABLE_STRUCTURED_LOGGING"`

	// Synthesis
	DefaultStrategy        SynthesisStrategy `yaml:"default_strategy" env:"DEFAULT_STRATEGY"`
	EnableEmergentBehavior bool              `yaml:"enable_emergent_behavior" env:"ENABLE_EMERGENT_BEHAVIOR"`
	MaxSynthesisDepth      int               `yaml:"max_synthesis_depth" env:"MAX_SYNTHESIS_DEPTH" validate:"gt=0"`
	CompatibilityThreshold float64           `yaml:"compatibility_threshold" env:"COMPATIBILITY_THRESHOLD" validate:"gte=0,lte=1"`

	// Domain-specific limits and allow-lists, keyed by domain type.
	DomainConfigs map[DomainType]DomainSettings `yaml:"domain_configs" env:"DOMAIN_CONFIGS"`
}

// Load resolves configuration with precedence: defaults, then a .env file at
// the conventional relative path, then the live environment. Every field is
// coerced and validated before the Config is returned; failures across fields
// are aggregated into a single error.
func Load() (*Config, error) {
	// godotenv never overrides variables already present in the process
	// environment, which matches the required precedence order.
	_ = godotenv.Load()

	cfg := defaultConfig()
	// Coercion and constraint failures are reported together so one run
	// names every offending variable.
	if err := multierr.Append(applyEnvConfig(cfg), validateConfig(cfg)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultConfig returns a Config populated with default values. The two
// required Firebase fields are intentionally left empty.
func defaultConfig() *Config {
	return &Config{
		FirestoreCollectionPrefix: defaultCollectionPrefix,
		MaxDomainConnections:      100,
		SynthesisTimeoutSeconds:   300,
		RetryAttempts:             3,
		RetryDelaySeconds:         5,
		MetricsCollectionInterval: 60,
		OptimizationCycleHours:    24,
		PerformanceThreshold:      0.8,
		LogLevel:                  LevelInfo,
		LogFormat:                 FormatJSON,
		EnableStructuredLogging:   true,
		DefaultStrategy:           StrategyHybrid,
		EnableEmergentBehavior:    true,
		MaxSynthesisDepth:         5,
		CompatibilityThreshold:    0.7,
		DomainConfigs:             defaultDomainConfigs(),
	}
}

// defaultDomainConfigs returns the built-in per-domain settings understood by
// the downstream synthesis components.
func defaultDomainConfigs() map[DomainType]DomainSettings {
	return map[DomainType]DomainSettings{
		DomainDataScience: {
			"max_components":    50,
			"allowed_libraries": []string{"pandas", "numpy", "scikit-learn"},
			"data_requirements": []string{"clean", "structured"},
		},
		DomainSoftwareEngineering: {
			"max_components":    100,
			"allowed_languages": []string{"python", "javascript"},
			"code_standards":    []string{"pep8", "eslint"},
		},
	}
}

// lookupEnv resolves an environment variable by name, case-insensitively.
// An exact-case match wins over a differently-cased one. A variable set to a
// blank (or whitespace-only) value counts as unset: the field keeps its
// default instead of the blank being handed to coercion.
func lookupEnv(name string) (string, bool) {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		return value, true
	}
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.EqualFold(key, name) {
			continue
		}
		if v := strings.TrimSpace(value); v != "" {
			return v, true
		}
	}
	return "", false
}

// applyEnvConfig overlays environment variables onto cfg. Coercion failures
// are collected per variable rather than short-circuiting, so a single run
// reports everything that is wrong.
func applyEnvConfig(cfg *Config) error {
	var errs error

	if v, ok := lookupEnv("FIREBASE_PROJECT_ID"); ok {
		cfg.FirebaseProjectID = v
	}
	if v, ok := lookupEnv("FIREBASE_CREDENTIALS_PATH"); ok {
		cfg.FirebaseCredentialsPath = v
	}
	if v, ok := lookupEnv("FIRESTORE_COLLECTION_PREFIX"); ok {
		cfg.FirestoreCollectionPrefix = v
	}

	applyInt(&errs, "MAX_DOMAIN_CONNECTIONS", &cfg.MaxDomainConnections)
	applyInt(&errs, "SYNTHESIS_TIMEOUT_SECONDS", &cfg.SynthesisTimeoutSeconds)
	applyInt(&errs, "RETRY_ATTEMPTS", &cfg.RetryAttempts)
	applyInt(&errs, "RETRY_DELAY_SECONDS", &cfg.RetryDelaySeconds)
	applyInt(&errs, "METRICS_COLLECTION_INTERVAL", &cfg.MetricsCollectionInterval)
	applyInt(&errs, "OPTIMIZATION_CYCLE_HOURS", &cfg.OptimizationCycleHours)
	applyInt(&errs, "MAX_SYNTHESIS_DEPTH", &cfg.MaxSynthesisDepth)

	applyFloat(&errs, "PERFORMANCE_THRESHOLD", &cfg.PerformanceThreshold)
	applyFloat(&errs, "COMPATIBILITY_THRESHOLD", &cfg.CompatibilityThreshold)

	applyBool(&errs, "ENABLE_STRUCTURED_LOGGING", &cfg.EnableStructuredLogging)
	applyBool(&errs, "ENABLE_EMERGENT_BEHAVIOR", &cfg.EnableEmergentBehavior)

	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		level, err := ParseLogLevel(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		} else {
			cfg.LogLevel = level
		}
	}
	if v, ok := lookupEnv("LOG_FORMAT"); ok {
		format, err := ParseLogFormat(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("LOG_FORMAT: %w", err))
		} else {
			cfg.LogFormat = format
		}
	}
	if v, ok := lookupEnv("DEFAULT_STRATEGY"); ok {
		strategy, err := ParseSynthesisStrategy(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("DEFAULT_STRATEGY: %w", err))
		} else {
			cfg.DefaultStrategy = strategy
		}
	}
	if v, ok := lookupEnv("DOMAIN_CONFIGS"); ok {
		configs, err := parseDomainConfigs(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("DOMAIN_CONFIGS: %w", err))
		} else {
			cfg.DomainConfigs = configs
		}
	}

	return errs
}

func applyInt(errs *error, name string, dst *int) {
	raw, ok := lookupEnv(name)
	if !ok {
		return
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		*errs = multierr.Append(*errs, fmt.Errorf("%w: %s: invalid integer %q", ErrValidation, name, raw))
		return
	}
	*dst = value
}

func applyFloat(errs *error, name string, dst *float64) {
	raw, ok := lookupEnv(name)
	if !ok {
		return
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = multierr.Append(*errs, fmt.Errorf("%w: %s: invalid number %q", ErrValidation, name, raw))
		return
	}
	*dst = value
}

func applyBool(errs *error, name string, dst *bool) {
	raw, ok := lookupEnv(name)
	if !ok {
		return
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = multierr.Append(*errs, fmt.Errorf("%w: %s: invalid boolean %q", ErrValidation, name, raw))
		return
	}
	*dst = value
}

// parseDomainConfigs decodes a YAML (or JSON) mapping of domain type to
// domain settings, replacing the built-in defaults wholesale.
func parseDomainConfigs(raw string) (map[DomainType]DomainSettings, error) {
	decoded := make(map[string]DomainSettings)
	if err := yaml.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	configs := make(map[DomainType]DomainSettings, len(decoded))
	for key, settings := range decoded {
		domain, err := ParseDomainType(key)
		if err != nil {
			return nil, err
		}
		configs[domain] = settings
	}
	return configs, nil
}

var validate = newValidator()

// newValidator builds the struct validator, reporting violations under the
// field's environment variable name so messages stay actionable.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("env"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

// validateConfig evaluates every constraint on the resolved configuration and
// aggregates all violations into one error.
func validateConfig(cfg *Config) error {
	var errs error

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate configuration: %w", err)
		}
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrMissingRequiredField, fe.Field()))
				continue
			}
			errs = multierr.Append(errs, fmt.Errorf("%w: %s violates rule %q (value %v)", ErrValidation, fe.Field(), fe.Tag(), fe.Value()))
		}
	}

	if cfg.FirebaseCredentialsPath != "" {
		if abs, err := filepath.Abs(cfg.FirebaseCredentialsPath); err == nil {
			cfg.FirebaseCredentialsPath = abs
		}
		if _, err := os.Stat(cfg.FirebaseCredentialsPath); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrCredentialsNotFound, cfg.FirebaseCredentialsPath))
		}
	}

	for domain := range cfg.DomainConfigs {
		if _, ok := domainTypes[domain]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: unknown domain type %q in domain configs", ErrValidation, domain))
		}
	}

	return errs
}

// LoadYAML reads a supplementary configuration file as a generic mapping.
// It never touches the shared configuration; callers are responsible for
// merging the result wherever they use it.
func LoadYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	out := make(map[string]any)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return out, nil
}
