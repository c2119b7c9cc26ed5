package config

import "errors"

var (
	// ErrMissingRequiredField is returned when a required environment variable is absent.
	ErrMissingRequiredField = errors.New("required configuration field is missing")
	// ErrValidation is returned when a field value violates a constraint.
	ErrValidation = errors.New("configuration value failed validation")
	// ErrCredentialsNotFound is returned when the credentials path does not exist on disk.
	ErrCredentialsNotFound = errors.New("credentials file not found")
	// ErrConfigFileNotFound is returned by LoadYAML when the file is absent.
	ErrConfigFileNotFound = errors.New("config file not found")
	// ErrConfigParse is returned by LoadYAML when the file content is not valid YAML.
	ErrConfigParse = errors.New("config file is not valid YAML")
)
