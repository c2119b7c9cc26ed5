// Package config loads runtime configuration from multiple sources (a .env
// file, environment variables with case-insensitive names) with precedence:
// Environment variables > .env file > Defaults. It validates every field
// eagerly and exposes one immutable, strongly typed settings instance to the
// rest of the ecosystem via Get.
package config
