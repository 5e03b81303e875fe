// Package config reads httpenum settings from the environment, including
// .env and .env.local files in the working directory.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// The names of the accepted ENV variables
const (
	EnvLogLevel = "LOG_LEVEL"       // debug, info, warn, error
	EnvPolicy   = "HTTPENUM_POLICY" // rfc7231, rfc9110
	EnvFormat   = "HTTPENUM_FORMAT" // yaml, json
)

const (
	DefaultLogLevel = "info"
	DefaultPolicy   = "rfc7231"
	DefaultFormat   = "yaml"
)

type Config struct {
	LogLevel string
	Policy   string
	Format   string
}

// Load reads the configuration. Variables already set in the environment
// win over the .env files; missing files are not an error.
func Load() Config {
	godotenv.Load(".env", ".env.local")

	return Config{
		LogLevel: GetEnvWithDefault(EnvLogLevel, DefaultLogLevel),
		Policy:   GetEnvWithDefault(EnvPolicy, DefaultPolicy),
		Format:   GetEnvWithDefault(EnvFormat, DefaultFormat),
	}
}

// When the variable is empty/not set, it returns the default value.
func GetEnvWithDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}
