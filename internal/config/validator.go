package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks the .env schema version when one is declared.
// Every variable has a default, so a missing ENV_SCHEMA_VERSION is allowed.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return nil
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for optional backends that are not configured
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if !cfg.HasDatabase() {
		warnings = append(warnings, "DATABASE_URL not set - run records are kept in memory and lost on restart")
	}

	if !cfg.HasRedis() {
		warnings = append(warnings, "REDIS_ADDR not set - balances and combos are kept in memory")
	}

	if cfg.Environment == EnvironmentProd && cfg.LogFormat != "json" {
		warnings = append(warnings, "LOG_FORMAT is not json in prod - log shipping may not parse records")
	}

	return warnings, nil
}
