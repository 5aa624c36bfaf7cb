package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists environment variables that must always be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"STORE_DRIVER",
}

// PostgresEnvVars must be set when STORE_DRIVER=postgres
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := RequiredEnvVars
	if strings.EqualFold(os.Getenv("STORE_DRIVER"), DriverPostgres) {
		required = append(append([]string{}, RequiredEnvVars...), PostgresEnvVars...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if strings.EqualFold(os.Getenv("STORE_DRIVER"), DriverMemory) {
		warnings = append(warnings, "STORE_DRIVER=memory - player state is lost on restart")
	}

	if seed := os.Getenv("SEED_GOLD"); seed == "" || seed == DefaultSeedBalance {
		warnings = append(warnings, "SEED_GOLD uses the sandbox default - new players start with an effectively unlimited balance")
	}

	return warnings, nil
}
