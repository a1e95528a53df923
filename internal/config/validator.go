package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is bumped whenever .env.example gains a required key
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be present in every environment
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// placeholderValues are the values shipped in .env.example
var placeholderValues = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"API_KEY":     "generate_with_openssl_rand_hex_32",
}

// integrationPairs lists settings that only make sense together
var integrationPairs = []struct {
	key, requires string
}{
	{"DISCORD_TOKEN", "DISCORD_CHANNEL_ID"},
	{"REDIS_PASSWORD", "REDIS_ADDR"},
}

// ValidateEnv checks the schema version and that every required variable is set
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - copy it from .env.example (expected: %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - compare your .env with .env.example", ExpectedEnvSchemaVersion, v)
	}

	var missing []string
	for _, key := range RequiredEnvVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv, then reports settings that are
// legal but probably not what the operator meant
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, key := range []string{"DB_PASSWORD", "API_KEY"} {
		if os.Getenv(key) == placeholderValues[key] {
			warnings = append(warnings, fmt.Sprintf("%s still has the .env.example placeholder value", key))
		}
	}

	for _, p := range integrationPairs {
		if os.Getenv(p.key) != "" && os.Getenv(p.requires) == "" {
			warnings = append(warnings, fmt.Sprintf("%s is set but %s is empty - the integration stays disabled", p.key, p.requires))
		}
	}

	if os.Getenv("MARKET_ESCROW") == "" {
		warnings = append(warnings, "MARKET_ESCROW not set - listings will not reserve seller inventory")
	}

	return warnings, nil
}
