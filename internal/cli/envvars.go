package cli

import (
	"os"
	"strings"

	envparse "github.com/caarlos0/env/v11"
)

// baseEnv defines root CLI defaults sourced from ARCADECTL_* env vars.
type baseEnv struct {
	// CatalogPath is the catalog.yaml path from ARCADECTL_CATALOG.
	CatalogPath string `env:"ARCADECTL_CATALOG"`
	// Output is the report output format from ARCADECTL_OUTPUT.
	Output string `env:"ARCADECTL_OUTPUT"`
	// LogLevel is the logging level from ARCADECTL_LOG_LEVEL.
	LogLevel string `env:"ARCADECTL_LOG_LEVEL"`
}

// varsEnv describes inline vars and var files passed via env.
type varsEnv struct {
	// Vars is a k=v,k2=v2 list from ARCADECTL_VARS.
	Vars string `env:"ARCADECTL_VARS"`
	// VarFile is a YAML/ENV path from ARCADECTL_VAR_FILE.
	VarFile string `env:"ARCADECTL_VAR_FILE"`
}

// parseEnv fills target from ARCADECTL_* env vars via caarlos0/env.
func parseEnv(target any) error {
	return envparse.Parse(target)
}

// envPresent reports whether a non-empty env var exists.
func envPresent(key string) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	return strings.TrimSpace(val) != ""
}
