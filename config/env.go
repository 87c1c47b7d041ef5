package config

import (
	"os"
	"strings"
)

// An EnvMap is a [Map] that reads from environment variables. Keys are mapped to environment
// variable names with [EnvName].
type EnvMap struct{}

func (EnvMap) Lookup(key string) (string, bool) {
	return os.LookupEnv(EnvName(key))
}

// EnvName maps a config key to an environment variable name by replacing hyphens ('-') with
// underscores ('_'), replacing periods ('.') with two underscores ("__"), and transforming the
// key to UPPER-CASE.
func EnvName(key string) string {
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, ".", "__")
	return strings.ToUpper(key)
}
