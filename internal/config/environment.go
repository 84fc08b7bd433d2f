package config

import (
	"os"
	"strings"
)

// CaseInsensitiveEnv is the environment variable consulted for the case
// policy. Its presence, with any value, selects CASE-SENSITIVE search; see
// ResolveCaseSensitivity.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// Environment is a snapshot of the process environment, taken once at
// startup and passed down explicitly
type Environment map[string]string

// EnvironmentFromOS snapshots os.Environ
func EnvironmentFromOS() Environment {
	return ParseEnviron(os.Environ())
}

// ParseEnviron builds an Environment from KEY=VALUE pairs
func ParseEnviron(pairs []string) Environment {
	env := make(Environment, len(pairs))
	for _, kv := range pairs {
		key, value, _ := strings.Cut(kv, "=")
		if key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Lookup returns the value of key and whether it is set
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Get returns the value of key, or "" when unset
func (e Environment) Get(key string) string {
	return e[key]
}
