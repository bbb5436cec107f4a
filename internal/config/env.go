// This file contains the override table shared by environment variables and
// the config file.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// getEnvRaw returns the value of an unprefixed environment variable.
func getEnvRaw(key string) string {
	return os.Getenv(key)
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *pflag.FlagSet, names ...string) bool {
	if fs == nil {
		return false
	}
	for _, name := range names {
		if f := fs.Lookup(name); f != nil && f.Changed {
			return true
		}
	}
	return false
}

// override declares a single setting that can come from the environment or
// the config file. The env variable is EnvPrefix+key; the config file key is
// the lowercase key.
type override struct {
	key   string
	flags []string
	apply func(*AppConfig, string)
}

func (o override) fileKey() string { return strings.ToLower(o.key) }

// overrides is the declarative table of all environment and file overrides.
// Unparseable values are ignored.
var overrides = []override{
	// String overrides
	{"API_KEY", []string{"api-key"}, func(c *AppConfig, v string) { c.APIKey = v }},
	{"BASE_URL", []string{"base-url"}, func(c *AppConfig, v string) { c.BaseURL = v }},
	{"IDENTITY_MODEL", []string{"identity-model"}, func(c *AppConfig, v string) { c.IdentityModel = v }},
	{"IMAGE_MODEL", []string{"image-model"}, func(c *AppConfig, v string) { c.ImageModel = v }},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputDir = v }},
	{"ADDR", []string{"addr"}, func(c *AppConfig, v string) { c.Addr = v }},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
	{"TICK_INTERVAL", []string{"tick-interval"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.TickInterval = parsed
		}
	}},

	// Numeric overrides
	{"TICK_STEP", []string{"tick-step"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.TickStep = parsed
		}
	}},

	// Boolean overrides
	{"VERBOSE", []string{"verbose", "v"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"JSON", []string{"json"}, func(c *AppConfig, v string) {
		c.JSON = parseBoolEnv(v, c.JSON)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Config file > Defaults.
func applyEnvOverrides(config *AppConfig, fs *pflag.FlagSet) {
	for _, o := range overrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.key); val != "" {
			o.apply(config, val)
		}
	}
}
