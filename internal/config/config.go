// Package config holds the application configuration and resolves it from
// command-line flags, BRANDGEN_* environment variables, an optional config
// file and defaults, in that order of precedence.
package config

import (
	"time"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/brandgen/internal/errors"
	"github.com/agbru/brandgen/internal/gemini"
	"github.com/agbru/brandgen/internal/progress"
)

// EnvPrefix prefixes every environment variable read by the application.
const EnvPrefix = "BRANDGEN_"

// FallbackAPIKeyEnv is read when neither the flag, BRANDGEN_API_KEY nor the
// config file provide an API key.
const FallbackAPIKeyEnv = "API_KEY"

// DefaultAddr is the listen address of the HTTP API.
const DefaultAddr = ":8080"

// AppConfig aggregates the configuration of every command.
type AppConfig struct {
	// Service
	APIKey        string
	BaseURL       string
	IdentityModel string
	ImageModel    string
	// Timeout bounds a whole attempt; zero disables it.
	Timeout time.Duration

	// Progress simulation
	TickInterval time.Duration
	TickStep     int

	// Output
	JSON      bool
	OutputDir string
	Quiet     bool
	Verbose   bool
	NoColor   bool

	// HTTP API
	Addr string

	// ConfigFile is an explicit config file path. Empty means search the
	// default locations.
	ConfigFile string
}

// Default returns the configuration used when nothing overrides it.
func Default() AppConfig {
	return AppConfig{
		BaseURL:       gemini.DefaultBaseURL,
		IdentityModel: gemini.DefaultIdentityModel,
		ImageModel:    gemini.DefaultImageModel,
		Timeout:       3 * time.Minute,
		TickInterval:  progress.DefaultInterval,
		TickStep:      progress.DefaultStep,
		Addr:          DefaultAddr,
	}
}

// BindPersistentFlags registers the flags shared by every command.
func (c *AppConfig) BindPersistentFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "config file (default: ./brandgen.yaml or ~/.config/brandgen/brandgen.yaml)")
	fs.StringVar(&c.APIKey, "api-key", c.APIKey, "API key for the generative service (or BRANDGEN_API_KEY / API_KEY)")
	fs.StringVar(&c.BaseURL, "base-url", c.BaseURL, "base URL of the generative service")
	fs.StringVar(&c.IdentityModel, "identity-model", c.IdentityModel, "model generating the palette and fonts")
	fs.StringVar(&c.ImageModel, "image-model", c.ImageModel, "model generating the logos")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "maximum duration of a generation attempt (0 disables)")
	fs.DurationVar(&c.TickInterval, "tick-interval", c.TickInterval, "interval between simulated progress updates")
	fs.IntVar(&c.TickStep, "tick-step", c.TickStep, "percentage added on every progress update")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "enable debug logging")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "disable colored output")
}

// BindGenerateFlags registers the flags of the generate command.
func (c *AppConfig) BindGenerateFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.JSON, "json", c.JSON, "print the resulting state as JSON")
	fs.StringVarP(&c.OutputDir, "output", "o", c.OutputDir, "directory to export the brand kit to")
	fs.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "suppress progress output")
}

// BindServeFlags registers the flags of the serve command.
func (c *AppConfig) BindServeFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address of the HTTP API")
}

// Resolve fills every setting that was not given on the command line, first
// from a config file and then from the environment, and validates the
// result. Flags that fs does not define are treated as unset.
func Resolve(c *AppConfig, fs *pflag.FlagSet) error {
	if err := applyFile(c, fs); err != nil {
		return err
	}
	applyEnvOverrides(c, fs)
	if c.APIKey == "" {
		c.APIKey = getEnvRaw(FallbackAPIKeyEnv)
	}
	return c.Validate()
}

// Validate checks the configuration for values the application cannot run
// with.
func (c AppConfig) Validate() error {
	switch {
	case c.APIKey == "":
		return apperrors.NewConfigError("no API key: set --api-key, %sAPI_KEY or %s", EnvPrefix, FallbackAPIKeyEnv)
	case c.BaseURL == "":
		return apperrors.NewConfigError("base URL must not be empty")
	case c.IdentityModel == "" || c.ImageModel == "":
		return apperrors.NewConfigError("model names must not be empty")
	case c.Timeout < 0:
		return apperrors.NewConfigError("invalid timeout %s: must not be negative", c.Timeout)
	case c.TickInterval <= 0:
		return apperrors.NewConfigError("invalid tick interval %s: must be positive", c.TickInterval)
	case c.TickStep < 1 || c.TickStep > progress.MaxProgress:
		return apperrors.NewConfigError("invalid tick step %d: must be between 1 and %d", c.TickStep, progress.MaxProgress)
	case c.Addr == "":
		return apperrors.NewConfigError("listen address must not be empty")
	}
	return nil
}
