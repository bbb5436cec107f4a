package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	apperrors "github.com/agbru/brandgen/internal/errors"
)

// configName is the base name searched for when no --config is given.
const configName = "brandgen"

// newViper returns a viper instance pointed at the explicit file or at the
// default search path.
func newViper(explicit string) *viper.Viper {
	v := viper.New()
	if explicit != "" {
		v.SetConfigFile(explicit)
		return v
	}
	v.SetConfigName(configName)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", configName))
	}
	return v
}

// applyFile reads the config file, if any, into settings not given on the
// command line. A missing file is only an error when it was named
// explicitly.
func applyFile(c *AppConfig, fs *pflag.FlagSet) error {
	v := newViper(c.ConfigFile)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.ConfigFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return apperrors.NewConfigError("reading config file: %v", err)
	}

	for _, o := range overrides {
		if isFlagSetAny(fs, o.flags...) || !v.IsSet(o.fileKey()) {
			continue
		}
		o.apply(c, v.GetString(o.fileKey()))
	}
	return nil
}
