// Package config loads the settings of the command line from defaults, an
// optional configuration file, environment variables and bound flags.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// Name of the configuration file searched in the working directory when
	// no file is given.
	Name = "bootstrapper"

	EnvPrefix = "BOOTSTRAPPER"
)

type Config struct {
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	// Sections is the YAML or HCL file holding the extension sections.
	Sections string `mapstructure:"sections"`
	// DOT is the file the bootstrapping graph is written to. Empty disables it.
	DOT        string   `mapstructure:"dot"`
	Extensions []string `mapstructure:"extensions"`
}

// Load reads the configuration into v and decodes it. When path is empty, a
// missing configuration file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "unable to read configuration")
		}
	}

	cfg := &Config{}

	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode configuration")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")
	v.SetDefault("sections", "")
	v.SetDefault("dot", "")
	v.SetDefault("extensions", []string{"store", "cache", "server"})
}
