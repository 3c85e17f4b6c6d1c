package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults
// Uses the global viper instance to access CLI flag bindings
func Load() (*Config, error) {
	cfg, err := load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithViper loads configuration into a fresh viper instance and returns it
func LoadWithViper() (*Config, *viper.Viper, error) {
	v := viper.New()
	cfg, err := load(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// An explicit --config file wins over the search paths
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(ConfigDir())
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Environment variables (MEDIADATA_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate and apply defaults for invalid values
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("scan.root", DefaultRoot)
	v.SetDefault("scan.extensions", DefaultExtensions())

	v.SetDefault("output.file", DefaultOutputFile)
	v.SetDefault("output.variable", DefaultVariable)
	v.SetDefault("output.indent", DefaultIndent)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
