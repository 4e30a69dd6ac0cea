// Package config loads arcedb's server configuration from flags,
// environment variables, and an optional config file, in that order
// of precedence, via Viper.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ARCEDB"

// Config holds the server's tunable knobs.
type Config struct {
	Addr       string `mapstructure:"addr"`
	ReadBuffer int    `mapstructure:"readbuffer"`
	LogLevel   string `mapstructure:"loglevel"`
	LogFormat  string `mapstructure:"logformat"`
}

func defaults() Config {
	return Config{
		Addr:       ":6379",
		ReadBuffer: 4096,
		LogLevel:   "info",
		LogFormat:  "console",
	}
}

// Load builds a Config from defaults, an optional YAML file at
// cfgFile, ARCEDB_-prefixed environment variables, and flags bound in
// flagSet (highest precedence). cfgFile may be empty, in which case no
// file is read; a missing file at a non-empty path is likewise
// tolerated, matching Viper's ConfigFileNotFoundError handling.
func Load(cfgFile string, flagSet *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := defaults()
	v.SetDefault("addr", d.Addr)
	v.SetDefault("readbuffer", d.ReadBuffer)
	v.SetDefault("loglevel", d.LogLevel)
	v.SetDefault("logformat", d.LogFormat)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, errors.Wrapf(err, "reading config file %s", cfgFile)
			}
		}
	}

	if flagSet != nil {
		// Flag names are dashed ("read-buffer"); config keys are not.
		keys := map[string]string{"addr": "addr", "read-buffer": "readbuffer", "log-level": "loglevel", "log-format": "logformat"}
		for name, key := range keys {
			if f := flagSet.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "binding flag %s", name)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}
