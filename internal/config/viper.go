package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Output struct {
		Format       string `mapstructure:"format" yaml:"format"`
		CSVDelimiter string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	} `mapstructure:"output" yaml:"output"`

	Parser struct {
		// StrictValidation rejects documents whose namespace is missing
		// from the registry even when the tree otherwise looks parseable.
		StrictValidation bool `mapstructure:"strict_validation" yaml:"strict_validation"`
	} `mapstructure:"parser" yaml:"parser"`
}

// InitializeConfig loads configuration hierarchically: defaults, then an
// optional config.yaml, then CAMT_-prefixed environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.camt053")
	v.AddConfigPath(".camt053")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CAMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine; defaults and env apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "json")
	v.SetDefault("output.csv_delimiter", ",")
	v.SetDefault("parser.strict_validation", true)
}
