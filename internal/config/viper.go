package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Import struct {
		Encoding        string `mapstructure:"encoding" yaml:"encoding"`
		JournalsFile    string `mapstructure:"journals_file" yaml:"journals_file"`
		IdentifiersFile string `mapstructure:"identifiers_file" yaml:"identifiers_file"`
		OriginsFile     string `mapstructure:"origins_file" yaml:"origins_file"`
	} `mapstructure:"import" yaml:"import"`

	Ledger struct {
		MovesFile    string `mapstructure:"moves_file" yaml:"moves_file"`
		LoadingsFile string `mapstructure:"loadings_file" yaml:"loadings_file"`
	} `mapstructure:"ledger" yaml:"ledger"`
}

// supportedEncodings are the charsets the import accepts.
var supportedEncodings = map[string]bool{
	"windows-1252": true,
	"cp1252":       true,
	"iso-8859-1":   true,
	"latin-1":      true,
	"latin1":       true,
	"utf-8":        true,
	"utf8":         true,
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.precargadas-csv")
	v.AddConfigPath(".precargadas-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PRECARGADAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("import.encoding", "windows-1252")
	v.SetDefault("import.journals_file", "config/journals.yaml")
	v.SetDefault("import.identifiers_file", "config/identifiers.yaml")
	v.SetDefault("import.origins_file", "data/origins.yaml")

	v.SetDefault("ledger.moves_file", "data/moves.yaml")
	v.SetDefault("ledger.loadings_file", "data/loadings.yaml")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if !supportedEncodings[strings.ToLower(config.Import.Encoding)] {
		return fmt.Errorf("unsupported import encoding: %s", config.Import.Encoding)
	}

	return nil
}
