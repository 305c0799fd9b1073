// Package config loads pourpath settings with viper: defaults, an optional
// pourpath.yaml, POURPATH_* environment variables and bound cobra flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "pourpath"
	configFileType = "yaml"
	envPrefix      = "POURPATH"

	// Config keys.
	KeyWorkers        = "workers"
	KeyMaxStates      = "max_states"
	KeyMaxDepth       = "max_depth"
	KeyStopAtSolution = "stop_at_solution"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyCache          = "cache"
	KeyMetricsFile    = "metrics_file"
	KeyLevels         = "levels"
)

// ErrInvalid is returned by Validate and Load for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the resolved configuration.
type Config struct {
	Workers        int    `mapstructure:"workers"`
	MaxStates      int    `mapstructure:"max_states"`
	MaxDepth       int    `mapstructure:"max_depth"`
	StopAtSolution bool   `mapstructure:"stop_at_solution"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
	Cache          string `mapstructure:"cache"`        // SQLite path; empty disables caching
	MetricsFile    string `mapstructure:"metrics_file"` // Prometheus textfile; empty disables
	Levels         string `mapstructure:"levels"`       // YAML level pack; empty uses the builtin
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyMaxStates, 0)
	v.SetDefault(KeyMaxDepth, 0)
	v.SetDefault(KeyStopAtSolution, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyCache, "")
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyLevels, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds every flag in fs whose name, with dashes turned into
// underscores, is a config key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !isKey(key) {
			return
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil && err == nil {
			err = fmt.Errorf("bind flag %q: %w", f.Name, bindErr)
		}
	})

	return err
}

func isKey(key string) bool {
	switch key {
	case KeyWorkers, KeyMaxStates, KeyMaxDepth, KeyStopAtSolution, KeyLogLevel,
		KeyLogFormat, KeyCache, KeyMetricsFile, KeyLevels:
		return true
	}

	return false
}

// Load reads file, or pourpath.yaml from dirs when file is empty, and
// returns the validated configuration. A missing pourpath.yaml is not an
// error; a missing explicit file is.
func Load(v *viper.Viper, file string, dirs ...string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		for _, d := range dirs {
			v.AddConfigPath(d)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	case c.MaxStates < 0:
		return fmt.Errorf("%w: max_states cannot be negative, got %d", ErrInvalid, c.MaxStates)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max_depth cannot be negative, got %d", ErrInvalid, c.MaxDepth)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalid, c.LogFormat)
	}

	return nil
}
