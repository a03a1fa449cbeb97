package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	MaxMaxTrits = 1 << 24
	MinMaxTrits = 1
)

const (
	OutputPlain = "plain"
	OutputTable = "table"
	OutputYAML  = "yaml"
)

const (
	DefaultConfigName = "config"
	DefaultConfigType = "yaml"
	DefaultLogLevel   = "info"
	DefaultOutput     = OutputPlain
	DefaultMaxTrits   = 1 << 16

	EnvPrefix = "TRITCLI"
)

// Keys, shared by the config file, the environment and the command-line flags.
const (
	KeyLogLevel = "log-level"
	KeyOutput   = "output"
	KeyShrink   = "shrink"
	KeyMaxTrits = "max-trits"
)

var (
	DefaultConfigDir = filepath.Join(smutil.GetUserHomeDirectory(), ".tritcli")
)

type Config struct {
	LogLevel string `mapstructure:"log-level"`
	Output   string `mapstructure:"output"`

	// Shrink releases unused storage of every result before it is reported.
	Shrink bool `mapstructure:"shrink"`

	// MaxTrits bounds the length of every set given on the command line.
	MaxTrits int `mapstructure:"max-trits"`
}

func (cfg *Config) Validate() error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid `LogLevel`; expected: one of debug, info, warn, error, given: %q", cfg.LogLevel)
	}

	switch cfg.Output {
	case OutputPlain, OutputTable, OutputYAML:
	default:
		return fmt.Errorf("invalid `Output`; expected: one of %s, %s, %s, given: %q", OutputPlain, OutputTable, OutputYAML, cfg.Output)
	}

	if cfg.MaxTrits > MaxMaxTrits {
		return fmt.Errorf("invalid `MaxTrits`; expected: <= %d, given: %d", MaxMaxTrits, cfg.MaxTrits)
	}

	if cfg.MaxTrits < MinMaxTrits {
		return fmt.Errorf("invalid `MaxTrits`; expected: >= %d, given: %d", MinMaxTrits, cfg.MaxTrits)
	}

	return nil
}

// Level returns the parsed log level. It assumes a validated config.
func (cfg *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Output:   DefaultOutput,
		MaxTrits: DefaultMaxTrits,
	}
}

// Load builds the effective config. Precedence, highest first: changed flags,
// TRITCLI_* environment variables, the config file, the defaults.
//
// An explicit path must exist. Without one, config.yaml is looked up in
// DefaultConfigDir and may be missing.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	defaults := DefaultConfig()

	vip := viper.New()
	vip.SetDefault(KeyLogLevel, defaults.LogLevel)
	vip.SetDefault(KeyOutput, defaults.Output)
	vip.SetDefault(KeyShrink, defaults.Shrink)
	vip.SetDefault(KeyMaxTrits, defaults.MaxTrits)

	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	if flags != nil {
		if err := vip.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := loadConfigFile(vip, path); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(vip *viper.Viper, path string) error {
	if path != "" {
		vip.SetConfigFile(cleanAndExpandPath(path))
		if err := vip.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}

	vip.SetConfigName(DefaultConfigName)
	vip.SetConfigType(DefaultConfigType)
	vip.AddConfigPath(DefaultConfigDir)
	if err := vip.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// cleanAndExpandPath expands environment variables and a leading ~ in the
// passed path, and cleans the result.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		path = strings.Replace(path, "~", smutil.GetUserHomeDirectory(), 1)
	}
	return filepath.Clean(os.ExpandEnv(path))
}
