package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "HOLDEM"
	ConfigName = "holdem"

	StyleTable = "table"
	StylePlain = "plain"

	DefaultStyle    = StyleTable
	DefaultLogLevel = "info"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the cards to compare and how to show the result
type Config struct {
	Player1  string `mapstructure:"p1"`
	Player2  string `mapstructure:"p2"`
	Board    string `mapstructure:"board"`
	Style    string `mapstructure:"style"`
	Dump     bool   `mapstructure:"dump"`
	History  bool   `mapstructure:"history"`
	LogLevel string `mapstructure:"log-level"`
}

// Flags returns the command line flags understood by Load
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("holdem", pflag.ContinueOnError)
	fs.String("p1", "", "player 1 hole cards, e.g. \"As Kd\"")
	fs.String("p2", "", "player 2 hole cards")
	fs.String("board", "", "community cards, up to five")
	fs.String("style", DefaultStyle, "output style: table or plain")
	fs.Bool("dump", false, "print the raw result")
	fs.Bool("history", false, "list every card placement in order")
	fs.String("log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	fs.String("config", "", "path to a config file (default ./holdem.yaml)")
	return fs
}

// Load reads the configuration from args, HOLDEM_* environment variables and
// an optional config file, in that order of precedence.
func Load(args []string) (Config, error) {
	var c Config

	fs := Flags()
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	v := viper.New()
	v.SetDefault("style", DefaultStyle)
	v.SetDefault("log-level", DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return c, fmt.Errorf("binding flags: %w", err)
	}

	path, _ := fs.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}

	c.Style = strings.ToLower(strings.TrimSpace(c.Style))
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Style != StyleTable && c.Style != StylePlain {
		return fmt.Errorf("%w: unknown style %q", ErrInvalidConfig, c.Style)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the configured log level, falling back to info
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
