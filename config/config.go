package config

import (
	"errors"
	"fmt"
	"fulltree/game"
	"fulltree/meta"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	OpponentRandom  = "random"
	OpponentConsole = "console"
	OpponentRemote  = "remote"

	StarterAlternate = "alternate"
)

type Config struct {
	Size       int    `mapstructure:"size"`
	Games      int    `mapstructure:"games"`
	Starter    string `mapstructure:"starter"`  // "ai", "human" or "alternate"
	Opponent   string `mapstructure:"opponent"` // Seat for game.Human
	Seed       uint64 `mapstructure:"seed"`
	MetricsDir string `mapstructure:"metrics_dir"`
	LogLevel   string `mapstructure:"log_level"`
	Port       int    `mapstructure:"port"`
	RemoteURL  string `mapstructure:"remote_url"`
}

// Load reads defaults, then the file at path if any, then FULLTREE_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("size", meta.BOARD_SIZE)
	v.SetDefault("games", meta.GAMES)
	v.SetDefault("starter", StarterAlternate)
	v.SetDefault("opponent", OpponentRandom)
	v.SetDefault("seed", meta.SEED)
	v.SetDefault("metrics_dir", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("port", meta.PORT)
	v.SetDefault("remote_url", "")

	v.SetEnvPrefix("FULLTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.Size < 1 || c.Size > meta.MAX_BOARD_SIZE {
		return fmt.Errorf("size must be between 1 and %d, got %d", meta.MAX_BOARD_SIZE, c.Size)
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Starter != StarterAlternate {
		if _, err := game.ParseSymbol(c.Starter); err != nil {
			return fmt.Errorf("starter: %w", err)
		}
	}
	switch c.Opponent {
	case OpponentRandom, OpponentConsole:
	case OpponentRemote:
		if c.RemoteURL == "" {
			return errors.New("remote opponent needs remote_url")
		}
	default:
		return fmt.Errorf("unknown opponent %q", c.Opponent)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// StarterFor returns who opens the given zero-based game.
func (c Config) StarterFor(gameIndex int) game.Symbol {
	if c.Starter == StarterAlternate {
		if gameIndex%2 == 0 {
			return game.AI
		}
		return game.Human
	}
	starter, err := game.ParseSymbol(c.Starter)
	if err != nil {
		panic(fmt.Sprintf("unvalidated starter %q", c.Starter))
	}
	return starter
}
