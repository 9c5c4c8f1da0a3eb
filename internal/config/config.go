package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/jaminalder/tttai/internal/domain"
)

type Config struct {
	LogLevel string        `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	HTTPAddr string        `yaml:"http-addr" env:"TTT_HTTP_ADDR" env-default:":8080"`
	AIMark   string        `yaml:"ai-mark" env:"TTT_AI_MARK" env-default:"o"`
	GameTTL  time.Duration `yaml:"game-ttl" env:"TTT_GAME_TTL" env-default:"24h"`
}

// Load reads the YAML file at path, then the environment. With an empty path
// only the environment and defaults are used.
func Load(path string) (*Config, error) {
	conf := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, conf)
	} else {
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if _, err := conf.Mark(); err != nil {
		return nil, fmt.Errorf("ai-mark: %w", err)
	}
	if _, err := conf.Level(); err != nil {
		return nil, err
	}
	if conf.GameTTL <= 0 {
		return nil, fmt.Errorf("game-ttl must be positive, got %s", conf.GameTTL)
	}
	return conf, nil
}

// Mark returns the configured AI mark.
func (c *Config) Mark() (domain.Cell, error) {
	return domain.ParseMark(c.AIMark)
}

// Level maps LogLevel onto a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log-level: %w", err)
	}
	return level, nil
}
