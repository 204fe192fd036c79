package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const HumanNone = "none"

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidHumanMark = errors.New("invalid human mark")
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	HumanMark string `yaml:"human-mark" env:"TTT_HUMAN_MARK" env-default:"X"`
	NoColor   bool   `yaml:"no-color" env:"TTT_NO_COLOR"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	if that.HumanMark != HumanNone && !entity.Mark(that.HumanMark).IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidHumanMark, that.HumanMark)
	}

	return nil
}

// GetHumanMark - returns the mark played from the console, or nil when the
// bot plays both sides.
func (that *Config) GetHumanMark() *entity.Mark {
	if that.HumanMark == HumanNone {
		return nil
	}

	mark := entity.Mark(that.HumanMark)
	return &mark
}
