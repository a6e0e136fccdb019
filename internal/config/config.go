package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config describes all runtime settings of the scoreboard console.
//
// It is loaded once in main, validated, and passed further down explicitly.
type Config struct {
	Env string `env:"APP_ENV" envDefault:"dev" validate:"oneof=dev stage prod"`

	Log       LogConfig
	Countries CountriesConfig
	Demo      DemoConfig
	Console   ConsoleConfig
}

type LogConfig struct {
	Format string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// CountriesConfig extends the ISO country list with extra team names,
// e.g. "Scotland,Wales".
type CountriesConfig struct {
	Extra []string `env:"SCOREBOARD_EXTRA_COUNTRIES" envSeparator:","`
}

type DemoConfig struct {
	Enabled bool `env:"SCOREBOARD_DEMO" envDefault:"false"`
	Workers int  `env:"SCOREBOARD_DEMO_WORKERS" envDefault:"4" validate:"min=1,max=64"`
}

type ConsoleConfig struct {
	Colours bool   `env:"CONSOLE_COLOURS" envDefault:"true"`
	Prompt  string `env:"CONSOLE_PROMPT" envDefault:"> "`
}

func LoadFromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Env == "prod" && c.Demo.Enabled {
		return fmt.Errorf("refuse to seed demo matches in %s", c.Env)
	}
	return nil
}
