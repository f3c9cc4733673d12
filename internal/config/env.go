package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are runtime options read from UMEED_* environment variables.
type Settings struct {
	PresetsFile string `env:"PRESETS_FILE"`
	LogFile     string `env:"LOG_FILE"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Offline     bool   `env:"OFFLINE" envDefault:"false"`
	Theme       string `env:"THEME" envDefault:"default"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
