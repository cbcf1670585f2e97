package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the environment variables that override config values.
type envOverrides struct {
	QuestionsFile string `env:"QBANK_QUESTIONS_FILE"`
	ExportFormat  string `env:"QBANK_EXPORT_FORMAT"`
	NoColor       *bool  `env:"QBANK_NO_COLOR"`
}

// ApplyEnv overlays environment overrides onto cfg.
// A nil environment reads the process environment.
func ApplyEnv(cfg *Config, environment map[string]string) error {
	var overrides envOverrides
	if err := env.ParseWithOptions(&overrides, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if value := strings.TrimSpace(overrides.QuestionsFile); value != "" {
		cfg.QuestionsFile = value
	}
	if value := strings.ToLower(strings.TrimSpace(overrides.ExportFormat)); value != "" {
		cfg.Export.Format = value
	}
	if overrides.NoColor != nil {
		cfg.UI.NoColor = *overrides.NoColor
	}
	return nil
}
