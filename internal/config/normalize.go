package config

import "strings"

// Normalize trims values and fills defaults.
func Normalize(cfg *Config) {
	cfg.QuestionsFile = strings.TrimSpace(cfg.QuestionsFile)
	cfg.Export.Format = strings.ToLower(strings.TrimSpace(cfg.Export.Format))
	if cfg.Export.Format == "" {
		cfg.Export.Format = ExportJSON
	}
	cfg.Export.OutputDir = strings.TrimSpace(cfg.Export.OutputDir)
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = DefaultExportDir
	}
}
