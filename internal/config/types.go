package config

// Config is the .qbank/config.yml schema.
type Config struct {
	Version       int          `yaml:"version"`
	QuestionsFile string       `yaml:"questions_file"`
	Export        ExportConfig `yaml:"export"`
	UI            UIConfig     `yaml:"ui"`
}

// ExportConfig holds defaults for the export command.
type ExportConfig struct {
	Format    string `yaml:"format"`
	OutputDir string `yaml:"output_dir"`
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}

// Export formats accepted by the config and the export command.
const (
	ExportJSON   = "json"
	ExportYAML   = "yaml"
	ExportDuckDB = "duckdb"
	ExportSQLite = "sqlite"
)

// ExportFormats lists the supported export formats.
var ExportFormats = []string{ExportJSON, ExportYAML, ExportDuckDB, ExportSQLite}
