package cli

import (
	"errors"
	"fmt"
	"os"

	"qbank/internal/config"
	"qbank/internal/dataset"
	"qbank/internal/question"
)

// source is a loaded collection plus where it came from.
type source struct {
	collection *question.Collection
	data       []byte
	format     question.Format
	origin     string
	root       string
	config     config.Config
}

// workingDir is the starting point for config discovery.
var workingDir = os.Getwd

// resolveConfig finds and loads the nearest config, falling back to defaults
// rooted at the working directory when none exists.
func resolveConfig() (config.Config, string, error) {
	wd, err := workingDir()
	if err != nil {
		return config.Config{}, "", fmt.Errorf("get working directory: %w", err)
	}
	path, err := config.FindConfigPath(wd)
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			return config.Config{}, "", err
		}
		cfg := config.Default()
		if err := config.ApplyEnv(&cfg, nil); err != nil {
			return config.Config{}, "", err
		}
		config.Normalize(&cfg)
		if err := config.Validate(&cfg, wd); err != nil {
			return config.Config{}, "", err
		}
		return cfg, wd, nil
	}
	cfg, err := config.LoadWithEnv(path, nil)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, config.RepoRootFromConfigPath(path), nil
}

// loadSource picks the collection by precedence: explicit file, configured file,
// then the embedded dataset.
func loadSource(filePath string) (source, error) {
	cfg, root, err := resolveConfig()
	if err != nil {
		return source{}, err
	}
	src := source{root: root, config: cfg}

	path := filePath
	if path == "" && cfg.QuestionsFile != "" {
		path = config.ResolvePath(root, cfg.QuestionsFile)
	}
	if path == "" {
		src.data = dataset.Raw()
		src.format = question.FormatJSON
		src.origin = "embedded dataset"
	} else {
		format, err := question.FormatFromPath(path)
		if err != nil {
			return source{}, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return source{}, fmt.Errorf("read questions: %w", err)
		}
		src.data = data
		src.format = format
		src.origin = path
	}

	collection, err := question.Parse(src.data, src.format)
	if err != nil {
		return source{}, err
	}
	src.collection = collection
	return src, nil
}
