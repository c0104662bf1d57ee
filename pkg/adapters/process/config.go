package process

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExtractorConfig represents the configuration for one external extractor.
type ExtractorConfig struct {
	ContentType string            `yaml:"content_type" json:"content_type"`
	Command     string            `yaml:"command" json:"command"`
	Args        []string          `yaml:"args" json:"args"`
	Environment map[string]string `yaml:"env" json:"env"`
	Description string            `yaml:"description" json:"description"`
}

// ConfigFile represents the structure of extractors.yaml
type ConfigFile struct {
	Extractors []ExtractorConfig `yaml:"extractors" json:"extractors"`
}

// LoadExtractors reads a configuration file (YAML or JSON) and returns a map
// of content types to configs. A missing file means "no extractors configured".
func LoadExtractors(path string) (map[string]ExtractorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]ExtractorConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read extractors config: %w", err)
	}

	var cfg ConfigFile
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse extractors.json: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse extractors.yaml: %w", err)
		}
	}

	configMap := make(map[string]ExtractorConfig)
	for _, e := range cfg.Extractors {
		if e.ContentType == "" {
			continue
		}
		configMap[e.ContentType] = e
	}

	return configMap, nil
}
