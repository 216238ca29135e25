package pwaux

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the .pwaux.yaml configuration file.
type Config struct {
	// DisabledRules lists validation rule names to skip
	// (e.g., "field-count").
	DisabledRules []string `yaml:"disabled-rules,omitempty"`

	// TriggerCharacters configures which completion trigger characters
	// the server honors. Defaults to "<" (SUBDATA tags).
	TriggerCharacters []string `yaml:"trigger-characters,omitempty"`

	// MaxProblems caps the diagnostics reported per document. Zero
	// means no cap.
	MaxProblems int `yaml:"max-problems,omitempty"`
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{".pwaux.yaml", ".pwaux.yml", "pwaux.yaml", "pwaux.yml"}

// RuleDisabled reports whether a rule name is disabled by config.
func (c *Config) RuleDisabled(name string) bool {
	if c == nil {
		return false
	}

	for _, r := range c.DisabledRules {
		if r == name {
			return true
		}
	}

	return false
}

// LoadConfig finds and loads the nearest .pwaux.yaml walking up from dir.
func LoadConfig(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
