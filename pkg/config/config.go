package config

import (
	"fmt"

	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".proselint.yaml"

// Config holds the CLI configuration. Rule types map to an enabled flag;
// types not mentioned stay enabled.
type Config struct {
	Rules          map[string]bool `yaml:"rules"`
	CustomWords    []string        `yaml:"custom_words"`
	StrictSpelling bool            `yaml:"strict_spelling"`
}

// Default returns the configuration used when no config file exists: all
// rules enabled, no custom words, strict spelling off.
func Default() *Config {
	return &Config{Rules: make(map[string]bool)}
}

// Load reads a YAML config file. A missing file is not an error and yields
// the defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error checking config file: %v", err)
	}
	if !exists {
		return Default(), nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]bool)
	}

	return cfg, nil
}

// EnabledTypes returns the rule types left enabled by the config, in
// registration order.
func (c *Config) EnabledTypes() []rules.RuleType {
	var types []rules.RuleType
	for _, ruleType := range rules.AllTypes {
		if on, ok := c.Rules[string(ruleType)]; ok && !on {
			continue
		}
		types = append(types, ruleType)
	}
	return types
}
