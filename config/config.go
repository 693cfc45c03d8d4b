package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultComponentsDir = "src/reuseComponents"
	DefaultUtilPath      = "src/lib/utils.js"
	DefaultExtension     = ".jsx"
	DefaultDataPrefix    = "data-"
)

type Config struct {
	ComponentsDir        string   `json:"components_dir" yaml:"components_dir"`
	UtilPath             string   `json:"util_path" yaml:"util_path"`
	Extension            string   `json:"extension" yaml:"extension"`
	StripAttributes      bool     `json:"strip_attributes" yaml:"strip_attributes"`
	DisallowedAttributes []string `json:"disallowed_attributes" yaml:"disallowed_attributes"`
	DataPrefix           string   `json:"data_prefix" yaml:"data_prefix"`
	NormalizeName        bool     `json:"normalize_name" yaml:"normalize_name"`
}

// LoadConfig reads configJSON when set, otherwise .carve.json or .carve.yaml
// from configDir. Missing files are not an error.
func LoadConfig(configDir string, configJSON string) (*Config, error) {
	config := &Config{}

	if configJSON != "" {
		if err := json.Unmarshal([]byte(configJSON), config); err != nil {
			return nil, fmt.Errorf("error parsing config JSON: %w", err)
		}
		config.applyDefaults()
		return config, nil
	}

	jsonPath := filepath.Join(configDir, ".carve.json")
	if data, err := os.ReadFile(jsonPath); err == nil {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing .carve.json: %w", err)
		}
		config.applyDefaults()
		return config, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .carve.json: %w", err)
	}

	yamlPath := filepath.Join(configDir, ".carve.yaml")
	if data, err := os.ReadFile(yamlPath); err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing .carve.yaml: %w", err)
		}
		config.applyDefaults()
		return config, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .carve.yaml: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

// Default returns a config with every field at its default.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.ComponentsDir == "" {
		c.ComponentsDir = DefaultComponentsDir
	}
	if c.UtilPath == "" {
		c.UtilPath = DefaultUtilPath
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Extension[0] != '.' {
		c.Extension = "." + c.Extension
	}
	if c.DataPrefix == "" {
		c.DataPrefix = DefaultDataPrefix
	}
}
