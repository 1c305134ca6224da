package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CasesConfig represents the full cases.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type CasesConfig struct {
	Version   string          `yaml:"version"`
	Sieve     []SieveCase     `yaml:"sieve"`
	Trapezoid []TrapezoidCase `yaml:"trapezoid"`
}

// SieveCase is one prime-search preset.
type SieveCase struct {
	N int `yaml:"n"`
}

// TrapezoidCase is one quadrature preset.
type TrapezoidCase struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	N int     `yaml:"n"`
}

// GetCases loads and strictly parses the cases file. Unknown fields are
// errors so typos in presets fail loudly instead of silently running
// defaults.
func GetCases(path string) (*CasesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cases file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cfg CasesConfig
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse cases file %s: %w", path, err)
	}
	return &cfg, nil
}
