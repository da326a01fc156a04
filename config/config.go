package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rustyeddy/trilemma/internal/logging"
	"github.com/rustyeddy/trilemma/trinity"
	"gopkg.in/yaml.v3"
)

// Config represents the complete CLI configuration
type Config struct {
	Parameters trinity.Parameters `json:"parameters" yaml:"parameters"`
	Explain    ExplainConfig      `json:"explain" yaml:"explain"`
	Credential CredentialConfig   `json:"credential" yaml:"credential"`
	Output     OutputConfig       `json:"output" yaml:"output"`
	Log        LogConfig          `json:"log" yaml:"log"`
}

// ExplainConfig configures the text-generation collaborator
type ExplainConfig struct {
	Model    string `json:"model" yaml:"model"`
	Language string `json:"language" yaml:"language"` // "vi" or "en"
	APIKey   string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// CredentialConfig locates the credential store
type CredentialConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// OutputConfig controls how results are rendered
type OutputConfig struct {
	Format string `json:"format" yaml:"format"` // table, csv, json or org
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Pretty bool   `json:"pretty" yaml:"pretty"`
}

// Output formats
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatOrg   = "org"
)

// LoadFromFile loads configuration from a file (JSON or YAML)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Unset sections keep their defaults.
	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (YAML for .yaml/.yml, JSON otherwise)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides file values with environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Explain.APIKey = v
	}
	if v := os.Getenv("TRILEMMA_API_KEY"); v != "" {
		c.Explain.APIKey = v
	}
	if v := os.Getenv("TRILEMMA_LANGUAGE"); v != "" {
		c.Explain.Language = v
	}
	if v := os.Getenv("TRILEMMA_DB"); v != "" {
		c.Credential.DBPath = v
	}
	if v := os.Getenv("TRILEMMA_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("TRILEMMA_LOG_PRETTY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Pretty = b
		}
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Parameters.Validate(); err != nil {
		return fmt.Errorf("parameters: %w", err)
	}
	if c.Explain.Model == "" {
		return fmt.Errorf("explain.model is required")
	}
	if c.Explain.Language != "vi" && c.Explain.Language != "en" {
		return fmt.Errorf("explain.language must be 'vi' or 'en'")
	}
	if c.Credential.DBPath == "" {
		return fmt.Errorf("credential.db_path is required")
	}
	switch c.Output.Format {
	case FormatTable, FormatCSV, FormatJSON, FormatOrg:
	default:
		return fmt.Errorf("output.format must be one of table, csv, json, org")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Default returns a configuration with the Vietnam 2025 baseline
func Default() *Config {
	return &Config{
		Parameters: trinity.Baseline(),
		Explain: ExplainConfig{
			Model:    "gemini-2.0-flash",
			Language: "vi",
		},
		Credential: CredentialConfig{
			DBPath: "./trilemma.sqlite",
		},
		Output: OutputConfig{
			Format: FormatTable,
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}
