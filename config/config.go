package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure. File values override defaults;
// environment variables override the file.
type Config struct {
	Audience string         `json:"audience" yaml:"audience" env:"SHIPLOG_AUDIENCE"`
	Window   WindowConfig   `json:"window" yaml:"window"`
	Service  ServiceConfig  `json:"service" yaml:"service"`
	Filters  FilterConfig   `json:"filters" yaml:"filters"`
	Schedule ScheduleConfig `json:"schedule" yaml:"schedule"`
}

// WindowConfig holds the default commit window.
type WindowConfig struct {
	Days int `json:"days" yaml:"days"` // used when --since is not given
}

// ServiceConfig holds summarization service settings.
type ServiceConfig struct {
	Model     string `json:"model" yaml:"model" env:"SHIPLOG_MODEL"`
	APIKey    string `json:"apiKey" yaml:"api_key" env:"ANTHROPIC_API_KEY"`
	MaxTokens int    `json:"maxTokens" yaml:"max_tokens"`
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include" yaml:"include"`
	Exclude []string `json:"exclude" yaml:"exclude"`
}

// ScheduleConfig holds settings for scheduled digest runs.
type ScheduleConfig struct {
	Cron       string `json:"cron" yaml:"cron"`
	RunOnStart bool   `json:"runOnStart" yaml:"run_on_start"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Audience: "general",
		Window: WindowConfig{
			Days: 7,
		},
		Service: ServiceConfig{
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 4096,
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Schedule: ScheduleConfig{
			Cron: "0 8 * * *",
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults and then
// applying environment overrides. Files ending in .yaml or .yml are parsed
// as YAML, anything else as JSON.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".shiplog.json", ".shiplog.yaml"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates,
				filepath.Join(home, ".shiplog.json"),
				filepath.Join(home, ".shiplog.yaml"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if isYAMLPath(path) {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		} else {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a JSON file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ValidateService checks the settings needed before any summarization work
// begins. A missing credential is reported here, not at call time.
func (c *Config) ValidateService() error {
	if strings.TrimSpace(c.Service.APIKey) == "" {
		return fmt.Errorf("no API key configured: set ANTHROPIC_API_KEY or service.apiKey in the config file")
	}
	if c.Service.Model == "" {
		return fmt.Errorf("service.model must not be empty")
	}
	if c.Service.MaxTokens <= 0 {
		return fmt.Errorf("service.maxTokens must be positive")
	}
	return nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
