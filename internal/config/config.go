package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Paths       PathsConfig       `yaml:"paths"`
	Store       StoreConfig       `yaml:"store"`
	Logging     LoggingConfig     `yaml:"logging"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	Model   string        `yaml:"model"`
	APIKeys []string      `yaml:"api_keys"`
	Timeout time.Duration `yaml:"timeout"`
	// MaxRetries is nil when unset; an explicit 0 disables retries.
	MaxRetries *int `yaml:"max_retries"`
}

type PipelineConfig struct {
	// MaxParallel bounds how many generation tasks of one run are in flight.
	MaxParallel int           `yaml:"max_parallel"`
	TaskTimeout time.Duration `yaml:"task_timeout"`
	ExportDocx  bool          `yaml:"export_docx"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Archived string `yaml:"archived"`
	Failed   string `yaml:"failed"`
	Exports  string `yaml:"exports"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a YAML config file, applies environment overrides and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// applyEnv lets GEMINI_API_KEY (comma separated) and GEMINI_MODEL override the file.
func (c *Config) applyEnv() {
	if raw := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); raw != "" {
		c.Gemini.APIKeys = splitKeys(raw)
	}
	if model := strings.TrimSpace(os.Getenv("GEMINI_MODEL")); model != "" {
		c.Gemini.Model = model
	}
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *Config) Validate() error {
	keys := c.Gemini.APIKeys[:0]
	for _, k := range c.Gemini.APIKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	c.Gemini.APIKeys = keys

	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required (or set GEMINI_API_KEY)")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if c.Gemini.MaxRetries != nil && *c.Gemini.MaxRetries < 0 {
		return fmt.Errorf("gemini.max_retries must be >= 0")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.Timeout == 0 {
		c.Gemini.Timeout = 60 * time.Second
	}
	if c.Gemini.MaxRetries == nil {
		c.Gemini.MaxRetries = new(2)
	}
	if c.Pipeline.MaxParallel <= 0 {
		c.Pipeline.MaxParallel = 6
	}
	if c.Pipeline.TaskTimeout == 0 {
		c.Pipeline.TaskTimeout = 3 * time.Minute
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Failed == "" {
		c.Paths.Failed = "data/failed"
	}
	if c.Paths.Exports == "" {
		c.Paths.Exports = "data/exports"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
