package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported inference backends
const (
	BackendOllama   = "ollama"
	BackendLlamaCpp = "llamacpp"
)

// Supported OCR engines
const (
	OCREngineLibrary = "library"
	OCREngineCommand = "command"
)

// Config holds the application configuration
type Config struct {
	Model  ModelConfig  `yaml:"model"`
	OCR    OCRConfig    `yaml:"ocr"`
	Output OutputConfig `yaml:"output"`
}

// ModelConfig holds configuration for the inference endpoint
type ModelConfig struct {
	Backend     string        `yaml:"backend"`
	Name        string        `yaml:"name"`
	Endpoint    string        `yaml:"endpoint"`
	Timeout     time.Duration `yaml:"timeout"`
	Temperature float64       `yaml:"temperature"`
	TopP        float64       `yaml:"top_p"`
	NumCtx      int           `yaml:"num_ctx"`
}

// OCRConfig holds configuration for text extraction
type OCRConfig struct {
	Engine         string `yaml:"engine"`
	Command        string `yaml:"command"`
	TessdataPrefix string `yaml:"tessdata_prefix"`
	Language       string `yaml:"language"`
}

// OutputConfig holds configuration for report generation
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Suffix string `yaml:"suffix"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Backend:     BackendOllama,
			Name:        "gemma3:4b",
			Endpoint:    "http://localhost:11434/api/generate",
			Timeout:     600 * time.Second,
			Temperature: 0.7,
			TopP:        0.9,
			NumCtx:      4096,
		},
		OCR: OCRConfig{
			Engine:   OCREngineLibrary,
			Command:  "tesseract",
			Language: "eng",
		},
		Output: OutputConfig{
			Dir:    "evaluation_reports",
			Suffix: "_evaluation_report",
		},
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// ApplyEnv overrides configuration values from environment variables
func (c *Config) ApplyEnv() {
	c.Model.Name = getEnvOrDefault("UIUX_MODEL", c.Model.Name)
	c.Model.Endpoint = getEnvOrDefault("UIUX_ENDPOINT", c.Model.Endpoint)
	c.Model.Backend = getEnvOrDefault("UIUX_BACKEND", c.Model.Backend)
	c.Model.Timeout = parseDurationOrDefault("UIUX_TIMEOUT", c.Model.Timeout)
	c.Model.NumCtx = parseIntOrDefault("UIUX_NUM_CTX", c.Model.NumCtx)
	c.OCR.Engine = getEnvOrDefault("UIUX_OCR_ENGINE", c.OCR.Engine)
	c.OCR.Command = getEnvOrDefault("TESSERACT_CMD", c.OCR.Command)
	c.OCR.TessdataPrefix = getEnvOrDefault("TESSDATA_PREFIX", c.OCR.TessdataPrefix)
	c.OCR.Language = getEnvOrDefault("UIUX_OCR_LANG", c.OCR.Language)
	c.Output.Dir = getEnvOrDefault("UIUX_OUTPUT_DIR", c.Output.Dir)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Model.Backend {
	case BackendOllama, BackendLlamaCpp:
	default:
		return fmt.Errorf("model.backend must be %q or %q, got %q", BackendOllama, BackendLlamaCpp, c.Model.Backend)
	}

	if strings.TrimSpace(c.Model.Name) == "" {
		return fmt.Errorf("model.name cannot be empty")
	}

	u, err := url.Parse(c.Model.Endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("model.endpoint must be an http(s) URL, got %q", c.Model.Endpoint)
	}

	if c.Model.Timeout <= 0 {
		return fmt.Errorf("model.timeout must be positive")
	}

	if c.Model.Temperature < 0 || c.Model.Temperature > 2 {
		return fmt.Errorf("model.temperature must be between 0 and 2")
	}

	if c.Model.TopP <= 0 || c.Model.TopP > 1 {
		return fmt.Errorf("model.top_p must be in (0, 1]")
	}

	if c.Model.NumCtx < 1 {
		return fmt.Errorf("model.num_ctx must be positive")
	}

	switch c.OCR.Engine {
	case OCREngineLibrary, OCREngineCommand:
	default:
		return fmt.Errorf("ocr.engine must be %q or %q, got %q", OCREngineLibrary, OCREngineCommand, c.OCR.Engine)
	}

	if c.OCR.Engine == OCREngineCommand && c.OCR.Command == "" {
		return fmt.Errorf("ocr.command cannot be empty when ocr.engine is %q", OCREngineCommand)
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir cannot be empty")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.yaml"
	}
	return filepath.Join(home, ".config", "uiux-evaluator", "config.yaml")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}
