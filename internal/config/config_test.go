package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Model.Name != "gemma3:4b" {
		t.Errorf("Expected default model gemma3:4b, got %s", cfg.Model.Name)
	}
	if cfg.Model.Endpoint != "http://localhost:11434/api/generate" {
		t.Errorf("Unexpected default endpoint %s", cfg.Model.Endpoint)
	}
	if cfg.Model.Timeout != 600*time.Second {
		t.Errorf("Expected 600s timeout, got %s", cfg.Model.Timeout)
	}
	if cfg.Output.Dir != "evaluation_reports" {
		t.Errorf("Expected default output dir evaluation_reports, got %s", cfg.Output.Dir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `model:
  name: llava:7b
  timeout: 90s
  num_ctx: 8192
ocr:
  engine: command
  command: /usr/local/bin/tesseract
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Model.Name != "llava:7b" {
		t.Errorf("Expected model llava:7b, got %s", cfg.Model.Name)
	}
	if cfg.Model.Timeout != 90*time.Second {
		t.Errorf("Expected timeout 90s, got %s", cfg.Model.Timeout)
	}
	if cfg.Model.NumCtx != 8192 {
		t.Errorf("Expected num_ctx 8192, got %d", cfg.Model.NumCtx)
	}
	if cfg.OCR.Engine != OCREngineCommand || cfg.OCR.Command != "/usr/local/bin/tesseract" {
		t.Errorf("Unexpected OCR config %+v", cfg.OCR)
	}
	// untouched keys keep defaults
	if cfg.Model.Endpoint != Default().Model.Endpoint {
		t.Errorf("Expected default endpoint to survive, got %s", cfg.Model.Endpoint)
	}
	if cfg.Model.TopP != 0.9 {
		t.Errorf("Expected default top_p 0.9, got %f", cfg.Model.TopP)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("model: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("UIUX_MODEL", "qwen2.5vl:3b")
	t.Setenv("UIUX_ENDPOINT", "http://gpu-box:11434/api/generate")
	t.Setenv("UIUX_TIMEOUT", "2m")
	t.Setenv("TESSERACT_CMD", "/opt/tesseract/bin/tesseract")
	t.Setenv("UIUX_OUTPUT_DIR", "reports")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Model.Name != "qwen2.5vl:3b" {
		t.Errorf("Expected model override, got %s", cfg.Model.Name)
	}
	if cfg.Model.Endpoint != "http://gpu-box:11434/api/generate" {
		t.Errorf("Expected endpoint override, got %s", cfg.Model.Endpoint)
	}
	if cfg.Model.Timeout != 2*time.Minute {
		t.Errorf("Expected 2m timeout, got %s", cfg.Model.Timeout)
	}
	if cfg.OCR.Command != "/opt/tesseract/bin/tesseract" {
		t.Errorf("Expected tesseract command override, got %s", cfg.OCR.Command)
	}
	if cfg.Output.Dir != "reports" {
		t.Errorf("Expected output dir override, got %s", cfg.Output.Dir)
	}
}

func TestApplyEnvIgnoresInvalidDuration(t *testing.T) {
	t.Setenv("UIUX_TIMEOUT", "soon")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Model.Timeout != 600*time.Second {
		t.Errorf("Invalid duration should keep default, got %s", cfg.Model.Timeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Model.Backend = "vllm" }},
		{"empty model", func(c *Config) { c.Model.Name = " " }},
		{"relative endpoint", func(c *Config) { c.Model.Endpoint = "/api/generate" }},
		{"bad scheme", func(c *Config) { c.Model.Endpoint = "ftp://localhost/api" }},
		{"zero timeout", func(c *Config) { c.Model.Timeout = 0 }},
		{"temperature too high", func(c *Config) { c.Model.Temperature = 3 }},
		{"top_p zero", func(c *Config) { c.Model.TopP = 0 }},
		{"num_ctx zero", func(c *Config) { c.Model.NumCtx = 0 }},
		{"unknown ocr engine", func(c *Config) { c.OCR.Engine = "cloud" }},
		{"command engine without command", func(c *Config) {
			c.OCR.Engine = OCREngineCommand
			c.OCR.Command = ""
		}},
		{"empty output dir", func(c *Config) { c.Output.Dir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
