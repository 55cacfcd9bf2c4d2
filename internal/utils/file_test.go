package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	for i := 0; i < 2; i++ {
		if err := EnsureDir(dir); err != nil {
			t.Fatalf("EnsureDir call %d failed: %v", i+1, err)
		}
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Error("Expected directory to exist")
	}
}

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		input, dir, prefix, suffix, format string
		want                               string
	}{
		{"shots/home.png", "reports", "", "_evaluation_report", "txt", filepath.Join("reports", "home_evaluation_report.txt")},
		{"/tmp/landing.page.jpg", "out", "", "_evaluation_report", "txt", filepath.Join("out", "landing.page_evaluation_report.txt")},
		{"noext", "out", "pre_", "", "", filepath.Join("out", "pre_noext.txt")},
	}

	for _, tt := range tests {
		if got := GenerateOutputFilename(tt.input, tt.dir, tt.prefix, tt.suffix, tt.format); got != tt.want {
			t.Errorf("GenerateOutputFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "x.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("Expected file to exist")
	}
	if FileExists(dir) {
		t.Error("Directory should not count as file")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("Missing file should not exist")
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := map[int64]string{
		512:         "512 B",
		2048:        "2.0 KB",
		5 * 1 << 20: "5.0 MB",
	}
	for size, want := range tests {
		if got := FormatFileSize(size); got != want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", size, got, want)
		}
	}
}
