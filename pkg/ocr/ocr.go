// Package ocr defines text recognition engines used to read visible text
// from screenshots.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os/exec"
	"strings"

	"github.com/disintegration/imaging"
)

// Engine extracts text from a decoded image
type Engine interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
	Close() error
}

// EncodePNG encodes img losslessly for handing to an OCR engine
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image for OCR: %w", err)
	}
	return buf.Bytes(), nil
}

// CommandEngine runs an external tesseract binary, feeding the image on
// stdin and reading the recognised text from stdout.
type CommandEngine struct {
	command  string
	language string
}

// NewCommandEngine creates an engine that invokes the binary at command
func NewCommandEngine(command, language string) *CommandEngine {
	if command == "" {
		command = "tesseract"
	}
	return &CommandEngine{command: command, language: language}
}

// Recognize implements Engine
func (e *CommandEngine) Recognize(ctx context.Context, img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}

	args := []string{"stdin", "stdout"}
	if e.language != "" {
		args = append(args, "-l", e.language)
	}

	cmd := exec.CommandContext(ctx, e.command, args...)
	cmd.Stdin = bytes.NewReader(data)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s failed: %w: %s", e.command, err, msg)
		}
		return "", fmt.Errorf("%s failed: %w", e.command, err)
	}

	return strings.TrimSpace(out.String()), nil
}

// Close implements Engine
func (e *CommandEngine) Close() error {
	return nil
}
