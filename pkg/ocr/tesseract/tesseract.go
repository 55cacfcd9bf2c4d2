// Package tesseract runs OCR in-process through libtesseract.
package tesseract

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/menta2k/uiux-evaluator/pkg/ocr"
)

// Options configures the tesseract engine
type Options struct {
	Language       string
	TessdataPrefix string
}

// Engine wraps a gosseract client. It is not safe for concurrent use.
type Engine struct {
	client *gosseract.Client
}

// New creates a tesseract engine
func New(opts Options) (*Engine, error) {
	client := gosseract.NewClient()

	if opts.TessdataPrefix != "" {
		client.SetTessdataPrefix(opts.TessdataPrefix)
	}
	if opts.Language != "" {
		if err := client.SetLanguage(opts.Language); err != nil {
			client.Close()
			return nil, fmt.Errorf("invalid OCR language %q: %w", opts.Language, err)
		}
	}

	return &Engine{client: client}, nil
}

// Recognize implements ocr.Engine
func (e *Engine) Recognize(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := ocr.EncodePNG(img)
	if err != nil {
		return "", err
	}

	if err := e.client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("tesseract rejected image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// Close implements ocr.Engine
func (e *Engine) Close() error {
	return e.client.Close()
}
