//go:build !notesseract

package main

import (
	"github.com/menta2k/uiux-evaluator/internal/config"
	"github.com/menta2k/uiux-evaluator/pkg/ocr"
	"github.com/menta2k/uiux-evaluator/pkg/ocr/tesseract"
)

func newLibraryEngine(cfg config.OCRConfig) (ocr.Engine, error) {
	engine, err := tesseract.New(tesseract.Options{
		Language:       cfg.Language,
		TessdataPrefix: cfg.TessdataPrefix,
	})
	if err != nil {
		return nil, err
	}
	return engine, nil
}
