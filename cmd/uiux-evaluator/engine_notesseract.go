//go:build notesseract

package main

import (
	"errors"

	"github.com/menta2k/uiux-evaluator/internal/config"
	"github.com/menta2k/uiux-evaluator/pkg/ocr"
)

var errNoLibrary = errors.New("built without libtesseract support; use -ocr command")

func newLibraryEngine(cfg config.OCRConfig) (ocr.Engine, error) {
	return nil, errNoLibrary
}
