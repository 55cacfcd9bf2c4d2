package extractor

import (
	"context"
	"os"

	apperrors "github.com/menta2k/uiux-evaluator/internal/errors"
	"github.com/menta2k/uiux-evaluator/internal/logger"
	"github.com/menta2k/uiux-evaluator/internal/utils"
	"github.com/menta2k/uiux-evaluator/pkg/analyzer"
	"github.com/menta2k/uiux-evaluator/pkg/ocr"
	"github.com/menta2k/uiux-evaluator/pkg/types"
)

// Extractor reads dimensions and visible text from a screenshot
type Extractor struct {
	analyzer *analyzer.ImageAnalyzer
	engine   ocr.Engine
}

// New creates an Extractor using engine for text recognition
func New(imgAnalyzer *analyzer.ImageAnalyzer, engine ocr.Engine) *Extractor {
	return &Extractor{analyzer: imgAnalyzer, engine: engine}
}

// Extract decodes the image at path and runs OCR on it. An error is only
// returned when the image itself cannot be read; OCR failures are reported
// through Features.OCRErr.
func (e *Extractor) Extract(ctx context.Context, path string) (types.Features, error) {
	img, err := e.analyzer.LoadImage(path)
	if err != nil {
		return types.Features{}, apperrors.NewExtractionError("Image analysis failed", err)
	}

	features := types.Features{Metrics: e.analyzer.GetImageInfo(img)}
	if info, statErr := os.Stat(path); statErr == nil {
		logger.WithField("image", path).
			WithField("size", utils.FormatFileSize(info.Size())).
			WithField("width", features.Metrics.Width).
			WithField("height", features.Metrics.Height).
			Debug("Image loaded")
	}

	if e.engine == nil {
		features.OCRErr = apperrors.NewOCRError("no OCR engine configured", nil)
		return features, nil
	}

	text, err := e.engine.Recognize(ctx, img)
	if err != nil {
		logger.WithError(err).WithField("image", path).Warn("Text extraction failed")
		features.OCRErr = apperrors.NewOCRError("text extraction failed", err)
		return features, nil
	}

	features.Text = text
	logger.WithField("chars", len([]rune(text))).Debug("Text extracted")
	return features, nil
}
