// Package describe turns extracted screenshot features into the fixed
// natural-language description that is appended to the rubric.
package describe

import (
	"fmt"
	"strings"

	apperrors "github.com/menta2k/uiux-evaluator/internal/errors"
	"github.com/menta2k/uiux-evaluator/pkg/types"
)

// MaxExcerptLength is the number of characters of OCR text kept
const MaxExcerptLength = 1000

// NoTextPlaceholder replaces the excerpt when no text could be read
const NoTextPlaceholder = "No readable text detected"

const template = `
Website Interface Analysis:
- Image dimensions: %dx%d pixels
- Aspect ratio: %s

Text Content Found:
%s

Visual Layout Analysis:
- Interface appears to be a %s layout
- Image quality: %s
`

// Build renders the description document for features
func Build(features types.Features) string {
	m := features.Metrics
	description := fmt.Sprintf(template,
		m.Width, m.Height,
		m.Orientation,
		Excerpt(features),
		m.DeviceClass,
		m.Resolution,
	)
	return strings.TrimSpace(description)
}

// Excerpt returns at most MaxExcerptLength characters of the OCR text, or
// NoTextPlaceholder if recognition failed or found nothing.
func Excerpt(features types.Features) string {
	if features.OCRErr != nil || features.Text == "" {
		return NoTextPlaceholder
	}
	runes := []rune(features.Text)
	if len(runes) > MaxExcerptLength {
		return string(runes[:MaxExcerptLength])
	}
	return features.Text
}

// Failure renders the degraded description used when the screenshot could
// not be analysed at all.
func Failure(err error) string {
	return apperrors.Marker(err)
}
