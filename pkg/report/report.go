package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/menta2k/uiux-evaluator/internal/errors"
	"github.com/menta2k/uiux-evaluator/internal/utils"
	"github.com/menta2k/uiux-evaluator/pkg/types"
)

// DefaultSuffix is appended to the image base name to form the report name
const DefaultSuffix = "_evaluation_report"

// Title heads every report
const Title = "UI/UX WEBSITE EVALUATION REPORT"

// TimestampLayout is the layout of the Date header line
const TimestampLayout = "2006-01-02 15:04:05"

var separator = strings.Repeat("=", 60)

// Writer persists evaluations as plain text reports
type Writer struct {
	outputDir string
	suffix    string
	now       func() time.Time
}

// NewWriter creates a Writer storing reports in outputDir
func NewWriter(outputDir, suffix string) *Writer {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &Writer{outputDir: outputDir, suffix: suffix, now: time.Now}
}

// Path returns the report path for an image
func (w *Writer) Path(imagePath string) string {
	return utils.GenerateOutputFilename(imagePath, w.outputDir, "", w.suffix, "txt")
}

// Write stores the evaluation and returns the report path. An existing
// report for the same image name is overwritten.
func (w *Writer) Write(eval *types.Evaluation) (string, error) {
	if err := utils.EnsureDir(w.outputDir); err != nil {
		return "", apperrors.NewPersistenceError("Failed to create report directory", err)
	}

	reportPath := w.Path(eval.ImagePath)
	if err := os.WriteFile(reportPath, []byte(w.Render(eval)), 0644); err != nil {
		return "", apperrors.NewPersistenceError("Failed to save report", err)
	}

	return reportPath, nil
}

// Render returns the full report text
func (w *Writer) Render(eval *types.Evaluation) string {
	var b strings.Builder
	b.WriteString(separator + "\n")
	b.WriteString(Title + "\n")
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Image: %s\n", filepath.Base(eval.ImagePath))
	fmt.Fprintf(&b, "Model: %s\n", eval.Model)
	fmt.Fprintf(&b, "Date: %s\n", w.now().Format(TimestampLayout))
	b.WriteString(separator + "\n\n")
	b.WriteString(eval.Text)
	return b.String()
}
