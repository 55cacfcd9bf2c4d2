package analyzer

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/uiux-evaluator/pkg/types"
)

// Width thresholds used to classify screenshots
const (
	TabletMinWidth    = 768
	DesktopMinWidth   = 1024
	MediumResMinWidth = 601
	HighResMinWidth   = 1201
)

// ImageAnalyzer loads, validates and measures screenshots
type ImageAnalyzer struct {
	config Config
}

// Config holds configuration for the image analyzer
type Config struct {
	SupportedFormats []string
	MinImageSize     int
}

// ValidationResult is the outcome of validating an image file
type ValidationResult struct {
	Valid  bool
	Reason string
}

// New creates a new ImageAnalyzer with default configuration
func New() *ImageAnalyzer {
	return &ImageAnalyzer{
		config: Config{
			SupportedFormats: []string{"png", "jpeg", "gif", "bmp", "tiff", "webp"},
			MinImageSize:     1,
		},
	}
}

// NewWithConfig creates a new ImageAnalyzer with custom configuration
func NewWithConfig(config Config) *ImageAnalyzer {
	return &ImageAnalyzer{config: config}
}

// LoadImage loads an image from a file path with WebP fallback
func (a *ImageAnalyzer) LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		if !strings.HasSuffix(strings.ToLower(path), ".webp") {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		format = "webp"
	}

	if !a.isFormatSupported(format) {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	if img, err := imaging.Open(path); err == nil {
		return img, nil
	} else if format != "webp" {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind image file: %w", err)
	}
	img, err := webp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ValidateFile checks that path exists and decodes as a supported raster
// image. Any failure marks the file invalid and the reason carries the cause.
func (a *ImageAnalyzer) ValidateFile(path string) ValidationResult {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ValidationResult{Valid: false, Reason: "File does not exist"}
		}
		return ValidationResult{Valid: false, Reason: fmt.Sprintf("Invalid image file: %v", err)}
	}
	if info.IsDir() {
		return ValidationResult{Valid: false, Reason: "Invalid image file: path is a directory"}
	}

	img, err := a.LoadImage(path)
	if err != nil {
		return ValidationResult{Valid: false, Reason: fmt.Sprintf("Invalid image file: %v", err)}
	}

	if err := a.ValidateImage(img); err != nil {
		return ValidationResult{Valid: false, Reason: fmt.Sprintf("Invalid image file: %v", err)}
	}

	return ValidationResult{Valid: true, Reason: "Valid image file"}
}

// ValidateImage checks if an image meets minimum requirements
func (a *ImageAnalyzer) ValidateImage(img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() < a.config.MinImageSize || bounds.Dy() < a.config.MinImageSize {
		return fmt.Errorf("image too small: %dx%d (minimum: %d)",
			bounds.Dx(), bounds.Dy(), a.config.MinImageSize)
	}
	return nil
}

// GetImageInfo returns the dimensions and classifications of an image
func (a *ImageAnalyzer) GetImageInfo(img image.Image) types.ImageMetrics {
	bounds := img.Bounds()
	return Measure(bounds.Dx(), bounds.Dy())
}

// Measure classifies a width and height into ImageMetrics
func Measure(width, height int) types.ImageMetrics {
	return types.ImageMetrics{
		Width:       width,
		Height:      height,
		Orientation: ClassifyOrientation(width, height),
		DeviceClass: ClassifyDevice(width),
		Resolution:  ClassifyResolution(width),
	}
}

// ClassifyOrientation returns Landscape, Portrait or Square
func ClassifyOrientation(width, height int) types.Orientation {
	switch {
	case width > height:
		return types.Landscape
	case height > width:
		return types.Portrait
	default:
		return types.Square
	}
}

// ClassifyDevice guesses the layout class from the width
func ClassifyDevice(width int) types.DeviceClass {
	switch {
	case width < TabletMinWidth:
		return types.Mobile
	case width < DesktopMinWidth:
		return types.Tablet
	default:
		return types.Desktop
	}
}

// ClassifyResolution returns the resolution tier for the width
func ClassifyResolution(width int) types.ResolutionTier {
	switch {
	case width >= HighResMinWidth:
		return types.HighResolution
	case width >= MediumResMinWidth:
		return types.MediumResolution
	default:
		return types.LowResolution
	}
}

func (a *ImageAnalyzer) isFormatSupported(format string) bool {
	for _, supported := range a.config.SupportedFormats {
		if strings.EqualFold(format, supported) {
			return true
		}
	}
	return false
}
