package types

import "time"

// Orientation is the aspect ratio classification of a screenshot
type Orientation string

const (
	Landscape Orientation = "Landscape"
	Portrait  Orientation = "Portrait"
	Square    Orientation = "Square"
)

// DeviceClass is the layout class guessed from the screenshot width
type DeviceClass string

const (
	Mobile  DeviceClass = "mobile"
	Tablet  DeviceClass = "tablet"
	Desktop DeviceClass = "desktop"
)

// ResolutionTier is the image quality tier derived from the screenshot width
type ResolutionTier string

const (
	HighResolution   ResolutionTier = "High resolution"
	MediumResolution ResolutionTier = "Medium resolution"
	LowResolution    ResolutionTier = "Low resolution"
)

// ImageMetrics contains the dimensions of a screenshot and their classifications
type ImageMetrics struct {
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Orientation Orientation    `json:"orientation"`
	DeviceClass DeviceClass    `json:"device_class"`
	Resolution  ResolutionTier `json:"resolution"`
}

// Features is everything extracted from a screenshot before prompting.
// OCRErr is set when text recognition failed; Text is empty in that case.
type Features struct {
	Metrics ImageMetrics `json:"metrics"`
	Text    string       `json:"text"`
	OCRErr  error        `json:"-"`
}

// Evaluation is a successful model verdict for one screenshot
type Evaluation struct {
	ImagePath string        `json:"image_path"`
	Model     string        `json:"model"`
	Text      string        `json:"text"`
	Prompt    string        `json:"-"`
	Duration  time.Duration `json:"duration"`
}
