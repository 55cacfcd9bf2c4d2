// Package uiuxevaluator scores website screenshots against a fixed UI/UX
// rubric using a locally hosted language model.
//
// A screenshot is validated, its dimensions and visible text (via OCR) are
// turned into a short description, the description is appended to the
// rubric and the resulting prompt is sent to an Ollama or llama.cpp
// endpoint. The model's verdict is returned and can be saved as a report.
//
// Basic usage:
//
//	gen, err := ollama.NewClient("http://localhost:11434/api/generate", 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ev := uiuxevaluator.New(gen, ocr.NewCommandEngine("tesseract", "eng"))
//
//	if res := ev.ValidateImageFile("home.png"); !res.Valid {
//		log.Fatal(res.Reason)
//	}
//	eval, err := ev.EvaluateWebsiteDesign(context.Background(), "home.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(eval.Text)
//	ev.SaveEvaluationReport(eval)
//
// The rubric asks the model for a "SCORE: [X/10]" block but the reply is
// treated as free text and is not parsed.
package uiuxevaluator

import (
	"context"
	"time"

	apperrors "github.com/menta2k/uiux-evaluator/internal/errors"
	"github.com/menta2k/uiux-evaluator/internal/logger"
	"github.com/menta2k/uiux-evaluator/pkg/analyzer"
	"github.com/menta2k/uiux-evaluator/pkg/client"
	"github.com/menta2k/uiux-evaluator/pkg/describe"
	"github.com/menta2k/uiux-evaluator/pkg/extractor"
	"github.com/menta2k/uiux-evaluator/pkg/ocr"
	"github.com/menta2k/uiux-evaluator/pkg/prompt"
	"github.com/menta2k/uiux-evaluator/pkg/report"
	"github.com/menta2k/uiux-evaluator/pkg/types"
	"github.com/sirupsen/logrus"
)

// Version of the evaluator
const Version = "1.0.0"

// DefaultModel is the model used when none is configured
const DefaultModel = "gemma3:4b"

// DefaultOutputDir is where reports are written by default
const DefaultOutputDir = "evaluation_reports"

// Config holds the settings of one evaluation run
type Config struct {
	Model        string
	Options      client.Options
	OutputDir    string
	ReportSuffix string
}

// DefaultConfig returns the default run settings
func DefaultConfig() Config {
	return Config{
		Model:        DefaultModel,
		Options:      client.DefaultOptions(),
		OutputDir:    DefaultOutputDir,
		ReportSuffix: report.DefaultSuffix,
	}
}

// Evaluator sequences validation, extraction, prompting, inference and
// reporting for a screenshot
type Evaluator struct {
	config    Config
	analyzer  *analyzer.ImageAnalyzer
	extractor *extractor.Extractor
	generator client.Generator
	writer    *report.Writer
}

// New creates an Evaluator with default configuration
func New(generator client.Generator, engine ocr.Engine) *Evaluator {
	return NewWithConfig(DefaultConfig(), generator, engine)
}

// NewWithConfig creates an Evaluator with custom configuration
func NewWithConfig(cfg Config, generator client.Generator, engine ocr.Engine) *Evaluator {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	imgAnalyzer := analyzer.New()
	return &Evaluator{
		config:    cfg,
		analyzer:  imgAnalyzer,
		extractor: extractor.New(imgAnalyzer, engine),
		generator: generator,
		writer:    report.NewWriter(cfg.OutputDir, cfg.ReportSuffix),
	}
}

// ModelName returns the configured model identifier
func (e *Evaluator) ModelName() string {
	return e.config.Model
}

// ValidateImageFile checks that path exists and is a decodable image
func (e *Evaluator) ValidateImageFile(path string) analyzer.ValidationResult {
	return e.analyzer.ValidateFile(path)
}

// DescribeImageLayout builds the description of the screenshot at path.
// It never fails: unreadable images yield an error description instead.
func (e *Evaluator) DescribeImageLayout(ctx context.Context, path string) string {
	features, err := e.extractor.Extract(ctx, path)
	if err != nil {
		logger.WithError(err).WithField("image", path).Warn("Image analysis failed")
		return describe.Failure(err)
	}
	return describe.Build(features)
}

// EvaluateWebsiteDesign runs the full pipeline for the screenshot at path.
// Only an inference failure is returned as an error; it carries
// ErrorTypeInference.
func (e *Evaluator) EvaluateWebsiteDesign(ctx context.Context, path string) (*types.Evaluation, error) {
	logger.WithField("image", path).Info("Analyzing image layout and extracting text")
	description := e.DescribeImageLayout(ctx, path)

	fullPrompt := prompt.Assemble(description)

	logger.WithFields(logrus.Fields{
		"model":         e.config.Model,
		"prompt_length": len(fullPrompt),
	}).Info("Sending evaluation request to model")

	start := time.Now()
	text, err := e.generator.Generate(ctx, e.config.Model, fullPrompt, e.config.Options)
	if err != nil {
		return nil, apperrors.NewInferenceError("Model API request failed", err)
	}

	eval := &types.Evaluation{
		ImagePath: path,
		Model:     e.config.Model,
		Text:      text,
		Prompt:    fullPrompt,
		Duration:  time.Since(start),
	}
	logger.WithField("duration", eval.Duration.Round(time.Millisecond)).Info("Evaluation received")

	return eval, nil
}

// SaveEvaluationReport writes eval to the output directory and returns the
// report path
func (e *Evaluator) SaveEvaluationReport(eval *types.Evaluation) (string, error) {
	path, err := e.writer.Write(eval)
	if err != nil {
		return "", err
	}
	logger.WithField("path", path).Info("Evaluation report saved")
	return path, nil
}

// ReportPath returns where the report for imagePath would be written
func (e *Evaluator) ReportPath(imagePath string) string {
	return e.writer.Path(imagePath)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
