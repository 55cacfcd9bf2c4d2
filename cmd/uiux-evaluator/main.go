package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	uiuxevaluator "github.com/menta2k/uiux-evaluator"
	"github.com/menta2k/uiux-evaluator/internal/config"
	apperrors "github.com/menta2k/uiux-evaluator/internal/errors"
	"github.com/menta2k/uiux-evaluator/internal/logger"
	"github.com/menta2k/uiux-evaluator/internal/utils"
	"github.com/menta2k/uiux-evaluator/pkg/client"
	"github.com/menta2k/uiux-evaluator/pkg/llamacpp"
	"github.com/menta2k/uiux-evaluator/pkg/ocr"
	"github.com/menta2k/uiux-evaluator/pkg/ollama"
)

var rule = strings.Repeat("=", 60)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	var configPath, model, url, backend, outDir, ocrEngine string
	var showVersion bool

	fs := flag.NewFlagSet("uiux-evaluator", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.StringVar(&configPath, "config", "", "YAML config file (default "+config.GetConfigPath()+" if present)")
	fs.StringVar(&model, "model", "", "model name (default gemma3:4b)")
	fs.StringVar(&url, "url", "", "inference endpoint (default http://localhost:11434/api/generate)")
	fs.StringVar(&backend, "backend", "", "backend to use: ollama or llamacpp")
	fs.StringVar(&outDir, "out", "", "report output directory (default evaluation_reports)")
	fs.StringVar(&ocrEngine, "ocr", "", "OCR engine: library (libtesseract) or command (tesseract binary)")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.Usage = func() { printUsage(stdout, fs) }

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if showVersion {
		fmt.Fprintf(stdout, "uiux-evaluator %s\n", uiuxevaluator.GetVersion())
		return 0
	}
	if fs.NArg() != 1 {
		printUsage(stdout, fs)
		return 1
	}
	imagePath := fs.Arg(0)

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(stdout, apperrors.Marker(apperrors.NewConfigError("Failed to load configuration", err)))
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.Model.Name = model
		case "url":
			cfg.Model.Endpoint = url
		case "backend":
			cfg.Model.Backend = backend
		case "out":
			cfg.Output.Dir = outDir
		case "ocr":
			cfg.OCR.Engine = ocrEngine
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stdout, apperrors.Marker(apperrors.NewConfigError("Invalid configuration", err)))
		return 1
	}

	generator, err := newGenerator(cfg)
	if err != nil {
		fmt.Fprintln(stdout, apperrors.Marker(apperrors.NewConfigError("Failed to create inference client", err)))
		return 1
	}

	engine := newEngine(cfg.OCR)
	if engine != nil {
		defer engine.Close()
	}

	evaluator := uiuxevaluator.NewWithConfig(uiuxevaluator.Config{
		Model: cfg.Model.Name,
		Options: client.Options{
			Temperature: cfg.Model.Temperature,
			TopP:        cfg.Model.TopP,
			NumCtx:      cfg.Model.NumCtx,
		},
		OutputDir:    cfg.Output.Dir,
		ReportSuffix: cfg.Output.Suffix,
	}, generator, engine)

	if result := evaluator.ValidateImageFile(imagePath); !result.Valid {
		fmt.Fprintln(stdout, apperrors.Marker(apperrors.NewValidationError(result.Reason, nil)))
		return 1
	}

	fmt.Fprintln(stdout, rule)
	fmt.Fprintln(stdout, "UI/UX WEBSITE EVALUATION SYSTEM")
	fmt.Fprintln(stdout, rule)
	fmt.Fprintf(stdout, "Analyzing: %s\n", filepath.Base(imagePath))
	fmt.Fprintln(stdout, rule)

	eval, err := evaluator.EvaluateWebsiteDesign(ctx, imagePath)
	if err != nil {
		fmt.Fprintln(stdout, apperrors.Marker(err))
		return 1
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, rule)
	fmt.Fprintln(stdout, "EVALUATION RESULTS")
	fmt.Fprintln(stdout, rule)
	fmt.Fprintln(stdout, eval.Text)

	if _, err := evaluator.SaveEvaluationReport(eval); err != nil {
		logger.WithError(err).Warn("Failed to save report")
	}

	return 0
}

// loadConfig reads the explicit config file, or the default one when it
// exists, then applies environment overrides
func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path == "" && utils.FileExists(config.GetConfigPath()) {
		path = config.GetConfigPath()
	}
	if path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logger.WithField("path", path).Debug("Loaded configuration file")
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func newGenerator(cfg *config.Config) (client.Generator, error) {
	switch cfg.Model.Backend {
	case config.BackendLlamaCpp:
		return llamacpp.NewClient(cfg.Model.Endpoint, cfg.Model.Timeout)
	default:
		return ollama.NewClient(cfg.Model.Endpoint, cfg.Model.Timeout)
	}
}

// newEngine never fails: an unusable OCR engine only degrades the
// description, so errors are logged and nil is returned.
func newEngine(cfg config.OCRConfig) ocr.Engine {
	if cfg.Engine == config.OCREngineCommand {
		return ocr.NewCommandEngine(cfg.Command, cfg.Language)
	}

	engine, err := newLibraryEngine(cfg)
	if err != nil {
		logger.WithError(err).Warn("OCR engine unavailable, continuing without text extraction")
		return nil
	}
	return engine
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "UI/UX Website Evaluation System")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Usage: uiux-evaluator [flags] <image_path>")
	fmt.Fprintln(w, "\nExample:")
	fmt.Fprintln(w, "  uiux-evaluator student_website.png")
	fmt.Fprintf(w, "\nSupported formats: %s\n", strings.ToUpper(strings.Join(utils.SupportedImageExtensions, ", ")))
	fmt.Fprintln(w, "\nMake sure Ollama is running with the Gemma3 model installed:")
	fmt.Fprintln(w, "  ollama pull gemma3:4b")
	fmt.Fprintln(w, "  ollama serve")
	fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
	fmt.Fprintln(w, rule)
}
