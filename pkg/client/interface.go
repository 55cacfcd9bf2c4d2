package client

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single inference call on slow local hardware
const DefaultTimeout = 600 * time.Second

// NoResponseText is returned when the model replied without any text
const NoResponseText = "No evaluation response received."

// Options are the sampling parameters sent with every request
type Options struct {
	Temperature float64
	TopP        float64
	NumCtx      int
}

// DefaultOptions returns the sampling parameters used for evaluations
func DefaultOptions() Options {
	return Options{
		Temperature: 0.7,
		TopP:        0.9,
		NumCtx:      4096,
	}
}

// Generator sends a text prompt to a model and returns its reply
type Generator interface {
	Generate(ctx context.Context, model, prompt string, opts Options) (string, error)
}
