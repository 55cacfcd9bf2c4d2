package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/menta2k/uiux-evaluator/pkg/client"
)

// NoResponseText is returned when the model replied without any text
const NoResponseText = client.NoResponseText

// ErrNoResponse means the endpoint answered without a response object
var ErrNoResponse = errors.New("no response object in reply")

// Client wraps the Ollama API client
type Client struct {
	client  *api.Client
	timeout time.Duration
}

// NewClient creates a new Ollama client. ollamaURL may include a path such
// as /api/generate; only the scheme and host are used.
func NewClient(ollamaURL string, timeout time.Duration) (*Client, error) {
	parsedURL, err := url.Parse(ollamaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %q has no scheme or host", ollamaURL)
	}

	// Create base URL from the provided URL (removing path like /api/generate)
	baseURL := &url.URL{
		Scheme: parsedURL.Scheme,
		Host:   parsedURL.Host,
	}

	if timeout <= 0 {
		timeout = client.DefaultTimeout
	}

	// Create client with the specified URL, ignoring environment
	c := api.NewClient(baseURL, &http.Client{Timeout: timeout})

	return &Client{client: c, timeout: timeout}, nil
}

// Generate sends a non-streaming generate request and returns the reply text
func (c *Client) Generate(ctx context.Context, model, prompt string, opts client.Options) (string, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	streamFalse := false
	req := &api.GenerateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: &streamFalse,
		Options: map[string]any{
			"temperature": opts.Temperature,
			"top_p":       opts.TopP,
			"num_ctx":     opts.NumCtx,
		},
	}

	var (
		responseText string
		received     bool
	)
	err := c.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		received = true
		responseText += resp.Response
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate error: %w", err)
	}

	if !received {
		return "", ErrNoResponse
	}

	if responseText == "" {
		return NoResponseText, nil
	}

	return responseText, nil
}
