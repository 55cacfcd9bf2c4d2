package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/menta2k/uiux-evaluator/pkg/client"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"generate endpoint", "http://localhost:11434/api/generate", false},
		{"bare host", "http://127.0.0.1:11434", false},
		{"no scheme", "localhost:11434", true},
		{"garbage", "://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.url, time.Minute)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClient(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestNewClientDefaultTimeout(t *testing.T) {
	c, err := NewClient("http://localhost:11434", 0)
	if err != nil {
		t.Fatal(err)
	}
	if c.timeout != client.DefaultTimeout {
		t.Errorf("Expected default timeout, got %s", c.timeout)
	}
}

func TestGenerate(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("Unexpected method %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Invalid request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"gemma3:4b","response":"SCORE: [8/10]\n\nSTRENGTHS:\n- Clean","done":true}` + "\n"))
	}))
	defer server.Close()

	c, err := NewClient(server.URL+"/api/generate", time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	got, err := c.Generate(context.Background(), "gemma3:4b", "rate this", client.DefaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "SCORE: [8/10]\n\nSTRENGTHS:\n- Clean" {
		t.Errorf("Unexpected response %q", got)
	}

	if body["model"] != "gemma3:4b" {
		t.Errorf("Expected model gemma3:4b, got %v", body["model"])
	}
	if body["prompt"] != "rate this" {
		t.Errorf("Expected prompt to be sent, got %v", body["prompt"])
	}
	if body["stream"] != false {
		t.Errorf("Expected stream false, got %v", body["stream"])
	}
	options, ok := body["options"].(map[string]any)
	if !ok {
		t.Fatalf("Expected options object, got %v", body["options"])
	}
	if options["temperature"] != 0.7 || options["top_p"] != 0.9 || options["num_ctx"] != float64(4096) {
		t.Errorf("Unexpected options %v", options)
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"model":"gemma3:4b","done":true}` + "\n"))
	}))
	defer server.Close()

	c, _ := NewClient(server.URL, time.Minute)
	got, err := c.Generate(context.Background(), "gemma3:4b", "p", client.DefaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != NoResponseText {
		t.Errorf("Expected %q, got %q", NoResponseText, got)
	}
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"server error with json", http.StatusInternalServerError, `{"error":"model runner crashed"}`},
		{"server error plain text", http.StatusInternalServerError, "Internal Server Error"},
		{"server error empty body", http.StatusInternalServerError, ""},
		{"not found", http.StatusNotFound, `{"error":"model 'gemma3:4b' not found"}`},
		{"malformed body", http.StatusOK, "this is not json"},
		{"empty success body", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			c, _ := NewClient(server.URL, time.Minute)
			if _, err := c.Generate(context.Background(), "gemma3:4b", "p", client.DefaultOptions()); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestGenerateConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c, _ := NewClient(url, time.Minute)
	if _, err := c.Generate(context.Background(), "gemma3:4b", "p", client.DefaultOptions()); err == nil {
		t.Error("Expected error for closed server")
	}
}

func TestGenerateTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	c, _ := NewClient(server.URL, 100*time.Millisecond)
	if _, err := c.Generate(context.Background(), "gemma3:4b", "p", client.DefaultOptions()); err == nil {
		t.Error("Expected timeout error")
	}
}
