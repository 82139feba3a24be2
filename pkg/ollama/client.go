package ollama

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/menta2k/activity-analyzer/pkg/types"
)

// Client wraps the Ollama API client
type Client struct {
	client *api.Client
}

// NewClient creates a new Ollama client
func NewClient(ollamaURL string) (*Client, error) {
	// Parse the provided URL
	parsedURL, err := url.Parse(ollamaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %v", err)
	}

	// Create base URL from the provided URL (removing path like /api/chat)
	baseURL := &url.URL{
		Scheme: parsedURL.Scheme,
		Host:   parsedURL.Host,
	}

	// Create client with the specified URL, ignoring environment
	client := api.NewClient(baseURL, http.DefaultClient)

	return &Client{client: client}, nil
}

// SimpleQuery performs a simple query with an image without expecting JSON
func (c *Client) SimpleQuery(ctx context.Context, model, prompt, imgB64 string) (string, error) {
	// Add timeout if context doesn't have one (vision models on CPU are slow)
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 300*time.Second)
		defer cancel()
	}

	// Decode base64 image to raw bytes
	imgBytes, err := base64.StdEncoding.DecodeString(imgB64)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 image: %v", err)
	}

	// Create chat request without JSON format requirement
	streamFalse := false
	req := &api.ChatRequest{
		Model: model,
		Messages: []api.Message{
			{
				Role:    "user",
				Content: prompt,
				Images:  []api.ImageData{api.ImageData(imgBytes)},
			},
		},
		Stream: &streamFalse,
		// No Format field - let it return natural language
	}

	var responseContent string
	err = c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		responseContent = resp.Message.Content
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat error: %v", err)
	}

	return responseContent, nil
}

// DetectObjects sends an image to the vision model and returns the raw
// object detections it reports
func (c *Client) DetectObjects(ctx context.Context, model, prompt, imgB64 string) ([]types.RawDetection, error) {
	// Add timeout if context doesn't have one (vision models on CPU are slow)
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 300*time.Second)
		defer cancel()
	}

	// Decode base64 image to raw bytes
	imgBytes, err := base64.StdEncoding.DecodeString(imgB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image: %v", err)
	}

	streamFalse := false

	// Low temperature keeps the detection list stable between runs
	options := map[string]any{
		"temperature": 0.2,
	}

	req := &api.ChatRequest{
		Model: model,
		Messages: []api.Message{
			{
				Role:    "user",
				Content: prompt,
				Images:  []api.ImageData{api.ImageData(imgBytes)},
			},
		},
		Stream:  &streamFalse,
		Options: options,
		// No Format field - let the prompt guide the format
	}

	var responseContent string
	err = c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		responseContent = resp.Message.Content
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ollama chat error: %v", err)
	}

	if responseContent == "" {
		return nil, fmt.Errorf("empty response from ollama")
	}

	// Parse the response
	return ParseDetections(responseContent), nil
}

// ParseDetections parses the JSON detection list from the vision model.
// Malformed responses degrade to an empty list rather than an error; the
// downstream pipeline treats zero detections as a valid outcome.
func ParseDetections(raw string) []types.RawDetection {
	raw = sanitizeModelJSON(raw)

	var dets []types.RawDetection
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &dets); err == nil {
			return clampDetections(dets)
		}
	}

	// Some models wrap the list in an object
	if strings.HasPrefix(raw, "{") {
		var wrapped struct {
			Objects    []types.RawDetection `json:"objects"`
			Detections []types.RawDetection `json:"detections"`
		}
		if err := json.Unmarshal([]byte(raw), &wrapped); err == nil {
			if len(wrapped.Objects) > 0 {
				return clampDetections(wrapped.Objects)
			}
			return clampDetections(wrapped.Detections)
		}
	}

	// Conservative bracket-slice approach
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), &dets); err == nil {
			return clampDetections(dets)
		}
	}

	return nil
}

// clampDetections drops nameless entries and clamps probabilities to [0,1]
func clampDetections(dets []types.RawDetection) []types.RawDetection {
	out := make([]types.RawDetection, 0, len(dets))
	for _, d := range dets {
		d.ClassName = strings.TrimSpace(d.ClassName)
		if d.ClassName == "" {
			continue
		}
		if d.Probability < 0 {
			d.Probability = 0
		}
		if d.Probability > 1 {
			d.Probability = 1
		}
		out = append(out, d)
	}
	return out
}

// sanitizeModelJSON removes code fences, comments, and trailing commas from JSON response
func sanitizeModelJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	// Strip triple-backtick fences if present
	if strings.HasPrefix(raw, "```") {
		if i := strings.Index(raw, "\n"); i >= 0 {
			raw = raw[i+1:]
		}
		if j := strings.LastIndex(raw, "```"); j >= 0 {
			raw = raw[:j]
		}
	}
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, "`")

	// Remove /* ... */ block comments
	reBlock := regexp.MustCompile(`(?s)/\*.*?\*/`)
	raw = reBlock.ReplaceAllString(raw, "")

	// Remove // line/inline comments
	reLine := regexp.MustCompile(`(?m)^\s*//.*$`)
	raw = reLine.ReplaceAllString(raw, "")
	reInline := regexp.MustCompile(`(?m)//.*$`)
	raw = reInline.ReplaceAllString(raw, "")

	// Remove trailing commas before } or ]
	reTrailing := regexp.MustCompile(`,(\s*[}\]])`)
	raw = reTrailing.ReplaceAllString(raw, "$1")

	// Keep only the outermost [...] or {...}, whichever starts first
	bracket := strings.Index(raw, "[")
	brace := strings.Index(raw, "{")
	if bracket >= 0 && (brace < 0 || bracket < brace) {
		if end := strings.LastIndex(raw, "]"); end > bracket {
			raw = raw[bracket : end+1]
		}
	} else if brace >= 0 {
		if end := strings.LastIndex(raw, "}"); end > brace {
			raw = raw[brace : end+1]
		}
	}
	return strings.TrimSpace(raw)
}
