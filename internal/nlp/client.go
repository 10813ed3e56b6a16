package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/filmrecipes/fujirecipes-mcp/internal/recommend"
)

// systemPrompt instructs the classifier to emit a single JSON object with
// the six category fields, null when not determinable.
const systemPrompt = `You are a photography assistant that helps parse natural language descriptions into structured photography parameters.

Given a user's description of their shooting scenario, extract the following parameters:

1. lighting: One of: bright_sunlight, golden_hour, blue_hour, overcast, indoor, night, mixed
2. subject: One of: portrait, street, landscape, architecture, nature, food, travel, event
3. mood: One of: cinematic, vintage, modern, dreamy, moody, natural, dramatic, minimal
4. colorPreference: One of: warm, cool, neutral, vibrant, muted, bw, teal_orange
5. location: One of: city, nature, beach, cafe, studio, home
6. season: One of: summer, autumn, winter, spring

Return ONLY a valid JSON object with these fields. Use null for any parameter that cannot be determined from the input.`

// Client calls an OpenAI-compatible chat-completions endpoint to classify
// free text into structured input. One request per call, bounded timeout,
// no retries.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a classifier client. The API key is read from the
// OPENAI_API_KEY environment variable.
func NewClient(baseURL, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether the client has credentials to make calls.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Classify sends the text for classification and returns the validated
// structured input. Any transport, decoding, or schema problem is an error;
// the caller decides whether to fall back.
func (c *Client) Classify(ctx context.Context, text string) (recommend.Input, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		Temperature: 0.3,
		MaxTokens:   200,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return recommend.Input{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return recommend.Input{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return recommend.Input{}, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return recommend.Input{}, fmt.Errorf("classifier returned %d: %s", resp.StatusCode, string(respBody))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return recommend.Input{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return recommend.Input{}, fmt.Errorf("classifier returned no choices")
	}

	content := strings.TrimSpace(chat.Choices[0].Message.Content)

	var parsed recommend.Input
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return recommend.Input{}, fmt.Errorf("classifier returned malformed JSON: %w", err)
	}

	// The model is not guaranteed to respect the enumerations; out-of-range
	// values become absent rather than trusted
	return parsed.Sanitize(), nil
}
