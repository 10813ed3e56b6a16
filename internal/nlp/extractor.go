package nlp

import (
	"context"
	"log/slog"

	"github.com/filmrecipes/fujirecipes-mcp/internal/recommend"
)

// Extractor converts free text into structured input, preferring the
// external classifier when one is configured and silently degrading to
// the keyword cascade on any failure. Callers cannot tell which path
// produced the result.
type Extractor struct {
	client *Client
	logger *slog.Logger
}

// NewExtractor creates an extractor. client may be nil, in which case only
// the keyword fallback runs. logger may be nil for a default logger.
func NewExtractor(client *Client, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{client: client, logger: logger}
}

// Extract parses free text into structured input. Never returns an error;
// classifier failures are logged at warning level and recovered via the
// deterministic fallback.
func (e *Extractor) Extract(ctx context.Context, text string) recommend.Input {
	if e.client == nil || !e.client.Configured() {
		return FallbackParse(text)
	}

	input, err := e.client.Classify(ctx, text)
	if err != nil {
		e.logger.Warn("classifier unavailable, using keyword fallback", "error", err)
		return FallbackParse(text)
	}

	return input
}
