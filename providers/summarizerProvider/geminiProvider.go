package summarizerProvider

import (
	"assettracker/providers"
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

var ErrNotConfigured = errors.New("summarizer is not configured")

type GeminiSummarizer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiSummarizer returns a disabled summarizer when apiKey is empty.
func NewGeminiSummarizer(ctx context.Context, apiKey, model string, timeout time.Duration) (providers.Summarizer, error) {
	if apiKey == "" {
		return disabledSummarizer{}, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to init gemini client")
	}
	return &GeminiSummarizer{client: client, model: model, timeout: timeout}, nil
}

func (g *GeminiSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Wrap(err, "summarizer request failed")
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		if sb.Len() > 0 {
			break
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", errors.New("summarizer returned no text")
	}
	return out, nil
}

func (g *GeminiSummarizer) Close() error {
	return g.client.Close()
}

type disabledSummarizer struct{}

func (disabledSummarizer) Summarize(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
