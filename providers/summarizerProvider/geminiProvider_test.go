package summarizerProvider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiSummarizerWithoutKey(t *testing.T) {
	s, err := NewGeminiSummarizer(context.Background(), "", "gemini-1.5-flash", time.Second)
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), "summarize this")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
