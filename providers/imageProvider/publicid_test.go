package imageProvider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		expectedID string
		expectedOK bool
	}{
		{
			name:       "versioned upload url",
			url:        "https://res.cloudinary.com/demo/image/upload/v1712345678/asset_tracker/org_1/abc123.jpg",
			expectedID: "asset_tracker/org_1/abc123",
			expectedOK: true,
		},
		{
			name:       "upload url without version",
			url:        "https://res.cloudinary.com/demo/image/upload/asset_tracker/abc123.png",
			expectedID: "asset_tracker/abc123",
			expectedOK: true,
		},
		{
			name:       "other delivery type",
			url:        "https://res.cloudinary.com/demo/image/private/folder/abc123.webp",
			expectedID: "folder/abc123",
			expectedOK: true,
		},
		{
			name:       "last segment fallback",
			url:        "https://res.cloudinary.com/demo/abc123.gif",
			expectedID: "abc123",
			expectedOK: true,
		},
		{
			name:       "foreign host",
			url:        "https://images.example.com/image/upload/v1/abc.jpg",
			expectedOK: false,
		},
		{
			name:       "empty",
			url:        "",
			expectedOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := PublicIDFromURL(tc.url)
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}
