package models

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableUnmarshal(t *testing.T) {
	type req struct {
		ImageURL Nullable[string] `json:"imageUrl"`
	}

	tests := []struct {
		name     string
		body     string
		expected Nullable[string]
	}{
		{"omitted", `{}`, Nullable[string]{}},
		{"explicit null", `{"imageUrl":null}`, Null[string]()},
		{"value", `{"imageUrl":"https://img"}`, NullableOf("https://img")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var r req
			require.NoError(t, jsoniter.Unmarshal([]byte(tc.body), &r))
			assert.Equal(t, tc.expected, r.ImageURL)
		})
	}
}

func TestSessionRequireOrganization(t *testing.T) {
	assert.ErrorIs(t, Session{}.RequireOrganization(), ErrUnauthenticated)
	assert.ErrorIs(t, Session{UserID: "user_1"}.RequireOrganization(), ErrNoActiveOrganization)
	assert.NoError(t, Session{UserID: "user_1", OrgID: "org_1"}.RequireOrganization())
	assert.True(t, Session{OrgRole: "admin"}.IsAdmin())
	assert.True(t, Session{OrgRole: "org:admin"}.IsAdmin())
	assert.False(t, Session{OrgRole: "org:member"}.IsAdmin())
}
