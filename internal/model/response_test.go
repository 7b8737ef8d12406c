package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawAnswerCanonical(t *testing.T) {
	tests := []struct {
		name     string
		raw      string // JSON fragment
		expected string
	}{
		{"plain string", `"Agree"`, "Agree"},
		{"whitespace trimmed", `"  Agree  "`, "Agree"},
		{"number becomes string", `4`, "4"},
		{"float number", `3.5`, "3.5"},
		{"trailing score annotation stripped", `"Agree (4)"`, "Agree"},
		{"decimal annotation stripped", `"Agree (4.5)"`, "Agree"},
		{"annotation with spaces", `"Strongly Agree  (5) "`, "Strongly Agree"},
		{"parenthetical mid-text kept", `"Agree (mostly) with this"`, "Agree (mostly) with this"},
		{"null becomes empty", `null`, ""},
		{"object becomes empty", `{"a":1}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a RawAnswer
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &a))
			assert.Equal(t, tt.expected, a.Canonical())
		})
	}
}

func TestRawAnswerIsEmpty(t *testing.T) {
	var a RawAnswer
	require.NoError(t, json.Unmarshal([]byte(`"   "`), &a))
	assert.True(t, a.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte(`"Agree"`), &a))
	assert.False(t, a.IsEmpty())
}
