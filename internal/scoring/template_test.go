package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safetyvitals/internal/model"
)

func agreementTemplate() *model.OptionTemplate {
	return &model.OptionTemplate{
		ID:      "t1",
		Name:    "5-point agreement",
		Options: []string{"Strongly Disagree", "Disagree", "Undecided", "Agree", "Strongly Agree"},
		Scores:  []float64{1, 2, 3, 4, 5},
	}
}

func TestResolveOption(t *testing.T) {
	tpl := agreementTemplate()

	tests := []struct {
		name     string
		answer   string
		expected float64
		ok       bool
	}{
		{
			name:     "exact match",
			answer:   "Agree",
			expected: 4,
			ok:       true,
		},
		{
			name:     "case insensitive",
			answer:   "agree",
			expected: 4,
			ok:       true,
		},
		{
			name:     "surrounding whitespace trimmed",
			answer:   "  Agree ",
			expected: 4,
			ok:       true,
		},
		{
			name:     "mixed case and whitespace",
			answer:   " sTRONGLY dISAGREE  ",
			expected: 1,
			ok:       true,
		},
		{
			name:   "no match",
			answer: "Maybe",
			ok:     false,
		},
		{
			name:   "empty answer",
			answer: "",
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := ResolveOption(tt.answer, tpl)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, score)
			}
		})
	}
}

func TestResolveOptionMissingScoreEntry(t *testing.T) {
	tpl := &model.OptionTemplate{
		Options: []string{"Yes", "No"},
		Scores:  []float64{1}, // "No" has no score
	}

	score, ok := ResolveOption("Yes", tpl)
	assert.True(t, ok)
	assert.Equal(t, 1.0, score)

	_, ok = ResolveOption("No", tpl)
	assert.False(t, ok)
}

func TestResolveOptionNilTemplate(t *testing.T) {
	_, ok := ResolveOption("Agree", nil)
	assert.False(t, ok)
}

func TestResolveOptionFirstMatchWins(t *testing.T) {
	tpl := &model.OptionTemplate{
		Options: []string{"yes", "Yes"},
		Scores:  []float64{10, 20},
	}
	score, ok := ResolveOption("YES", tpl)
	assert.True(t, ok)
	assert.Equal(t, 10.0, score)
}
