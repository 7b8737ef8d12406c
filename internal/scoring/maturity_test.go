package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safetyvitals/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected model.MaturityLevel
	}{
		{"top of scale", 5.0, model.LevelExcellence},
		{"excellence boundary", 4.20, model.LevelExcellence},
		{"just below excellence", 4.1999, model.LevelIntegrated},
		{"integrated boundary", 3.40, model.LevelIntegrated},
		{"interdependent boundary", 2.60, model.LevelInterdependent},
		{"just below interdependent", 2.5999, model.LevelIndependent},
		{"independent boundary", 1.80, model.LevelIndependent},
		{"just below independent", 1.7999, model.LevelDependent},
		{"zero", 0, model.LevelDependent},
		{"negative", -1, model.LevelDependent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.score))
		})
	}
}

func TestMaturityLabels(t *testing.T) {
	assert.Equal(t, "Excellence (Resilient & Learning Culture)", model.LevelExcellence.Label())
	assert.Equal(t, "Integrated (Cooperative Culture)", model.LevelIntegrated.Label())
	assert.Equal(t, "Interdependent", model.LevelInterdependent.Label())
	assert.Equal(t, "Independent (Needs Intervention)", model.LevelIndependent.Label())
	assert.Equal(t, "Dependent (Rules-driven)", model.LevelDependent.Label())

	// Out-of-range levels fall back to the base label.
	assert.Equal(t, "Dependent (Rules-driven)", model.MaturityLevel(0).Label())
}
