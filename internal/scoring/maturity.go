package scoring

import "safetyvitals/internal/model"

// Maturity thresholds, evaluated highest-first. Scores below the lowest
// threshold, including negative ones, fall to level 1.
var maturityThresholds = []struct {
	min   float64
	level model.MaturityLevel
}{
	{4.20, model.LevelExcellence},
	{3.40, model.LevelIntegrated},
	{2.60, model.LevelInterdependent},
	{1.80, model.LevelIndependent},
}

// Classify maps an overall score on the 5-point scale to a maturity
// level. Deterministic and total over the real line.
func Classify(score float64) model.MaturityLevel {
	for _, t := range maturityThresholds {
		if score >= t.min {
			return t.level
		}
	}
	return model.LevelDependent
}
