package scoring

import "safetyvitals/internal/model"

// defaultMaxScore backs the reverse-likert formula when a question
// carries no declared maximum (a data-quality defect upstream).
const defaultMaxScore = 5

// Normalize applies the question's scoring rules to a template-resolved
// raw score:
//
//   - reverse-scored likert: (max+1) - raw, assuming a 1-based scale
//   - binary: any nonzero raw collapses to MaxScore, zero to MinScore;
//     the resolved value itself is deliberately discarded beyond its
//     truthiness (binary means yes/no, not a graded scale)
//   - everything else passes through unchanged
//
// Total over numeric inputs; never panics. Questions missing min/max
// outside the reverse-likert branch produce garbage-in/garbage-out
// numbers rather than errors.
func Normalize(raw float64, q *model.Question) float64 {
	switch {
	case q.Type == model.QuestionLikert && q.ReverseScore:
		max := q.MaxScore
		if max == 0 {
			max = defaultMaxScore
		}
		return max + 1 - raw
	case q.Type == model.QuestionBinary:
		if raw != 0 {
			return q.MaxScore
		}
		return q.MinScore
	default:
		return raw
	}
}
