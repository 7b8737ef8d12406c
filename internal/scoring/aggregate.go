package scoring

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"safetyvitals/internal/model"
)

// scaleCeiling is the fixed 5-point ceiling applied to every dimension
// and overall average, regardless of a question's declared MaxScore.
// Surveys on a non-5-point scale get legitimate high scores truncated;
// kept as-is because the dashboard scale semantics assume it.
const scaleCeiling = 5.0

// Input is one immutable aggregation snapshot: a survey's questions,
// the option templates they reference, and the raw responses.
type Input struct {
	Questions []model.Question
	Templates []model.OptionTemplate
	Responses []model.Response
}

// Result is the computed dashboard payload, minus trend (which needs a
// prior survey and is filled in by the caller).
type Result struct {
	Dimensions []model.DimensionScore
	Overall    model.OverallResult
	Roles      []model.RoleBreakdown
}

// normalized is one scored answer after template lookup and
// normalization, held only for the duration of a single pass.
type normalized struct {
	dimension string
	role      string
	value     float64
	min, max  float64
}

// Aggregate runs the full scoring pass: resolve each answer against its
// question's template, normalize, group by dimension, and fold into the
// overall and reliability aggregates. Unresolvable answers are silently
// skipped; zero resolvable answers yields all-zero output, never NaN.
func Aggregate(in Input) Result {
	scores := collect(in)

	res := Result{
		Dimensions: aggregateDimensions(scores),
		Overall:    overall(scores),
	}

	// Role breakdown: same rules applied per role subgroup.
	byRole := make(map[string][]normalized)
	var roleOrder []string
	for _, s := range scores {
		if s.role == "" {
			continue
		}
		if _, seen := byRole[s.role]; !seen {
			roleOrder = append(roleOrder, s.role)
		}
		byRole[s.role] = append(byRole[s.role], s)
	}
	sort.Strings(roleOrder)
	for _, role := range roleOrder {
		res.Roles = append(res.Roles, model.RoleBreakdown{
			Role:       role,
			Dimensions: aggregateDimensions(byRole[role]),
		})
	}

	return res
}

// collect resolves and normalizes every response. Responses whose
// question is unknown, whose question has no template, or whose answer
// matches no template option contribute nothing.
func collect(in Input) []normalized {
	questions := make(map[string]*model.Question, len(in.Questions))
	for i := range in.Questions {
		questions[in.Questions[i].ID] = &in.Questions[i]
	}
	templates := make(map[string]*model.OptionTemplate, len(in.Templates))
	for i := range in.Templates {
		templates[in.Templates[i].ID] = &in.Templates[i]
	}

	var scores []normalized
	for _, r := range in.Responses {
		q, ok := questions[r.QuestionID]
		if !ok || q.TemplateID == "" {
			continue
		}
		raw, ok := ResolveOption(r.Answer, templates[q.TemplateID])
		if !ok {
			continue
		}
		scores = append(scores, normalized{
			dimension: q.Dimension,
			role:      r.Role,
			value:     Normalize(raw, q),
			min:       q.MinScore,
			max:       q.MaxScore,
		})
	}
	return scores
}

// aggregateDimensions groups scores by exact dimension string, averages
// each bucket, clamps to the 5-point ceiling, and converts to percent.
// Output is sorted by the dimension's leading numeric prefix.
func aggregateDimensions(scores []normalized) []model.DimensionScore {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string
	for _, s := range scores {
		if _, seen := counts[s.dimension]; !seen {
			order = append(order, s.dimension)
		}
		sums[s.dimension] += s.value
		counts[s.dimension]++
	}

	dims := make([]model.DimensionScore, 0, len(order))
	for _, name := range order {
		avg := sums[name] / float64(counts[name])
		clamped := math.Min(avg, scaleCeiling)
		dims = append(dims, model.DimensionScore{
			Name:         name,
			Score:        clamped,
			ScorePercent: clamped / scaleCeiling * 100,
			Count:        counts[name],
		})
	}
	SortDimensions(dims)
	return dims
}

// overall folds the flat score list into the survey-wide average and
// the reliability index. Reliability is the mean of per-question
// min-max normalized scores, so questions on different scales weigh in
// as comparable [0,1] values.
func overall(scores []normalized) model.OverallResult {
	if len(scores) == 0 {
		return model.OverallResult{
			Level:      model.LevelDependent,
			LevelLabel: model.LevelDependent.Label(),
		}
	}

	var sum, normSum float64
	for _, s := range scores {
		sum += s.value
		if span := s.max - s.min; span > 0 {
			normSum += (s.value - s.min) / span
		}
	}

	avg := math.Min(sum/float64(len(scores)), scaleCeiling)
	level := Classify(avg)
	return model.OverallResult{
		Average:            avg,
		Percent:            avg / scaleCeiling * 100,
		ReliabilityPercent: int(math.Round(normSum / float64(len(scores)) * 100)),
		Level:              level,
		LevelLabel:         level.Label(),
	}
}

// SortDimensions orders dimensions ascending by their leading integer
// prefix (e.g. "1. Leadership" before "2. Communication"). Dimensions
// without a prefix sort after the prefixed ones, original order kept.
func SortDimensions(dims []model.DimensionScore) {
	sort.SliceStable(dims, func(i, j int) bool {
		pi, iok := dimensionPrefix(dims[i].Name)
		pj, jok := dimensionPrefix(dims[j].Name)
		if iok && jok {
			return pi < pj
		}
		return iok && !jok
	})
}

func dimensionPrefix(name string) (int, bool) {
	name = strings.TrimSpace(name)
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(name[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
