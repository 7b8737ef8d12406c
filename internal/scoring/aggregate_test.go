package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safetyvitals/internal/model"
)

func likertQuestion(id, dimension string, reverse bool) model.Question {
	return model.Question{
		ID:           id,
		Dimension:    dimension,
		Type:         model.QuestionLikert,
		MinScore:     1,
		MaxScore:     5,
		ReverseScore: reverse,
		TemplateID:   "t1",
	}
}

func responses(questionID string, answers ...string) []model.Response {
	out := make([]model.Response, 0, len(answers))
	for i, a := range answers {
		out = append(out, model.Response{
			SurveyID:     "s1",
			QuestionID:   questionID,
			RespondentID: string(rune('a' + i)),
			Answer:       a,
		})
	}
	return out
}

func TestAggregateEndToEnd(t *testing.T) {
	in := Input{
		Questions: []model.Question{likertQuestion("q1", "1. Leadership", false)},
		Templates: []model.OptionTemplate{*agreementTemplate()},
		Responses: responses("q1", "Agree", "Strongly Agree", "Undecided"),
	}

	res := Aggregate(in)

	require.Len(t, res.Dimensions, 1)
	dim := res.Dimensions[0]
	assert.Equal(t, "1. Leadership", dim.Name)
	assert.InDelta(t, 4.0, dim.Score, 1e-9)
	assert.InDelta(t, 80.0, dim.ScorePercent, 1e-9)
	assert.Equal(t, 3, dim.Count)

	assert.InDelta(t, 4.0, res.Overall.Average, 1e-9)
	assert.Equal(t, model.LevelIntegrated, res.Overall.Level)
}

func TestAggregateReverseScored(t *testing.T) {
	// Same answers on a reverse-scored question: {4,5,3} become {2,1,3}.
	in := Input{
		Questions: []model.Question{likertQuestion("q1", "1. Leadership", true)},
		Templates: []model.OptionTemplate{*agreementTemplate()},
		Responses: responses("q1", "Agree", "Strongly Agree", "Undecided"),
	}

	res := Aggregate(in)

	require.Len(t, res.Dimensions, 1)
	assert.InDelta(t, 2.0, res.Dimensions[0].Score, 1e-9)
	assert.InDelta(t, 40.0, res.Dimensions[0].ScorePercent, 1e-9)
	assert.Equal(t, model.LevelIndependent, res.Overall.Level)
}

func TestAggregateEmptyInput(t *testing.T) {
	res := Aggregate(Input{})

	assert.Empty(t, res.Dimensions)
	assert.Zero(t, res.Overall.Average)
	assert.Zero(t, res.Overall.Percent)
	assert.Zero(t, res.Overall.ReliabilityPercent)
	assert.Equal(t, model.LevelDependent, res.Overall.Level)
}

func TestAggregateSkipsUnresolvable(t *testing.T) {
	textQ := model.Question{ID: "q2", Dimension: "1. Leadership", Type: model.QuestionText}
	in := Input{
		Questions: []model.Question{likertQuestion("q1", "1. Leadership", false), textQ},
		Templates: []model.OptionTemplate{*agreementTemplate()},
		Responses: append(
			responses("q1", "Agree", "not an option"),
			model.Response{QuestionID: "q2", RespondentID: "x", Answer: "free text"},
			model.Response{QuestionID: "missing", RespondentID: "y", Answer: "Agree"},
		),
	}

	res := Aggregate(in)

	// Only the single resolvable "Agree" counts.
	require.Len(t, res.Dimensions, 1)
	assert.Equal(t, 1, res.Dimensions[0].Count)
	assert.InDelta(t, 4.0, res.Dimensions[0].Score, 1e-9)
}

func TestAggregateMissingTemplate(t *testing.T) {
	q := likertQuestion("q1", "1. Leadership", false)
	q.TemplateID = "nowhere"
	in := Input{
		Questions: []model.Question{q},
		Responses: responses("q1", "Agree"),
	}

	res := Aggregate(in)
	assert.Empty(t, res.Dimensions)
	assert.Zero(t, res.Overall.Average)
}

func TestAggregateClampAtCeiling(t *testing.T) {
	// Misconfigured template scoring above 5 gets clamped, not reported.
	tpl := model.OptionTemplate{ID: "t1", Options: []string{"Yes"}, Scores: []float64{9}}
	q := model.Question{ID: "q1", Dimension: "1. Leadership", Type: model.QuestionText, MinScore: 1, MaxScore: 10, TemplateID: "t1"}
	in := Input{
		Questions: []model.Question{q},
		Templates: []model.OptionTemplate{tpl},
		Responses: responses("q1", "Yes"),
	}

	res := Aggregate(in)

	require.Len(t, res.Dimensions, 1)
	assert.Equal(t, 5.0, res.Dimensions[0].Score)
	assert.Equal(t, 100.0, res.Dimensions[0].ScorePercent)
	assert.Equal(t, 5.0, res.Overall.Average)
}

func TestAggregateReliability(t *testing.T) {
	// Scores 4 and 2 on a 1-5 scale min-max normalize to 0.75 and 0.25.
	in := Input{
		Questions: []model.Question{likertQuestion("q1", "1. Leadership", false)},
		Templates: []model.OptionTemplate{*agreementTemplate()},
		Responses: responses("q1", "Agree", "Disagree"),
	}

	res := Aggregate(in)
	assert.Equal(t, 50, res.Overall.ReliabilityPercent)
}

func TestAggregateReliabilityDegenerateRange(t *testing.T) {
	// min == max must not divide by zero; the answer contributes 0.
	tpl := model.OptionTemplate{ID: "t1", Options: []string{"Yes"}, Scores: []float64{3}}
	q := model.Question{ID: "q1", Dimension: "1. Leadership", Type: model.QuestionText, MinScore: 3, MaxScore: 3, TemplateID: "t1"}
	in := Input{
		Questions: []model.Question{q},
		Templates: []model.OptionTemplate{tpl},
		Responses: responses("q1", "Yes"),
	}

	res := Aggregate(in)
	assert.Equal(t, 0, res.Overall.ReliabilityPercent)
	assert.InDelta(t, 3.0, res.Overall.Average, 1e-9)
}

func TestAggregateDuplicateSubmissionsBothCount(t *testing.T) {
	// Duplicate (respondent, question) rows are not deduplicated; both
	// submissions weigh into the average.
	in := Input{
		Questions: []model.Question{likertQuestion("q1", "1. Leadership", false)},
		Templates: []model.OptionTemplate{*agreementTemplate()},
		Responses: []model.Response{
			{QuestionID: "q1", RespondentID: "a", Answer: "Strongly Agree"},
			{QuestionID: "q1", RespondentID: "a", Answer: "Strongly Disagree"},
		},
	}

	res := Aggregate(in)
	require.Len(t, res.Dimensions, 1)
	assert.Equal(t, 2, res.Dimensions[0].Count)
	assert.InDelta(t, 3.0, res.Dimensions[0].Score, 1e-9)
}

func TestAggregateDimensionsAreCaseSensitiveBuckets(t *testing.T) {
	in := Input{
		Questions: []model.Question{
			likertQuestion("q1", "Safety", false),
			likertQuestion("q2", "safety", false),
		},
		Templates: []model.OptionTemplate{*agreementTemplate()},
		Responses: []model.Response{
			{QuestionID: "q1", RespondentID: "a", Answer: "Agree"},
			{QuestionID: "q2", RespondentID: "a", Answer: "Disagree"},
		},
	}

	res := Aggregate(in)
	assert.Len(t, res.Dimensions, 2)
}

func TestAggregateRoleBreakdown(t *testing.T) {
	in := Input{
		Questions: []model.Question{likertQuestion("q1", "1. Leadership", false)},
		Templates: []model.OptionTemplate{*agreementTemplate()},
		Responses: []model.Response{
			{QuestionID: "q1", RespondentID: "a", Role: "manager", Answer: "Strongly Agree"},
			{QuestionID: "q1", RespondentID: "b", Role: "operator", Answer: "Disagree"},
			{QuestionID: "q1", RespondentID: "c", Role: "operator", Answer: "Agree"},
			{QuestionID: "q1", RespondentID: "d", Answer: "Undecided"}, // no role
		},
	}

	res := Aggregate(in)

	require.Len(t, res.Roles, 2)
	assert.Equal(t, "manager", res.Roles[0].Role)
	assert.InDelta(t, 5.0, res.Roles[0].Dimensions[0].Score, 1e-9)
	assert.Equal(t, "operator", res.Roles[1].Role)
	assert.InDelta(t, 3.0, res.Roles[1].Dimensions[0].Score, 1e-9)

	// The role-less response still counts toward the survey-wide numbers.
	assert.Equal(t, 4, res.Dimensions[0].Count)
}

func TestSortDimensions(t *testing.T) {
	dims := []model.DimensionScore{
		{Name: "Unnumbered"},
		{Name: "10. Reporting"},
		{Name: "2. Communication"},
		{Name: "Also unnumbered"},
		{Name: "1. Leadership"},
	}

	SortDimensions(dims)

	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.Name
	}
	assert.Equal(t, []string{
		"1. Leadership",
		"2. Communication",
		"10. Reporting",
		"Unnumbered",
		"Also unnumbered",
	}, names)
}
