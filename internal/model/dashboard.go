package model

import "time"

// MaturityLevel is one of the five safety-culture maturity levels
type MaturityLevel int

const (
	LevelDependent      MaturityLevel = 1 // rules-driven
	LevelIndependent    MaturityLevel = 2 // needs intervention
	LevelInterdependent MaturityLevel = 3
	LevelIntegrated     MaturityLevel = 4 // cooperative culture
	LevelExcellence     MaturityLevel = 5 // resilient & learning culture
)

var maturityLabels = map[MaturityLevel]string{
	LevelDependent:      "Dependent (Rules-driven)",
	LevelIndependent:    "Independent (Needs Intervention)",
	LevelInterdependent: "Interdependent",
	LevelIntegrated:     "Integrated (Cooperative Culture)",
	LevelExcellence:     "Excellence (Resilient & Learning Culture)",
}

// Label returns the display label for the level
func (l MaturityLevel) Label() string {
	if label, ok := maturityLabels[l]; ok {
		return label
	}
	return maturityLabels[LevelDependent]
}

// DimensionScore is the aggregated score for one survey dimension
type DimensionScore struct {
	Name         string  `json:"name" bson:"name"`
	Score        float64 `json:"score" bson:"score"`               // mean on the 5-point scale
	ScorePercent float64 `json:"scorePercent" bson:"scorePercent"` // 0-100
	Count        int     `json:"count" bson:"count"`               // contributing answers
}

// OverallResult is the survey-wide aggregate
type OverallResult struct {
	Average            float64       `json:"average" bson:"average"`
	Percent            float64       `json:"percent" bson:"percent"`
	ReliabilityPercent int           `json:"reliabilityPercent" bson:"reliabilityPercent"`
	Level              MaturityLevel `json:"level" bson:"level"`
	LevelLabel         string        `json:"levelLabel" bson:"levelLabel"`
	Trend              *float64      `json:"trend,omitempty" bson:"trend,omitempty"`
}

// RoleBreakdown is the per-role dimension grouping
type RoleBreakdown struct {
	Role       string           `json:"role" bson:"role"`
	Dimensions []DimensionScore `json:"dimensions" bson:"dimensions"`
}

// DashboardSnapshot is the full computed dashboard for one survey
type DashboardSnapshot struct {
	SurveyID        string           `json:"surveyId" bson:"surveyId"`
	OrgID           string           `json:"orgId" bson:"orgId"`
	Dimensions      []DimensionScore `json:"dimensions" bson:"dimensions"`
	Overall         OverallResult    `json:"overall" bson:"overall"`
	Roles           []RoleBreakdown  `json:"roles,omitempty" bson:"roles,omitempty"`
	RespondentCount int              `json:"respondentCount" bson:"respondentCount"`
	GeneratedAt     time.Time        `json:"generatedAt" bson:"generatedAt"`
}

// BenchmarkEntry ranks one survey inside an organization by overall score
type BenchmarkEntry struct {
	SurveyID string  `json:"surveyId"`
	Average  float64 `json:"average"`
	Rank     int     `json:"rank"`
}
