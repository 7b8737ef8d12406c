package model

// QuestionType defines how a question is presented and scored
type QuestionType string

const (
	QuestionLikert         QuestionType = "likert"          // 1..N agreement scale, scored via template
	QuestionBinary         QuestionType = "binary"          // yes/no, collapses to min/max
	QuestionText           QuestionType = "text"            // free text, scored only when a template matches
	QuestionMultipleChoice QuestionType = "multiple_choice" // pick one from inline options
	QuestionRadio          QuestionType = "radio"           // same as multiple_choice, legacy form widget
)

// Question is a survey question with its scoring metadata.
// MinScore/MaxScore declare the theoretical score range; ReverseScore
// flips likert scores for negatively phrased prompts.
type Question struct {
	ID           string       `json:"id" bson:"id"`
	Prompt       string       `json:"prompt" bson:"prompt"`
	Dimension    string       `json:"dimension" bson:"dimension"`
	Type         QuestionType `json:"type" bson:"type"`
	MinScore     float64      `json:"minScore" bson:"minScore"`
	MaxScore     float64      `json:"maxScore" bson:"maxScore"`
	ReverseScore bool         `json:"reverseScore" bson:"reverseScore"`
	TemplateID   string       `json:"templateId,omitempty" bson:"templateId,omitempty"`
	Options      []string     `json:"options,omitempty" bson:"options,omitempty"`
	Required     bool         `json:"required" bson:"required"`
}

// OptionTemplate maps answer texts to numeric scores. Options[i]
// corresponds to Scores[i]; matching is trimmed and case-insensitive.
type OptionTemplate struct {
	ID      string    `json:"id" bson:"_id,omitempty"`
	OrgID   string    `json:"orgId" bson:"orgId"`
	Name    string    `json:"name" bson:"name"`
	Options []string  `json:"options" bson:"options"`
	Scores  []float64 `json:"scores" bson:"scores"`
}
