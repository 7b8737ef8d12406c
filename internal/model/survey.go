package model

import "time"

// SurveyStatus is the lifecycle state of a survey
type SurveyStatus string

const (
	SurveyDraft  SurveyStatus = "draft"
	SurveyOpen   SurveyStatus = "open"
	SurveyClosed SurveyStatus = "closed"
)

// Survey is a questionnaire owned by an organization. Questions are
// embedded; responses and option templates live in their own collections.
type Survey struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	OrgID         string       `json:"orgId" bson:"orgId"`
	Title         string       `json:"title" bson:"title"`
	Description   string       `json:"description,omitempty" bson:"description,omitempty"`
	TargetCompany string       `json:"targetCompany,omitempty" bson:"targetCompany,omitempty"`
	Status        SurveyStatus `json:"status" bson:"status"`
	Questions     []Question   `json:"questions" bson:"questions"`
	CreatedAt     time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// QuestionByID returns the embedded question with the given id
func (s *Survey) QuestionByID(id string) (*Question, bool) {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i], true
		}
	}
	return nil, false
}

// PublicForm is the respondent-facing view of an open survey:
// question prompts and options without any scoring metadata.
type PublicForm struct {
	SurveyID    string         `json:"surveyId"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Questions   []FormQuestion `json:"questions"`
}

// FormQuestion is a question as shown on the public form
type FormQuestion struct {
	ID        string       `json:"id"`
	Prompt    string       `json:"prompt"`
	Type      QuestionType `json:"type"`
	Dimension string       `json:"dimension"`
	Options   []string     `json:"options,omitempty"`
	Required  bool         `json:"required"`
}
