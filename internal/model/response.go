package model

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Response is one respondent answer to one question. Answer is always
// the canonical string form; raw submissions are normalized through
// RawAnswer before a Response is built.
type Response struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	SurveyID     string    `json:"surveyId" bson:"surveyId"`
	QuestionID   string    `json:"questionId" bson:"questionId"`
	RespondentID string    `json:"respondentId" bson:"respondentId"`
	Role         string    `json:"role,omitempty" bson:"role,omitempty"`
	Answer       string    `json:"answer" bson:"answer"`
	SubmittedAt  time.Time `json:"submittedAt" bson:"submittedAt"`
}

// RawAnswer accepts the answer shapes seen in the wild: a JSON string,
// a JSON number, or a string carrying a trailing "(n)" score annotation
// (e.g. "Agree (4)"). Canonical() collapses all of them to the plain
// option text used for template matching.
type RawAnswer struct {
	value string
}

var trailingScore = regexp.MustCompile(`\s*\(\d+(\.\d+)?\)\s*$`)

func (a *RawAnswer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.value = s
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		a.value = strconv.FormatFloat(n, 'f', -1, 64)
		return nil
	}
	// Anything else (null, object, array) canonicalizes to empty.
	a.value = ""
	return nil
}

func (a RawAnswer) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value)
}

// Canonical returns the answer text with any trailing "(n)" score
// annotation stripped and surrounding whitespace trimmed.
func (a RawAnswer) Canonical() string {
	return strings.TrimSpace(trailingScore.ReplaceAllString(a.value, ""))
}

// IsEmpty reports whether the raw answer carries no usable text
func (a RawAnswer) IsEmpty() bool {
	return a.Canonical() == ""
}
