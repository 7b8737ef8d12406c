package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"safetyvitals/internal/cache"
	"safetyvitals/internal/model"
	"safetyvitals/internal/repository"
)

var (
	ErrNoAnswers       = errors.New("submission contains no answers")
	ErrUnknownQuestion = errors.New("answer references a question not in this survey")
	ErrMissingRequired = errors.New("a required question was left unanswered")
)

// Submission is one respondent's batch of answers to a survey. Answers
// arrive as RawAnswer so string, numeric, and annotated shapes all
// canonicalize at this boundary before anything reaches scoring.
type Submission struct {
	RespondentID string            `json:"respondentId,omitempty"`
	Role         string            `json:"role,omitempty"`
	Answers      []SubmittedAnswer `json:"answers"`
}

// SubmittedAnswer is one raw answer within a submission
type SubmittedAnswer struct {
	QuestionID string          `json:"questionId"`
	Answer     model.RawAnswer `json:"answer"`
}

// ResponseService handles public response submission
type ResponseService struct {
	surveyRepo     repository.SurveyRepo
	responseRepo   repository.ResponseRepo
	dashboardCache cache.DashboardCache
	broadcaster    Broadcaster
}

// NewResponseService creates a new response service
func NewResponseService(
	surveyRepo repository.SurveyRepo,
	responseRepo repository.ResponseRepo,
	dashboardCache cache.DashboardCache,
) *ResponseService {
	return &ResponseService{
		surveyRepo:     surveyRepo,
		responseRepo:   responseRepo,
		dashboardCache: dashboardCache,
	}
}

// SetBroadcaster sets the broadcaster for live dashboard updates
func (s *ResponseService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit validates and stores one respondent's answers to an open
// survey, then invalidates the cached dashboard and notifies connected
// admin dashboards. Returns the respondent id (generated when absent).
func (s *ResponseService) Submit(ctx context.Context, surveyID string, sub *Submission) (string, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return "", err
	}
	if survey == nil {
		return "", ErrSurveyNotFound
	}
	if survey.Status != model.SurveyOpen {
		return "", ErrSurveyNotOpen
	}
	if len(sub.Answers) == 0 {
		return "", ErrNoAnswers
	}

	respondentID := sub.RespondentID
	if respondentID == "" {
		respondentID = uuid.NewString()
	}

	answered := make(map[string]bool, len(sub.Answers))
	responses := make([]*model.Response, 0, len(sub.Answers))
	for _, a := range sub.Answers {
		q, ok := survey.QuestionByID(a.QuestionID)
		if !ok {
			return "", ErrUnknownQuestion
		}
		if a.Answer.IsEmpty() {
			continue // blank answers are simply not recorded
		}
		answered[q.ID] = true
		responses = append(responses, &model.Response{
			ID:           uuid.NewString(),
			SurveyID:     surveyID,
			QuestionID:   a.QuestionID,
			RespondentID: respondentID,
			Role:         sub.Role,
			Answer:       a.Answer.Canonical(),
		})
	}

	for _, q := range survey.Questions {
		if q.Required && !answered[q.ID] {
			return "", ErrMissingRequired
		}
	}

	if err := s.responseRepo.InsertBatch(ctx, responses); err != nil {
		return "", err
	}

	if err := s.dashboardCache.Invalidate(ctx, surveyID); err != nil {
		log.Printf("Failed to invalidate dashboard cache for survey %s: %v", surveyID, err)
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSurvey(surveyID, "dashboard_updated", map[string]interface{}{
			"surveyId":     surveyID,
			"respondentId": respondentID,
			"answerCount":  len(responses),
		})
	}

	return respondentID, nil
}

// Responses returns all raw responses for an org-owned survey
func (s *ResponseService) Responses(ctx context.Context, orgID, surveyID string) ([]*model.Response, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	if survey.OrgID != orgID {
		return nil, ErrNotOwner
	}
	return s.responseRepo.GetBySurveyID(ctx, surveyID)
}
