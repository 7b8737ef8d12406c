package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"safetyvitals/internal/model"
	"safetyvitals/internal/repository"
)

var (
	ErrSurveyNotFound = errors.New("survey not found")
	ErrNotOwner       = errors.New("survey belongs to another organization")
	ErrSurveyNotOpen  = errors.New("survey is not accepting responses")
	ErrBadTransition  = errors.New("invalid survey status transition")
)

// SurveyService handles survey CRUD and lifecycle transitions
type SurveyService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
	dashboardSvc *DashboardService
	broadcaster  Broadcaster
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveyRepo repository.SurveyRepo, responseRepo repository.ResponseRepo) *SurveyService {
	return &SurveyService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
	}
}

// SetDashboardService wires the dashboard service used to persist a
// final snapshot when a survey closes (set after construction to avoid
// a constructor cycle).
func (s *SurveyService) SetDashboardService(svc *DashboardService) {
	s.dashboardSvc = svc
}

// SetBroadcaster sets the broadcaster used to notify connected
// dashboards of lifecycle changes
func (s *SurveyService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create creates a new draft survey for the organization
func (s *SurveyService) Create(ctx context.Context, survey *model.Survey) (string, error) {
	survey.ID = uuid.NewString()
	survey.Status = model.SurveyDraft
	for i := range survey.Questions {
		if survey.Questions[i].ID == "" {
			survey.Questions[i].ID = uuid.NewString()
		}
	}
	if err := s.surveyRepo.Create(ctx, survey); err != nil {
		return "", err
	}
	return survey.ID, nil
}

// Get retrieves a survey owned by the organization
func (s *SurveyService) Get(ctx context.Context, orgID, surveyID string) (*model.Survey, error) {
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
	return survey, nil
}

// List retrieves all surveys for the organization, newest first
func (s *SurveyService) List(ctx context.Context, orgID string) ([]*model.Survey, error) {
	return s.surveyRepo.GetByOrgID(ctx, orgID)
}

// Update replaces an existing survey's content. Closed surveys are frozen.
func (s *SurveyService) Update(ctx context.Context, orgID string, survey *model.Survey) error {
	existing, err := s.Get(ctx, orgID, survey.ID)
	if err != nil {
		return err
	}
	if existing.Status == model.SurveyClosed {
		return ErrBadTransition
	}
	survey.OrgID = existing.OrgID
	survey.Status = existing.Status
	survey.CreatedAt = existing.CreatedAt
	for i := range survey.Questions {
		if survey.Questions[i].ID == "" {
			survey.Questions[i].ID = uuid.NewString()
		}
	}
	return s.surveyRepo.Update(ctx, survey)
}

// Open moves a draft survey to open, making the public form available
func (s *SurveyService) Open(ctx context.Context, orgID, surveyID string) error {
	survey, err := s.Get(ctx, orgID, surveyID)
	if err != nil {
		return err
	}
	if survey.Status != model.SurveyDraft {
		return ErrBadTransition
	}
	survey.Status = model.SurveyOpen
	return s.surveyRepo.Update(ctx, survey)
}

// Close ends response collection and persists a final dashboard snapshot
func (s *SurveyService) Close(ctx context.Context, orgID, surveyID string) error {
	survey, err := s.Get(ctx, orgID, surveyID)
	if err != nil {
		return err
	}
	if survey.Status != model.SurveyOpen {
		return ErrBadTransition
	}
	survey.Status = model.SurveyClosed
	if err := s.surveyRepo.Update(ctx, survey); err != nil {
		return err
	}
	if s.dashboardSvc != nil {
		if err := s.dashboardSvc.PersistSnapshot(ctx, survey); err != nil {
			return err
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSurvey(surveyID, "survey_closed", map[string]string{
			"surveyId": surveyID,
		})
	}
	return nil
}

// Delete removes a survey and its responses
func (s *SurveyService) Delete(ctx context.Context, orgID, surveyID string) error {
	if _, err := s.Get(ctx, orgID, surveyID); err != nil {
		return err
	}
	if err := s.responseRepo.DeleteBySurveyID(ctx, surveyID); err != nil {
		return err
	}
	if err := s.surveyRepo.Delete(ctx, surveyID); err != nil {
		return err
	}
	if s.broadcaster != nil {
		s.broadcaster.DisconnectSurvey(surveyID)
	}
	return nil
}

// PublicForm returns the respondent-facing view of an open survey:
// prompts and options only, no scoring metadata.
func (s *SurveyService) PublicForm(ctx context.Context, surveyID string) (*model.PublicForm, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	if survey.Status != model.SurveyOpen {
		return nil, ErrSurveyNotOpen
	}

	form := &model.PublicForm{
		SurveyID:    survey.ID,
		Title:       survey.Title,
		Description: survey.Description,
	}
	for _, q := range survey.Questions {
		form.Questions = append(form.Questions, model.FormQuestion{
			ID:        q.ID,
			Prompt:    q.Prompt,
			Type:      q.Type,
			Dimension: q.Dimension,
			Options:   q.Options,
			Required:  q.Required,
		})
	}
	return form, nil
}
