package service

import (
	"context"
	"log"
	"time"

	"safetyvitals/internal/cache"
	"safetyvitals/internal/model"
	"safetyvitals/internal/repository"
	"safetyvitals/internal/scoring"
)

// DashboardService orchestrates the scoring engine: it fetches the
// survey's questions, templates, and responses, runs an aggregation
// pass, attaches the trend against the previous survey for the same
// target company, and caches the result.
type DashboardService struct {
	surveyRepo     repository.SurveyRepo
	templateRepo   repository.TemplateRepo
	responseRepo   repository.ResponseRepo
	snapshotRepo   repository.SnapshotRepo
	dashboardCache cache.DashboardCache
	benchmark      cache.BenchmarkCache
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	surveyRepo repository.SurveyRepo,
	templateRepo repository.TemplateRepo,
	responseRepo repository.ResponseRepo,
	snapshotRepo repository.SnapshotRepo,
	dashboardCache cache.DashboardCache,
	benchmark cache.BenchmarkCache,
) *DashboardService {
	return &DashboardService{
		surveyRepo:     surveyRepo,
		templateRepo:   templateRepo,
		responseRepo:   responseRepo,
		snapshotRepo:   snapshotRepo,
		dashboardCache: dashboardCache,
		benchmark:      benchmark,
	}
}

// Dashboard returns the computed dashboard for an org-owned survey.
// Closed surveys serve their persisted snapshot; open surveys are
// cache-first with recomputation on miss.
func (s *DashboardService) Dashboard(ctx context.Context, orgID, surveyID string) (*model.DashboardSnapshot, error) {
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

	if survey.Status == model.SurveyClosed {
		snapshot, err := s.snapshotRepo.GetBySurveyID(ctx, surveyID)
		if err == nil && snapshot != nil {
			return snapshot, nil
		}
		// Fall through and recompute when the survey closed before
		// snapshot persistence existed.
	}

	if cached, err := s.dashboardCache.Get(ctx, surveyID); err == nil && cached != nil {
		return cached, nil
	}

	snapshot, err := s.compute(ctx, survey)
	if err != nil {
		return nil, err
	}

	if err := s.dashboardCache.Set(ctx, snapshot); err != nil {
		log.Printf("Failed to cache dashboard for survey %s: %v", surveyID, err)
	}
	if err := s.benchmark.UpdateScore(ctx, survey.OrgID, survey.ID, snapshot.Overall.Average); err != nil {
		log.Printf("Failed to update benchmark for survey %s: %v", surveyID, err)
	}

	return snapshot, nil
}

// PersistSnapshot computes the dashboard fresh and stores it as the
// survey's permanent snapshot. Called when a survey closes.
func (s *DashboardService) PersistSnapshot(ctx context.Context, survey *model.Survey) error {
	snapshot, err := s.compute(ctx, survey)
	if err != nil {
		return err
	}
	if err := s.benchmark.UpdateScore(ctx, survey.OrgID, survey.ID, snapshot.Overall.Average); err != nil {
		log.Printf("Failed to update benchmark for survey %s: %v", survey.ID, err)
	}
	return s.snapshotRepo.Save(ctx, snapshot)
}

// Benchmark returns the organization's surveys ranked by overall score
func (s *DashboardService) Benchmark(ctx context.Context, orgID string, limit int) ([]model.BenchmarkEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.benchmark.GetTop(ctx, orgID, limit)
}

func (s *DashboardService) compute(ctx context.Context, survey *model.Survey) (*model.DashboardSnapshot, error) {
	in, err := s.loadInput(ctx, survey)
	if err != nil {
		return nil, err
	}

	result := scoring.Aggregate(in)

	count, err := s.responseRepo.CountRespondents(ctx, survey.ID)
	if err != nil {
		return nil, err
	}

	if trend, ok := s.trend(ctx, survey, result.Overall.Average); ok {
		result.Overall.Trend = &trend
	}

	return &model.DashboardSnapshot{
		SurveyID:        survey.ID,
		OrgID:           survey.OrgID,
		Dimensions:      result.Dimensions,
		Overall:         result.Overall,
		Roles:           result.Roles,
		RespondentCount: count,
		GeneratedAt:     time.Now(),
	}, nil
}

// trend is current overall minus the previous survey's overall for the
// same target company. Absent when there is no prior survey or the
// survey has no target company.
func (s *DashboardService) trend(ctx context.Context, survey *model.Survey, current float64) (float64, bool) {
	if survey.TargetCompany == "" {
		return 0, false
	}
	prior, err := s.surveyRepo.GetPriorByTargetCompany(ctx, survey.OrgID, survey.TargetCompany, survey.CreatedAt)
	if err != nil || prior == nil {
		return 0, false
	}

	in, err := s.loadInput(ctx, prior)
	if err != nil {
		return 0, false
	}
	priorResult := scoring.Aggregate(in)
	return current - priorResult.Overall.Average, true
}

// loadInput assembles one immutable scoring snapshot for a survey
func (s *DashboardService) loadInput(ctx context.Context, survey *model.Survey) (scoring.Input, error) {
	in := scoring.Input{Questions: survey.Questions}

	seen := make(map[string]bool)
	var templateIDs []string
	for _, q := range survey.Questions {
		if q.TemplateID != "" && !seen[q.TemplateID] {
			seen[q.TemplateID] = true
			templateIDs = append(templateIDs, q.TemplateID)
		}
	}
	templates, err := s.templateRepo.GetByIDs(ctx, templateIDs)
	if err != nil {
		return scoring.Input{}, err
	}
	for _, t := range templates {
		in.Templates = append(in.Templates, *t)
	}

	responses, err := s.responseRepo.GetBySurveyID(ctx, survey.ID)
	if err != nil {
		return scoring.Input{}, err
	}
	for _, r := range responses {
		in.Responses = append(in.Responses, *r)
	}

	return in, nil
}
