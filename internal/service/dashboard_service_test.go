package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safetyvitals/internal/model"
)

// In-memory fakes for the repository and cache interfaces.

type fakeSurveyRepo struct {
	surveys map[string]*model.Survey
}

func newFakeSurveyRepo(surveys ...*model.Survey) *fakeSurveyRepo {
	r := &fakeSurveyRepo{surveys: make(map[string]*model.Survey)}
	for _, s := range surveys {
		r.surveys[s.ID] = s
	}
	return r
}

func (r *fakeSurveyRepo) Create(ctx context.Context, s *model.Survey) error {
	r.surveys[s.ID] = s
	return nil
}

func (r *fakeSurveyRepo) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	return r.surveys[id], nil
}

func (r *fakeSurveyRepo) GetByOrgID(ctx context.Context, orgID string) ([]*model.Survey, error) {
	var out []*model.Survey
	for _, s := range r.surveys {
		if s.OrgID == orgID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSurveyRepo) GetPriorByTargetCompany(ctx context.Context, orgID, target string, before time.Time) (*model.Survey, error) {
	var best *model.Survey
	for _, s := range r.surveys {
		if s.OrgID != orgID || s.TargetCompany != target || !s.CreatedAt.Before(before) {
			continue
		}
		if best == nil || s.CreatedAt.After(best.CreatedAt) {
			best = s
		}
	}
	return best, nil
}

func (r *fakeSurveyRepo) Update(ctx context.Context, s *model.Survey) error {
	r.surveys[s.ID] = s
	return nil
}

func (r *fakeSurveyRepo) Delete(ctx context.Context, id string) error {
	delete(r.surveys, id)
	return nil
}

type fakeTemplateRepo struct {
	templates map[string]*model.OptionTemplate
}

func newFakeTemplateRepo(templates ...*model.OptionTemplate) *fakeTemplateRepo {
	r := &fakeTemplateRepo{templates: make(map[string]*model.OptionTemplate)}
	for _, t := range templates {
		r.templates[t.ID] = t
	}
	return r
}

func (r *fakeTemplateRepo) Create(ctx context.Context, t *model.OptionTemplate) error {
	r.templates[t.ID] = t
	return nil
}

func (r *fakeTemplateRepo) GetByID(ctx context.Context, id string) (*model.OptionTemplate, error) {
	return r.templates[id], nil
}

func (r *fakeTemplateRepo) GetByOrgID(ctx context.Context, orgID string) ([]*model.OptionTemplate, error) {
	var out []*model.OptionTemplate
	for _, t := range r.templates {
		if t.OrgID == orgID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTemplateRepo) GetByIDs(ctx context.Context, ids []string) ([]*model.OptionTemplate, error) {
	var out []*model.OptionTemplate
	for _, id := range ids {
		if t, ok := r.templates[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTemplateRepo) Update(ctx context.Context, t *model.OptionTemplate) error {
	r.templates[t.ID] = t
	return nil
}

func (r *fakeTemplateRepo) Delete(ctx context.Context, id string) error {
	delete(r.templates, id)
	return nil
}

type fakeResponseRepo struct {
	responses []*model.Response
}

func (r *fakeResponseRepo) InsertBatch(ctx context.Context, responses []*model.Response) error {
	r.responses = append(r.responses, responses...)
	return nil
}

func (r *fakeResponseRepo) GetBySurveyID(ctx context.Context, surveyID string) ([]*model.Response, error) {
	var out []*model.Response
	for _, resp := range r.responses {
		if resp.SurveyID == surveyID {
			out = append(out, resp)
		}
	}
	return out, nil
}

func (r *fakeResponseRepo) CountRespondents(ctx context.Context, surveyID string) (int, error) {
	seen := make(map[string]bool)
	for _, resp := range r.responses {
		if resp.SurveyID == surveyID {
			seen[resp.RespondentID] = true
		}
	}
	return len(seen), nil
}

func (r *fakeResponseRepo) DeleteBySurveyID(ctx context.Context, surveyID string) error {
	var kept []*model.Response
	for _, resp := range r.responses {
		if resp.SurveyID != surveyID {
			kept = append(kept, resp)
		}
	}
	r.responses = kept
	return nil
}

type fakeSnapshotRepo struct {
	snapshots map[string]*model.DashboardSnapshot
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{snapshots: make(map[string]*model.DashboardSnapshot)}
}

func (r *fakeSnapshotRepo) Save(ctx context.Context, s *model.DashboardSnapshot) error {
	r.snapshots[s.SurveyID] = s
	return nil
}

func (r *fakeSnapshotRepo) GetBySurveyID(ctx context.Context, surveyID string) (*model.DashboardSnapshot, error) {
	return r.snapshots[surveyID], nil
}

type fakeDashboardCache struct {
	entries     map[string]*model.DashboardSnapshot
	invalidated []string
}

func newFakeDashboardCache() *fakeDashboardCache {
	return &fakeDashboardCache{entries: make(map[string]*model.DashboardSnapshot)}
}

func (c *fakeDashboardCache) Get(ctx context.Context, surveyID string) (*model.DashboardSnapshot, error) {
	return c.entries[surveyID], nil
}

func (c *fakeDashboardCache) Set(ctx context.Context, s *model.DashboardSnapshot) error {
	c.entries[s.SurveyID] = s
	return nil
}

func (c *fakeDashboardCache) Invalidate(ctx context.Context, surveyID string) error {
	delete(c.entries, surveyID)
	c.invalidated = append(c.invalidated, surveyID)
	return nil
}

type fakeBenchmarkCache struct {
	scores map[string]float64
}

func newFakeBenchmarkCache() *fakeBenchmarkCache {
	return &fakeBenchmarkCache{scores: make(map[string]float64)}
}

func (c *fakeBenchmarkCache) UpdateScore(ctx context.Context, orgID, surveyID string, avg float64) error {
	c.scores[surveyID] = avg
	return nil
}

func (c *fakeBenchmarkCache) GetTop(ctx context.Context, orgID string, limit int) ([]model.BenchmarkEntry, error) {
	var out []model.BenchmarkEntry
	for id, avg := range c.scores {
		out = append(out, model.BenchmarkEntry{SurveyID: id, Average: avg})
	}
	return out, nil
}

func (c *fakeBenchmarkCache) GetRank(ctx context.Context, orgID, surveyID string) (int64, error) {
	return -1, nil
}

func (c *fakeBenchmarkCache) Remove(ctx context.Context, orgID, surveyID string) error {
	delete(c.scores, surveyID)
	return nil
}

// Fixtures

func leadershipSurvey(id string, created time.Time) *model.Survey {
	return &model.Survey{
		ID:            id,
		OrgID:         "org1",
		Title:         "Safety culture check",
		TargetCompany: "Acme Mining",
		Status:        model.SurveyOpen,
		CreatedAt:     created,
		Questions: []model.Question{
			{
				ID:         "q1",
				Dimension:  "1. Leadership",
				Type:       model.QuestionLikert,
				MinScore:   1,
				MaxScore:   5,
				TemplateID: "t1",
			},
		},
	}
}

func likertTemplate() *model.OptionTemplate {
	return &model.OptionTemplate{
		ID:      "t1",
		OrgID:   "org1",
		Name:    "5-point agreement",
		Options: []string{"Strongly Disagree", "Disagree", "Undecided", "Agree", "Strongly Agree"},
		Scores:  []float64{1, 2, 3, 4, 5},
	}
}

func newDashboardService(
	surveys *fakeSurveyRepo,
	templates *fakeTemplateRepo,
	responses *fakeResponseRepo,
) (*DashboardService, *fakeDashboardCache, *fakeBenchmarkCache, *fakeSnapshotRepo) {
	dc := newFakeDashboardCache()
	bc := newFakeBenchmarkCache()
	sr := newFakeSnapshotRepo()
	return NewDashboardService(surveys, templates, responses, sr, dc, bc), dc, bc, sr
}

func TestDashboardComputesAndCaches(t *testing.T) {
	ctx := context.Background()
	survey := leadershipSurvey("s1", time.Now())
	responses := &fakeResponseRepo{responses: []*model.Response{
		{SurveyID: "s1", QuestionID: "q1", RespondentID: "r1", Answer: "Agree"},
		{SurveyID: "s1", QuestionID: "q1", RespondentID: "r2", Answer: "Strongly Agree"},
		{SurveyID: "s1", QuestionID: "q1", RespondentID: "r3", Answer: "Undecided"},
	}}
	svc, dc, bc, _ := newDashboardService(newFakeSurveyRepo(survey), newFakeTemplateRepo(likertTemplate()), responses)

	snapshot, err := svc.Dashboard(ctx, "org1", "s1")
	require.NoError(t, err)

	require.Len(t, snapshot.Dimensions, 1)
	assert.InDelta(t, 4.0, snapshot.Dimensions[0].Score, 1e-9)
	assert.InDelta(t, 80.0, snapshot.Dimensions[0].ScorePercent, 1e-9)
	assert.Equal(t, model.LevelIntegrated, snapshot.Overall.Level)
	assert.Equal(t, 3, snapshot.RespondentCount)
	assert.Nil(t, snapshot.Overall.Trend) // no prior survey

	// Cached and ranked.
	assert.NotNil(t, dc.entries["s1"])
	assert.InDelta(t, 4.0, bc.scores["s1"], 1e-9)
}

func TestDashboardCacheHitSkipsRecompute(t *testing.T) {
	ctx := context.Background()
	survey := leadershipSurvey("s1", time.Now())
	svc, dc, _, _ := newDashboardService(newFakeSurveyRepo(survey), newFakeTemplateRepo(), &fakeResponseRepo{})

	cached := &model.DashboardSnapshot{SurveyID: "s1", OrgID: "org1", RespondentCount: 99}
	dc.entries["s1"] = cached

	snapshot, err := svc.Dashboard(ctx, "org1", "s1")
	require.NoError(t, err)
	assert.Equal(t, 99, snapshot.RespondentCount)
}

func TestDashboardTrendAgainstPriorSurvey(t *testing.T) {
	ctx := context.Background()
	prior := leadershipSurvey("s0", time.Now().Add(-30*24*time.Hour))
	current := leadershipSurvey("s1", time.Now())
	responses := &fakeResponseRepo{responses: []*model.Response{
		{SurveyID: "s0", QuestionID: "q1", RespondentID: "r1", Answer: "Disagree"},        // prior avg 2.0
		{SurveyID: "s1", QuestionID: "q1", RespondentID: "r1", Answer: "Agree"},           // current avg 4.0
		{SurveyID: "s1", QuestionID: "q1", RespondentID: "r2", Answer: "Strongly Agree"},  // with r1: (4+5+3)/3
		{SurveyID: "s1", QuestionID: "q1", RespondentID: "r3", Answer: "Undecided"},
	}}
	svc, _, _, _ := newDashboardService(newFakeSurveyRepo(prior, current), newFakeTemplateRepo(likertTemplate()), responses)

	snapshot, err := svc.Dashboard(ctx, "org1", "s1")
	require.NoError(t, err)

	require.NotNil(t, snapshot.Overall.Trend)
	assert.InDelta(t, 2.0, *snapshot.Overall.Trend, 1e-9)
}

func TestDashboardWrongOrgRejected(t *testing.T) {
	ctx := context.Background()
	survey := leadershipSurvey("s1", time.Now())
	svc, _, _, _ := newDashboardService(newFakeSurveyRepo(survey), newFakeTemplateRepo(), &fakeResponseRepo{})

	_, err := svc.Dashboard(ctx, "other-org", "s1")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestDashboardClosedSurveyServesSnapshot(t *testing.T) {
	ctx := context.Background()
	survey := leadershipSurvey("s1", time.Now())
	survey.Status = model.SurveyClosed
	svc, _, _, sr := newDashboardService(newFakeSurveyRepo(survey), newFakeTemplateRepo(), &fakeResponseRepo{})

	frozen := &model.DashboardSnapshot{SurveyID: "s1", OrgID: "org1", RespondentCount: 42}
	require.NoError(t, sr.Save(ctx, frozen))

	snapshot, err := svc.Dashboard(ctx, "org1", "s1")
	require.NoError(t, err)
	assert.Equal(t, 42, snapshot.RespondentCount)
}

func TestPersistSnapshotOnClose(t *testing.T) {
	ctx := context.Background()
	survey := leadershipSurvey("s1", time.Now())
	responses := &fakeResponseRepo{responses: []*model.Response{
		{SurveyID: "s1", QuestionID: "q1", RespondentID: "r1", Answer: "Agree"},
	}}
	svc, _, _, sr := newDashboardService(newFakeSurveyRepo(survey), newFakeTemplateRepo(likertTemplate()), responses)

	require.NoError(t, svc.PersistSnapshot(ctx, survey))

	saved := sr.snapshots["s1"]
	require.NotNil(t, saved)
	assert.InDelta(t, 4.0, saved.Overall.Average, 1e-9)
}
