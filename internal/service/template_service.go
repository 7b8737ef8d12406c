package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"safetyvitals/internal/cache"
	"safetyvitals/internal/model"
	"safetyvitals/internal/repository"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateLengths  = errors.New("template options and scores must have the same length")
)

// TemplateService handles option template CRUD. Reads go through the
// Redis cache; writes invalidate it.
type TemplateService struct {
	templateRepo  repository.TemplateRepo
	templateCache cache.TemplateCache
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.TemplateRepo, templateCache cache.TemplateCache) *TemplateService {
	return &TemplateService{
		templateRepo:  templateRepo,
		templateCache: templateCache,
	}
}

// Create validates and stores a new option template
func (s *TemplateService) Create(ctx context.Context, tpl *model.OptionTemplate) (string, error) {
	if len(tpl.Options) != len(tpl.Scores) {
		return "", ErrTemplateLengths
	}
	tpl.ID = uuid.NewString()
	if err := s.templateRepo.Create(ctx, tpl); err != nil {
		return "", err
	}
	s.templateCache.Invalidate(ctx, tpl.OrgID)
	return tpl.ID, nil
}

// List returns the organization's templates, cache-first
func (s *TemplateService) List(ctx context.Context, orgID string) ([]*model.OptionTemplate, error) {
	cached, err := s.templateCache.Get(ctx, orgID)
	if err == nil && cached != nil {
		return cached, nil
	}

	templates, err := s.templateRepo.GetByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if len(templates) > 0 {
		s.templateCache.Set(ctx, orgID, templates)
	}
	return templates, nil
}

// Get retrieves one template owned by the organization
func (s *TemplateService) Get(ctx context.Context, orgID, id string) (*model.OptionTemplate, error) {
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil || tpl.OrgID != orgID {
		return nil, ErrTemplateNotFound
	}
	return tpl, nil
}

// Update replaces an existing template
func (s *TemplateService) Update(ctx context.Context, orgID string, tpl *model.OptionTemplate) error {
	if len(tpl.Options) != len(tpl.Scores) {
		return ErrTemplateLengths
	}
	existing, err := s.Get(ctx, orgID, tpl.ID)
	if err != nil {
		return err
	}
	tpl.OrgID = existing.OrgID
	if err := s.templateRepo.Update(ctx, tpl); err != nil {
		return err
	}
	return s.templateCache.Invalidate(ctx, orgID)
}

// Delete removes a template
func (s *TemplateService) Delete(ctx context.Context, orgID, id string) error {
	if _, err := s.Get(ctx, orgID, id); err != nil {
		return err
	}
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.templateCache.Invalidate(ctx, orgID)
}
