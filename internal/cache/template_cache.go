package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"safetyvitals/internal/model"
)

// TemplateCache caches an organization's option templates. Templates
// are read on every public form fetch and every scoring pass, and
// change rarely.
type TemplateCache interface {
	Get(ctx context.Context, orgID string) ([]*model.OptionTemplate, error)
	Set(ctx context.Context, orgID string, templates []*model.OptionTemplate) error
	Invalidate(ctx context.Context, orgID string) error
}

type templateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTemplateCache creates a new template cache
func NewTemplateCache(client *redis.Client) TemplateCache {
	return &templateCache{
		client: client,
		ttl:    time.Hour,
	}
}

func (c *templateCache) key(orgID string) string {
	return fmt.Sprintf("org:%s:templates", orgID)
}

func (c *templateCache) Get(ctx context.Context, orgID string) ([]*model.OptionTemplate, error) {
	data, err := c.client.Get(ctx, c.key(orgID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var templates []*model.OptionTemplate
	if err := json.Unmarshal([]byte(data), &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (c *templateCache) Set(ctx context.Context, orgID string, templates []*model.OptionTemplate) error {
	data, err := json.Marshal(templates)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(orgID), data, c.ttl).Err()
}

func (c *templateCache) Invalidate(ctx context.Context, orgID string) error {
	return c.client.Del(ctx, c.key(orgID)).Err()
}
