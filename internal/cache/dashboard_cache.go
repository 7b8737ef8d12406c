package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"safetyvitals/internal/model"
)

// DashboardCache handles Redis caching of computed dashboard snapshots.
// Entries expire on their own and are invalidated explicitly when new
// responses arrive.
type DashboardCache interface {
	Get(ctx context.Context, surveyID string) (*model.DashboardSnapshot, error)
	Set(ctx context.Context, snapshot *model.DashboardSnapshot) error
	Invalidate(ctx context.Context, surveyID string) error
}

type dashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache creates a new dashboard cache
func NewDashboardCache(client *redis.Client, ttl time.Duration) DashboardCache {
	return &dashboardCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *dashboardCache) key(surveyID string) string {
	return fmt.Sprintf("survey:%s:dashboard", surveyID)
}

func (c *dashboardCache) Get(ctx context.Context, surveyID string) (*model.DashboardSnapshot, error) {
	data, err := c.client.Get(ctx, c.key(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snapshot model.DashboardSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *dashboardCache) Set(ctx context.Context, snapshot *model.DashboardSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(snapshot.SurveyID), data, c.ttl).Err()
}

func (c *dashboardCache) Invalidate(ctx context.Context, surveyID string) error {
	return c.client.Del(ctx, c.key(surveyID)).Err()
}
