package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"safetyvitals/internal/model"
)

// BenchmarkCache handles the Redis ZSET ranking surveys within an
// organization by overall average score.
type BenchmarkCache interface {
	UpdateScore(ctx context.Context, orgID, surveyID string, average float64) error
	GetTop(ctx context.Context, orgID string, limit int) ([]model.BenchmarkEntry, error)
	GetRank(ctx context.Context, orgID, surveyID string) (int64, error)
	Remove(ctx context.Context, orgID, surveyID string) error
}

type benchmarkCache struct {
	client *redis.Client
}

// NewBenchmarkCache creates a new benchmark cache
func NewBenchmarkCache(client *redis.Client) BenchmarkCache {
	return &benchmarkCache{
		client: client,
	}
}

func (c *benchmarkCache) key(orgID string) string {
	return fmt.Sprintf("org:%s:benchmark", orgID)
}

func (c *benchmarkCache) UpdateScore(ctx context.Context, orgID, surveyID string, average float64) error {
	return c.client.ZAdd(ctx, c.key(orgID), redis.Z{
		Score:  average,
		Member: surveyID,
	}).Err()
}

func (c *benchmarkCache) GetTop(ctx context.Context, orgID string, limit int) ([]model.BenchmarkEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(orgID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.BenchmarkEntry, len(results))
	for i, z := range results {
		entries[i] = model.BenchmarkEntry{
			SurveyID: z.Member.(string),
			Average:  z.Score,
			Rank:     i + 1,
		}
	}
	return entries, nil
}

func (c *benchmarkCache) GetRank(ctx context.Context, orgID, surveyID string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, c.key(orgID), surveyID).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}

func (c *benchmarkCache) Remove(ctx context.Context, orgID, surveyID string) error {
	return c.client.ZRem(ctx, c.key(orgID), surveyID).Err()
}
