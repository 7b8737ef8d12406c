package app

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"safetyvitals/internal/cache"
	"safetyvitals/internal/repository"
)

// App bundles the data-layer dependencies built from the Mongo and
// Redis connections.
type App struct {
	OrgRepo      repository.OrgRepo
	SurveyRepo   repository.SurveyRepo
	TemplateRepo repository.TemplateRepo
	ResponseRepo repository.ResponseRepo
	SnapshotRepo repository.SnapshotRepo

	DashboardCache cache.DashboardCache
	TemplateCache  cache.TemplateCache
	BenchmarkCache cache.BenchmarkCache
}

func New(db *mongo.Database, rdb *redis.Client, dashboardTTL time.Duration) *App {
	return &App{
		OrgRepo:      repository.NewOrgRepo(db),
		SurveyRepo:   repository.NewSurveyRepo(db),
		TemplateRepo: repository.NewTemplateRepo(db),
		ResponseRepo: repository.NewResponseRepo(db),
		SnapshotRepo: repository.NewSnapshotRepo(db),

		DashboardCache: cache.NewDashboardCache(rdb, dashboardTTL),
		TemplateCache:  cache.NewTemplateCache(rdb),
		BenchmarkCache: cache.NewBenchmarkCache(rdb),
	}
}
