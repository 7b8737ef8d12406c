package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"safetyvitals/internal/app"
	"safetyvitals/internal/config"
	"safetyvitals/internal/service"
	"safetyvitals/internal/transport/rest"
	"safetyvitals/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Repositories and caches
	a := app.New(db, rdb, cfg.DashboardCacheTTL)

	// Services
	authSvc := service.NewAuthService(a.OrgRepo, cfg.JWTSecret)
	surveySvc := service.NewSurveyService(a.SurveyRepo, a.ResponseRepo)
	templateSvc := service.NewTemplateService(a.TemplateRepo, a.TemplateCache)
	responseSvc := service.NewResponseService(a.SurveyRepo, a.ResponseRepo, a.DashboardCache)
	dashboardSvc := service.NewDashboardService(a.SurveyRepo, a.TemplateRepo, a.ResponseRepo, a.SnapshotRepo, a.DashboardCache, a.BenchmarkCache)

	// Closing a survey persists its final snapshot
	surveySvc.SetDashboardService(dashboardSvc)

	// wsHub implements service.Broadcaster
	responseSvc.SetBroadcaster(wsHub)
	surveySvc.SetBroadcaster(wsHub)

	container := &rest.Container{
		Config:       cfg,
		AuthService:  authSvc,
		SurveySvc:    surveySvc,
		TemplateSvc:  templateSvc,
		ResponseSvc:  responseSvc,
		DashboardSvc: dashboardSvc,
		WSHub:        wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/surveys")
		log.Println("  GET  /v1/surveys/{id}/form")
		log.Println("  POST /v1/surveys/{id}/responses")
		log.Println("  GET  /v1/surveys/{id}/dashboard")
		log.Println("  POST/GET /v1/templates")
		log.Println("  GET  /v1/benchmark")
		log.Println("  WS   /v1/ws/surveys/{id}/dashboard")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
