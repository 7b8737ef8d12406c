package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"safetyvitals/internal/config"
	"safetyvitals/internal/service"
	"safetyvitals/internal/transport/rest/handler"
	"safetyvitals/internal/transport/rest/middleware"
	"safetyvitals/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Config       *config.Config
	AuthService  *service.AuthService
	SurveySvc    *service.SurveyService
	TemplateSvc  *service.TemplateService
	ResponseSvc  *service.ResponseService
	DashboardSvc *service.DashboardService
	WSHub        *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	surveyHandler := handler.NewSurveyHandler(c.SurveySvc)
	templateHandler := handler.NewTemplateHandler(c.TemplateSvc)
	responseHandler := handler.NewResponseHandler(c.ResponseSvc)
	dashboardHandler := handler.NewDashboardHandler(c.DashboardSvc)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.SurveySvc)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.Config))

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes: login, respondent form, response submission
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/form", surveyHandler.Form).Methods("GET", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/responses", responseHandler.Submit).Methods("POST", "OPTIONS")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/surveys/{surveyId}/dashboard", wsHandler.DashboardWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require org admin auth)
	admin := v1.NewRoute().Subrouter()
	admin.Use(authMW.RequireAdmin)

	admin.HandleFunc("/surveys", surveyHandler.Create).Methods("POST", "OPTIONS")
	admin.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")
	admin.HandleFunc("/surveys/{surveyId}", surveyHandler.Get).Methods("GET", "OPTIONS")
	admin.HandleFunc("/surveys/{surveyId}", surveyHandler.Update).Methods("PUT", "OPTIONS")
	admin.HandleFunc("/surveys/{surveyId}", surveyHandler.Delete).Methods("DELETE", "OPTIONS")
	admin.HandleFunc("/surveys/{surveyId}/open", surveyHandler.Open).Methods("POST", "OPTIONS")
	admin.HandleFunc("/surveys/{surveyId}/close", surveyHandler.Close).Methods("POST", "OPTIONS")
	admin.HandleFunc("/surveys/{surveyId}/responses", responseHandler.List).Methods("GET", "OPTIONS")
	admin.HandleFunc("/surveys/{surveyId}/dashboard", dashboardHandler.Get).Methods("GET", "OPTIONS")

	admin.HandleFunc("/templates", templateHandler.Create).Methods("POST", "OPTIONS")
	admin.HandleFunc("/templates", templateHandler.List).Methods("GET", "OPTIONS")
	admin.HandleFunc("/templates/{templateId}", templateHandler.Get).Methods("GET", "OPTIONS")
	admin.HandleFunc("/templates/{templateId}", templateHandler.Update).Methods("PUT", "OPTIONS")
	admin.HandleFunc("/templates/{templateId}", templateHandler.Delete).Methods("DELETE", "OPTIONS")

	admin.HandleFunc("/benchmark", dashboardHandler.Benchmark).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
