package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"workpulse/internal/service"
	"workpulse/internal/transport/rest/handler"
	"workpulse/internal/transport/rest/middleware"
	"workpulse/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	SurveyService     *service.SurveyService
	ScoringService    *service.ScoringService
	ClassifierService *service.ClassifierService
	WSHub             *ws.Hub
	Logger            *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	surveyHandler := handler.NewSurveyHandler(c.SurveyService)
	assessmentHandler := handler.NewAssessmentHandler(c.ScoringService)
	classifierHandler := handler.NewClassifierHandler(c.ClassifierService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket route (public with token in query param)
	v1.HandleFunc("/ws", wsHandler.Connect).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// User routes (require auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/surveys/{domain}/answers", surveyHandler.Submit).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/surveys/{domain}/answers/latest", surveyHandler.Latest).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessments/compute", assessmentHandler.Compute).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessments/latest", assessmentHandler.Latest).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessments/history", assessmentHandler.History).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/classifier/train", classifierHandler.Retrain).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/classifier/status", classifierHandler.Status).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
