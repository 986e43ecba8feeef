package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"cyberassess/internal/repository"
	"cyberassess/internal/service"
	"cyberassess/internal/transport/rest/handler"
	"cyberassess/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	AnswerService     *service.AnswerService
	ScoreService      *service.ScoreService
	ExportService     *service.ExportService
	CatalogService    *service.CatalogService
	ImportService     *service.ImportService
	CustomerRepo      repository.CustomerRepo
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService, c.AnswerService, c.ScoreService, c.ExportService)
	catalogHandler := handler.NewCatalogHandler(c.CatalogService, c.CustomerRepo)
	adminHandler := handler.NewAdminHandler(c.CatalogService, c.ImportService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Employee routes (assessment flow)
	employeeRoutes := v1.NewRoute().Subrouter()
	employeeRoutes.Use(authMW.RequireEmployee)

	employeeRoutes.HandleFunc("/customers", catalogHandler.ListCustomers).Methods("GET", "OPTIONS")
	employeeRoutes.HandleFunc("/categories", catalogHandler.ListCategories).Methods("GET", "OPTIONS")
	employeeRoutes.HandleFunc("/assessments", assessmentHandler.Start).Methods("POST", "OPTIONS")
	employeeRoutes.HandleFunc("/assessments/{id}/question/next", assessmentHandler.NextQuestion).Methods("GET", "OPTIONS")
	employeeRoutes.HandleFunc("/assessments/{id}/answers", assessmentHandler.RecordAnswer).Methods("POST", "OPTIONS")
	employeeRoutes.HandleFunc("/assessments/{id}/summary", assessmentHandler.Summary).Methods("GET", "OPTIONS")
	employeeRoutes.HandleFunc("/assessments/{id}/export", assessmentHandler.Export).Methods("GET", "OPTIONS")

	// Admin routes (catalog management)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/admin/questions/order", adminHandler.SaveQuestionOrder).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/admin/import", adminHandler.ImportCatalog).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if origins == "" {
			origins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", origins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
