package handler

import (
	"net/http"

	"news-digest/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"news-digest"}`))
	}).Methods("GET")

	// Initialize handlers
	digestHandler := NewDigestHandler(container.DocumentService, container.DigestService, container.Logger)
	exportHandler := NewExportHandler(container.ExportService, container.SheetsService, container.Logger)
	authHandler := NewAuthHandler(container.AuthService, container.CookieStore, container.Logger)

	// Resolve the authorization-session cookie for every API route
	api.Use(SessionMiddleware(container.CookieStore))

	// Digest routes
	api.HandleFunc("/digest", digestHandler.CreateDigest).Methods("POST")
	api.HandleFunc("/taxonomy", digestHandler.GetTaxonomy).Methods("GET")

	// Export routes
	api.HandleFunc("/export/document", exportHandler.ExportDocument).Methods("POST")
	api.HandleFunc("/export/table", exportHandler.ExportTable).Methods("POST")
	api.HandleFunc("/sheets/append", exportHandler.AppendToSheet).Methods("POST")

	// Auth routes
	api.HandleFunc("/auth/google/login", authHandler.Login).Methods("GET")
	api.HandleFunc("/auth/google/callback", authHandler.Callback).Methods("GET")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/auth/status", authHandler.Status).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: container.Config.GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
