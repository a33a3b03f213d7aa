package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"
	goa "goa.design/goa/v3/pkg"

	assetowner "billiton/gen/assetowner"
	auth "billiton/gen/auth"
	consultation "billiton/gen/consultation"
	health "billiton/gen/health"
	assetownersvr "billiton/gen/http/assetowner/server"
	authsvr "billiton/gen/http/auth/server"
	consultationsvr "billiton/gen/http/consultation/server"
	healthsvr "billiton/gen/http/health/server"
	investorsvr "billiton/gen/http/investor/server"
	investor "billiton/gen/investor"

	"billiton/internal/config"
	"billiton/internal/database"
	"billiton/internal/metrics"
	"billiton/internal/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
)

func main() {
	// Initialize structured logging
	log.SetPrefix("[API] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate critical configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	log.Printf("Starting %s v%s", cfg.App.Name, cfg.App.Version)
	log.Printf("Environment: debug=%v, port=%s, host=%s", cfg.App.Debug, cfg.App.Port, cfg.App.Host)

	// Initialize database
	log.Println("Initializing database connection...")
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		log.Println("Closing database connections...")
		if sqlDB, err := database.GetDB().DB(); err == nil {
			if closeErr := sqlDB.Close(); closeErr != nil {
				log.Printf("Error closing database: %v", closeErr)
			}
		}
	}()

	// Create service instances
	log.Println("Initializing services...")
	mailer := services.NewEmailService(&cfg.Email)
	healthSvc := services.NewHealthService()
	authSvc := services.NewAuthService(database.GetDB())
	consultationSvc := services.NewConsultationService(database.GetDB(), mailer, cfg.Email.NotifyEmail)
	assetOwnerSvc := services.NewAssetOwnerService(database.GetDB(), mailer, cfg.Email.NotifyEmail)
	investorSvc := services.NewInvestorService(database.GetDB(), mailer, cfg.Email.NotifyEmail)

	// Create service endpoints
	healthEndpoints := health.NewEndpoints(healthSvc)
	authEndpoints := auth.NewEndpoints(authSvc)
	consultationEndpoints := consultation.NewEndpoints(consultationSvc)
	assetOwnerEndpoints := assetowner.NewEndpoints(assetOwnerSvc)
	investorEndpoints := investor.NewEndpoints(investorSvc)

	// Create HTTP mux
	mux := goahttp.NewMuxer()

	// Create error handler that logs errors
	errorHandler := func(ctx context.Context, w http.ResponseWriter, err error) {
		log.Printf("[ERROR] %v", err)
	}

	// Mount HTTP handlers with middleware and error handler
	log.Println("Mounting HTTP handlers...")
	healthServer := healthsvr.New(healthEndpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, errorHandler, formatError)
	healthServer.Use(middleware.RequestID())
	healthServer.Use(middleware.PopulateRequestContext())
	healthServer.Mount(mux)

	authServer := authsvr.New(authEndpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, errorHandler, formatError)
	authServer.Use(middleware.RequestID())
	authServer.Use(middleware.PopulateRequestContext())
	authServer.Mount(mux)

	consultationServer := consultationsvr.New(consultationEndpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, errorHandler, formatError)
	consultationServer.Use(middleware.RequestID())
	consultationServer.Use(middleware.PopulateRequestContext())
	consultationServer.Mount(mux)

	assetOwnerServer := assetownersvr.New(assetOwnerEndpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, errorHandler, formatError)
	assetOwnerServer.Use(middleware.RequestID())
	assetOwnerServer.Use(middleware.PopulateRequestContext())
	assetOwnerServer.Mount(mux)

	investorServer := investorsvr.New(investorEndpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, errorHandler, formatError)
	investorServer.Use(middleware.RequestID())
	investorServer.Use(middleware.PopulateRequestContext())
	investorServer.Mount(mux)

	// Create a wrapper handler that routes /metrics to Prometheus and everything else to Goa mux
	rootHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			promhttp.Handler().ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})

	// Setup middleware chain: Security -> CORS -> Logging -> Prometheus -> Handler
	handler := setupSecurityHeaders(setupCORS(requestLogging(metrics.PrometheusMiddleware(rootHandler)), cfg))

	// Create HTTP server with timeouts
	addr := fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		ErrorLog:     log.New(os.Stderr, "[HTTP] ", log.LstdFlags),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Server failed to start: %v", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v. Starting graceful shutdown...", sig)
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Error during graceful shutdown: %v", err)
		if err == context.DeadlineExceeded {
			log.Println("Shutdown timeout exceeded, forcing close...")
			httpServer.Close()
		}
	}

	log.Println("Server shutdown complete")
}

// errorResponse is the wire shape for all error responses: {"error": "..."}.
type errorResponse struct {
	Err    string `json:"error"`
	status int
}

// StatusCode returns the HTTP status code for the error response.
func (e *errorResponse) StatusCode() int { return e.status }

// formatError maps service errors to the {"error": message} wire shape.
// Unauthorized errors become 401, validation errors 400, everything else 500.
func formatError(ctx context.Context, err error) goahttp.Statuser {
	status := http.StatusInternalServerError
	if serr, ok := err.(*goa.ServiceError); ok {
		switch serr.Name {
		case "unauthorized":
			status = http.StatusUnauthorized
		case "missing_payload", "decode_payload", "invalid_field_type",
			"missing_field", "invalid_enum_value", "invalid_format",
			"invalid_pattern", "invalid_range", "invalid_length":
			status = http.StatusBadRequest
		}
	}
	return &errorResponse{Err: err.Error(), status: status}
}

// validateConfig validates critical configuration values
func validateConfig(cfg *config.Config) error {
	if cfg.Auth.SecretKey == "" || cfg.Auth.SecretKey == "your-secret-key-change-in-production" {
		return fmt.Errorf("SECRET_KEY must be set and changed from default value")
	}
	if len(cfg.Auth.SecretKey) < 32 {
		return fmt.Errorf("SECRET_KEY must be at least 32 characters for security")
	}
	if cfg.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	return nil
}

// setupSecurityHeaders adds security headers to responses
func setupSecurityHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Remove server identification
		w.Header().Set("Server", "")

		handler.ServeHTTP(w, r)
	})
}

// setupCORS sets the CORS headers expected by the public inquiry forms. The
// forms are served from arbitrary origins so the wildcard is intentional.
func setupCORS(handler http.Handler, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", strings.Join(cfg.CORS.AllowedMethods, ", "))
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(cfg.CORS.AllowedHeaders, ", "))
		w.Header().Set("Access-Control-Max-Age", fmt.Sprintf("%d", cfg.CORS.MaxAge))

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		handler.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// requestLogging logs all incoming requests and their responses
func requestLogging(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health checks to reduce noise
		if r.URL.Path == "/health" {
			handler.ServeHTTP(w, r)
			return
		}

		// Wrap response writer to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		// Log request start
		log.Printf("[REQUEST] %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

		// Handle request
		handler.ServeHTTP(wrapped, r)

		// Log request completion
		duration := time.Since(start)
		statusText := "OK"
		if wrapped.statusCode >= 400 {
			statusText = "ERROR"
		}
		log.Printf("[RESPONSE] %s %s -> %d %s (%v)", r.Method, r.URL.Path, wrapped.statusCode, statusText, duration)
	})
}
