package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/resumehub/resume-builder/internal/ai"
	"github.com/resumehub/resume-builder/internal/autosave"
	"github.com/resumehub/resume-builder/internal/cache"
	"github.com/resumehub/resume-builder/internal/config"
	"github.com/resumehub/resume-builder/internal/db"
	"github.com/resumehub/resume-builder/internal/export"
	"github.com/resumehub/resume-builder/internal/payments"
	"github.com/resumehub/resume-builder/internal/server/middleware"
	"github.com/resumehub/resume-builder/internal/server/ratelimit"
)

// Server is the HTTP server with all its wired services.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	rateLimiter *ratelimit.Limiter

	jwtService    *JWTService
	userService   *UserService
	authHandler   *AuthHandler
	resumeService *ResumeService
	draftService  *DraftService
	settings      *SettingsHub
	exporter      *export.Exporter

	// Optional integrations; nil when not configured. Their endpoints answer
	// 503 instead of failing at startup.
	aiClient ai.Client
	payments *payments.Client
}

// New creates a server instance from configuration, connecting to the
// database and wiring every service.
func New(cfg *config.ServerConfig) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{db: database}
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	var counts cache.Counts
	if cfg.RedisAddr != "" {
		counts = cache.NewRedisCounts(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		log.Printf("Resume count cache backed by redis at %s", cfg.RedisAddr)
	} else {
		counts = cache.NewMemoryCounts()
	}
	s.resumeService = NewResumeService(database, counts)

	s.draftService = NewDraftService(database, autosave.DefaultDelay)
	s.settings = NewSettingsHub(database)
	s.exporter = export.New()

	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create AI client: %w", err)
		}
		s.aiClient = client
	} else {
		log.Printf("GEMINI_API_KEY not set; AI endpoints will answer 503")
	}

	if cfg.PaymentKeyID != "" && cfg.PaymentKeySecret != "" {
		client, err := payments.NewClient(cfg.PaymentKeyID, cfg.PaymentKeySecret)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment client: %w", err)
		}
		s.payments = client
	} else {
		log.Printf("Payment gateway credentials not set; payment endpoints will answer 503")
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // long timeout for PDF export and SSE
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. Auth-only routes go through middleware.Auth,
// admin routes additionally through middleware.RequireRole.
func (s *Server) routes() http.Handler {
	auth := middleware.Auth(s.jwtService.AsTokenValidator())
	admin := middleware.RequireRole("admin", func(ctx context.Context, userID uuid.UUID) (string, error) {
		role, err := s.db.GetRole(ctx, userID)
		return string(role), err
	})

	authed := func(h http.HandlerFunc) http.Handler { return auth(h) }
	adminOnly := func(h http.HandlerFunc) http.Handler { return auth(admin(h)) }

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth
	mux.HandleFunc("POST /v1/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", s.authHandler.Login)
	mux.Handle("PUT /v1/auth/password", authed(s.handleUpdatePassword))
	mux.Handle("GET /v1/users/me", authed(s.handleMe))
	mux.Handle("DELETE /v1/users/me", authed(s.handleDeleteAccount))

	// Stored resumes
	mux.Handle("POST /v1/resumes", authed(s.handleSaveResume))
	mux.Handle("GET /v1/resumes", authed(s.handleListResumes))
	mux.Handle("GET /v1/resumes/{id}", authed(s.handleGetResume))
	mux.Handle("DELETE /v1/resumes/{id}", authed(s.handleDeleteResume))
	mux.Handle("POST /v1/resumes/{id}/export", authed(s.handleExportResume))

	// Builder draft (auto-save)
	mux.Handle("GET /v1/builder/draft", authed(s.handleGetDraft))
	mux.Handle("PUT /v1/builder/draft", authed(s.handlePutDraft))
	mux.Handle("DELETE /v1/builder/draft", authed(s.handleDeleteDraft))

	// Rendering; preview works without an account so the builder can be
	// tried before signing up
	mux.HandleFunc("POST /v1/render/preview", s.handlePreview)
	mux.HandleFunc("GET /v1/templates", s.handleListTemplates)

	// AI
	mux.Handle("POST /v1/ai/enhance", authed(s.handleEnhance))
	mux.Handle("POST /v1/ai/extract", authed(s.handleExtract))

	// Payments
	mux.Handle("POST /v1/payments/orders", authed(s.handleCreateOrder))
	mux.Handle("POST /v1/payments/verify", authed(s.handleVerifyPayment))
	mux.Handle("GET /v1/payments/subscription", authed(s.handleGetSubscription))

	// Admin
	mux.Handle("GET /v1/admin/stats", adminOnly(s.handleAdminStats))
	mux.Handle("POST /v1/admin/roles", adminOnly(s.handleAssignRole))
	mux.Handle("POST /v1/admin/premium/grant-all", adminOnly(s.handleGrantPremiumAll))

	// Site settings; reads and the design-mode stream are public, writes are
	// admin-only
	mux.HandleFunc("GET /v1/settings/design-mode/stream", s.handleDesignModeStream)
	mux.HandleFunc("GET /v1/settings/{key}", s.handleGetSetting)
	mux.Handle("PUT /v1/settings/{key}", adminOnly(s.handlePutSetting))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	if err := s.settings.Start(context.Background()); err != nil {
		return fmt.Errorf("failed to start settings hub: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// In-window draft edits land before the pool closes.
	s.draftService.Flush()

	s.settings.Stop()
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.aiClient != nil {
		if err := s.aiClient.Close(); err != nil {
			log.Printf("Failed to close AI client: %v", err)
		}
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdatePassword adapts the auth handler to the authed route shape.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePassword(w, r, userID)
}

// handleMe returns the authenticated user's account.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.userService.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// handleDeleteAccount removes the authenticated user's account. The FK
// cascade takes their resumes, draft, role, and subscription with it.
func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := s.db.DeleteUser(r.Context(), userID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete account: "+err.Error())
		return
	}

	log.Printf("Account deleted: %s", userID)
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Account deleted"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request. Uses the
// IP from RemoteAddr; X-Forwarded-For would need a trusted-proxy list first.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit
// information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
