package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yourorg/pitchpoint/internal/handler"
	"github.com/yourorg/pitchpoint/internal/infrastructure/logger"
	"github.com/yourorg/pitchpoint/internal/infrastructure/redis"
	"github.com/yourorg/pitchpoint/internal/notification"
	"github.com/yourorg/pitchpoint/internal/observability/metrics"
	"github.com/yourorg/pitchpoint/internal/observability/tracing"
	"github.com/yourorg/pitchpoint/internal/repository"
	"github.com/yourorg/pitchpoint/internal/security/audit"
	"github.com/yourorg/pitchpoint/internal/security/auth"
	"github.com/yourorg/pitchpoint/internal/security/middleware"
	"github.com/yourorg/pitchpoint/internal/security/ratelimit"
	"github.com/yourorg/pitchpoint/internal/service"
	"github.com/yourorg/pitchpoint/internal/worker"
	"github.com/yourorg/pitchpoint/pkg/cache"
	"github.com/yourorg/pitchpoint/pkg/config"
	"github.com/yourorg/pitchpoint/pkg/database"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize structured logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("starting PitchPoint server", slog.String("environment", cfg.Environment))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Tracing (no-op unless an OTLP endpoint is configured)
	shutdownTracing, err := tracing.Init(ctx, log, "pitchpoint", cfg.Environment)
	if err != nil {
		log.Error("failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 4. Run schema migrations, then open the connection pool
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := database.NewConnectionPool(ctx, &database.Config{URL: cfg.DatabaseURL}, log)
	if err != nil {
		log.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// 5. Initialize Redis client (read-side pitch cache)
	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	// 6. Initialize repositories
	db := pool.GetDB()
	pitchRepo := repository.NewPostgresPitchRepository(db, log)
	userRepo := repository.NewPostgresUserRepository(db, log)
	leadRepos := service.LeadRepositories{
		Investments:   repository.NewPostgresInvestmentRepository(db, log),
		Community:     repository.NewPostgresCommunityLeadRepository(db, log),
		Mentors:       repository.NewPostgresMentorContactRepository(db, log),
		Contacts:      repository.NewPostgresContactMessageRepository(db, log),
		Registrations: repository.NewPostgresDemoRegistrationRepository(db, log),
	}

	// 7. Initialize services
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, "pitchpoint")
	pitchService := service.NewPitchService(pitchRepo, redisClient, cfg.PitchCacheTTL, log)
	authService := service.NewAuthService(userRepo, tokenManager, cfg.BcryptCost, log)
	leadService := service.NewLeadService(leadRepos, cache.New(), cfg.LeadCacheTTL, log)
	mailer := notification.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, log)

	// 8. Initialize handlers and security components
	auditLogger := audit.NewLogger(log)
	rateLimiter := ratelimit.NewLimiter(100, time.Minute)

	authHandler := handler.NewAuthHandler(authService, log)
	pitchHandler := handler.NewPitchHandler(pitchService, auditLogger, log)
	leadsHandler := handler.NewLeadsHandler(leadService, log)
	reserveHandler := handler.NewReserveHandler(mailer, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"database": handler.PingerFunc(pool.Health),
		"redis":    handler.PingerFunc(redisClient.Ping),
	})

	requireAuth := middleware.RequireAuth(tokenManager, log)
	authLimit := middleware.AuthRateLimit(rateLimiter, 10, time.Minute, log)

	// 9. Setup HTTP routes
	mux := http.NewServeMux()
	mux.Handle("POST /signup", authLimit(http.HandlerFunc(authHandler.Signup)))
	mux.Handle("POST /login", authLimit(http.HandlerFunc(authHandler.Login)))

	mux.HandleFunc("POST /api/submit-pitch", pitchHandler.Submit)
	mux.HandleFunc("GET /api/pitches", pitchHandler.List)
	mux.Handle("PUT /api/pitches/{id}", requireAuth(http.HandlerFunc(pitchHandler.Transition)))

	mux.HandleFunc("POST /api/invest", leadsHandler.CreateInvestment)
	mux.HandleFunc("GET /api/investments", leadsHandler.ListInvestments)
	mux.HandleFunc("POST /api/community", leadsHandler.CreateCommunityLead)
	mux.HandleFunc("GET /api/community-leads", leadsHandler.ListCommunityLeads)
	mux.HandleFunc("POST /api/mentor-contact", leadsHandler.CreateMentorContact)
	mux.HandleFunc("GET /api/leads", leadsHandler.ListMentorContacts)
	mux.HandleFunc("POST /api/contact", leadsHandler.CreateContactMessage)
	mux.HandleFunc("GET /api/contact", leadsHandler.ListContactMessages)
	mux.Handle("POST /reserve", reserveHandler)
	mux.HandleFunc("POST /api/demo-register", leadsHandler.CreateDemoRegistration)
	mux.HandleFunc("GET /api/demo-registrations", leadsHandler.ListDemoRegistrations)

	mux.HandleFunc("GET /healthz", healthHandler.Live)
	mux.HandleFunc("GET /readyz", healthHandler.Ready)
	mux.Handle("/metrics", promhttp.Handler())

	// CORS middleware honoring configured origins
	handlerWithCORS := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(cfg.CORSAllowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else if len(cfg.CORSAllowedOrigins) > 0 {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowedOrigins[0])
		}
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})

	// Chain middleware: request ID -> metrics -> rate limit -> content type -> CORS -> mux
	rootHandler := withRequestID(
		metrics.HTTPMetricsMiddleware(
			middleware.RateLimit(rateLimiter, log)(
				middleware.ValidateJSONContentType(log)(handlerWithCORS),
			),
		),
		log,
	)

	// 10. Start the stats worker in background
	statsWorker := worker.NewStatsWorker(pitchRepo, log, time.Duration(cfg.StatsIntervalSeconds)*time.Second)
	go statsWorker.Start(ctx)

	// 11. Start HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      otelhttp.NewHandler(rootHandler, "http.server"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("server starting", slog.Int("port", cfg.ServerPort))

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.String("error", err.Error()))
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Info("shutdown signal received")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", slog.String("error", err.Error()))
	}

	cancel() // Stop stats worker
	rateLimiter.Stop()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown error", slog.String("error", err.Error()))
	}
	log.Info("server stopped")
}

type requestIDKey struct{}

// withRequestID attaches a request ID to the context and response headers for traceability
func withRequestID(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := generateRequestID()
		w.Header().Set("X-Request-ID", reqID)

		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		start := time.Now()

		next.ServeHTTP(w, r.WithContext(ctx))

		log.Info("request completed",
			slog.String("request_id", reqID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("duration_ms", time.Since(start)),
		)
	})
}

func originAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return false
	}
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

func generateRequestID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err == nil {
		return hex.EncodeToString(buf)
	}
	return fmt.Sprintf("req-%d", time.Now().UnixNano())
}
