// Package httpapi wires the HTTP transport (Gin) to the appointment service,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, and rate limiting, and optionally serves the
// pre-built booking front-end bundle.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/rohithrjnr/go-appointment-backend/docs"
	"github.com/rohithrjnr/go-appointment-backend/internal/config"
	"github.com/rohithrjnr/go-appointment-backend/internal/domain"
	"github.com/rohithrjnr/go-appointment-backend/internal/http/handlers"
	"github.com/rohithrjnr/go-appointment-backend/internal/http/middleware"
	"github.com/rohithrjnr/go-appointment-backend/internal/repo"
	"github.com/rohithrjnr/go-appointment-backend/internal/services"
)

// apptRepoShim adapts the repository free functions to the
// services.AppointmentRepo interface expected by the AppointmentService.
// This keeps services decoupled from the concrete repo package while reusing
// existing functions.
type apptRepoShim struct{}

// CreateAppointment proxies repo.CreateAppointment.
func (apptRepoShim) CreateAppointment(ctx context.Context, db *gorm.DB, name, phone, date, slot string) (*domain.Appointment, error) {
	return repo.CreateAppointment(ctx, db, name, phone, date, slot)
}

// ListAppointments proxies repo.ListAppointments.
func (apptRepoShim) ListAppointments(ctx context.Context, db *gorm.DB) ([]domain.Appointment, error) {
	return repo.ListAppointments(ctx, db)
}

// ListAppointmentsByDate proxies repo.ListAppointmentsByDate.
func (apptRepoShim) ListAppointmentsByDate(ctx context.Context, db *gorm.DB, date string) ([]domain.Appointment, error) {
	return repo.ListAppointmentsByDate(ctx, db, date)
}

// GetAppointmentBySlot proxies repo.GetAppointmentBySlot.
func (apptRepoShim) GetAppointmentBySlot(ctx context.Context, db *gorm.DB, date, slot string) (*domain.Appointment, error) {
	return repo.GetAppointmentBySlot(ctx, db, date, slot)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, health and metrics endpoints, the booking API,
// and (when configured) the static front-end bundle.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing (phone numbers)
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per client IP)
//  8. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction (the ledger holds phone numbers)
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (64 KiB; booking payloads are tiny)
	r.Use(limitBody(64 << 10))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured; the
	// original deployment serves the bundle cross-origin during development)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
	}))

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (behind a flag; dev/staging only)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: service ← repo/db
	apptSvc := services.NewAppointmentService(db, apptRepoShim{})
	h := handlers.New(apptSvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api"
	api := groupWithPrefix(r, apiBase)
	{
		api.GET("/slots", h.GetSlots)
		api.GET("/appointments", h.ListAppointments)
		api.POST("/book", h.BookAppointment)
	}

	registerFallbacks(r, cfg)
}

// registerFallbacks installs the NoRoute/NoMethod handlers. API-shaped paths
// get the JSON error envelope; when a static bundle is configured, any other
// unmatched GET serves the bundle (existing file, or index.html so client-side
// routing works).
func registerFallbacks(r *gin.Engine, cfg config.Config) {
	staticDir := strings.TrimSpace(cfg.StaticDir)

	serveBundle := func(c *gin.Context) bool {
		if staticDir == "" || c.Request.Method != http.MethodGet {
			return false
		}
		// Never shadow the API or operational endpoints.
		p := c.Request.URL.Path
		for _, prefix := range []string{cfg.APIBasePath + "/", "/metrics", "/health", "/swagger"} {
			if strings.HasPrefix(p, prefix) {
				return false
			}
		}
		clean := filepath.Join(staticDir, filepath.Clean("/"+p))
		if st, err := os.Stat(clean); err == nil && !st.IsDir() {
			c.File(clean)
			return true
		}
		c.File(filepath.Join(staticDir, "index.html"))
		return true
	}

	if staticDir != "" {
		// Compress bundle assets; API responses are small enough to skip.
		r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{cfg.APIBasePath})))
	}

	r.NoRoute(func(c *gin.Context) {
		if serveBundle(c) {
			return
		}
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
