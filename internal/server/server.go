package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/LuckySpin_Go/internal/achievement"
	"github.com/osse101/LuckySpin_Go/internal/handler"
	"github.com/osse101/LuckySpin_Go/internal/leaderboard"
	"github.com/osse101/LuckySpin_Go/internal/logger"
	"github.com/osse101/LuckySpin_Go/internal/metrics"
	"github.com/osse101/LuckySpin_Go/internal/slots"
	"github.com/osse101/LuckySpin_Go/internal/sse"
)

// Deps are the services the HTTP API is built on
type Deps struct {
	Slots        slots.Service
	Leaderboard  leaderboard.Service
	Achievements achievement.Service
	Hub          *sse.Hub

	// Readiness lists the dependencies /readyz pings. Nil entries are skipped.
	Readiness map[string]handler.HealthChecker

	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration
	ServiceName    string
	Version        string
}

type Server struct {
	httpServer *http.Server
	limiter    *RateLimiter
}

// NewServer creates a new Server instance
func NewServer(port int, deps Deps) *Server {
	limiter := NewRateLimiter(deps.RateLimit, deps.RateWindow)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(deps, limiter),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		limiter: limiter,
	}
}

// NewRouter wires middleware and routes. Chi middleware executes in the
// order defined, outermost first.
func NewRouter(deps Deps, limiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(deps.TrustedProxies, limiter))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Readiness))
	r.Get("/version", handler.HandleVersion(deps.ServiceName, deps.Version))
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	slotsHandler := handler.NewSlotsHandler(deps.Slots)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/spin", slotsHandler.HandleSpin)
		r.Get("/paytable", slotsHandler.HandleGetPaytable)

		r.Route("/autospin", func(r chi.Router) {
			r.Post("/start", slotsHandler.HandleStartAutoSpin)
			r.Post("/stop", slotsHandler.HandleStopAutoSpin)
		})

		r.Get("/balance", slotsHandler.HandleGetBalance)
		r.Post("/balance/reset", slotsHandler.HandleResetBalance)

		r.Get("/leaderboard", handler.HandleGetLeaderboard(deps.Leaderboard))
		r.Get("/achievements", handler.HandleGetAchievements(deps.Achievements))

		if deps.Hub != nil {
			r.Get("/events", sse.Handler(deps.Hub))
		}
	})

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the logging wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
