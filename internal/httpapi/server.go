package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/sitehealth/internal/health"
	apimw "github.com/hamed0406/sitehealth/internal/httpapi/middleware"
)

// Server exposes the health-check engine over HTTP. It holds no state
// between requests beyond the checker's connection pool.
type Server struct {
	Logger   *zap.Logger
	Checker  health.Checker
	Defaults health.Options
}

func NewServer(l *zap.Logger, c health.Checker, defaults health.Options) *Server {
	return &Server{Logger: l, Checker: c, Defaults: defaults}
}

// Router assembles the route tree. Single checks accept any configured
// key; batch checks need an admin key because they fan out traffic.
func (s *Server) Router(keys apimw.Keys, allowedOrigins []string, reqPerMin, burst int) http.Handler {
	r := chi.NewRouter()

	if len(allowedOrigins) == 0 {
		r.Use(cors.AllowAll().Handler)
	} else {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", "X-API-Key"},
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RateLimit(reqPerMin, burst))
		r.With(apimw.RequireAny(keys)).Post("/api/check", s.handleCheck)
		r.With(apimw.RequireAdmin(keys)).Post("/api/check/batch", s.handleCheckBatch)
	})

	return r
}
