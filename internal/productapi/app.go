// Package productapi implements the product catalog HTTP service: an
// in-memory seeded catalog, liveness/readiness probes and the legacy
// metrics exposition.
package productapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"productapi/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsToken string
}

// NewHandler wires middleware and the debug metrics endpoint around the
// server routes.
func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupDebugMetrics(r, deps)

	r.Mount("/", s.Routes())
	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	// browser clients on any origin may call the API
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

// setupDebugMetrics exposes the real prometheus registry. The public
// /metrics route is pinned to the legacy text layout, so the instrumented
// counters live under /debug/metrics behind a bearer token.
func setupDebugMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/debug/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}
