package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orevault/orevault/internal/config"
	"github.com/orevault/orevault/internal/multiplier"
	"github.com/orevault/orevault/internal/reward"
	"github.com/orevault/orevault/internal/stats"
	"github.com/orevault/orevault/internal/storage"
	"github.com/orevault/orevault/internal/vein"
)

// Server is the HTTP surface: event ingest, player queries, admin
type Server struct {
	httpServer *http.Server
}

// NewServer wires the router. ticks may be nil when the detector runs
// on the wall clock; the tick-advance route is only mounted when the
// logical clock is live.
func NewServer(
	cfg *config.ServerConfig,
	engine reward.Engine,
	aggregator *stats.Aggregator,
	store storage.Store,
	multipliers *multiplier.Engine,
	ticks *vein.TickSource,
	reload ReloadFunc,
) *Server {
	r := chi.NewRouter()

	r.Use(authMiddleware(cfg.APIKey))
	r.Use(metricsMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handleHealthz())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/events/mining", handleMiningEvent(engine))

		if ticks != nil {
			r.Post("/ticks/advance", handleAdvanceTicks(ticks))
		}

		r.Route("/players/{id}", func(r chi.Router) {
			r.Get("/stats", handleGetStats(aggregator))
			r.Put("/settings/rewards", handleSetRewards(store))
			r.Get("/multiplier", handleGetMultiplier(multipliers))

			r.Route("/multipliers/temporary", func(r chi.Router) {
				r.Get("/", handleGetTemporaryMultiplier(multipliers))
				r.Post("/", handleGrantMultiplier(multipliers))
				r.Delete("/", handleRevokeMultiplier(multipliers))
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/reload", handleReload(reload))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
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
