package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/filament-ui/filament/pkg/reactive"
	"github.com/filament-ui/filament/pkg/view"
)

// Snapshot is the JSON document served by /snapshot and streamed over
// /live.
type Snapshot struct {
	Reactive       reactive.StatsSnapshot `json:"reactive"`
	ReconcileSteps int64                  `json:"reconcile_steps"`
	CollectedAt    time.Time              `json:"collected_at"`
}

// takeSnapshot samples the runtime counters.
func takeSnapshot() Snapshot {
	return Snapshot{
		Reactive:       reactive.Stats(),
		ReconcileSteps: view.ReconcileSteps(),
		CollectedAt:    time.Now(),
	}
}

// Config configures the inspector server.
type Config struct {
	// Addr is the listen address (default ":9470").
	Addr string

	// StreamInterval is the period between /live pushes (default 1s).
	StreamInterval time.Duration

	// Logger receives server lifecycle and stream errors.
	Logger zerolog.Logger

	// TracerName overrides the otel tracer name.
	TracerName string
}

// Server serves the inspector endpoints: GET /snapshot, GET /metrics,
// GET /live (WebSocket).
type Server struct {
	addr     string
	interval time.Duration
	log      zerolog.Logger
	router   chi.Router
	upgrader websocket.Upgrader
}

// NewServer builds an inspector server from cfg.
func NewServer(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":9470"
	}
	if cfg.StreamInterval <= 0 {
		cfg.StreamInterval = time.Second
	}

	s := &Server{
		addr:     cfg.Addr,
		interval: cfg.StreamInterval,
		log:      cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(Tracing(cfg.TracerName))
	r.Get("/snapshot", s.handleSnapshot)
	r.Get("/live", s.handleLive)
	r.Handle("/metrics", promhttp.Handler())
	s.router = r

	return s
}

// Handler returns the inspector's HTTP handler, for mounting into an
// existing server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info().Str("addr", s.addr).Msg("inspector listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleSnapshot serves a one-shot counter snapshot.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(takeSnapshot()); err != nil {
		s.log.Warn().Err(err).Msg("snapshot encode failed")
	}
}

// handleLive upgrades to WebSocket and pushes a snapshot every interval
// until the client goes away.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("live upgrade failed")
		return
	}
	defer conn.Close()

	// Drain control frames so pings and the close handshake work.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := conn.WriteJSON(takeSnapshot()); err != nil {
				s.log.Debug().Err(err).Msg("live client gone")
				return
			}
		}
	}
}
