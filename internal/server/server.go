// Package server exposes the match engine over WebSocket as a small
// synchronous message surface: validate, play, get_state, reset.
package server

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server accepts WebSocket clients and routes them to the match service.
type Server struct {
	cfg      *Config
	logger   *log.Logger
	service  *Service
	registry *prometheus.Registry
	upgrader websocket.Upgrader

	mu          sync.Mutex
	connections map[*Connection]struct{}

	httpServer *http.Server
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewServer creates a server around an already-constructed service. The
// registry carries the service metrics and is served at /metrics.
func NewServer(cfg *Config, service *Service, registry *prometheus.Registry, logger *log.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		cfg:      cfg,
		logger:   logger.WithPrefix("server"),
		service:  service,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The service carries no credentials and game state is
			// per-session, so cross-origin upgrades are allowed.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		connections: make(map[*Connection]struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// NewFromConfig builds a service and server pair from config with the
// given RNG. Convenience for the common wiring in cmd and tests.
func NewFromConfig(cfg *Config, rng *rand.Rand, logger *log.Logger, opts ...ServiceOption) (*Server, *Service) {
	registry := prometheus.NewRegistry()
	service := NewService(cfg, logger, rng, NewMetrics(registry), opts...)
	return NewServer(cfg, service, registry, logger), service
}

// Start begins serving on the given address. It blocks until Shutdown or a
// listen error.
func (s *Server) Start(addr string) error {
	s.service.Start(s.ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	s.httpServer = &http.Server{Addr: addr, Handler: mux}
	s.logger.Info("starting match server", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting clients and closes live connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close()
	}
	s.mu.Unlock()

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	sessionID, err := s.service.CreateSession()
	if err != nil {
		s.logger.Error("failed to open session", "error", err)
		_ = wsConn.Close()
		return
	}

	conn := NewConnection(wsConn, s.service, sessionID, s.logger)

	s.mu.Lock()
	s.connections[conn] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("client connected", "total", total)

	conn.Start()

	go func() {
		<-conn.Done()
		s.service.CloseSession(sessionID)
		s.mu.Lock()
		delete(s.connections, conn)
		total := len(s.connections)
		s.mu.Unlock()
		s.logger.Info("client disconnected", "total", total)
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "OK")
}
