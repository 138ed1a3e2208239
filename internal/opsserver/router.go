package opsserver

import (
	"context"
	"net/http"
	"time"

	"unistat-gateway/internal/config"
	"unistat-gateway/internal/sysinfo"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Snapshotter provides the host snapshot served by /api/system. The request
// context is passed through so router timeouts bound the collection.
type Snapshotter interface {
	Snapshot(ctx context.Context) sysinfo.Snapshot
}

type Server struct {
	cfg config.Config
	sys Snapshotter
}

// NewRouter builds the operational surface: health, system snapshot, and
// Prometheus metrics. It lives on its own listener so the raw stats port
// stays protocol-free.
func NewRouter(cfg config.Config, sys Snapshotter) (http.Handler, error) {
	s := &Server{cfg: cfg, sys: sys}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(3 * time.Second))

	if len(s.cfg.AllowedSubnets) > 0 {
		allow, err := newCIDRAllowlist(s.cfg.AllowedSubnets)
		if err != nil {
			return nil, err
		}
		r.Use(allow.middleware)
	}

	r.Get("/healthz", s.handleHealthz)
	r.Get("/api/system", s.handleSystem)
	r.Handle("/metrics", promhttp.Handler())

	return r, nil
}
