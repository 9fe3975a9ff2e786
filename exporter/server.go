package exporter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"i2pd-webconsole-exporter/config"
)

const readHeaderTimeout = 10 * time.Second

type Server struct {
	l    net.Listener
	srv  *http.Server
	errc chan error
}

// NewServer wires the exporter routes for cfg, scraping the page through f.
func NewServer(cfg *config.Config, f pageFetcher) *Server {
	return &Server{
		srv: &http.Server{
			Handler:           newMux(cfg, f),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		errc: make(chan error, 1),
	}
}

func newMux(cfg *config.Config, f pageFetcher) *http.ServeMux {
	m := newSelfMetrics()

	mux := http.NewServeMux()
	mux.Handle(cfg.MetricsPath, &metricsHandler{fetcher: f, metrics: m})
	mux.Handle(config.SelfMetricsPath, m.handler())
	mux.HandleFunc(config.HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc(config.LandingPath, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != config.LandingPath {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		w.Write([]byte(`<html>
			<head><title>i2pd Webconsole Exporter</title></head>
			<body>
			<h1>i2pd Webconsole Exporter</h1>
			<p><a href="` + cfg.MetricsPath + `">Metrics</a></p>
			</body>
			</html>`))
	})

	return mux
}

// Run listens on addr and serves in the background. Serving errors are
// reported on Err.
func (s *Server) Run(addr string) error {
	log.WithField("address", addr).Info("starting server")

	var err error
	s.l, err = net.Listen("tcp", addr)
	if err != nil {
		log.WithFields(log.Fields{
			"address": addr,
			"error":   err,
		}).Error("error creating listener")
		return err
	}

	go func() {
		if err := s.srv.Serve(s.l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithField("error", err).Error("unable to start service")
			s.errc <- err
		}
	}()

	return nil
}

// Addr is the address the server listens on once Run succeeded.
func (s *Server) Addr() net.Addr {
	return s.l.Addr()
}

// Err reports a failure of the serving goroutine.
func (s *Server) Err() <-chan error {
	return s.errc
}

// Stop shuts the server down, waiting for in-flight scrapes until ctx ends.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
