package exporter

import (
	"context"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"i2pd-webconsole-exporter/collector"
)

const errorBody = "Error retrieving metrics"

type pageFetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// metricsHandler fetches the web console on every request and answers with
// the rendered metrics document.
type metricsHandler struct {
	fetcher pageFetcher
	metrics *selfMetrics
}

func (h *metricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	begin := time.Now()

	page, err := h.fetcher.Fetch(r.Context())

	duration := time.Since(begin)
	h.metrics.observe(err == nil, duration.Seconds())

	w.Header().Set("Content-Type", collector.ContentType)
	if err != nil {
		log.WithFields(log.Fields{
			"duration": duration,
			"error":    err,
		}).Error("failed to fetch metrics")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, errorBody)
		return
	}

	log.WithField("duration", duration).Debug("fetched web console")

	w.WriteHeader(http.StatusOK)
	io.WriteString(w, collector.Render(collector.Extract(page)))
}
