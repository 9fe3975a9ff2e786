package exporter

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"

	"i2pd-webconsole-exporter/config"
)

// Fetcher downloads the web console page.
type Fetcher struct {
	url    *url.URL
	srv    config.SrvRecord
	client *http.Client
}

// NewFetcher creates a fetcher for the configured web console.
func NewFetcher(cfg *config.Config) (*Fetcher, error) {
	u, err := url.Parse(cfg.WebConsole)
	if err != nil {
		return nil, fmt.Errorf("invalid web console url: %w", err)
	}

	return &Fetcher{
		url: u,
		srv: cfg.Srv,
		client: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}, nil
}

// Fetch returns the body of the web console page. Transport errors, non 2xx
// responses and unreadable bodies are reported as errors.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	target, err := f.target(ctx)
	if err != nil {
		return "", err
	}

	log.WithField("url", target).Debug("fetching web console")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to fetch HTML content: HTTP %s", resp.Status)
	}

	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(b), nil
}

func (f *Fetcher) target(ctx context.Context) (string, error) {
	if f.srv.Record == "" {
		return f.url.String(), nil
	}

	host, err := resolveSrv(ctx, f.srv)
	if err != nil {
		return "", err
	}

	u := *f.url
	u.Host = host
	return u.String(), nil
}
