package exporter

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i2pd-webconsole-exporter/config"
)

const testPage = "<b>Network status:</b> OK<br><b>Router Caps:</b> LR<br>"

func TestFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		w.Write([]byte(testPage))
	}))
	defer ts.Close()

	f := newTestFetcher(t, ts.URL+"/")
	page, err := f.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testPage, page)
}

func TestFetchNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "starting", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := newTestFetcher(t, ts.URL).Fetch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestFetchUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	_, err := newTestFetcher(t, ts.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchCanceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testPage))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFetcher(t, ts.URL).Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchWithSrv(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testPage))
	}))
	defer ts.Close()

	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	_, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)

	srv := startDNSServer(t, func(w dns.ResponseWriter, req *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(req)
		m.Answer = append(m.Answer, srvRR(req.Question[0].Name, 0, 0, uint16(p), "127.0.0.1."))
		w.WriteMsg(m)
	})

	cfg := config.Default()
	cfg.WebConsole = "http://i2pd.invalid:1/"
	cfg.Srv = srv

	f, err := NewFetcher(cfg)
	require.NoError(t, err)

	page, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testPage, page)
}

func newTestFetcher(t *testing.T, target string) *Fetcher {
	cfg := config.Default()
	cfg.WebConsole = target
	cfg.TimeoutSeconds = 5

	f, err := NewFetcher(cfg)
	require.NoError(t, err)
	return f
}
