package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"net"
	"net/url"
	"strconv"
	"time"

	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultWebConsole     = "http://127.0.0.1:7070"
	DefaultListenAddress  = "0.0.0.0:9700"
	DefaultTimeoutSeconds = 60
	DefaultMetricsPath    = "/metrics"
)

// Paths served by the exporter besides the metrics path.
const (
	HealthPath      = "/healthz"
	LandingPath     = "/"
	SelfMetricsPath = "/exporter-metrics"
)

// Environment variables overriding the file configuration.
const (
	EnvWebConsole     = "I2PD_WEB_CONSOLE"
	EnvListenAddress  = "METRICS_LISTEN_ADDR"
	EnvTimeoutSeconds = "HTTP_TIMEOUT_SECONDS"
	EnvMetricsPath    = "METRICS_PATH"
)

// Config represents the configuration for the exporter
type Config struct {
	WebConsole     string    `yaml:"web_console"`
	Srv            SrvRecord `yaml:"srv,omitempty"`
	ListenAddress  string    `yaml:"listen_address"`
	TimeoutSeconds int       `yaml:"timeout_seconds"`
	MetricsPath    string    `yaml:"metrics_path"`
}

// SrvRecord names a DNS SRV record pointing at the web console.
type SrvRecord struct {
	Record string    `yaml:"record"`
	Dns    DnsServer `yaml:"dns,omitempty"`
}

type DnsServer struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads YAML from reader and unmashals in Config
func Load(r io.Reader) (*Config, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	c := &Config{}
	err = yaml.Unmarshal(b, c)
	if err != nil {
		return nil, err
	}

	c.applyDefaults()
	return c, nil
}

// FromEnv overrides settings with the environment variables found by lookup,
// usually os.LookupEnv. An unusable timeout falls back to the default.
func (c *Config) FromEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvWebConsole); ok && v != "" {
		c.WebConsole = v
	}
	if v, ok := lookup(EnvListenAddress); ok && v != "" {
		c.ListenAddress = v
	}
	if v, ok := lookup(EnvMetricsPath); ok && v != "" {
		c.MetricsPath = v
	}
	if v, ok := lookup(EnvTimeoutSeconds); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			n = DefaultTimeoutSeconds
		}
		c.TimeoutSeconds = n
	}
}

// Timeout is the request timeout towards the web console.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks the settings needed to start the exporter.
func (c *Config) Validate() error {
	u, err := url.Parse(c.WebConsole)
	if err != nil {
		return fmt.Errorf("invalid web console url %q: %w", c.WebConsole, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid web console url %q: expected http(s)://host[:port]", c.WebConsole)
	}

	if _, _, err := net.SplitHostPort(c.ListenAddress); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.ListenAddress, err)
	}

	if c.MetricsPath == "" || c.MetricsPath[0] != '/' {
		return fmt.Errorf("invalid metrics path %q", c.MetricsPath)
	}
	switch c.MetricsPath {
	case LandingPath, HealthPath, SelfMetricsPath:
		return fmt.Errorf("invalid metrics path %q: reserved by the exporter", c.MetricsPath)
	}

	if c.Srv.Dns.Address != "" && (c.Srv.Dns.Port <= 0 || c.Srv.Dns.Port > 65535) {
		return fmt.Errorf("invalid srv dns port %d", c.Srv.Dns.Port)
	}
	if c.Srv.Dns.Address == "" && c.Srv.Dns.Port != 0 {
		return fmt.Errorf("srv dns port %d set without an address", c.Srv.Dns.Port)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.WebConsole == "" {
		c.WebConsole = DefaultWebConsole
	}
	if c.ListenAddress == "" {
		c.ListenAddress = DefaultListenAddress
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.MetricsPath == "" {
		c.MetricsPath = DefaultMetricsPath
	}
}
