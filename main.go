package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/common/version"
	log "github.com/sirupsen/logrus"

	"i2pd-webconsole-exporter/config"
	"i2pd-webconsole-exporter/exporter"
)

const (
	programName   = "i2pd_webconsole_exporter"
	envLogLevel   = "LOG_LEVEL"
	shutdownGrace = 10 * time.Second
)

var (
	cfgFile   = flag.String("config", "", "config file (YAML), environment variables take precedence")
	logLevel  = flag.String("log-level", "info", "log level")
	logFormat = flag.String("log-format", "text", "log format (text|json)")
	ver       = flag.Bool("version", false, "find the version of binary")
)

func main() {
	flag.Parse()

	if *ver {
		fmt.Println(version.Print(programName))
		os.Exit(0)
	}

	if err := configureLog(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.WithError(err).Fatal("could not load configuration")
	}

	if err := run(cfg); err != nil {
		log.WithError(err).Fatal("exporter failed")
	}
}

func configureLog() error {
	level := *logLevel
	if v, ok := os.LookupEnv(envLogLevel); ok && v != "" {
		level = v
	}

	l, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(l)

	switch *logFormat {
	case "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", *logFormat)
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()

	if *cfgFile != "" {
		f, err := os.Open(*cfgFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		cfg, err = config.Load(f)
		if err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", *cfgFile, err)
		}
	}

	cfg.FromEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	f, err := exporter.NewFetcher(cfg)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"version": version.Version,
		"listen":  cfg.ListenAddress,
		"target":  cfg.WebConsole,
		"srv":     cfg.Srv.Record,
		"timeout": cfg.Timeout(),
	}).Info("starting i2pd webconsole exporter")

	s := exporter.NewServer(cfg, f)
	if err := s.Run(cfg.ListenAddress); err != nil {
		return err
	}
	log.WithField("address", fmt.Sprintf("http://%s%s", s.Addr(), cfg.MetricsPath)).Info("listening")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, shutting down")
	case err := <-s.Err():
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.Stop(shutdownCtx)
}
