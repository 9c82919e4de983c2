package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	_ "wsld/docs"
	"wsld/internal/catalog"
	"wsld/internal/common/fsutil"
	"wsld/internal/config"
	"wsld/internal/host"
	"wsld/internal/httpapi"
	"wsld/internal/lifecycle"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (yaml/json/toml)")
	addr := flag.String("addr", "", "HTTP listen address, e.g. :8080")
	hostBackend := flag.String("host", "", "Host backend: cli or memory")
	wslBinary := flag.String("wsl-binary", "", "Path to the wsl binary (cli backend)")
	definitions := flag.String("definitions", "", "Definitions file; empty uses the embedded catalog")
	pollInterval := flag.Int("poll-interval", 0, "Running-state poll interval in seconds")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	logFormat := flag.String("log-format", "", "Log format: json or console")
	corsOrigins := flag.String("cors-origins", "", "Comma-separated allowed CORS origins (empty disables CORS)")
	maxBody := flag.Int64("max-body-bytes", 0, "Maximum request body size in bytes")
	flag.Parse()

	// Precedence: flag > environment > config file > default.
	var cfg config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			errLog := zerolog.New(os.Stderr)
			errLog.Fatal().Err(err).Str("path", *configPath).Msg("load config")
		}
	}
	cfg, err := config.FromEnv(cfg)
	if err != nil {
		errLog := zerolog.New(os.Stderr)
		errLog.Fatal().Err(err).Msg("read environment")
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "host":
			cfg.HostBackend = *hostBackend
		case "wsl-binary":
			cfg.WSLBinary = *wslBinary
		case "definitions":
			cfg.DefinitionsPath = *definitions
		case "poll-interval":
			cfg.PollIntervalSeconds = *pollInterval
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		case "cors-origins":
			cfg.CORSOrigins = *corsOrigins
		case "max-body-bytes":
			cfg.MaxBodyBytes = *maxBody
		}
	})
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.HostBackend == "" {
		cfg.HostBackend = "cli"
	}
	if cfg.PollIntervalSeconds <= 0 {
		cfg.PollIntervalSeconds = 60
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat)

	var med host.Mediator
	switch cfg.HostBackend {
	case "cli":
		bin := cfg.WSLBinary
		if bin == "" {
			bin = host.DefaultBinary()
		}
		med = host.NewCLI(host.CLIConfig{
			Binary: bin,
			Logger: logger.With().Str("component", "host").Logger(),
		})
	case "memory":
		med = host.NewMemory()
	default:
		logger.Fatal().Str("host", cfg.HostBackend).Msg("unknown host backend")
	}

	var src catalog.Source = catalog.Embedded()
	if cfg.DefinitionsPath != "" {
		p, err := fsutil.ExpandHome(cfg.DefinitionsPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("resolve definitions path")
		}
		if !fsutil.PathExists(p) {
			logger.Fatal().Str("path", p).Msg("definitions file does not exist")
		}
		src = catalog.FileSource{Path: p}
	}
	cat := catalog.New(src, catalog.WithLogger(logger.With().Str("component", "catalog").Logger()))

	mgr := lifecycle.NewWithConfig(lifecycle.Config{
		Host:         med,
		Catalog:      cat,
		PollInterval: time.Duration(cfg.PollIntervalSeconds) * time.Second,
		Logger:       logger.With().Str("component", "lifecycle").Logger(),
	})

	httpapi.SetLogger(logger.With().Str("component", "http").Logger())
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	if origins := splitCSV(cfg.CORSOrigins); len(origins) > 0 {
		httpapi.SetCORSOptions(true, origins,
			[]string{http.MethodGet, http.MethodPost, http.MethodOptions},
			[]string{"Accept", "Content-Type", "X-Log-Level"})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	httpapi.SetBaseContext(ctx)

	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(mgr)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", cfg.Addr).Str("host", cfg.HostBackend).
			Int("poll_interval_s", cfg.PollIntervalSeconds).Msg("wsld listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("graceful shutdown error")
		}
		mgr.Close()
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
	logger.Info().Msg("wsld stopped")
}

// newLogger builds the root logger. Unknown levels fall back to info.
func newLogger(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	var out io.Writer = os.Stderr
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// splitCSV splits a comma-separated list, trimming spaces and dropping
// empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
