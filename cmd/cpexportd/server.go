package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	v1 "github.com/vmunix/cpexport/internal/api/v1"
	"github.com/vmunix/cpexport/internal/config"
	"github.com/vmunix/cpexport/internal/export"
	"github.com/vmunix/cpexport/internal/history"
	"github.com/vmunix/cpexport/internal/migrations"
	"github.com/vmunix/cpexport/internal/server"
	"github.com/vmunix/cpexport/internal/settings"
	"github.com/vmunix/cpexport/pkg/wpapi"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func openDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrations.Apply(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func runServer(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	db, err := openDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// === Stores ===
	settingsStore := settings.NewStore(db)
	historyStore := history.NewStore(db)

	// === Site client ===
	clientOpts := []wpapi.Option{
		wpapi.WithTimeout(cfg.Site.Timeout.Duration),
		wpapi.WithTermCacheTTL(cfg.Site.TermCacheTTL.Duration),
		wpapi.WithLogger(logger),
	}
	if cfg.Site.Username != "" {
		clientOpts = append(clientOpts, wpapi.WithCredentials(cfg.Site.Username, cfg.Site.AppPassword))
	}
	client := wpapi.New(cfg.Site.URL, clientOpts...)

	// === Export pipeline ===
	custom := make([]export.CustomType, 0, len(cfg.Site.CustomTypes))
	for _, ct := range cfg.Site.CustomTypes {
		custom = append(custom, export.CustomType{
			PostType: ct.PostType,
			RESTBase: export.ContentType(ct.RESTBase),
			Label:    ct.Label,
		})
	}
	registry, err := export.NewRegistry(custom...)
	if err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	exportLog := logger.With("component", "export")
	lister := export.NewRESTLister(client, cfg.Site.EmbedEnabled())
	comments := export.NewCommentIndex(registry, lister, exportLog)
	builder := export.NewBuilder(registry, client, comments, exportLog)
	acc := export.NewAccumulator(lister, settingsStore, exportLog)

	exporterOpts := []export.ExporterOption{export.WithHistory(historyStore)}
	if cfg.Site.Name != "" {
		exporterOpts = append(exporterOpts, export.WithSiteName(cfg.Site.Name))
	} else {
		exporterOpts = append(exporterOpts, export.WithSiteNamer(client))
	}
	exporter := export.NewExporter(registry, builder, acc, exportLog, exporterOpts...)

	// === HTTP API ===
	apiServer, err := v1.New(v1.ServerDeps{
		Exporter: exporter,
		Settings: settingsStore,
		Types:    registry,
		History:  historyStore,
		Site:     client,
	}, v1.Config{
		APIKey:  cfg.Server.APIKey,
		Version: version,
		SiteURL: client.URL(),
	}, logger.With("component", "api"))
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}

	mux := http.NewServeMux()
	apiServer.RegisterRoutes(mux)

	// === Run ===
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	runner := server.NewRunner(server.Config{
		Addr:            addr,
		RefreshInterval: cfg.Site.RefreshInterval.Duration,
	}, logRequests(mux, logger.With("component", "http")), registry, client, logger.With("component", "runner"))

	logger.Info("starting cpexportd", "version", version, "addr", addr, "site", client.URL())
	if err := runner.Run(ctx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
