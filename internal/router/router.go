package router

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	mem "herd-analytics/internal/adapters/storage/memory"
	pg "herd-analytics/internal/adapters/storage/postgres"
	"herd-analytics/internal/adapters/storage/sqldb"
	"herd-analytics/internal/adapters/storage/sqlite"
	"herd-analytics/internal/adapters/upstream/vacapp"
	_ "herd-analytics/internal/docs"
	"herd-analytics/internal/domain/analytics"
	"herd-analytics/internal/domain/herd"
	"herd-analytics/internal/middleware"
	"herd-analytics/internal/platform/config"
	"herd-analytics/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => sin logs

	// Fuente del hato. Si es nil se usa memoria vacía (ver OpenHerdRepo).
	Herd herd.Repository

	// Tablas heurísticas; nil => analytics.DefaultConfig().
	Analytics *analytics.Config

	// Modo cuando el request no trae ?mode= (vacío => daily).
	DefaultMode analytics.Mode
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.BearerToken)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	repo := opts.Herd
	if repo == nil {
		repo = mem.NewHerdRepo()
	}

	tables := analytics.DefaultConfig()
	if opts.Analytics != nil {
		tables = *opts.Analytics
	}

	svc := analytics.NewService(repo, tables, log.With(map[string]any{"module": "analytics"}))
	if opts.DefaultMode != "" {
		svc.SetDefaultMode(opts.DefaultMode)
	}
	analytics.RegisterRoutes(r, svc)

	return r
}

// OpenHerdRepo elige la fuente del hato según la config, en este orden:
// API upstream, DB (sqlite o postgres), archivo de snapshot, memoria vacía.
// El closer libera la DB si se abrió una (no-op en otro caso).
func OpenHerdRepo(ctx context.Context, cfg *config.Config, log logger.Logger) (herd.Repository, func() error, error) {
	noop := func() error { return nil }
	if log == nil {
		log = logger.Nop()
	}
	if cfg == nil {
		return mem.NewHerdRepo(), noop, nil
	}

	if cfg.UpstreamBaseURL != "" {
		c, err := vacapp.NewClient(vacapp.Config{
			BaseURL: cfg.UpstreamBaseURL,
			Token:   cfg.UpstreamToken,
			Timeout: cfg.UpstreamTimeout,
		})
		if err != nil {
			return nil, noop, err
		}
		log.Info("herd source: upstream api", map[string]any{"base_url": cfg.UpstreamBaseURL})
		return c, noop, nil
	}

	if cfg.DBDSN != "" {
		db, err := openDB(ctx, cfg.DBDSN)
		if err != nil {
			return nil, noop, err
		}
		log.Info("herd source: database", map[string]any{"sqlite": sqlite.IsDSN(cfg.DBDSN)})
		return sqldb.NewHerdRepo(db), db.Close, nil
	}

	if cfg.SnapshotFile != "" {
		repo, err := mem.LoadSnapshotFile(cfg.SnapshotFile)
		if err != nil {
			return nil, noop, err
		}
		log.Info("herd source: snapshot file", map[string]any{"path": cfg.SnapshotFile})
		return repo, noop, nil
	}

	log.Warn("herd source: empty in-memory repo (no UPSTREAM_BASE_URL, DB_DSN or HERD_SNAPSHOT)", nil)
	return mem.NewHerdRepo(), noop, nil
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if sqlite.IsDSN(dsn) {
		path := sqlite.PathFromDSN(dsn)
		if path == "" {
			return nil, errors.New("sqlite dsn without path")
		}
		return sqlite.Open(path)
	}
	return pg.Open(ctx, dsn, pg.PoolOptions{})
}
