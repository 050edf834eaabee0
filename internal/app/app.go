package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	memrule "github.com/heartmarshall/edusphere-backend/internal/adapter/memory/rule"
	"github.com/heartmarshall/edusphere-backend/internal/config"
	"github.com/heartmarshall/edusphere-backend/internal/service/analysis"
	"github.com/heartmarshall/edusphere-backend/internal/service/rule"
	"github.com/heartmarshall/edusphere-backend/internal/transport/middleware"
)

// App holds the wired components of one process.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	rules   *memrule.Repo
	limiter *middleware.RateLimiter

	RuleService     *rule.Service
	AnalysisService *analysis.Service
}

// New loads the seed rules and wires the services. Call Close when done.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	seed, err := loadSeed(cfg.Rules)
	if err != nil {
		return nil, err
	}

	repo := memrule.New(seed)

	a := &App{
		cfg:             cfg,
		log:             logger,
		rules:           repo,
		RuleService:     rule.NewService(logger, repo, cfg.Rules),
		AnalysisService: analysis.NewService(logger, repo),
	}
	if cfg.RateLimit.Enabled {
		a.limiter = middleware.NewRateLimiter(cfg.RateLimit)
	}

	logger.Info("rule store ready",
		slog.Int("rules", repo.Count(context.Background())),
		slog.Int("seed_version", repo.SeedVersion()),
		slog.String("seed_path", cfg.Rules.SeedPath),
	)

	return a, nil
}

func loadSeed(cfg config.RulesConfig) (memrule.Seed, error) {
	if cfg.SeedPath == "" {
		seed, err := memrule.DefaultSeed()
		if err != nil {
			return memrule.Seed{}, fmt.Errorf("load embedded seed: %w", err)
		}
		return seed, nil
	}
	seed, err := memrule.LoadSeedFile(cfg.SeedPath)
	if err != nil {
		return memrule.Seed{}, fmt.Errorf("load seed file: %w", err)
	}
	return seed, nil
}

// Close releases background resources.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.cfg.Server.Addr(),
		Handler:      a.Handler(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Run is the server entry point: it builds the application from cfg and
// serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}
