package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/conceptdeck-backend/internal/adapter/cache"
	"github.com/heartmarshall/conceptdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/conceptdeck-backend/internal/adapter/postgres/concept"
	"github.com/heartmarshall/conceptdeck-backend/internal/adapter/postgres/learningrecord"
	"github.com/heartmarshall/conceptdeck-backend/internal/adapter/postgres/session"
	streakrepo "github.com/heartmarshall/conceptdeck-backend/internal/adapter/postgres/streak"
	"github.com/heartmarshall/conceptdeck-backend/internal/auth"
	"github.com/heartmarshall/conceptdeck-backend/internal/config"
	"github.com/heartmarshall/conceptdeck-backend/internal/service/content"
	"github.com/heartmarshall/conceptdeck-backend/internal/service/streak"
	"github.com/heartmarshall/conceptdeck-backend/internal/service/study"
	"github.com/heartmarshall/conceptdeck-backend/internal/service/study/sm2"
	"github.com/heartmarshall/conceptdeck-backend/internal/transport/middleware"
	"github.com/heartmarshall/conceptdeck-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	conceptRepo := concept.New(pool)
	conceptCache := cache.NewConcepts(conceptRepo, cfg.Study.ConceptCacheSize, cfg.Study.ConceptCacheTTL)

	streakSvc := streak.NewService(logger, streakrepo.New(pool), txm, nil)
	studySvc := study.NewService(
		logger,
		learningrecord.New(pool),
		conceptCache,
		session.New(pool),
		streakSvc,
		studyConfig(cfg),
	)
	contentSvc := content.NewService(logger, conceptRepo, conceptCache)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, studySvc, BuildVersion()),
		Study:   rest.NewStudyHandler(studySvc, logger),
		Streak:  rest.NewStreakHandler(streakSvc, logger),
		Content: rest.NewContentHandler(contentSvc, logger),
	})

	var rateLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, time.Minute)
		defer limiter.Stop()
		rateLimit = limiter.Middleware()
	}

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	reaper, err := NewReaper(logger, studySvc, cfg.Study.ReapInterval)
	if err != nil {
		return err
	}
	reaper.Start()
	defer reaper.Stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}
	reaper.Stop()
	studySvc.CompleteAll(shutdownCtx)

	return nil
}

func studyConfig(cfg *config.Config) study.Config {
	return study.Config{
		SRS: sm2.Params{
			DefaultEase: cfg.SRS.DefaultEaseFactor,
			MinEase:     cfg.SRS.MinEaseFactor,
		},
		NewLimit:         cfg.Study.NewLimit,
		QuizLimit:        cfg.Study.QuizLimit,
		StreakMinReviews: cfg.Study.StreakMinReviews,
		MaxRetryPasses:   cfg.Study.MaxRetryPasses,
		IdleTimeout:      cfg.Study.IdleTimeout,
	}
}
