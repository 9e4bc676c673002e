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

	"github.com/readlingo/readlingo-backend/internal/adapter/postgres"
	articlerepo "github.com/readlingo/readlingo-backend/internal/adapter/postgres/article"
	clickedwordrepo "github.com/readlingo/readlingo-backend/internal/adapter/postgres/clickedword"
	meaningrepo "github.com/readlingo/readlingo-backend/internal/adapter/postgres/meaning"
	sessionrepo "github.com/readlingo/readlingo-backend/internal/adapter/postgres/session"
	userrepo "github.com/readlingo/readlingo-backend/internal/adapter/postgres/user"
	vocabrepo "github.com/readlingo/readlingo-backend/internal/adapter/postgres/vocabulary"
	"github.com/readlingo/readlingo-backend/internal/auth"
	"github.com/readlingo/readlingo-backend/internal/config"
	"github.com/readlingo/readlingo-backend/internal/lexicon"
	articlesvc "github.com/readlingo/readlingo-backend/internal/service/article"
	authsvc "github.com/readlingo/readlingo-backend/internal/service/auth"
	"github.com/readlingo/readlingo-backend/internal/service/difficulty"
	readingsvc "github.com/readlingo/readlingo-backend/internal/service/reading"
	"github.com/readlingo/readlingo-backend/internal/service/spelling"
	usersvc "github.com/readlingo/readlingo-backend/internal/service/user"
	vocabsvc "github.com/readlingo/readlingo-backend/internal/service/vocabulary"
	"github.com/readlingo/readlingo-backend/internal/transport/middleware"
	"github.com/readlingo/readlingo-backend/internal/transport/rest"
)

const requestsPerMinute = 300

// Run is the application entry point. It loads configuration, builds the
// lexicon, connects to the database, wires services and handlers, and runs
// the HTTP server until ctx is cancelled.
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

	lex, err := lexicon.Build()
	if err != nil {
		return fmt.Errorf("build lexicon: %w", err)
	}
	logger.Info("lexicon built", slog.Int("words", lex.Size()))

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	articles := articlerepo.New(pool)
	vocab := vocabrepo.New(pool)
	meanings := meaningrepo.New(pool)
	clicked := clickedwordrepo.New(pool)
	sessions := sessionrepo.New(pool)

	scorer := difficulty.NewScorer(lex)
	speller := spelling.NewSuggester(lex)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users)
	articleService := articlesvc.NewService(logger, articles, clicked, scorer, speller,
		&http.Client{Timeout: cfg.Import.FetchTimeout})
	vocabService := vocabsvc.NewService(logger, vocab, meanings, users, lex)
	readingService := readingsvc.NewService(logger, articles, vocab, clicked, meanings, sessions, users, txManager)

	mux := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Auth:    rest.NewAuthHandler(authService, logger),
		User:    rest.NewUserHandler(userService, logger),
		Article: rest.NewArticleHandler(articleService, logger),
		Reading: rest.NewReadingHandler(readingService, logger),
		Vocab:   rest.NewVocabHandler(vocabService, logger),
		Tools:   rest.NewToolsHandler(scorer, speller, logger),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		// After Auth so authenticated callers are limited per user.
		rateLimiter.Limit(requestsPerMinute),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
