// Command server runs the newsroom HTTP API.
//
//	@title						Newsroom API
//	@version					1.0
//	@description				Role-gated news, comments and users.
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@securityDefinitions.basic	BasicAuth
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	_ "github.com/newsdesk/newsroom/docs"
	"github.com/newsdesk/newsroom/internal/api"
	"github.com/newsdesk/newsroom/internal/core/facade"
	"github.com/newsdesk/newsroom/internal/core/service"
	"github.com/newsdesk/newsroom/internal/infrastructure/security"
	"github.com/newsdesk/newsroom/internal/pkg/config"
	"github.com/newsdesk/newsroom/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "newsroom",
	})
	if envErr != nil {
		log.Debug().Msg("no .env file found; relying on existing environment")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx := context.Background()

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	// --- Services ---
	newsService := service.NewNewsService(store.news, logger.Component("news_service"))
	commentService := service.NewCommentService(store.comments, logger.Component("comment_service"))
	userService := service.NewUserService(store.users, logger.Component("user_service"))

	// --- Security ---
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty; issued tokens are not secure")
	}
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	tokens := security.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)

	// --- Facades ---
	authFacade := facade.NewAuthFacade(userService, hasher, tokens, logger.Component("auth_facade"))
	deps := api.Dependencies{
		News:        facade.NewNewsFacade(newsService, commentService, logger.Component("news_facade")),
		Comments:    facade.NewCommentFacade(commentService, newsService, logger.Component("comment_facade")),
		Users:       facade.NewUserFacade(userService, newsService, commentService, hasher, logger.Component("user_facade")),
		Auth:        authFacade,
		Tokens:      tokens,
		Accounts:    userService,
		Backends:    store.pingers,
		MaxPageSize: cfg.MaxPageSize,
		Logger:      logger.Component("http"),
	}

	if cfg.Admin.Username != "" {
		if _, err := authFacade.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			return err
		}
	}

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage).Msg("newsroom API listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info().Msg("shutting down")
	return e.Shutdown(shutdownCtx)
}
