package app

import (
	"context"
	"log/slog"

	httpapp "pro_portfolio/internal/app/http"
	"pro_portfolio/internal/config"
	"pro_portfolio/internal/repository"
	authservice "pro_portfolio/internal/services/auth_service"
	blogservice "pro_portfolio/internal/services/blog_service"
	contactservice "pro_portfolio/internal/services/contact_service"
	portfolioservice "pro_portfolio/internal/services/portfolio_service"
	redisapp "pro_portfolio/internal/storage/redis"
	httprouters "pro_portfolio/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server

	log   *slog.Logger
	repo  *repository.Repository
	redis *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) *App {
	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		panic(err)
	}

	var (
		limiter     repository.RateLimiter
		redisClient *redisapp.Client
	)
	if cfg.Redis.RedisAddr != "" {
		redisClient = redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
		if err := redisClient.HealthCheck(ctx); err != nil {
			panic(err)
		}
		limiter = repository.NewRedisRateLimiter(redisClient)
		log.Info("rate limiter backed by redis", slog.String("addr", cfg.Redis.RedisAddr))
	} else {
		limiter = repository.NewMemoryRateLimiter()
		log.Info("rate limiter backed by in-process cache")
	}

	portfolioService := portfolioservice.NewPortfolioService(log, repo.Project, repo.Skill, repo.Experience, repo.Education)
	blogService := blogservice.NewBlogService(log, repo.Blog)
	contactService := contactservice.NewContactService(log, repo.Contact, limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window)
	authService := authservice.NewAuthService(log, cfg.Admin.Email, cfg.Admin.PasswordHash, cfg.Secret, cfg.TokenTTL)

	routers := httprouters.NewRouter(log, portfolioService, blogService, contactService, authService)

	server := httpapp.New(log, cfg.Secret, cfg.HTTP.Host, cfg.HTTP.Port, cfg.Secret, routers)

	return &App{
		HTTPServer: server,
		log:        log,
		repo:       repo,
		redis:      redisClient,
	}
}

func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		a.log.Error("failed to stop http server", slog.Any("error", err))
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("failed to close redis client", slog.Any("error", err))
		}
	}

	a.repo.Close()
}
