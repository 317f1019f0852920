package main

import (
	"context"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskhub/taskhub/modules/project"
	"github.com/taskhub/taskhub/modules/user"
	"github.com/taskhub/taskhub/pkg/config"
	"github.com/taskhub/taskhub/pkg/email"
	"github.com/taskhub/taskhub/pkg/httpserver"
	"github.com/taskhub/taskhub/pkg/logger"
	"github.com/taskhub/taskhub/pkg/pg"
	"github.com/taskhub/taskhub/pkg/ratelimit"
	"github.com/taskhub/taskhub/pkg/redis"
	"github.com/taskhub/taskhub/storage/postgres"
	"github.com/taskhub/taskhub/svc/identity"
	"github.com/taskhub/taskhub/svc/tracker"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`

	HTTP     httpserver.Config
	PG       pg.Config
	Redis    redis.Config
	Email    email.Config
	Identity identity.Config

	AuthRateLimit       int           `env:"AUTH_RATE_LIMIT" envDefault:"10"`
	AuthRateLimitWindow time.Duration `env:"AUTH_RATE_LIMIT_WINDOW" envDefault:"1m"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Environment, "taskhub"),
	)
	logger.SetAsDefault(log)

	ctx := context.Background()

	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		log.Error("database connect failed", logger.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
		log.Error("migrations failed", logger.Error(err))
		os.Exit(1)
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Error("redis connect failed", logger.Error(err))
		os.Exit(1)
	}
	defer redisClient.Close()

	store := postgres.New(pool)

	sender, err := newEmailSender(cfg.Email)
	if err != nil {
		log.Error("email sender init failed", logger.Error(err))
		os.Exit(1)
	}

	identitySvc, err := identity.New(store.Users, sender, cfg.Identity,
		identity.WithLogger(log.With(logger.Component("identity"))),
	)
	if err != nil {
		log.Error("identity service init failed", logger.Error(err))
		os.Exit(1)
	}

	trackerSvc, err := tracker.New(store.Tracker,
		tracker.WithLogger(log.With(logger.Component("tracker"))),
	)
	if err != nil {
		log.Error("tracker service init failed", logger.Error(err))
		os.Exit(1)
	}

	limiterStore, err := ratelimit.NewRedisStore(redisClient, "taskhub:ratelimit")
	if err != nil {
		log.Error("rate limit store init failed", logger.Error(err))
		os.Exit(1)
	}
	authLimiter, err := ratelimit.NewFixedWindow(limiterStore, cfg.AuthRateLimit, cfg.AuthRateLimitWindow)
	if err != nil {
		log.Error("rate limiter init failed", logger.Error(err))
		os.Exit(1)
	}

	userModule := user.New(identitySvc,
		user.WithRateLimiter(authLimiter),
		user.WithLogger(log.With(logger.Component("user"))),
	)
	projectModule := project.New(trackerSvc, identitySvc.TokenVerifier(),
		project.WithLogger(log.With(logger.Component("project"))),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(ctx, log))
	r.Get("/ready", httpserver.HealthCheckHandler(ctx, log,
		pg.Healthcheck(pool),
		redis.Healthcheck(redisClient),
	))

	r.Mount("/api/user", userModule.Handle())
	r.Mount("/api/project", projectModule.Handle())

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func newEmailSender(cfg email.Config) (email.EmailSender, error) {
	if cfg.PostmarkServerToken == "" {
		return email.NewDevSender(cfg.DevSenderDir), nil
	}
	return email.NewPostmarkClient(cfg)
}
