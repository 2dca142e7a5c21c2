package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/homeaid/care-portal/internal/api"
	"github.com/homeaid/care-portal/internal/api/handler"
	"github.com/homeaid/care-portal/internal/api/metrics"
	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
	"github.com/homeaid/care-portal/internal/core/service"
	"github.com/homeaid/care-portal/internal/infrastructure/db/memory"
	mongodb "github.com/homeaid/care-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/homeaid/care-portal/internal/infrastructure/db/redis"
	"github.com/homeaid/care-portal/internal/infrastructure/queue"
	"github.com/homeaid/care-portal/internal/infrastructure/session"
	"github.com/homeaid/care-portal/internal/pkg/config"
	"github.com/homeaid/care-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Home Aid Care Portal API
// @version      1.0
// @description  Screen API for the Home Aid staff portal.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "careportal"})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "careportal",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("careportal stopped")
	}
}

// backends are the connections opened for the configured stores.
type backends struct {
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
	redis       *goredis.Client
}

func (b *backends) close(ctx context.Context, log zerolog.Logger) {
	if b.mongoClient != nil {
		if err := b.mongoClient.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}
}

func connect(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backends, error) {
	b := &backends{}
	if cfg.NeedsMongo() {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:         cfg.Mongo.URI,
			Database:    cfg.Mongo.Database,
			MaxPoolSize: cfg.Mongo.MaxPoolSize,
			Timeout:     cfg.Mongo.Timeout,
		})
		if err != nil {
			return nil, err
		}
		b.mongoClient, b.mongoDB = client, db
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")
	}
	if cfg.NeedsRedis() {
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
			Timeout:  cfg.Redis.Timeout,
		})
		if err != nil {
			b.close(ctx, log)
			return nil, err
		}
		b.redis = client
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}
	return b, nil
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	conns, err := connect(ctx, cfg, log)
	if err != nil {
		return err
	}

	// --- Identity backend ---
	var (
		store ports.CredentialStore
		demo  ports.DemoDirectory
		sink  ports.AuditSink = queue.NewLogSink(logger.Component("audit"))
	)
	switch cfg.Auth.Backend {
	case config.BackendMongo:
		repo := mongodb.NewCredentialRepository(conns.mongoDB)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
		if cfg.IsDevelopment() {
			n, err := repo.SeedIfEmpty(ctx, seedCredentials(memory.DefaultAccounts))
			if err != nil {
				return err
			}
			if n > 0 {
				log.Info().Int("accounts", n).Msg("seeded credentials")
			}
		}
		store = repo
		sink = mongodb.NewAuditRepository(conns.mongoDB)
	default:
		mem, err := memory.NewCredentialStore(memory.DefaultAccounts)
		if err != nil {
			return err
		}
		store = mem
		if cfg.DemoLoginEnabled() {
			demo = mem
		}
	}

	// --- Lockout and revocation ---
	var (
		limiter     ports.AttemptLimiter
		revocations ports.RevocationList
	)
	switch cfg.Auth.LimiterBackend {
	case config.BackendRedis:
		limiter = redisdb.NewAttemptLimiter(conns.redis, cfg.Auth.MaxFailures, cfg.Auth.LockoutWindow)
		revocations = redisdb.NewRevocationList(conns.redis)
	default:
		limiter = memory.NewAttemptLimiter(cfg.Auth.MaxFailures, cfg.Auth.LockoutWindow)
		revocations = memory.NewRevocationList()
	}

	// --- Audit pipeline ---
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, sink, logger.Component("audit"),
		queue.WithDropHandler(func(ports.AuditEvent) { metrics.AuditEventsDroppedTotal.Inc() }),
	)
	dispatcher.Start()

	// --- Services ---
	codec, err := session.NewCodec(cfg.Session.Codec, cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		return err
	}

	authOpts := []service.AuthOption{
		service.WithAuditPublisher(dispatcher),
		service.WithLatency(cfg.Auth.Latency),
		service.WithAuthLogger(logger.Component("auth")),
	}
	if cfg.Auth.MaxFailures > 0 {
		authOpts = append(authOpts, service.WithAttemptLimiter(limiter))
	}
	auth := service.NewAuthService(store, authOpts...)
	sessions := service.NewSessionService(codec, revocations, dispatcher, cfg.Session.TTL, logger.Component("session"))
	screens := service.NewScreenRegistry(auth, sessions, 0)

	ready := map[string]handler.Pinger{}
	if conns.mongoClient != nil {
		ready["mongo"] = mongodb.Pinger{Client: conns.mongoClient}
	}
	if conns.redis != nil {
		ready["redis"] = redisdb.Pinger{Client: conns.redis}
	}

	e := api.NewRouter(api.Dependencies{
		Screens:    screens,
		Sessions:   sessions,
		Dashboards: service.NewDashboardService(memory.NewDashboardRepository()),
		Schedule:   service.NewScheduleService(memory.NewScheduleRepository(memory.DefaultVisits)),
		Demo:       demo,
		Ready:      ready,
		Cookie: handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: !cfg.IsDevelopment(),
		},
		LoginRate:     cfg.Auth.RatePerSecond,
		Logger:        logger.Component("http"),
		EnableSwagger: cfg.IsDevelopment(),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("session_codec", cfg.Session.Codec).Bool("demo_login", demo != nil).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("audit dispatcher close")
	}
	conns.close(shutdownCtx, log)

	return serveErr
}

func seedCredentials(accounts []memory.Account) []domain.Credential {
	out := make([]domain.Credential, len(accounts))
	for i, a := range accounts {
		out[i] = domain.Credential{Email: a.Email, Password: a.Password, Role: a.Role, Name: a.Name}
	}
	return out
}
