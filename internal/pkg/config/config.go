package config

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	EnvDevelopment = "development"

	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"

	CodecJWT   = "jwt"
	CodecPlain = "plain"

	devSessionSecret = "dev-only-session-secret"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Auth    AuthConfig
	Audit   AuditConfig

	Mongo MongoConfig
	Redis RedisConfig
}

type SessionConfig struct {
	Secret     string        `env:"SESSION_SECRET"`
	TTL        time.Duration `env:"SESSION_TTL,    default=12h"`
	CookieName string        `env:"SESSION_COOKIE, default=homeaid_session"`
	Codec      string        `env:"SESSION_CODEC,  default=jwt"`
}

type AuthConfig struct {
	Backend        string        `env:"AUTH_BACKEND,         default=memory"`
	Latency        time.Duration `env:"AUTH_LATENCY,         default=0s"`
	MaxFailures    int           `env:"LOGIN_MAX_FAILURES,   default=5"`
	LockoutWindow  time.Duration `env:"LOGIN_LOCKOUT_WINDOW, default=15m"`
	RatePerSecond  float64       `env:"LOGIN_RATE_PER_SEC,   default=5"`
	LimiterBackend string        `env:"LIMITER_BACKEND,      default=memory"`
	DemoLogin      string        `env:"DEMO_LOGIN"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

type MongoConfig struct {
	URI         string        `env:"MONGO_URI,           default=mongodb://localhost:27017"`
	Database    string        `env:"MONGO_DB,            default=homeaid"`
	MaxPoolSize uint64        `env:"MONGO_MAX_POOL_SIZE, default=0"`
	Timeout     time.Duration `env:"MONGO_TIMEOUT,       default=10s"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	PoolSize int           `env:"REDIS_POOL_SIZE, default=0"`
	Timeout  time.Duration `env:"REDIS_TIMEOUT,   default=5s"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration from a fixed map. Used by tests.
func LoadFrom(ctx context.Context, env map[string]string) (*Config, error) {
	return load(ctx, envconfig.MapLookuper(env))
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Session.Secret == "" && cfg.IsDevelopment() {
		cfg.Session.Secret = devSessionSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the service cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.Session.Secret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required outside development"))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	switch c.Session.Codec {
	case CodecJWT:
	case CodecPlain:
		if !c.IsDevelopment() {
			errs = append(errs, errors.New("SESSION_CODEC=plain is unsigned and only allowed in development"))
		}
	default:
		errs = append(errs, fmt.Errorf("SESSION_CODEC must be %q or %q, got %q", CodecJWT, CodecPlain, c.Session.Codec))
	}
	switch c.Auth.Backend {
	case BackendMemory, BackendMongo:
	default:
		errs = append(errs, fmt.Errorf("AUTH_BACKEND must be %q or %q, got %q", BackendMemory, BackendMongo, c.Auth.Backend))
	}
	switch c.Auth.LimiterBackend {
	case BackendMemory, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("LIMITER_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.Auth.LimiterBackend))
	}
	if c.Auth.Latency < 0 {
		errs = append(errs, errors.New("AUTH_LATENCY cannot be negative"))
	}
	if c.Auth.MaxFailures < 0 {
		errs = append(errs, errors.New("LOGIN_MAX_FAILURES cannot be negative"))
	}
	if c.Auth.DemoLogin != "" {
		if _, err := strconv.ParseBool(c.Auth.DemoLogin); err != nil {
			errs = append(errs, fmt.Errorf("DEMO_LOGIN: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// DemoLoginEnabled defaults to on in development and off elsewhere.
func (c *Config) DemoLoginEnabled() bool {
	if c.Auth.DemoLogin == "" {
		return c.IsDevelopment()
	}
	v, _ := strconv.ParseBool(c.Auth.DemoLogin)
	return v
}

// NeedsMongo reports whether any component is backed by MongoDB.
func (c *Config) NeedsMongo() bool {
	return c.Auth.Backend == BackendMongo
}

// NeedsRedis reports whether any component is backed by Redis.
func (c *Config) NeedsRedis() bool {
	return c.Auth.LimiterBackend == BackendRedis
}
