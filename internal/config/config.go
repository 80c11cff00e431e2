package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	SRS       SRSConfig       `yaml:"srs"`
	Study     StudyConfig     `yaml:"study"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-ID"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
}

// AuthConfig holds bearer token settings. Tokens are issued elsewhere;
// the engine only verifies them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"conceptdeck"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds SM-2 parameters.
type SRSConfig struct {
	DefaultEaseFactor float64 `yaml:"default_ease_factor" env:"SRS_DEFAULT_EASE" env-default:"2.5"`
	MinEaseFactor     float64 `yaml:"min_ease_factor"     env:"SRS_MIN_EASE"     env-default:"1.3"`
}

// StudyConfig holds session selection and lifecycle settings.
type StudyConfig struct {
	NewLimit         int           `yaml:"new_limit"          env:"STUDY_NEW_LIMIT"          env-default:"20"`
	QuizLimit        int           `yaml:"quiz_limit"         env:"STUDY_QUIZ_LIMIT"         env-default:"20"`
	StreakMinReviews int           `yaml:"streak_min_reviews" env:"STUDY_STREAK_MIN_REVIEWS" env-default:"5"`
	MaxRetryPasses   int           `yaml:"max_retry_passes"   env:"STUDY_MAX_RETRY_PASSES"   env-default:"3"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"       env:"STUDY_IDLE_TIMEOUT"       env-default:"30m"`
	ReapInterval     time.Duration `yaml:"reap_interval"      env:"STUDY_REAP_INTERVAL"      env-default:"1m"`
	ConceptCacheSize int           `yaml:"concept_cache_size" env:"STUDY_CONCEPT_CACHE_SIZE" env-default:"512"`
	ConceptCacheTTL  time.Duration `yaml:"concept_cache_ttl"  env:"STUDY_CONCEPT_CACHE_TTL"  env-default:"5m"`
}

// RateLimitConfig holds per-client request rate settings.
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"RATE_LIMIT_REQUESTS_PER_SECOND" env-default:"10"`
	Burst             int     `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"20"`
}
