package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ConsentDataBackend selects where ASPSP consent data is kept.
type ConsentDataBackend string

const (
	BackendCMS      ConsentDataBackend = "cms"
	BackendRedis    ConsentDataBackend = "redis"
	BackendPostgres ConsentDataBackend = "postgres"
	BackendMemory   ConsentDataBackend = "memory"
)

// Config is the full process configuration.
type Config struct {
	Server      Server
	Ledgers     Upstream
	CMS         Upstream
	Security    Security
	Login       Login
	ConsentData ConsentData
	Redis       RedisConfig
	Postgres    PostgresConfig
	Kafka       KafkaConfig
	Logging     Logging
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
	MetricsEnabled    bool
	AdminToken        string
	SecureCookies     bool
}

// Upstream configures a REST collaborator.
type Upstream struct {
	BaseURL          string
	Timeout          time.Duration
	FailureThreshold int
}

// Security holds signing and encryption secrets.
type Security struct {
	// ReferenceSigningKey signs consent reference cookies.
	ReferenceSigningKey string
	// ReferenceTTL bounds how long a redirect session cookie is accepted.
	ReferenceTTL time.Duration
	// IDEncryptionKey derives the key used to obfuscate ids in URLs.
	IDEncryptionKey string
}

// Login configures the PSU login page and attempt budget.
type Login struct {
	PageURL     string
	MaxAttempts int
}

// ConsentData selects the consent data backend.
type ConsentData struct {
	Backend ConsentDataBackend
	TTL     time.Duration
}

// RedisConfig configures the optional Redis client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig configures the optional Postgres pool.
type PostgresConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	TxTimeout    time.Duration
}

// KafkaConfig configures the audit sink.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
	Partitions int32
}

// Logging configures slog.
type Logging struct {
	Level  string
	Format string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:              getEnv("OBA_ADDR", ":8090"),
			ReadHeaderTimeout: getDuration("OBA_READ_HEADER_TIMEOUT", 5*time.Second),
			RequestTimeout:    getDuration("OBA_REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout:   getDuration("OBA_SHUTDOWN_TIMEOUT", 10*time.Second),
			MetricsEnabled:    getBool("OBA_METRICS_ENABLED", true),
			AdminToken:        os.Getenv("OBA_ADMIN_TOKEN"),
			SecureCookies:     getBool("OBA_SECURE_COOKIES", false),
		},
		Ledgers: Upstream{
			BaseURL:          getEnv("LEDGERS_URL", "http://localhost:8088"),
			Timeout:          getDuration("LEDGERS_TIMEOUT", 10*time.Second),
			FailureThreshold: getInt("LEDGERS_FAILURE_THRESHOLD", 5),
		},
		CMS: Upstream{
			BaseURL:          getEnv("CMS_URL", "http://localhost:38080"),
			Timeout:          getDuration("CMS_TIMEOUT", 10*time.Second),
			FailureThreshold: getInt("CMS_FAILURE_THRESHOLD", 5),
		},
		Security: Security{
			// Development defaults; override in any shared environment.
			ReferenceSigningKey: getEnv("REFERENCE_SIGNING_KEY", "dev-reference-key-change-in-production"),
			ReferenceTTL:        getDuration("REFERENCE_TTL", 30*time.Minute),
			IDEncryptionKey:     getEnv("ID_ENCRYPTION_KEY", "dev-id-key-change-in-production"),
		},
		Login: Login{
			PageURL:     getEnv("LOGIN_PAGE_URL", "http://localhost:4400/account-information/login"),
			MaxAttempts: getInt("LOGIN_ATTEMPTS", 3),
		},
		ConsentData: ConsentData{
			Backend: ConsentDataBackend(getEnv("CONSENT_DATA_BACKEND", string(BackendCMS))),
			TTL:     getDuration("CONSENT_DATA_TTL", 24*time.Hour),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			DSN:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 5),
			TxTimeout:    getDuration("DB_TX_TIMEOUT", 5*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(os.Getenv("KAFKA_BROKERS")),
			AuditTopic: getEnv("KAFKA_AUDIT_TOPIC", "oba.sca.audit"),
			Partitions: int32(getInt("KAFKA_AUDIT_PARTITIONS", 3)),
		},
		Logging: Logging{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
