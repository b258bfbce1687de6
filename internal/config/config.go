package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Env         string `toml:"env"`
	ListenAddr  string `toml:"listen_addr"`
	Store       string `toml:"store"`
	DatabaseURL string `toml:"database_url"`
	AutoMigrate bool   `toml:"auto_migrate"`
	AdminToken  string `toml:"admin_token"`

	// MaxConnections caps concurrently served connections; zero is unlimited.
	MaxConnections int `toml:"max_connections"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	KeyFile   string `toml:"key_file"`
	KeyScheme string `toml:"key_scheme"`

	Owner  OwnerConfig  `toml:"owner"`
	Gossip GossipConfig `toml:"gossip"`
}

// OwnerConfig describes the company running this node.
type OwnerConfig struct {
	Name      string `toml:"name"`
	VATNumber string `toml:"vat_number"`
	BaseURL   string `toml:"base_url"`
}

type GossipConfig struct {
	Workers      int           `toml:"workers"`
	PollInterval time.Duration `toml:"poll_interval"`
	MaxRetries   uint64        `toml:"max_retries"`
	RetryBase    time.Duration `toml:"retry_base"`
	PeerTimeout  time.Duration `toml:"peer_timeout"`
	// RatePerSecond caps outbound peer calls; zero disables the limit.
	RatePerSecond float64 `toml:"rate_per_second"`
	// JobLease is how long a claimed job may run before it is handed out
	// again. Keep it above the longest delivery including retries.
	JobLease time.Duration `toml:"job_lease"`
}

func Defaults() Config {
	return Config{
		Env:            "development",
		ListenAddr:     ":8080",
		MaxConnections: 256,
		Store:          StorePostgres,
		LogLevel:       "info",
		LogFormat:      "text",
		KeyFile:        "keys/node.key",
		KeyScheme:      "ed25519",
		Gossip: GossipConfig{
			Workers:       2,
			PollInterval:  500 * time.Millisecond,
			MaxRetries:    5,
			RetryBase:     time.Second,
			PeerTimeout:   10 * time.Second,
			RatePerSecond: 20,
			JobLease:      5 * time.Minute,
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the optional TOML file at path (or CONFIG_FILE) and then applies
// environment overrides. A missing DATABASE_URL for the postgres store is
// reported as an error alongside a usable config so callers can decide.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	cfg.Store = strings.ToLower(cfg.Store)
	if cfg.Gossip.JobLease <= 0 {
		return cfg, fmt.Errorf("gossip job_lease must be positive, got %s", cfg.Gossip.JobLease)
	}
	if cfg.MaxConnections < 0 {
		return cfg, fmt.Errorf("max_connections must not be negative, got %d", cfg.MaxConnections)
	}

	switch cfg.Store {
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return cfg, fmt.Errorf("DATABASE_URL not set")
		}
	case StoreMemory:
	default:
		return cfg, fmt.Errorf("unknown store %q", cfg.Store)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Env = getenv("APP_ENV", cfg.Env)
	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.Store = getenv("STORE", cfg.Store)
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.AutoMigrate = getenvBool("AUTO_MIGRATE", cfg.AutoMigrate)
	cfg.AdminToken = getenv("ADMIN_TOKEN", cfg.AdminToken)
	cfg.MaxConnections = getenvInt("MAX_CONNECTIONS", cfg.MaxConnections)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("LOG_FORMAT", cfg.LogFormat)
	cfg.KeyFile = getenv("KEY_FILE", cfg.KeyFile)
	cfg.KeyScheme = getenv("KEY_SCHEME", cfg.KeyScheme)

	cfg.Owner.Name = getenv("OWNER_NAME", cfg.Owner.Name)
	cfg.Owner.VATNumber = getenv("OWNER_VAT_NUMBER", cfg.Owner.VATNumber)
	cfg.Owner.BaseURL = getenv("OWNER_BASE_URL", cfg.Owner.BaseURL)

	cfg.Gossip.Workers = getenvInt("GOSSIP_WORKERS", cfg.Gossip.Workers)
	cfg.Gossip.PollInterval = getenvDuration("GOSSIP_POLL_INTERVAL", cfg.Gossip.PollInterval)
	cfg.Gossip.MaxRetries = uint64(getenvInt("GOSSIP_MAX_RETRIES", int(cfg.Gossip.MaxRetries)))
	cfg.Gossip.RetryBase = getenvDuration("GOSSIP_RETRY_BASE", cfg.Gossip.RetryBase)
	cfg.Gossip.PeerTimeout = getenvDuration("GOSSIP_PEER_TIMEOUT", cfg.Gossip.PeerTimeout)
	cfg.Gossip.RatePerSecond = getenvFloat("GOSSIP_RATE_PER_SECOND", cfg.Gossip.RatePerSecond)
	cfg.Gossip.JobLease = getenvDuration("GOSSIP_JOB_LEASE", cfg.Gossip.JobLease)
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		var out float64
		_, err := fmt.Sscanf(v, "%g", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
