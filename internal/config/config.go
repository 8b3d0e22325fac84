package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when TIPPING_CONFIG is not set.
const DefaultPath = "config/tipping.yaml"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Chain    ChainConfig    `yaml:"chain"`
	Oracle   OracleConfig   `yaml:"oracle"`
	Resolver ResolverConfig `yaml:"resolver"`
	Wallets  []WalletConfig `yaml:"wallets"`
	Tweets   TweetsConfig   `yaml:"tweets"`
	Preview  PreviewConfig  `yaml:"preview"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Events   EventsConfig   `yaml:"events"`
	Guard    GuardConfig    `yaml:"guard"`
	Tracing  TracingConfig  `yaml:"tracing"`
	LogLevel string         `yaml:"log_level"`
}

type ServerConfig struct {
	// Host is the listen address. The wallet session is shared, so the
	// default only accepts local clients.
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	TipRateLimit int           `yaml:"tip_rate_limit"`
	RateWindow   time.Duration `yaml:"rate_window"`
	// RequestTimeout bounds a whole tip, polling included.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type ChainConfig struct {
	URL          string        `yaml:"url"`
	Timeout      time.Duration `yaml:"timeout"`
	Contract     string        `yaml:"contract"`
	MaxGasAmount uint64        `yaml:"max_gas_amount"`
	// SubmitTimeout bounds a transaction once the wallet has it. Shutdown
	// does not cut it short.
	SubmitTimeout time.Duration `yaml:"submit_timeout"`
}

type OracleConfig struct {
	URL      string        `yaml:"url"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type ResolverConfig struct {
	MaxRetries int           `yaml:"max_retries"`
	Delay      time.Duration `yaml:"delay"`
	AuthorTTL  time.Duration `yaml:"author_ttl"`
}

// WalletConfig is one wallet bridge offered for connection.
type WalletConfig struct {
	Name    string        `yaml:"name"`
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type TweetsConfig struct {
	AllowedHosts []string `yaml:"allowed_hosts"`
}

type PreviewConfig struct {
	Enabled        bool          `yaml:"enabled"`
	RemoteURL      string        `yaml:"remote_url"`
	ChromePath     string        `yaml:"chrome_path"`
	BaseURL        string        `yaml:"base_url"`
	SelectorsFile  string        `yaml:"selectors_file"`
	ReloadInterval time.Duration `yaml:"reload_interval"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
}

type LedgerConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Enabled reports whether a ledger database is configured.
func (l LedgerConfig) Enabled() bool { return l.DSN != "" }

type EventsConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	QueueName  string `yaml:"queue_name"`
	BindingKey string `yaml:"binding_key"`
}

func (e EventsConfig) Enabled() bool { return e.URL != "" }

type GuardConfig struct {
	// Backend is "local" or "redis".
	Backend  string        `yaml:"backend"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type TracingConfig struct {
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Path returns the config file to load: explicit, then $TIPPING_CONFIG,
// then DefaultPath.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("TIPPING_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()
	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if ttl := os.Getenv("CACHE_TTL_MINUTES"); ttl != "" {
		if minutes, err := strconv.Atoi(ttl); err == nil && minutes > 0 {
			c.Preview.CacheTTL = time.Duration(minutes) * time.Minute
		}
	}
}

func (c *Config) setDefaults() {
	// Entries left empty by unset variables are dropped.
	wallets := c.Wallets[:0]
	for _, w := range c.Wallets {
		if w.Name != "" || w.URL != "" {
			wallets = append(wallets, w)
		}
	}
	c.Wallets = wallets

	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == "" {
		c.Server.Port = "3000"
	}
	if c.Server.TipRateLimit == 0 {
		c.Server.TipRateLimit = 10
	}
	if c.Server.RateWindow == 0 {
		c.Server.RateWindow = time.Minute
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 2 * time.Minute
	}
	if c.Chain.URL == "" {
		c.Chain.URL = "https://test-seed.rooch.network"
	}
	if c.Chain.Timeout == 0 {
		c.Chain.Timeout = 15 * time.Second
	}
	if c.Chain.SubmitTimeout == 0 {
		c.Chain.SubmitTimeout = 3 * time.Minute
	}
	if c.Oracle.Timeout == 0 {
		c.Oracle.Timeout = 10 * time.Second
	}
	if c.Oracle.CacheTTL == 0 {
		c.Oracle.CacheTTL = 5 * time.Minute
	}
	if c.Resolver.MaxRetries == 0 {
		c.Resolver.MaxRetries = 20
	}
	if c.Resolver.Delay == 0 {
		c.Resolver.Delay = 1200 * time.Millisecond
	}
	if c.Resolver.AuthorTTL == 0 {
		c.Resolver.AuthorTTL = 30 * time.Minute
	}
	for i := range c.Wallets {
		if c.Wallets[i].Timeout == 0 {
			c.Wallets[i].Timeout = 2 * time.Minute
		}
	}
	if c.Preview.SelectorsFile == "" {
		c.Preview.SelectorsFile = "config/selectors.yaml"
	}
	if c.Preview.ReloadInterval == 0 {
		c.Preview.ReloadInterval = 30 * time.Second
	}
	if c.Preview.CacheTTL == 0 {
		c.Preview.CacheTTL = 5 * time.Minute
	}
	if c.Ledger.Driver == "" {
		c.Ledger.Driver = "sqlite3"
	}
	if c.Events.Exchange == "" {
		c.Events.Exchange = "tweet_tipping"
	}
	if c.Guard.Backend == "" {
		c.Guard.Backend = "local"
	}
	if c.Guard.TTL == 0 {
		c.Guard.TTL = 2 * time.Minute
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "tweet-tipping"
	}
	if c.Tracing.SampleRatio == 0 {
		c.Tracing.SampleRatio = 1
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Wallets))
	for _, w := range c.Wallets {
		if w.Name == "" || w.URL == "" {
			return fmt.Errorf("wallet entry needs a name and a url")
		}
		if seen[w.Name] {
			return fmt.Errorf("duplicate wallet %q", w.Name)
		}
		seen[w.Name] = true
	}
	switch c.Guard.Backend {
	case "local", "redis":
	default:
		return fmt.Errorf("unknown guard backend %q", c.Guard.Backend)
	}
	switch c.Ledger.Driver {
	case "postgres", "sqlite3":
	default:
		return fmt.Errorf("unknown ledger driver %q", c.Ledger.Driver)
	}
	return nil
}
