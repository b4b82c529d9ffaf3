package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server       ServerConfig       `json:"server"`
	Database     DatabaseConfig     `json:"database"`
	Logging      LoggingConfig      `json:"logging"`
	Auth         AuthConfig         `json:"auth"`
	News         NewsConfig         `json:"news"`
	Sentiment    SentimentConfig    `json:"sentiment"`
	ServiceToken ServiceTokenConfig `json:"service_token"`
	HTTP         HTTPConfig         `json:"http"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	Host              string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port              int           `json:"port" env:"DB_PORT" default:"5432"`
	User              string        `json:"user" env:"DB_USER" default:"stocknews"`
	Password          string        `json:"-" env:"DB_PASSWORD"`
	PasswordFile      string        `json:"-" env:"DB_PASSWORD_FILE"`
	Name              string        `json:"name" env:"DB_NAME" default:"stocknews"`
	SSLMode           string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"prefer"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// AuthConfig points at the external identity provider. Sign-in, sign-up and
// the federated flows live there; this service only validates sessions.
type AuthConfig struct {
	ServiceURL string        `json:"service_url" env:"AUTH_SERVICE_URL" default:"http://auth-service:8080"`
	Timeout    time.Duration `json:"timeout" env:"AUTH_TIMEOUT" default:"10s"`
}

type NewsConfig struct {
	// Provider selects the news source: "mock" or "rss".
	Provider          string        `json:"provider" env:"NEWS_PROVIDER" default:"mock"`
	FeedURLTemplate   string        `json:"feed_url_template" env:"NEWS_FEED_URL_TEMPLATE" default:"https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s"`
	PerTickerTimeout  time.Duration `json:"per_ticker_timeout" env:"NEWS_PER_TICKER_TIMEOUT" default:"10s"`
	ArticlesPerTicker int           `json:"articles_per_ticker" env:"NEWS_ARTICLES_PER_TICKER" default:"5"`
	RateLimitInterval time.Duration `json:"rate_limit_interval" env:"NEWS_RATE_LIMIT_INTERVAL" default:"1s"`
	CacheTTL          time.Duration `json:"cache_ttl" env:"NEWS_CACHE_TTL" default:"300s"`
}

type SentimentConfig struct {
	Enabled bool   `json:"enabled" env:"SENTIMENT_ENABLED" default:"false"`
	Model   string `json:"model" env:"SENTIMENT_MODEL" default:"gpt-4o-mini"`
	APIKey  string `json:"-" env:"OPENAI_API_KEY"`
}

type ServiceTokenConfig struct {
	Secret     string `json:"-" env:"SERVICE_TOKEN_SECRET"`
	SecretFile string `json:"-" env:"SERVICE_TOKEN_SECRET_FILE"`
	Issuer     string `json:"issuer" env:"SERVICE_TOKEN_ISSUER" default:"stock-news-sentiment"`
	Audience   string `json:"audience" env:"SERVICE_TOKEN_AUDIENCE" default:"stock-news-sentiment"`
}

type HTTPConfig struct {
	ClientTimeout       time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	DialTimeout         time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"10s"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"HTTP_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Load secrets from files if configured (Docker Secrets support)
	if config.Database.PasswordFile != "" {
		content, err := os.ReadFile(config.Database.PasswordFile)
		if err == nil {
			config.Database.Password = strings.TrimSpace(string(content))
		}
		// If file read fails, we fall back to the env var value (if any)
	}
	if config.ServiceToken.SecretFile != "" {
		content, err := os.ReadFile(config.ServiceToken.SecretFile)
		if err == nil {
			config.ServiceToken.Secret = strings.TrimSpace(string(content))
		}
	}

	return config, nil
}

// Load is an alias for NewConfig
func Load() (*Config, error) {
	return NewConfig()
}
