package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Telegram  TelegramConfig
	Callback  CallbackConfig
	RateLimit RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains tenant token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// TelegramConfig contains the MTProto application credentials and the key
// used to encrypt session blobs at rest.
type TelegramConfig struct {
	APIID         int
	APIHash       string
	SessionEncKey string
}

// CallbackConfig contains webhook delivery configuration
type CallbackConfig struct {
	SigningSecret  string
	TimeoutSeconds int
	MaxAttempts    int
	DevReceiver    bool
}

// RateLimitConfig contains the per-tenant send limiter configuration
type RateLimitConfig struct {
	MaxRequests   int
	WindowSeconds int
}
