package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Email    EmailConfig
	SMS      SMSConfig
	Push     PushConfig
	Storage  StorageConfig
	Evidence EvidenceConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
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

// MongoConfig contains document store connection configuration.
// URI is required; the process exits when it is absent.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  int // seconds, connect and ping
}

// RedisConfig contains Redis connection configuration. Redis is optional
// and only backs the auth-endpoint rate limiter when configured.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// EmailConfig contains SMTP configuration for the email channel.
// The channel short-circuits when User or Pass is empty.
type EmailConfig struct {
	Host        string
	Port        int
	User        string
	Pass        string
	From        string
	RatePerSec  float64 // messages per second across the pool
	MaxConns    int     // bounded SMTP concurrency
	SendTimeout int     // seconds per recipient
}

// SMSConfig contains the optional SMS provider configuration
type SMSConfig struct {
	Enabled  bool
	Endpoint string
	APIKey   string
	Sender   string
}

// PushConfig contains the mobile push gateway configuration. The channel
// posts Expo-format message batches to Endpoint and is skipped entirely
// when disabled.
type PushConfig struct {
	Enabled   bool
	Endpoint  string
	ChunkSize int // messages per gateway request
}

// StorageConfig contains object-store configuration for evidence bytes.
// When Endpoint is empty, evidence URLs fall back to data URIs.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	BaseURL   string
}

// EvidenceConfig bounds evidence uploads
type EvidenceConfig struct {
	MaxSizeBytes      int64
	MaxVideoSizeBytes int64
	VideoEnabled      bool
}

// NewRelicConfig contains New Relic monitoring configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
