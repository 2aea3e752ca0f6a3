package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

// DevJWTSecret is the fallback signing key used when JWT_SECRET is unset.
// Acceptable in development only; startup logs a warning when it is used.
const DevJWTSecret = "fallback_secret"

// InitConfig loads configuration from the environment, reading a .env file
// first when running locally.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "rescuerush-api")
	configs.App.Environment = GetEnv("APP_ENV", "development")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "0.0.0.0")
	configs.Server.Port = GetEnvAsInt("PORT", 5000)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 30)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Mongo config
	configs.Mongo.URI = GetEnv("MONGODB_URI", "")
	configs.Mongo.Database = GetEnv("MONGODB_DATABASE", "rescuerush")
	configs.Mongo.Timeout = GetEnvAsInt("MONGODB_TIMEOUT", 10)

	// Redis config (optional, auth rate limiting only)
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	if configs.JWT.Secret == "" {
		log.Println("Warning: JWT_SECRET not set, using development fallback secret")
		configs.JWT.Secret = DevJWTSecret
	}
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 30*24*60) // 30 days
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "rescuerush")

	// Email channel config
	configs.Email.Host = GetEnv("EMAIL_HOST", "smtp.gmail.com")
	configs.Email.Port = GetEnvAsInt("EMAIL_PORT", 587)
	configs.Email.User = GetEnv("EMAIL_USER", "")
	configs.Email.Pass = GetEnv("EMAIL_PASS", "")
	configs.Email.From = GetEnv("EMAIL_FROM", "emergency@rescuerush.com")
	configs.Email.RatePerSec = GetEnvAsFloat("EMAIL_RATE_PER_SEC", 5.0)
	configs.Email.MaxConns = GetEnvAsInt("EMAIL_MAX_CONNS", 5)
	configs.Email.SendTimeout = GetEnvAsInt("EMAIL_SEND_TIMEOUT", 10)

	// SMS channel config (optional)
	configs.SMS.Endpoint = GetEnv("SMS_ENDPOINT", "")
	configs.SMS.APIKey = GetEnv("SMS_API_KEY", "")
	configs.SMS.Sender = GetEnv("SMS_SENDER", "RescueRush")
	configs.SMS.Enabled = configs.SMS.Endpoint != "" && configs.SMS.APIKey != ""

	// Push channel config
	configs.Push.Endpoint = GetEnv("PUSH_ENDPOINT", "https://exp.host/--/api/v2/push/send")
	configs.Push.ChunkSize = GetEnvAsInt("PUSH_CHUNK_SIZE", 100)
	configs.Push.Enabled = GetEnvAsBool("PUSH_ENABLED", true)

	// Evidence object store (optional, data URI fallback when absent)
	configs.Storage.Endpoint = GetEnv("MINIO_ENDPOINT", "")
	configs.Storage.AccessKey = GetEnv("MINIO_ACCESS_KEY", "")
	configs.Storage.SecretKey = GetEnv("MINIO_SECRET_KEY", "")
	configs.Storage.Bucket = GetEnv("MINIO_BUCKET", "rescuerush-evidence")
	configs.Storage.UseSSL = GetEnvAsBool("MINIO_USE_SSL", false)
	configs.Storage.BaseURL = GetEnv("MINIO_PUBLIC_BASE", "")

	// Evidence limits
	configs.Evidence.MaxSizeBytes = GetEnvAsInt64("EVIDENCE_MAX_SIZE", 10<<20)
	configs.Evidence.MaxVideoSizeBytes = GetEnvAsInt64("EVIDENCE_MAX_VIDEO_SIZE", 50<<20)
	configs.Evidence.VideoEnabled = GetEnvAsBool("EVIDENCE_VIDEO_ENABLED", false)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", configs.App.Name)
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
