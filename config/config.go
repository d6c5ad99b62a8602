package config

import (
	"time"

	"main/utils"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	DatabaseName    string
}

type AuthConfig struct {
	JWTSecretKey      string
	JWTExpirationTime int // seconds
}

type RedisConfig struct {
	URL string
}

// Load reads the full configuration from the environment.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port: utils.GetEnvAsString("PORT", "8080"),
		},
		Database: LoadDatabaseConfig(),
		Auth: AuthConfig{
			JWTSecretKey:      utils.GetEnvAsString("JWT_SECRET_KEY", ""),
			JWTExpirationTime: utils.GetEnvAsInt("JWT_EXPIRATION_TIME", 3600),
		},
		Redis: RedisConfig{
			URL: utils.GetEnvAsString("REDIS_URL", ""),
		},
	}
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		DatabaseName:    utils.GetEnvAsString("MONGO_DB", "notesapp"),
	}
}
