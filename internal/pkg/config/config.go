package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/riderlink/riderlink/internal/pkg/models"
)

// InitConfig loads configuration from the environment, optionally seeded
// from a config file (env format). Environment variables always win.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Printf("config file not loaded (%s): %v", configPath, err)
		}
	}

	return &models.Config{
		App: models.AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			Version:     v.GetString("APP_VERSION"),
		},
		Server: models.ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			ReadTimeout:     v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetInt("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetInt("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Storage: models.StorageConfig{
			Driver: v.GetString("STORAGE_DRIVER"),
			Seed:   v.GetBool("STORAGE_SEED"),
		},
		Database: models.DatabaseConfig{
			Host:      v.GetString("DB_HOST"),
			Port:      v.GetInt("DB_PORT"),
			Username:  v.GetString("DB_USERNAME"),
			Password:  v.GetString("DB_PASSWORD"),
			Database:  v.GetString("DB_DATABASE"),
			SSLMode:   v.GetString("DB_SSL_MODE"),
			MaxConns:  v.GetInt("DB_MAX_CONNS"),
			IdleConns: v.GetInt("DB_IDLE_CONNS"),
		},
		Redis: models.RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			PoolSize: v.GetInt("REDIS_POOL_SIZE"),
		},
		NSQ: models.NSQConfig{
			Address: v.GetString("NSQ_ADDRESS"),
			Topic:   v.GetString("NSQ_TOPIC"),
		},
		JWT: models.JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION"),
			Issuer:     v.GetString("JWT_ISSUER"),
			CookieName: v.GetString("SESSION_COOKIE_NAME"),
			Secure:     v.GetString("APP_ENV") == "production",
		},
		Logger: models.LoggerConfig{
			Level:    v.GetString("LOG_LEVEL"),
			FilePath: v.GetString("LOG_FILE_PATH"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "riderlink")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("STORAGE_DRIVER", "memory")
	v.SetDefault("STORAGE_SEED", true)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_DATABASE", "riderlink")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_TOPIC", "fleet_events")

	v.SetDefault("JWT_SECRET", "riderlink-fleet-management-secret")
	v.SetDefault("JWT_EXPIRATION", 24*60)
	v.SetDefault("JWT_ISSUER", "riderlink")
	v.SetDefault("SESSION_COOKIE_NAME", "riderlink_session")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}
