package models

// Config is the complete application configuration, populated by the
// config package from environment variables.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Logger   LoggerConfig
}

// AppConfig holds application identity settings.
type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

// ServerConfig holds HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// StorageConfig selects the repository backend. Driver is "memory" or
// "postgres"; Seed loads the demo fixture into the memory store.
type StorageConfig struct {
	Driver string
	Seed   bool
}

// DatabaseConfig holds PostgreSQL connection settings.
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

// RedisConfig holds Redis connection settings. An empty Host disables
// the rate limiter.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ producer settings. An empty Address disables
// event publication.
type NSQConfig struct {
	Address string
	Topic   string
}

// JWTConfig holds session token settings. Expiration is in minutes.
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
	CookieName string
	Secure     bool
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level    string
	FilePath string
}
