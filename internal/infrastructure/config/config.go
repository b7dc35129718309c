package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage driver names accepted by STORAGE_DRIVER.
const (
	DriverFile  = "file"
	DriverRedis = "redis"
	DriverMongo = "mongo"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// StorageDriver selects the snapshot backend: file, redis or mongo.
	StorageDriver string `env:"STORAGE_DRIVER, default=file"`
	DataDir       string `env:"DATA_DIR,       default=./data"`

	// AuthDelay is the simulated remote-call latency on login/register.
	AuthDelay time.Duration `env:"AUTH_DELAY, default=1s"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=prompt_library"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
