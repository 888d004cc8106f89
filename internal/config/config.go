package config

import "github.com/caarlos0/env/v10"

// Drivers soportados para el almacenamiento clave-valor.
const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	StoreDriver   string `env:"STORE_DRIVER" envDefault:"memory"`
	DatabaseURL   string `env:"DATABASE_URL"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"arogya.db"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"1440"`

	// Servicio de modelo simulado.
	ModelVersion      string  `env:"MODEL_VERSION" envDefault:"ArogyaGPT 1.2"`
	ModelFailureRate  float64 `env:"MODEL_FAILURE_RATE" envDefault:"0.1"`
	ModelLatencyMinMS int     `env:"MODEL_LATENCY_MIN_MS" envDefault:"500"`
	ModelLatencyMaxMS int     `env:"MODEL_LATENCY_MAX_MS" envDefault:"3000"`

	// RandomSeed 0 significa fuente sin semilla (producción).
	RandomSeed     uint64 `env:"RANDOM_SEED" envDefault:"0"`
	ConditionsFile string `env:"CONDITIONS_FILE"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
