package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment with defaults suitable for local dev
type Config struct {
	MongoURI  string `env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	MongoDB   string `env:"MONGO_DB" env-default:"workpulse"`
	RedisAddr string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	HTTPPort  string `env:"PORT" env-default:"8080"`

	JWTSecret    string `env:"JWT_SECRET" env-default:"change-me-in-production"`
	AuthUsername string `env:"AUTH_USERNAME" env-default:"demo"`
	AuthPassword string `env:"AUTH_PASSWORD" env-default:"demo123"`

	// Assessments older than Freshness are recomputed on request;
	// younger ones are served from cache.
	Freshness time.Duration `env:"ASSESSMENT_FRESHNESS" env-default:"5m"`
	CacheTTL  time.Duration `env:"ASSESSMENT_CACHE_TTL" env-default:"24h"`

	// Synthetic bootstrap tuning, adjustable per deployment
	TrainSamplesPerClass int `env:"TRAIN_SAMPLES_PER_CLASS" env-default:"50"`
	TrainEpochs          int `env:"TRAIN_EPOCHS" env-default:"200"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
