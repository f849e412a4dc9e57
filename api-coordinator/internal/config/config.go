package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gotrip/pkg/recommender"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
)

const (
	CatalogBuiltin = "builtin"
	CatalogMongo   = "mongo"
)

const (
	defaultMongoRetryInterval = 5 * time.Second
	defaultMongoMaxRetries    = 3
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// RecommenderConfig es la parte que también puede venir de un archivo JSON.
type RecommenderConfig struct {
	Policy string `json:"policy"`
	TopK   int    `json:"top_k"`
	Seed   int64  `json:"seed"`
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string

	RetryInterval time.Duration
	MaxRetries    int // 0 = sin límite
}

type RedisConfig struct {
	Addr     string // vacío = deshabilitado
	Password string
	DB       int
}

// Config agrupa todo lo que necesita el servicio HTTP.
type Config struct {
	HTTPAddr  string
	GinMode   string
	LogLevel  string
	LogPretty bool

	CatalogSource string
	Mongo         MongoConfig
	Redis         RedisConfig

	RateLimitPerMinute int

	Recommender RecommenderConfig
}

// DefaultRecommender devuelve la configuración por defecto del motor.
func DefaultRecommender() RecommenderConfig {
	return RecommenderConfig{
		Policy: recommender.PolicySampledTopK.String(),
		TopK:   recommender.DefaultTopK,
	}
}

// Load lee .env (si existe), luego RECOMMENDER_CONFIG y por último las
// variables de entorno, que tienen prioridad.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		GinMode:       getenv("GIN_MODE", "release"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogPretty:     getbool("LOG_PRETTY", false),
		CatalogSource: strings.ToLower(getenv("CATALOG_SOURCE", CatalogBuiltin)),
		Mongo: MongoConfig{
			URI:        strings.TrimSpace(os.Getenv("MONGODB_URI")),
			Database:   getenv("MONGO_DB_NAME", "gotrip"),
			Collection: getenv("MONGO_COLLECTION", "destinations"),

			RetryInterval: getduration("MONGO_RETRY_INTERVAL", defaultMongoRetryInterval),
			MaxRetries:    getint("MONGO_MAX_RETRIES", defaultMongoMaxRetries),
		},
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getint("REDIS_DB", 0),
		},
		RateLimitPerMinute: getint("RATE_LIMIT_PER_MINUTE", 0),
		Recommender:        DefaultRecommender(),
	}

	if path := strings.TrimSpace(os.Getenv("RECOMMENDER_CONFIG")); path != "" {
		fileCfg, err := LoadRecommenderFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Recommender = fileCfg
	}

	if v := os.Getenv("RECOMMEND_POLICY"); v != "" {
		cfg.Recommender.Policy = v
	}
	cfg.Recommender.TopK = getint("RECOMMEND_TOP_K", cfg.Recommender.TopK)
	if v := os.Getenv("RECOMMEND_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: RECOMMEND_SEED=%q", ErrInvalidConfig, v)
		}
		cfg.Recommender.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadRecommenderFile carga el JSON del motor; los campos ausentes se
// completan con los valores por defecto.
func LoadRecommenderFile(path string) (RecommenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RecommenderConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var rc RecommenderConfig
	if err := json.Unmarshal(data, &rc); err != nil {
		return RecommenderConfig{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	def := DefaultRecommender()
	if rc.Policy == "" {
		rc.Policy = def.Policy
	}
	if rc.TopK == 0 {
		rc.TopK = def.TopK
	}
	return rc, nil
}

func (c Config) Validate() error {
	if _, err := recommender.ParsePolicy(c.Recommender.Policy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Recommender.TopK < 1 {
		return fmt.Errorf("%w: top_k must be >= 1, got %d", ErrInvalidConfig, c.Recommender.TopK)
	}
	switch c.CatalogSource {
	case CatalogBuiltin:
	case CatalogMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("%w: CATALOG_SOURCE=mongo requires MONGODB_URI", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown CATALOG_SOURCE %q", ErrInvalidConfig, c.CatalogSource)
	}
	if c.Mongo.MaxRetries < 0 {
		return fmt.Errorf("%w: MONGO_MAX_RETRIES must be >= 0", ErrInvalidConfig)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("%w: RATE_LIMIT_PER_MINUTE must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// Policy devuelve la política ya parseada; Validate garantiza que no falla.
func (c Config) Policy() recommender.Policy {
	p, _ := recommender.ParsePolicy(c.Recommender.Policy)
	return p
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
