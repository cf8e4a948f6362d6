package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Admin    AdminConfig
	Places   PlacesConfig
	Search   SearchConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	// TaxonomyTTL bounds the staleness window of cached per-site
	// taxonomies. Admin mutations invalidate eagerly; TTL is the
	// backstop.
	TaxonomyTTL time.Duration
}

type LogConfig struct {
	Level string
}

type AdminConfig struct {
	// Host is the reserved admin host sentinel. Requests for it skip
	// the directory route grammar entirely.
	Host string
}

type PlacesConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
	MaxRetries     int
	ResultLimit    int
}

type SearchConfig struct {
	BaseURL        string
	APIKey         string
	IndexName      string
	RequestTimeout time.Duration
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
	MaxRetries    int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			TaxonomyTTL: time.Duration(viper.GetInt("TAXONOMY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Admin: AdminConfig{
			Host: viper.GetString("ADMIN_HOST"),
		},
		Places: PlacesConfig{
			BaseURL:        viper.GetString("PLACES_BASE_URL"),
			APIKey:         viper.GetString("PLACES_API_KEY"),
			RequestTimeout: time.Duration(viper.GetInt("PLACES_REQUEST_TIMEOUT")) * time.Second,
			MaxRetries:     viper.GetInt("PLACES_MAX_RETRIES"),
			ResultLimit:    viper.GetInt("PLACES_RESULT_LIMIT"),
		},
		Search: SearchConfig{
			BaseURL:        viper.GetString("SEARCH_BASE_URL"),
			APIKey:         viper.GetString("SEARCH_API_KEY"),
			IndexName:      viper.GetString("SEARCH_INDEX_NAME"),
			RequestTimeout: time.Duration(viper.GetInt("SEARCH_REQUEST_TIMEOUT")) * time.Second,
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     viper.GetInt("WORKER_BATCH_SIZE"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.TaxonomyTTL == 0 {
		cfg.Cache.TaxonomyTTL = 5 * time.Minute
	}
	if cfg.Admin.Host == "" {
		cfg.Admin.Host = "admin.directoryplatform.local"
	}
	if cfg.Places.RequestTimeout == 0 {
		cfg.Places.RequestTimeout = 10 * time.Second
	}
	if cfg.Places.MaxRetries == 0 {
		cfg.Places.MaxRetries = 3
	}
	if cfg.Places.ResultLimit == 0 {
		cfg.Places.ResultLimit = 20
	}
	if cfg.Search.IndexName == "" {
		cfg.Search.IndexName = "businesses"
	}
	if cfg.Search.RequestTimeout == 0 {
		cfg.Search.RequestTimeout = 5 * time.Second
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "places-import-workers"
	}
	if cfg.Worker.BatchSize == 0 {
		cfg.Worker.BatchSize = 10
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
