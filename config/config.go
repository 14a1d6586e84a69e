package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage backends
	SQLite   SQLiteConfig
	Supabase SupabaseConfig

	// Bulk import tuning
	Import ImportConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SQLiteConfig struct {
	Path string
}

// SupabaseConfig points at a Supabase project's PostgREST endpoint. When URL
// is empty the service runs on the local SQLite store only.
type SupabaseConfig struct {
	URL            string
	APIKey         string
	ServiceRoleKey string
	Timeout        time.Duration
}

// ImportConfig tunes the bulk recipe loader.
type ImportConfig struct {
	ChunkSize      int
	RatePerSecond  float64
	DedupCacheSize int
	DedupCacheTTL  time.Duration
	Purge          bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// CORS: comma-separated so it survives env-var configuration
	var origins []string
	if raw := viper.GetString("cors.allowed_origins"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	// SQLite
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	if p := viper.GetString("sqlite_path"); p != "" {
		cfg.SQLite.Path = p
	}

	// Supabase
	cfg.Supabase.URL = viper.GetString("supabase.url")
	cfg.Supabase.APIKey = viper.GetString("supabase.api_key")
	cfg.Supabase.ServiceRoleKey = viper.GetString("supabase.service_role_key")
	cfg.Supabase.Timeout = viper.GetDuration("supabase.timeout")
	if u := viper.GetString("supabase_url"); u != "" {
		cfg.Supabase.URL = u
	}
	if k := viper.GetString("supabase_key"); k != "" {
		cfg.Supabase.APIKey = k
	}
	if k := viper.GetString("supabase_service_role_key"); k != "" {
		cfg.Supabase.ServiceRoleKey = k
	}

	// Import
	cfg.Import.ChunkSize = viper.GetInt("import.chunk_size")
	cfg.Import.RatePerSecond = viper.GetFloat64("import.rate_per_second")
	cfg.Import.DedupCacheSize = viper.GetInt("import.dedup_cache_size")
	cfg.Import.DedupCacheTTL = viper.GetDuration("import.dedup_cache_ttl")
	cfg.Import.Purge = viper.GetBool("import.purge")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("sqlite.path", "cooked-flow.db")
	viper.SetDefault("supabase.timeout", "30s")
	viper.SetDefault("import.chunk_size", 500)
	viper.SetDefault("import.rate_per_second", 10)
	viper.SetDefault("import.dedup_cache_size", 100000)
	viper.SetDefault("import.dedup_cache_ttl", "1h")
	viper.SetDefault("import.purge", false)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", cfg.HTTPServer.Port)
	}
	if cfg.SQLite.Path == "" && cfg.Supabase.URL == "" {
		return fmt.Errorf("no storage configured: set sqlite.path or supabase.url")
	}
	if cfg.Supabase.URL != "" && cfg.Supabase.APIKey == "" && cfg.Supabase.ServiceRoleKey == "" {
		return fmt.Errorf("supabase.url set but no api key configured")
	}
	if cfg.Import.ChunkSize <= 0 {
		return fmt.Errorf("import.chunk_size must be positive")
	}
	return nil
}
