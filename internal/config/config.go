package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName         string
	AppEnv          string
	AppPort         string
	RedisURL        string
	SnapshotKey     string
	SnapshotFile    string
	ArticleAPIBase  string
	ArticleAPIKey   string
	ArticleCacheTTL time.Duration
	OpenAIAPIKey    string
	OpenAIModel     string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("BEAT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "The Beat API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("snapshot.key", "beat:store:snapshot")
	v.SetDefault("article.api_base", "https://atlantichack-api.infactory.ai/v1")
	v.SetDefault("article.cache_ttl", "5m")
	v.SetDefault("openai.model", "gpt-4o-mini")

	ttlString := v.GetString("article.cache_ttl")
	if ttlString == "" {
		ttlString = "5m"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid article cache ttl: %w", err)
	}

	cfg := Config{
		AppName:         v.GetString("app.name"),
		AppEnv:          v.GetString("app.env"),
		AppPort:         v.GetString("app.port"),
		RedisURL:        v.GetString("redis.url"),
		SnapshotKey:     v.GetString("snapshot.key"),
		SnapshotFile:    v.GetString("snapshot.file"),
		ArticleAPIBase:  strings.TrimRight(v.GetString("article.api_base"), "/"),
		ArticleAPIKey:   v.GetString("article.api_key"),
		ArticleCacheTTL: ttl,
		OpenAIAPIKey:    v.GetString("openai_api_key"),
		OpenAIModel:     v.GetString("openai.model"),
	}

	if cfg.RedisURL == "" && cfg.SnapshotFile == "" {
		return Config{}, fmt.Errorf("either a redis url or a snapshot file must be configured")
	}

	return cfg, nil
}
