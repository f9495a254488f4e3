package main

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/puneetrinity/evalmatch/internal/config"
	"github.com/puneetrinity/evalmatch/internal/embedding"
	"github.com/puneetrinity/evalmatch/internal/taxonomy"
)

// buildSnapshot loads the skill taxonomy from the configured source: a JSON
// file, a PostgreSQL database, or the built-in seed when neither is set.
func buildSnapshot(ctx context.Context, cfg config.Config, logger *zap.Logger) (*taxonomy.Snapshot, error) {
	if cfg.TaxonomyFile != "" {
		logger.Debug("loading taxonomy from file", zap.String("path", cfg.TaxonomyFile))
		return taxonomy.LoadFile(cfg.TaxonomyFile)
	}

	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		logger.Debug("loading taxonomy from database")
		return taxonomy.LoadPostgres(ctx, databaseURL)
	}

	logger.Debug("using built-in seed taxonomy")
	return taxonomy.Seed(), nil
}

// buildEmbedder creates the embedding provider, wrapped in a Redis cache when
// one is configured. Returns a nil provider (and nil cleanup) when no API key
// is available; the engine then degrades to non-semantic scoring.
func buildEmbedder(ctx context.Context, cfg config.Config, logger *zap.Logger) (embedding.Provider, func(), error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		logger.Warn("no Gemini API key configured, semantic scoring disabled")
		return nil, nil, nil
	}

	gemini, err := embedding.NewGeminiProvider(ctx, apiKey, cfg.Model)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = gemini.Close() }

	redisAddr := cfg.RedisAddr
	if redisAddr == "" {
		redisAddr = os.Getenv("REDIS_ADDR")
	}
	if redisAddr == "" {
		return gemini, cleanup, nil
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	cached := embedding.NewCache(gemini, client, logger)
	return cached, func() {
		_ = client.Close()
		_ = gemini.Close()
	}, nil
}

// resolveAPIKey returns the first non-empty key among the flag value, the
// config value and the environment.
func resolveAPIKey(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return os.Getenv("GEMINI_API_KEY")
}
