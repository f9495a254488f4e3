package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cacheTTL bounds how long cached vectors live; embeddings for a given model
// are stable, so the TTL mainly limits storage growth.
const cacheTTL = 24 * time.Hour

// Cache wraps a Provider with a Redis lookaside cache keyed on a hash of the
// input text. Cache failures are logged and ignored: the cache must never make
// an embedding call fail that would otherwise succeed.
type Cache struct {
	inner  Provider
	client *redis.Client
	logger *zap.Logger
}

// NewCache creates a caching provider around inner.
func NewCache(inner Provider, client *redis.Client, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{inner: inner, client: client, logger: logger}
}

// Embed returns the cached vector for text, or delegates to the wrapped
// provider and stores the result.
func (c *Cache) Embed(ctx context.Context, text string) ([]float64, error) {
	key := cacheKey(text)

	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var vector []float64
		if err := json.Unmarshal(data, &vector); err == nil && len(vector) > 0 {
			return vector, nil
		}
		c.logger.Warn("discarding malformed cached embedding", zap.String("key", key))
	} else if err != redis.Nil {
		c.logger.Warn("embedding cache read failed", zap.Error(err))
	}

	vector, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(vector); err == nil {
		if err := c.client.Set(ctx, key, data, cacheTTL).Err(); err != nil {
			c.logger.Warn("embedding cache write failed", zap.Error(err))
		}
	}

	return vector, nil
}

// cacheKey derives a stable Redis key from the input text.
func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "evalmatch:embedding:" + hex.EncodeToString(sum[:])
}
