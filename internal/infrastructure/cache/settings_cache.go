package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/srpos/backend/internal/domain/settings"
	"go.uber.org/zap"
)

const (
	settingsCacheKey = "srpos:settings"
	defaultTTL       = 5 * time.Minute
)

// CachedSettingsRepository wraps a settings.Repository with a Redis
// read-through cache. A nil client disables caching entirely and all calls
// pass straight to the underlying store; Redis failures degrade the same
// way instead of failing the request.
type CachedSettingsRepository struct {
	inner  settings.Repository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// CachedSettingsOption is a functional option for the cached repository
type CachedSettingsOption func(*CachedSettingsRepository)

// WithTTL sets the cache entry lifetime
func WithTTL(ttl time.Duration) CachedSettingsOption {
	return func(c *CachedSettingsRepository) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) CachedSettingsOption {
	return func(c *CachedSettingsRepository) {
		c.logger = logger
	}
}

// NewCachedSettingsRepository wraps the given repository. client may be nil.
func NewCachedSettingsRepository(inner settings.Repository, client *redis.Client, opts ...CachedSettingsOption) *CachedSettingsRepository {
	c := &CachedSettingsRepository{
		inner:  inner,
		client: client,
		ttl:    defaultTTL,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewRedisClient connects to Redis and verifies the connection. An empty
// addr returns a nil client, which callers treat as cache-disabled.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// Get returns the settings record, serving from cache when possible
func (c *CachedSettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	if c.client == nil {
		return c.inner.Get(ctx)
	}

	data, err := c.client.Get(ctx, settingsCacheKey).Bytes()
	if err == nil {
		var s settings.Settings
		if jsonErr := json.Unmarshal(data, &s); jsonErr == nil {
			return s, nil
		}
		// corrupted entry, drop it and fall through to the store
		_ = c.client.Del(ctx, settingsCacheKey)
	} else if err != redis.Nil {
		c.logger.Warn("settings cache read failed, falling back to store", zap.Error(err))
	}

	s, err := c.inner.Get(ctx)
	if err != nil {
		return settings.Settings{}, err
	}
	c.store(ctx, s)
	return s, nil
}

// Save writes through to the store and refreshes the cache entry
func (c *CachedSettingsRepository) Save(ctx context.Context, s settings.Settings) error {
	if err := c.inner.Save(ctx, s); err != nil {
		return err
	}
	if c.client != nil {
		c.store(ctx, s.Normalized())
	}
	return nil
}

func (c *CachedSettingsRepository) store(ctx context.Context, s settings.Settings) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, settingsCacheKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("settings cache write failed", zap.Error(err))
	}
}
