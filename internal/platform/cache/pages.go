package cache

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/statline/internal/platform/logging"
	"github.com/riskibarqy/statline/internal/platform/resilience"
)

// PageLoader fetches a page body when the cache has no entry for it.
type PageLoader func(ctx context.Context) ([]byte, error)

// MemoryPages caches fetched page bodies in a Store keyed by URL.
type MemoryPages struct {
	store *Store[[]byte]
}

func NewMemoryPages(ttl time.Duration) *MemoryPages {
	return &MemoryPages{store: NewStore[[]byte](ttl)}
}

func (p *MemoryPages) Load(ctx context.Context, url string, loader PageLoader) ([]byte, error) {
	return p.store.GetOrLoad(ctx, url, func(ctx context.Context) ([]byte, error) {
		return loader(ctx)
	})
}

const redisPagePrefix = "statline:page:"

// RedisPages shares fetched page bodies between runs through Redis.
// Redis errors degrade to a cache miss so the fetch still goes out.
type RedisPages struct {
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
	flight resilience.SingleFlight[[]byte]
}

func NewRedisPages(ctx context.Context, redisURL string, ttl time.Duration, logger *logging.Logger) (*RedisPages, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, crerr.Wrap(err, "parse redis url")
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, crerr.Wrap(err, "ping redis")
	}

	return NewRedisPagesFromClient(client, ttl, logger), nil
}

func NewRedisPagesFromClient(client *redis.Client, ttl time.Duration, logger *logging.Logger) *RedisPages {
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisPages{client: client, ttl: ttl, logger: logger}
}

func (p *RedisPages) Load(ctx context.Context, url string, loader PageLoader) ([]byte, error) {
	key := redisPagePrefix + url

	body, err := p.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return body, nil
	case crerr.Is(err, redis.Nil):
	default:
		p.logger.WarnContext(ctx, "page cache read failed", "url", url, "error", err)
	}

	body, err, _ = p.flight.Do(ctx, key, func() ([]byte, error) {
		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		if setErr := p.client.Set(ctx, key, loaded, p.ttl).Err(); setErr != nil {
			p.logger.WarnContext(ctx, "page cache write failed", "url", url, "error", setErr)
		}
		return loaded, nil
	})
	return body, err
}

func (p *RedisPages) Close() error {
	return p.client.Close()
}
