package guard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"tweet-tipping/internal/domain"
	"tweet-tipping/pkg/log"
)

const keyPrefix = "tweet-tipping:inflight:"

// unlock deletes the key only if it still holds our token.
var unlock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfig holds the connection settings of the shared guard.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Redis guards keys across instances with SET NX PX.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisClient opens a client for cfg.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedis creates a guard over rdb. ttl bounds how long a crashed holder
// can block a tweet.
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &Redis{rdb: rdb, ttl: ttl}
}

// Acquire takes key or fails with domain.ErrTipInProgress.
func (g *Redis) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	ok, err := g.rdb.SetNX(ctx, keyPrefix+key, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", key, err)
	}
	if !ok {
		return nil, domain.ErrTipInProgress
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// The request context may already be done.
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := unlock.Run(ctx, g.rdb, []string{keyPrefix + key}, token).Err(); err != nil {
				log.GlobalWarn("release inflight key failed", "key", key, "error", err)
			}
		})
	}, nil
}

// Close closes the redis client.
func (g *Redis) Close() error {
	return g.rdb.Close()
}
