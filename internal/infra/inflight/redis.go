package inflight

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultTTL срок жизни флага, если процесс упал, не сняв его
	DefaultTTL = 2 * time.Minute

	keyPrefix      = "salon:inflight:"
	releaseTimeout = 3 * time.Second
)

// Снимаем флаг, только если он все еще наш
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard флаги в Redis (SET NX PX), общие для всех экземпляров сервиса
type RedisGuard struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger Logger
}

// NewRedisGuard создает guard поверх Redis. ttl <= 0 означает DefaultTTL.
func NewRedisGuard(client redis.UniversalClient, ttl time.Duration, logger Logger) *RedisGuard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisGuard{client: client, ttl: ttl, logger: logger}
}

// Acquire выставляет флаг по ключу или возвращает ErrCommitInProgress
func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	redisKey := keyPrefix + key
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, redisKey, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Acquire - set %s: %v", ErrBackend, redisKey, err)
	}
	if !ok {
		return nil, ErrCommitInProgress
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// Исходный ctx мог быть уже отменен, флаг снимаем в любом случае
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
			defer cancel()

			err := releaseScript.Run(releaseCtx, g.client, []string{redisKey}, token).Err()
			if err != nil && !errors.Is(err, redis.Nil) && g.logger != nil {
				g.logger.Warn("inflight: failed to release %s: %v", redisKey, err)
			}
		})
	}, nil
}
