package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable is an exported constant or variable used by the session store.
var ErrRedisUnavailable = errors.New("session redis unavailable")

// RedisBackend persists the session under a single prefixed key. It serves
// server-side hosts of the SDK (bots, schedulers) that already run Redis; the
// session never expires on its own, matching the client contract.
type RedisBackend struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisBackend describes the newredisbackend operation and its observable behavior.
//
// NewRedisBackend may return an error when input validation, dependency calls, or security checks fail.
// NewRedisBackend does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewRedisBackend(rdb *redis.Client, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = "feedrecap"
	}
	return &RedisBackend{rdb: rdb, prefix: prefix}
}

func (b *RedisBackend) key() string {
	return b.prefix + ":session"
}

// Load reads the persisted session. A missing key means no session.
func (b *RedisBackend) Load(ctx context.Context) (*Session, error) {
	data, err := b.rdb.Get(ctx, b.key()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Join(ErrRedisUnavailable, err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the session with no TTL.
func (b *RedisBackend) Save(ctx context.Context, s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := b.rdb.Set(ctx, b.key(), data, 0).Err(); err != nil {
		return errors.Join(ErrRedisUnavailable, err)
	}
	return nil
}

// Clear deletes the session key. Deleting an absent key is a no-op.
func (b *RedisBackend) Clear(ctx context.Context) error {
	if err := b.rdb.Del(ctx, b.key()).Err(); err != nil {
		return errors.Join(ErrRedisUnavailable, err)
	}
	return nil
}
