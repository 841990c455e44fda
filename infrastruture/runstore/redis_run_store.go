// Package runstore keeps live runs in Redis.
package runstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultPrefix = "maze"
	runKeyFmt     = "%s:run:%s"
	lockKeySuffix = ":lock"

	lockExpiry = 5 * time.Second
	lockTries  = 20
)

// RedisRunStore stores run snapshots as bson documents with a TTL.
// Every Save refreshes the TTL, so only idle runs expire.
type RedisRunStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	prefix string
}

var _ i.RunStore = &RedisRunStore{}

// NewRedisRunStore initializes a RedisRunStore with the provided Redis client and TTL.
func NewRedisRunStore(client *redis.Client, ttlSeconds int) (*RedisRunStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("invalid run ttl: %d", ttlSeconds)
	}

	pool := goredis.NewPool(client)
	return &RedisRunStore{
		client: client,
		locker: redsync.New(pool),
		ttl:    time.Duration(ttlSeconds) * time.Second,
		prefix: defaultPrefix,
	}, nil
}

// Save stores the run state and refreshes its expiry.
func (s *RedisRunStore) Save(ctx context.Context, state game.RunState) error {
	raw, err := encodeState(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, runKey(s.prefix, state.ID), raw, s.ttl).Err()
}

// ByID loads a run state, or game.ErrRunNotFound if it expired or never existed.
func (s *RedisRunStore) ByID(ctx context.Context, id uuid.UUID) (game.RunState, error) {
	raw, err := s.client.Get(ctx, runKey(s.prefix, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return game.RunState{}, game.ErrRunNotFound
		}
		return game.RunState{}, err
	}
	return decodeState(raw)
}

// Lock takes the distributed lock of a run.
func (s *RedisRunStore) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	mutex := s.locker.NewMutex(
		runKey(s.prefix, id)+lockKeySuffix,
		redsync.WithExpiry(lockExpiry),
		redsync.WithTries(lockTries),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}

func runKey(prefix string, id uuid.UUID) string {
	return fmt.Sprintf(runKeyFmt, prefix, id)
}

func encodeState(state game.RunState) ([]byte, error) {
	raw, err := bson.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encoding run %s: %w", state.ID, err)
	}
	return raw, nil
}

func decodeState(raw []byte) (game.RunState, error) {
	var state game.RunState
	if err := bson.Unmarshal(raw, &state); err != nil {
		return game.RunState{}, fmt.Errorf("decoding run: %w", err)
	}
	return state, nil
}
