package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps attempt notes in a redis hash per attempt, so the step
// survives restarts and works across replicas.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Store backed by the given redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "otpstep:attempt:",
	}
}

func (s *RedisStore) SetNotes(ctx context.Context, attemptID string, notes map[string]string, ttl time.Duration) error {
	fk := s.prefix + attemptID

	// HSet of the full map plus Expire in one transaction keeps the write
	// atomic from the point of view of concurrent readers.
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, fk, flatten(notes)...)
		pipe.Expire(ctx, fk, ttl)
		return nil
	})
	return err
}

func (s *RedisStore) GetNotes(ctx context.Context, attemptID string) (map[string]string, error) {
	notes, err := s.client.HGetAll(ctx, s.prefix+attemptID).Result()
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, ErrAttemptNotFound
	}
	return notes, nil
}

func (s *RedisStore) Clear(ctx context.Context, attemptID string) error {
	return s.client.Del(ctx, s.prefix+attemptID).Err()
}

func flatten(notes map[string]string) []any {
	kv := make([]any, 0, len(notes)*2)
	for k, v := range notes {
		kv = append(kv, k, v)
	}
	return kv
}
