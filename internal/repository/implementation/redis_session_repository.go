package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"freshcart-be/internal/entity"
	"freshcart-be/internal/pkg/logger"
	"freshcart-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisSessionRepository stores each session as one JSON blob under
// "session:<id>". The TTL is refreshed on every read so an active
// session never expires mid-visit.
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewRedisSessionRepository(client *redis.Client, ttl time.Duration, log logger.ILogger) contract.SessionRepository {
	return &RedisSessionRepository{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func (r *RedisSessionRepository) Load(ctx context.Context, id string) (*entity.SessionState, error) {
	key := sessionKeyPrefix + id

	blob, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.DefaultSessionState(), nil
	}
	if err != nil {
		return nil, err
	}

	state, ok := decodeSessionState(blob)
	if !ok {
		// Corrupt blob: full reset, never a partial repair.
		return entity.DefaultSessionState(), nil
	}

	r.refreshTTL(ctx, key, id)

	return state, nil
}

// refreshTTL extends the session lifetime on read. Best effort: a
// failure only shortens the session, so it is logged and swallowed.
func (r *RedisSessionRepository) refreshTTL(ctx context.Context, key, id string) {
	if err := r.client.Expire(ctx, key, r.ttl).Err(); err != nil {
		r.logger.Warn("RedisSessionRepository", "Failed to refresh session TTL", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
	}
}

func (r *RedisSessionRepository) Save(ctx context.Context, id string, state *entity.SessionState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKeyPrefix+id, blob, r.ttl).Err()
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKeyPrefix+id).Err()
}

// decodeSessionState parses a persisted blob and checks it has the shape
// of a session. A blob that parses but carries none of the expected
// fields (wrong shape entirely) is treated as corrupt.
func decodeSessionState(blob []byte) (*entity.SessionState, bool) {
	var state entity.SessionState
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, false
	}
	if state.UserType == "" {
		return nil, false
	}
	return &state, true
}
