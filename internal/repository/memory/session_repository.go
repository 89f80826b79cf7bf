package memory

import (
	"context"
	"encoding/json"
	"time"

	"freshcart-be/internal/entity"
	"freshcart-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps session blobs in process memory. States are
// stored as serialized JSON so that Load always hands out an independent
// copy and corrupt blobs degrade to the default state, exactly like the
// redis driver.
type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository creates the in-memory driver. Sessions expire
// after the given TTL; expired items are purged every 10 minutes.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

var _ contract.SessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) Load(ctx context.Context, id string) (*entity.SessionState, error) {
	raw, found := r.cache.Get(id)
	if !found {
		return entity.DefaultSessionState(), nil
	}

	blob, ok := raw.([]byte)
	if !ok {
		return entity.DefaultSessionState(), nil
	}

	var state entity.SessionState
	if err := json.Unmarshal(blob, &state); err != nil {
		return entity.DefaultSessionState(), nil
	}
	if state.UserType == "" {
		// Parsed but not shaped like a session: full reset.
		return entity.DefaultSessionState(), nil
	}
	return &state, nil
}

func (r *SessionRepository) Save(ctx context.Context, id string, state *entity.SessionState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}
	r.cache.Set(id, blob, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}

// seed stores a raw blob without going through Save. Test hook for
// corrupt-state recovery.
func (r *SessionRepository) seed(id string, blob []byte) {
	r.cache.Set(id, blob, cache.DefaultExpiration)
}
