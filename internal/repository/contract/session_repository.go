package contract

import (
	"context"

	"freshcart-be/internal/entity"
)

// SessionRepository persists the full session blob under the session id.
//
// Load never surfaces a corrupt or missing blob to the caller: both cases
// yield a fresh default state (full reset, no field-by-field repair).
// Only a genuine storage-medium failure is returned as an error.
// Save serializes the whole state; it is called once per mutation.
type SessionRepository interface {
	Load(ctx context.Context, id string) (*entity.SessionState, error)
	Save(ctx context.Context, id string, state *entity.SessionState) error
	Delete(ctx context.Context, id string) error
}
