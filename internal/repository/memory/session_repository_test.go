package memory

import (
	"context"
	"testing"
	"time"

	"freshcart-be/internal/entity"
	"freshcart-be/pkg/catalog"
	"freshcart-be/pkg/preference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo() *SessionRepository {
	return NewSessionRepository(time.Hour)
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	repo := newTestRepo()

	state, err := repo.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSessionState(), state)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	state := entity.DefaultSessionState()
	state.UserType = preference.TypeQuality
	state.BehaviorData.QualityClicks = 2
	state.BehaviorData.TraceViews = 1
	state.BehaviorData.ApplyDetection(preference.Detect(state.BehaviorData.Behavior))
	spinach, _ := catalog.FindByName("Organic Baby Spinach")
	state.Cart = append(state.Cart, spinach)
	state.ChatHistory = append(state.ChatHistory, entity.ChatMessage{Role: entity.ChatRoleUser, Text: "hi"})

	require.NoError(t, repo.Save(ctx, "s1", state))

	loaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

// TestLoadReturnsIndependentCopy ensures a caller mutating a loaded state
// cannot change what the next Load sees without going through Save.
func TestLoadReturnsIndependentCopy(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "s1", entity.DefaultSessionState()))

	first, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	first.BehaviorData.QualityClicks = 99

	second, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, second.BehaviorData.QualityClicks)
}

func TestCorruptBlobYieldsFullReset(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	tests := []struct {
		name string
		blob []byte
	}{
		{name: "not json", blob: []byte("{not-json")},
		{name: "wrong shape", blob: []byte(`{"foo": 1}`)},
		{name: "wrong types", blob: []byte(`{"user_type": 42}`)},
		{name: "empty", blob: []byte("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.seed("bad", tt.blob)

			state, err := repo.Load(ctx, "bad")
			require.NoError(t, err)
			assert.Equal(t, entity.DefaultSessionState(), state)
		})
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	state := entity.DefaultSessionState()
	state.UserType = preference.TypeValue
	require.NoError(t, repo.Save(ctx, "s1", state))
	require.NoError(t, repo.Delete(ctx, "s1"))

	loaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSessionState(), loaded)
}
