package service

import (
	"context"
	"testing"
	"time"

	"freshcart-be/internal/dto"
	"freshcart-be/internal/entity"
	"freshcart-be/internal/repository/memory"
	"freshcart-be/pkg/preference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// fakePublisher records refresh events instead of hitting the bus.
type fakePublisher struct {
	events []dto.SessionRefreshMessage
}

func (f *fakePublisher) PublishRefresh(sessionID, reason string) error {
	f.events = append(f.events, dto.SessionRefreshMessage{SessionID: sessionID, Reason: reason})
	return nil
}

func newTestSessionService() (ISessionService, *memory.SessionRepository, *fakePublisher) {
	repo := memory.NewSessionRepository(time.Hour)
	pub := &fakePublisher{}
	return NewSessionService(repo, pub, nopLogger{}), repo, pub
}

func TestCreateMintsDefaultSession(t *testing.T) {
	svc, repo, _ := newTestSessionService()
	ctx := context.Background()

	id, state, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, entity.DefaultSessionState(), state)

	// Persisted, not just returned.
	loaded, err := repo.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSessionState(), loaded)

	id2, _, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, id, id2)
}

func TestRecordSignalIncrementsAndCaches(t *testing.T) {
	svc, repo, pub := newTestSessionService()
	ctx := context.Background()

	state, err := svc.RecordSignal(ctx, "s1", entity.SignalQualityClicks)
	require.NoError(t, err)

	assert.Equal(t, 1, state.BehaviorData.QualityClicks)
	assert.Zero(t, state.BehaviorData.PriceClicks)
	assert.Zero(t, state.BehaviorData.TraceViews)

	require.NotNil(t, state.BehaviorData.DetectedType)
	assert.Equal(t, preference.TypeQuality, *state.BehaviorData.DetectedType)
	assert.InDelta(t, 100.0/3.0, state.BehaviorData.Confidence, 1e-9)

	// Write-through persistence: the mutation survives a reload.
	loaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, state, loaded)

	require.Len(t, pub.events, 1)
	assert.Equal(t, dto.RefreshReasonSignal, pub.events[0].Reason)
	assert.Equal(t, "s1", pub.events[0].SessionID)
}

func TestRecordSignalUnknownIsRejected(t *testing.T) {
	svc, repo, pub := newTestSessionService()
	ctx := context.Background()

	_, err := svc.RecordSignal(ctx, "s1", "add_to_wishlist")
	assert.ErrorIs(t, err, ErrUnknownSignal)

	// Nothing was persisted or announced.
	loaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSessionState(), loaded)
	assert.Empty(t, pub.events)
}

// TestCachedDetectionNeverDiverges drives a mixed signal sequence and
// checks the cached fields always equal a pure recompute.
func TestCachedDetectionNeverDiverges(t *testing.T) {
	svc, _, _ := newTestSessionService()
	ctx := context.Background()

	signals := []string{
		entity.SignalQualityClicks,
		entity.SignalDiscountViews,
		entity.SignalTraceViews,
		entity.SignalPriceClicks,
		entity.SignalOrganicViews,
		entity.SignalDiscountViews,
	}

	for _, sig := range signals {
		state, err := svc.RecordSignal(ctx, "s1", sig)
		require.NoError(t, err)

		want := preference.Detect(state.BehaviorData.Behavior)
		require.NotNil(t, state.BehaviorData.DetectedType)
		assert.Equal(t, want.Type, *state.BehaviorData.DetectedType)
		assert.Equal(t, want.Confidence, state.BehaviorData.Confidence)
	}
}

func TestResetBehaviorKeepsEverythingElse(t *testing.T) {
	svc, _, pub := newTestSessionService()
	ctx := context.Background()

	_, err := svc.SetUserType(ctx, "s1", preference.TypeQuality)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "s1", "Fresh Organic Tofu")
	require.NoError(t, err)
	_, err = svc.RecordSignal(ctx, "s1", entity.SignalTraceViews)
	require.NoError(t, err)

	state, err := svc.ResetBehavior(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, entity.BehaviorData{}, state.BehaviorData)
	assert.Nil(t, state.BehaviorData.DetectedType)
	assert.Zero(t, state.BehaviorData.Confidence)

	// User type and cart survive.
	assert.Equal(t, preference.TypeQuality, state.UserType)
	require.Len(t, state.Cart, 1)
	assert.Equal(t, "Fresh Organic Tofu", state.Cart[0].Name)

	last := pub.events[len(pub.events)-1]
	assert.Equal(t, dto.RefreshReasonReset, last.Reason)
}

func TestSetUserType(t *testing.T) {
	svc, repo, pub := newTestSessionService()
	ctx := context.Background()

	state, err := svc.SetUserType(ctx, "s1", preference.TypeValue)
	require.NoError(t, err)
	assert.Equal(t, preference.TypeValue, state.UserType)

	loaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, preference.TypeValue, loaded.UserType)

	require.Len(t, pub.events, 1)
	assert.Equal(t, dto.RefreshReasonUserType, pub.events[0].Reason)

	_, err = svc.SetUserType(ctx, "s1", "Bargain Hunter")
	assert.ErrorIs(t, err, ErrUnknownUserType)
}

func TestRecommendationsFollowSessionMode(t *testing.T) {
	svc, _, _ := newTestSessionService()
	ctx := context.Background()

	// Fresh session: auto-detect with no signals, natural catalog order.
	products, err := svc.Recommendations(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, products, 4)
	assert.Equal(t, "Organic Baby Spinach", products[0].Name)
	assert.Equal(t, "Fresh Norwegian Salmon", products[1].Name)

	// Explicit value priority reorders by discount.
	_, err = svc.SetUserType(ctx, "s1", preference.TypeValue)
	require.NoError(t, err)

	products, err = svc.Recommendations(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, products, 4)
	assert.Equal(t, "Premium Organic Strawberries", products[0].Name)
}

func TestCartLifecycle(t *testing.T) {
	svc, _, _ := newTestSessionService()
	ctx := context.Background()

	state, err := svc.AddToCart(ctx, "s1", "Organic Baby Spinach")
	require.NoError(t, err)
	assert.InDelta(t, 18.9, state.CartTotal(), 1e-9)

	state, err = svc.AddToCart(ctx, "s1", "Fresh Norwegian Salmon")
	require.NoError(t, err)
	assert.InDelta(t, 86.9, state.CartTotal(), 1e-9)

	state, err = svc.RemoveFromCart(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, state.Cart, 1)
	assert.Equal(t, "Fresh Norwegian Salmon", state.Cart[0].Name)
	assert.InDelta(t, 68.0, state.CartTotal(), 1e-9)

	// Duplicates are allowed; order is insertion order.
	state, err = svc.AddToCart(ctx, "s1", "Fresh Norwegian Salmon")
	require.NoError(t, err)
	require.Len(t, state.Cart, 2)
	assert.InDelta(t, 136.0, state.CartTotal(), 1e-9)
}

func TestCartContractViolations(t *testing.T) {
	svc, _, _ := newTestSessionService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", "Imaginary Durian")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.RemoveFromCart(ctx, "s1", 0)
	assert.ErrorIs(t, err, ErrCartIndexInvalid)

	_, err = svc.RemoveFromCart(ctx, "s1", -1)
	assert.ErrorIs(t, err, ErrCartIndexInvalid)
}
