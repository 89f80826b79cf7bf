// FILE: internal/service/session_service.go
// Session controller: owns every mutation of the shopper session state.
package service

import (
	"context"

	"freshcart-be/internal/dto"
	"freshcart-be/internal/entity"
	"freshcart-be/internal/pkg/logger"
	"freshcart-be/internal/repository/contract"
	"freshcart-be/pkg/catalog"
	"freshcart-be/pkg/preference"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context) (string, *entity.SessionState, error)
	Get(ctx context.Context, id string) (*entity.SessionState, error)
	SetUserType(ctx context.Context, id, userType string) (*entity.SessionState, error)
	RecordSignal(ctx context.Context, id, signal string) (*entity.SessionState, error)
	ResetBehavior(ctx context.Context, id string) (*entity.SessionState, error)
	Recommendations(ctx context.Context, id string) ([]catalog.Product, error)
	AddToCart(ctx context.Context, id, productName string) (*entity.SessionState, error)
	RemoveFromCart(ctx context.Context, id string, index int) (*entity.SessionState, error)
}

type sessionService struct {
	repo      contract.SessionRepository
	publisher IPublisherService
	logger    logger.ILogger
}

func NewSessionService(
	repo contract.SessionRepository,
	publisher IPublisherService,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		repo:      repo,
		publisher: publisher,
		logger:    log,
	}
}

func (s *sessionService) Create(ctx context.Context) (string, *entity.SessionState, error) {
	id := uuid.New().String()
	state := entity.DefaultSessionState()

	if err := s.repo.Save(ctx, id, state); err != nil {
		return "", nil, err
	}

	s.logger.Info("SessionService", "Session created", map[string]interface{}{"session_id": id})
	return id, state, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*entity.SessionState, error) {
	return s.repo.Load(ctx, id)
}

func (s *sessionService) SetUserType(ctx context.Context, id, userType string) (*entity.SessionState, error) {
	switch userType {
	case preference.UserTypeAutoDetect, preference.TypeQuality, preference.TypeValue:
	default:
		return nil, ErrUnknownUserType
	}

	state, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	state.UserType = userType
	if err := s.repo.Save(ctx, id, state); err != nil {
		return nil, err
	}

	s.publishRefresh(id, dto.RefreshReasonUserType)
	return state, nil
}

func (s *sessionService) RecordSignal(ctx context.Context, id, signal string) (*entity.SessionState, error) {
	state, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyBehaviorSignal(state, signal); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, id, state); err != nil {
		return nil, err
	}

	s.publishRefresh(id, dto.RefreshReasonSignal)
	return state, nil
}

func (s *sessionService) ResetBehavior(ctx context.Context, id string) (*entity.SessionState, error) {
	state, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	// User type, cart and transcript survive a behavior reset.
	state.BehaviorData = entity.BehaviorData{}

	if err := s.repo.Save(ctx, id, state); err != nil {
		return nil, err
	}

	s.publishRefresh(id, dto.RefreshReasonReset)
	return state, nil
}

func (s *sessionService) Recommendations(ctx context.Context, id string) ([]catalog.Product, error) {
	state, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return preference.Recommend(state.UserType, state.BehaviorData.Behavior, catalog.Products()), nil
}

func (s *sessionService) AddToCart(ctx context.Context, id, productName string) (*entity.SessionState, error) {
	product, ok := catalog.FindByName(productName)
	if !ok {
		return nil, ErrProductNotFound
	}

	state, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	state.Cart = append(state.Cart, product)
	if err := s.repo.Save(ctx, id, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *sessionService) RemoveFromCart(ctx context.Context, id string, index int) (*entity.SessionState, error) {
	state, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(state.Cart) {
		return nil, ErrCartIndexInvalid
	}

	state.Cart = append(state.Cart[:index], state.Cart[index+1:]...)
	if err := s.repo.Save(ctx, id, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *sessionService) publishRefresh(id, reason string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRefresh(id, reason); err != nil {
		s.logger.Warn("SessionService", "Failed to publish refresh event", map[string]interface{}{
			"session_id": id,
			"reason":     reason,
			"error":      err.Error(),
		})
	}
}

// applyBehaviorSignal increments exactly one counter and refreshes the
// cached detection so it can never go stale relative to the counters.
// Shared with the chat service, whose discount branch records a signal.
func applyBehaviorSignal(state *entity.SessionState, signal string) error {
	b := &state.BehaviorData
	switch signal {
	case entity.SignalQualityClicks:
		b.QualityClicks++
	case entity.SignalPriceClicks:
		b.PriceClicks++
	case entity.SignalTraceViews:
		b.TraceViews++
	case entity.SignalDiscountViews:
		b.DiscountViews++
	case entity.SignalOrganicViews:
		b.OrganicViews++
	default:
		return ErrUnknownSignal
	}

	b.ApplyDetection(preference.Detect(b.Behavior))
	return nil
}
