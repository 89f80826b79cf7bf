// FILE: internal/service/chat_service.go
// Keyword-matched shopping assistant over the session transcript.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"freshcart-be/internal/dto"
	"freshcart-be/internal/entity"
	"freshcart-be/internal/pkg/logger"
	"freshcart-be/internal/repository/contract"
	"freshcart-be/pkg/catalog"
)

const defaultReply = "I can help you compare quality, traceability and best value. Try asking about safety, nutrition, or best deals."

type IChatService interface {
	Send(ctx context.Context, id, text string) (*dto.ChatResponse, error)
	History(ctx context.Context, id string) ([]entity.ChatMessage, error)
}

type chatService struct {
	repo      contract.SessionRepository
	publisher IPublisherService
	logger    logger.ILogger
}

func NewChatService(
	repo contract.SessionRepository,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		repo:      repo,
		publisher: publisher,
		logger:    log,
	}
}

func (s *chatService) Send(ctx context.Context, id, text string) (*dto.ChatResponse, error) {
	state, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	sent := entity.ChatMessage{Role: entity.ChatRoleUser, Text: text}
	state.ChatHistory = append(state.ChatHistory, sent)
	if err := s.repo.Save(ctx, id, state); err != nil {
		return nil, err
	}

	answer, signal := generateReply(text)
	if signal != "" {
		// Asking about deals is itself a value signal.
		if err := applyBehaviorSignal(state, signal); err != nil {
			return nil, err
		}
	}

	reply := entity.ChatMessage{Role: entity.ChatRoleAI, Text: answer}
	state.ChatHistory = append(state.ChatHistory, reply)
	if err := s.repo.Save(ctx, id, state); err != nil {
		return nil, err
	}

	if signal != "" && s.publisher != nil {
		if err := s.publisher.PublishRefresh(id, dto.RefreshReasonSignal); err != nil {
			s.logger.Warn("ChatService", "Failed to publish refresh event", map[string]interface{}{
				"session_id": id,
				"error":      err.Error(),
			})
		}
	}

	return &dto.ChatResponse{Sent: sent, Reply: reply}, nil
}

func (s *chatService) History(ctx context.Context, id string) ([]entity.ChatMessage, error) {
	state, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return state.ChatHistory, nil
}

// generateReply produces the canned assistant answer for a user message
// and the behavior signal it implies, if any.
func generateReply(text string) (answer, signal string) {
	t := strings.ToLower(text)

	switch {
	case strings.Contains(t, "winter") || strings.Contains(t, "nutrition"):
		return "For winter nutrition: spinach, salmon, eggs, and beef are strong options. Check traceability and quality stability for each.", ""

	case strings.Contains(t, "safe") || strings.Contains(t, "safety"):
		return "Safety signals include certification, high traceability completeness, and stable cold-chain delivery (demo).", ""

	case strings.Contains(t, "value") || strings.Contains(t, "cheap") || strings.Contains(t, "discount"):
		best := bestDiscount()
		answer := fmt.Sprintf("Best discount right now looks like: %s (Save %.0f%%).", best.Name, best.DiscountFraction()*100)
		return answer, entity.SignalDiscountViews
	}

	return defaultReply, ""
}

func bestDiscount() catalog.Product {
	products := catalog.Products()
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].DiscountFraction() > products[j].DiscountFraction()
	})
	return products[0]
}
