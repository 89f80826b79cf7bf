// FILE: internal/service/notifier_service.go
// Bridges refresh events from the in-process bus to websocket clients.
package service

import (
	"context"
	"encoding/json"

	"freshcart-be/internal/dto"
	"freshcart-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// RefreshDelivery is what the notifier needs from the websocket hub.
type RefreshDelivery interface {
	SendToSession(sessionID string, payload []byte)
}

type INotifierService interface {
	Consume(ctx context.Context) error
}

type notifierService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	delivery  RefreshDelivery
	logger    logger.ILogger
}

func NewNotifierService(
	pubSub *gochannel.GoChannel,
	topicName string,
	delivery RefreshDelivery,
	log logger.ILogger,
) INotifierService {
	return &notifierService{
		pubSub:    pubSub,
		topicName: topicName,
		delivery:  delivery,
		logger:    log,
	}
}

func (s *notifierService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *notifierService) processMessage(msg *message.Message) {
	var payload dto.SessionRefreshMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Warn("NotifierService", "Dropping malformed refresh event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	frame, err := json.Marshal(map[string]interface{}{
		"type": "refresh",
		"data": payload,
	})
	if err == nil {
		s.delivery.SendToSession(payload.SessionID, frame)
	}

	msg.Ack()
}
