package bootstrap

import (
	"context"
	"log"
	"time"

	"freshcart-be/internal/config"
	"freshcart-be/internal/controller"
	"freshcart-be/internal/handler"
	"freshcart-be/internal/pkg/logger"
	"freshcart-be/internal/repository/contract"
	"freshcart-be/internal/repository/implementation"
	"freshcart-be/internal/repository/memory"
	"freshcart-be/internal/service"
	"freshcart-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

// refreshTopicName is the in-process bus topic carrying session refresh
// events from the services to the websocket notifier.
const refreshTopicName = "SESSION_REFRESH"

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	CatalogController controller.ICatalogController

	// WebSockets & refresh push
	RefreshHandler *handler.RefreshHandler
	WebSocketHub   *websocket.Hub

	// Background services (exposed for main.go to run)
	NotifierService service.INotifierService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Session repository driver
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessionRepo contract.SessionRepository
	if cfg.Session.Store == "redis" {
		opt, err := redis.ParseURL(cfg.Session.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Session.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = implementation.NewRedisSessionRepository(rdb, ttl, sysLogger)
		log.Println("[INFO] Using Session Store: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository(ttl)
		log.Println("[INFO] Using Session Store: MEMORY")
	}

	// 4. WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/refresh.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	// 5. Services
	publisherService := service.NewPublisherService(refreshTopicName, pubSub)
	sessionService := service.NewSessionService(sessionRepo, publisherService, sysLogger)
	chatService := service.NewChatService(sessionRepo, publisherService, sysLogger)
	notifierService := service.NewNotifierService(pubSub, refreshTopicName, wsHub, wsLogger)

	// 6. Controllers
	return &Container{
		SessionController: controller.NewSessionController(sessionService, chatService),
		CatalogController: controller.NewCatalogController(),
		RefreshHandler:    handler.NewRefreshHandler(wsHub, wsLogger),
		WebSocketHub:      wsHub,
		NotifierService:   notifierService,
	}
}
