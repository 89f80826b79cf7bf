package handler

import (
	"freshcart-be/internal/pkg/logger"
	internalWS "freshcart-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RefreshHandler exposes the websocket channel that pushes refresh
// frames to a session's open tabs after every detection-affecting
// mutation.
type RefreshHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewRefreshHandler(hub *internalWS.Hub, log logger.ILogger) *RefreshHandler {
	return &RefreshHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *RefreshHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/ws/:id", h.ServeWs)
}

// ServeWs upgrades the connection and attaches it to the hub under the
// session id from the path.
func (h *RefreshHandler) ServeWs(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing session id"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("RefreshHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("RefreshHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
