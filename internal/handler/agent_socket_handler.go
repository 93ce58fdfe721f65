package handler

import (
	"microlearn-agent-be/internal/pkg/logger"
	"microlearn-agent-be/internal/pkg/serverutils"
	internalWS "microlearn-agent-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// AgentSocketHandler upgrades learners to a push-only socket that carries
// follow-up messages.
type AgentSocketHandler struct {
	hub       *internalWS.Hub
	jwtSecret string
	logger    logger.ILogger
}

func NewAgentSocketHandler(hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *AgentSocketHandler {
	return &AgentSocketHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

// ServeWs authenticates the handshake and hands the connection to the hub.
func (h *AgentSocketHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set headers on a websocket handshake, so the query wins.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		tokenStr = serverutils.BearerToken(c)
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Missing token (Query 'token' or Header 'Authorization')"))
	}

	userID, err := serverutils.ParseUserToken(h.jwtSecret, tokenStr)
	if err != nil {
		h.logger.Warn("AgentSocketHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("AgentSocketHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
		internalWS.ServeWs(h.hub, conn, userID)
		h.logger.Info("AgentSocketHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
	})(c)
}

func (h *AgentSocketHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/agent/ws", h.ServeWs)
}
