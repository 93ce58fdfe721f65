package service

import (
	"microlearn-agent-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrConversationNotFound  = serverutils.NewAppError(fiber.StatusNotFound, "conversation not found")
	ErrConversationForbidden = serverutils.NewAppError(fiber.StatusForbidden, "conversation belongs to another user")
	ErrConversationClosed    = serverutils.NewAppError(fiber.StatusGone, "conversation is closed")
	ErrMessageNotFound       = serverutils.NewAppError(fiber.StatusNotFound, "message not found")
	ErrInvalidFeedback       = serverutils.NewAppError(fiber.StatusBadRequest, "feedback must be up, down or empty")
	ErrFeedbackNotAllowed    = serverutils.NewAppError(fiber.StatusBadRequest, "feedback is only accepted on assistant messages")
)
