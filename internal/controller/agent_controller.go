package controller

import (
	"microlearn-agent-be/internal/dto"
	"microlearn-agent-be/internal/pkg/serverutils"
	"microlearn-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	Topics(ctx *fiber.Ctx) error
	OpenConversation(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	SelectTopic(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
	Feedback(ctx *fiber.Ctx) error
	CloseConversation(ctx *fiber.Ctx) error
	Interactions(ctx *fiber.Ctx) error
	InteractionSummary(ctx *fiber.Ctx) error
}

type agentController struct {
	agentService   service.IAgentService
	insightService service.IInsightService
	jwtSecret      string
}

func NewAgentController(agentService service.IAgentService, insightService service.IInsightService, jwtSecret string) IAgentController {
	return &agentController{
		agentService:   agentService,
		insightService: insightService,
		jwtSecret:      jwtSecret,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1")
	h.Use(serverutils.NewJwtMiddleware(c.jwtSecret))
	h.Get("topics", c.Topics)
	h.Post("conversations", c.OpenConversation)
	h.Get("conversations/:id/messages", c.History)
	h.Post("conversations/:id/topics", c.SelectTopic)
	h.Post("conversations/:id/messages", c.Ask)
	h.Put("conversations/:id/messages/:messageId/feedback", c.Feedback)
	h.Delete("conversations/:id", c.CloseConversation)
	h.Get("interactions", c.Interactions)
	h.Get("interactions/summary", c.InteractionSummary)
}

func (c *agentController) Topics(ctx *fiber.Ctx) error {
	res := c.agentService.Topics(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse("Success get topics", res))
}

func (c *agentController) OpenConversation(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.agentService.OpenConversation(ctx.UserContext(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success open conversation", res))
}

func (c *agentController) History(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}
	conversationId, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.agentService.GetHistory(ctx.UserContext(), userId, conversationId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get messages", res))
}

func (c *agentController) SelectTopic(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}
	conversationId, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.SelectTopicRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ConversationId = conversationId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.SelectTopic(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success select topic", res))
}

func (c *agentController) Ask(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}
	conversationId, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ConversationId = conversationId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.Ask(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *agentController) Feedback(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}
	conversationId, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	messageId, err := uuidParam(ctx, "messageId")
	if err != nil {
		return err
	}

	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ConversationId = conversationId
	req.MessageId = messageId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.SetFeedback(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update feedback", res))
}

func (c *agentController) CloseConversation(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}
	conversationId, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.agentService.CloseConversation(ctx.UserContext(), userId, conversationId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success close conversation", nil))
}

func (c *agentController) Interactions(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.ListInteractionsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid query")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.insightService.ListInteractions(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get interactions", res))
}

func (c *agentController) InteractionSummary(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.insightService.Summary(ctx.UserContext(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get interaction summary", res))
}

func uuidParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, serverutils.NewAppError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}
