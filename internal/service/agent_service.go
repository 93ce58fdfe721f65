package service

import (
	"context"
	"time"

	"microlearn-agent-be/internal/dto"
	"microlearn-agent-be/internal/entity"
	"microlearn-agent-be/internal/pkg/logger"
	"microlearn-agent-be/internal/repository/memory"
	"microlearn-agent-be/pkg/agent/followup"
	"microlearn-agent-be/pkg/agent/markdown"
	"microlearn-agent-be/pkg/agent/resolver"
	"microlearn-agent-be/pkg/agent/topic"
	"microlearn-agent-be/pkg/analytics"

	"github.com/google/uuid"
)

// MessageDelivery pushes messages produced outside a request (follow-ups)
// to the learner's open sockets.
type MessageDelivery interface {
	Deliver(userID uuid.UUID, event *dto.AgentSocketEvent)
}

type IAgentService interface {
	Topics(ctx context.Context) []*dto.TopicResponse
	OpenConversation(ctx context.Context, userId uuid.UUID) (*dto.ConversationResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) ([]*dto.AgentMessageResponse, error)
	SelectTopic(ctx context.Context, userId uuid.UUID, request *dto.SelectTopicRequest) (*dto.SelectTopicResponse, error)
	Ask(ctx context.Context, userId uuid.UUID, request *dto.AskRequest) (*dto.AskResponse, error)
	SetFeedback(ctx context.Context, userId uuid.UUID, request *dto.FeedbackRequest) (*dto.AgentMessageResponse, error)
	CloseConversation(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) error
}

type agentService struct {
	conversations    *memory.ConversationRepository
	scheduler        *followup.Scheduler
	sink             analytics.EventSink
	mirror           IMessageMirror
	delivery         MessageDelivery
	logger           logger.ILogger
	followUpsEnabled bool
	now              func() time.Time
}

func NewAgentService(
	conversations *memory.ConversationRepository,
	scheduler *followup.Scheduler,
	sink analytics.EventSink,
	mirror IMessageMirror,
	delivery MessageDelivery,
	log logger.ILogger,
	followUpsEnabled bool,
) IAgentService {
	return &agentService{
		conversations:    conversations,
		scheduler:        scheduler,
		sink:             sink,
		mirror:           mirror,
		delivery:         delivery,
		logger:           log,
		followUpsEnabled: followUpsEnabled,
		now:              time.Now,
	}
}

func (s *agentService) Topics(ctx context.Context) []*dto.TopicResponse {
	labels := topic.Labels()
	res := make([]*dto.TopicResponse, 0, len(labels))
	for _, label := range labels {
		_, hasPlan := s.scheduler.PlanFor(label)
		res = append(res, &dto.TopicResponse{
			Label:        label,
			HasFollowUps: hasPlan && s.followUpsEnabled,
		})
	}
	return res
}

func (s *agentService) OpenConversation(ctx context.Context, userId uuid.UUID) (*dto.ConversationResponse, error) {
	conv := memory.NewConversation(userId, s.now())

	greeting := s.newMessage(conv, entity.AgentRoleAssistant, topic.Greeting, "")
	s.record(ctx, conv, greeting)
	s.conversations.Save(conv)

	s.logger.Info("Agent", "Conversation opened", map[string]interface{}{
		"conversation_id": conv.ID,
		"user_id":         userId,
	})

	return &dto.ConversationResponse{
		Id:        conv.ID,
		CreatedAt: conv.CreatedAt,
		Messages:  toMessageResponses(conv.Messages()),
	}, nil
}

func (s *agentService) GetHistory(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) ([]*dto.AgentMessageResponse, error) {
	conv, err := s.loadConversation(userId, conversationId)
	if err == nil {
		return toMessageResponses(conv.Messages()), nil
	}
	if err != ErrConversationNotFound {
		return nil, err
	}

	// Expired or closed conversations are served read-only from the mirror.
	archived, mirrorErr := s.mirror.History(ctx, userId, conversationId)
	if mirrorErr != nil {
		s.logger.Warn("Agent", "Failed to read archived conversation", map[string]interface{}{
			"conversation_id": conversationId,
			"error":           mirrorErr.Error(),
		})
		return nil, ErrConversationNotFound
	}
	if len(archived) == 0 {
		return nil, ErrConversationNotFound
	}
	return toMessageResponses(archived), nil
}

func (s *agentService) SelectTopic(ctx context.Context, userId uuid.UUID, request *dto.SelectTopicRequest) (*dto.SelectTopicResponse, error) {
	conv, err := s.loadConversation(userId, request.ConversationId)
	if err != nil {
		return nil, err
	}

	label := request.Label
	sent := s.newMessage(conv, entity.AgentRoleUser, label, "")
	reply := s.newMessage(conv, entity.AgentRoleAssistant, topic.Dispatch(label), label)
	if !s.record(ctx, conv, sent, reply) {
		return nil, ErrConversationClosed
	}
	s.conversations.Touch(conv)

	if err := s.sink.TopicSelected(ctx, analytics.TopicEvent{
		UserID:         userId,
		ConversationID: conv.ID,
		Topic:          label,
		Question:       label,
		IsPillButton:   true,
		OccurredAt:     sent.CreatedAt,
	}); err != nil {
		s.logger.Warn("Agent", "Failed to log topic selection", map[string]interface{}{"topic": label, "error": err.Error()})
	}

	scheduled := 0
	if s.followUpsEnabled && !conv.Closed() {
		if h := s.scheduler.Schedule(conv.Context(), label, s.followUpEmitter(conv, label)); h != nil {
			scheduled = h.Count
		}
	}

	s.logger.Info("Agent", "Topic dispatched", map[string]interface{}{
		"conversation_id": conv.ID,
		"topic":           label,
		"known":           topic.Known(label),
		"follow_ups":      scheduled,
	})

	return &dto.SelectTopicResponse{
		Sent:              toMessageResponse(sent),
		Reply:             toMessageResponse(reply),
		ScheduledFollowUp: scheduled,
	}, nil
}

func (s *agentService) Ask(ctx context.Context, userId uuid.UUID, request *dto.AskRequest) (*dto.AskResponse, error) {
	conv, err := s.loadConversation(userId, request.ConversationId)
	if err != nil {
		return nil, err
	}

	result := resolver.Explain(request.Chat)
	matched := result.Outcome != resolver.OutcomeNotFound
	text := result.Reply
	if !matched {
		text = resolver.Fallback
	}

	sent := s.newMessage(conv, entity.AgentRoleUser, request.Chat, "")
	reply := s.newMessage(conv, entity.AgentRoleAssistant, text, request.Chat)
	if !s.record(ctx, conv, sent, reply) {
		return nil, ErrConversationClosed
	}
	s.conversations.Touch(conv)

	if request.PillButtonContext != "" {
		if err := s.sink.TopicSelected(ctx, analytics.TopicEvent{
			UserID:         userId,
			ConversationID: conv.ID,
			Topic:          request.PillButtonContext,
			Question:       request.Chat,
			IsPillButton:   false,
			OccurredAt:     sent.CreatedAt,
		}); err != nil {
			s.logger.Warn("Agent", "Failed to log topic context", map[string]interface{}{"error": err.Error()})
		}
	}

	if err := s.sink.QuestionAnswered(ctx, analytics.QuestionEvent{
		UserID:            userId,
		ConversationID:    conv.ID,
		Question:          request.Chat,
		Response:          text,
		PillButtonContext: request.PillButtonContext,
		Matched:           matched,
		Outcome:           result.Outcome,
		EntryID:           result.EntryID,
		OccurredAt:        reply.CreatedAt,
	}); err != nil {
		s.logger.Warn("Agent", "Failed to log question", map[string]interface{}{"error": err.Error()})
	}

	s.logger.Debug("Agent", "Question resolved", map[string]interface{}{
		"conversation_id": conv.ID,
		"outcome":         result.Outcome,
		"rule":            result.Rule,
		"entry_id":        result.EntryID,
	})

	return &dto.AskResponse{
		Sent:    toMessageResponse(sent),
		Reply:   toMessageResponse(reply),
		Matched: matched,
	}, nil
}

func (s *agentService) SetFeedback(ctx context.Context, userId uuid.UUID, request *dto.FeedbackRequest) (*dto.AgentMessageResponse, error) {
	switch request.Feedback {
	case "", entity.FeedbackUp, entity.FeedbackDown:
	default:
		return nil, ErrInvalidFeedback
	}

	conv, err := s.loadConversation(userId, request.ConversationId)
	if err != nil {
		return nil, err
	}

	msg, ok := conv.Message(request.MessageId)
	if !ok {
		return nil, ErrMessageNotFound
	}
	if msg.Role != entity.AgentRoleAssistant {
		return nil, ErrFeedbackNotAllowed
	}

	updated, ok := conv.SetFeedback(request.MessageId, request.Feedback, s.now())
	if !ok {
		return nil, ErrMessageNotFound
	}
	s.mirror.UpdateFeedback(ctx, &updated)

	return toMessageResponse(updated), nil
}

func (s *agentService) CloseConversation(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) error {
	conv, err := s.loadConversation(userId, conversationId)
	if err != nil {
		return err
	}

	conv.Close()
	s.conversations.Delete(conv.ID)

	s.logger.Info("Agent", "Conversation closed", map[string]interface{}{
		"conversation_id": conv.ID,
		"messages":        len(conv.Messages()),
	})
	return nil
}

func (s *agentService) loadConversation(userId, conversationId uuid.UUID) (*memory.Conversation, error) {
	conv, ok := s.conversations.Get(conversationId)
	if !ok {
		return nil, ErrConversationNotFound
	}
	if conv.UserID != userId {
		return nil, ErrConversationForbidden
	}
	return conv, nil
}

func (s *agentService) newMessage(conv *memory.Conversation, role, content, trigger string) entity.AgentMessage {
	return entity.AgentMessage{
		Id:             uuid.New(),
		ConversationId: conv.ID,
		UserId:         conv.UserID,
		Role:           role,
		Content:        content,
		Trigger:        trigger,
		CreatedAt:      conv.Stamp(s.now()),
	}
}

// record appends msgs to the conversation and mirrors the ones that made it.
// False means the conversation was closed in the meantime.
func (s *agentService) record(ctx context.Context, conv *memory.Conversation, msgs ...entity.AgentMessage) bool {
	appended := make([]*entity.AgentMessage, 0, len(msgs))
	for i := range msgs {
		if !conv.Append(msgs[i]) {
			break
		}
		cp := msgs[i]
		appended = append(appended, &cp)
	}
	s.mirror.Save(ctx, appended...)
	return len(appended) == len(msgs)
}

func (s *agentService) followUpEmitter(conv *memory.Conversation, label string) followup.EmitFunc {
	return func(text string) {
		msg := s.newMessage(conv, entity.AgentRoleAssistant, text, label)
		msg.IsFollowUp = true
		if !s.record(conv.Context(), conv, msg) {
			return
		}
		s.delivery.Deliver(conv.UserID, &dto.AgentSocketEvent{
			Type: dto.AgentSocketEventMessage,
			Data: toMessageResponse(msg),
		})
	}
}

func toMessageResponse(msg entity.AgentMessage) *dto.AgentMessageResponse {
	res := &dto.AgentMessageResponse{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           msg.Role,
		Content:        msg.Content,
		Trigger:        msg.Trigger,
		IsFollowUp:     msg.IsFollowUp,
		Timestamp:      msg.CreatedAt,
	}
	if msg.Role == entity.AgentRoleAssistant {
		res.Links = markdown.ExtractLinks(msg.Content)
	}
	if msg.Feedback != "" {
		feedback := msg.Feedback
		res.Feedback = &feedback
	}
	return res
}

func toMessageResponses(msgs []entity.AgentMessage) []*dto.AgentMessageResponse {
	res := make([]*dto.AgentMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, toMessageResponse(m))
	}
	return res
}
