package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"microlearn-agent-be/internal/dto"
	"microlearn-agent-be/internal/entity"
	"microlearn-agent-be/internal/pkg/logger"
	"microlearn-agent-be/internal/repository/contract"
	"microlearn-agent-be/internal/repository/specification"
	"microlearn-agent-be/internal/repository/unitofwork"
	"microlearn-agent-be/pkg/analytics"
	"microlearn-agent-be/pkg/events"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func nopLogger() logger.ILogger {
	return logger.NewFromZap(zap.NewNop())
}

// store is a fake persistence layer shared by every unit of work it hands out.
type store struct {
	mu        sync.Mutex
	messages  []*entity.AgentMessage
	feedbacks []*entity.AgentMessage
	logs      []*entity.InteractionLog
	err       error

	// failContent makes Create fail for a message with this content.
	failContent string
	commits     int
	rollbacks   int
}

func (s *store) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{s: s}
}

func (s *store) Logs() []*entity.InteractionLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.InteractionLog(nil), s.logs...)
}

func (s *store) Messages() []*entity.AgentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.AgentMessage(nil), s.messages...)
}

// fakeUow buffers message writes made inside Begin/Commit.
type fakeUow struct {
	s       *store
	inTx    bool
	pending []*entity.AgentMessage
}

func (u *fakeUow) Begin(ctx context.Context) error {
	if u.inTx {
		return errors.New("transaction already started")
	}
	u.inTx = true
	return nil
}

func (u *fakeUow) Commit() error {
	if !u.inTx {
		return errors.New("no transaction to commit")
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	u.s.messages = append(u.s.messages, u.pending...)
	u.s.commits++
	u.inTx, u.pending = false, nil
	return nil
}

func (u *fakeUow) Rollback() error {
	if !u.inTx {
		return errors.New("no transaction to rollback")
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	u.s.rollbacks++
	u.inTx, u.pending = false, nil
	return nil
}

func (u *fakeUow) AgentMessageRepository() contract.AgentMessageRepository {
	return &fakeMessageRepo{u: u, s: u.s}
}

func (u *fakeUow) InteractionLogRepository() contract.InteractionLogRepository {
	return &fakeLogRepo{s: u.s}
}

type fakeMessageRepo struct {
	u *fakeUow
	s *store
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.AgentMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	if r.s.failContent != "" && message.Content == r.s.failContent {
		return errors.New("insert failed")
	}
	cp := *message
	if r.u.inTx {
		r.u.pending = append(r.u.pending, &cp)
		return nil
	}
	r.s.messages = append(r.s.messages, &cp)
	return nil
}

func (r *fakeMessageRepo) UpdateFeedback(ctx context.Context, message *entity.AgentMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	cp := *message
	r.s.feedbacks = append(r.s.feedbacks, &cp)
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}

	var res []*entity.AgentMessage
	for _, m := range r.s.messages {
		if matchesAll(specs, m.UserId, m.ConversationId, "", nil) {
			res = append(res, m)
		}
	}
	return res, nil
}

type fakeLogRepo struct{ s *store }

func (r *fakeLogRepo) Create(ctx context.Context, l *entity.InteractionLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	r.s.logs = append(r.s.logs, l)
	return nil
}

func (r *fakeLogRepo) filter(specs []specification.Specification) ([]*entity.InteractionLog, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	var res []*entity.InteractionLog
	for _, l := range r.s.Logs() {
		columns := map[string]interface{}{"matched": l.Matched, "is_pill_button": l.IsPillButton}
		if matchesAll(specs, l.UserId, l.ConversationId, l.Kind, columns) {
			res = append(res, l)
		}
	}
	return res, nil
}

func (r *fakeLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InteractionLog, error) {
	res, err := r.filter(specs)
	if err != nil {
		return nil, err
	}
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.OrderBy:
			sort.SliceStable(res, func(i, j int) bool {
				if sp.Desc {
					return res[i].CreatedAt.After(res[j].CreatedAt)
				}
				return res[i].CreatedAt.Before(res[j].CreatedAt)
			})
		case specification.Pagination:
			if sp.Offset >= len(res) {
				return nil, nil
			}
			res = res[sp.Offset:]
			if sp.Limit < len(res) {
				res = res[:sp.Limit]
			}
		}
	}
	return res, nil
}

func (r *fakeLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	res, err := r.filter(specs)
	return int64(len(res)), err
}

// matchesAll evaluates the filtering specifications in memory.
func matchesAll(specs []specification.Specification, userID, conversationID uuid.UUID, kind string, columns map[string]interface{}) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByUserID:
			if sp.UserID != userID {
				return false
			}
		case specification.ByConversationID:
			if sp.ConversationID != conversationID {
				return false
			}
		case specification.ByKind:
			if sp.Kind != kind {
				return false
			}
		case specification.FilterBy:
			if v, ok := columns[sp.Field]; !ok || v != sp.Value {
				return false
			}
		}
	}
	return true
}

type recordingSink struct {
	mu        sync.Mutex
	topics    []analytics.TopicEvent
	questions []analytics.QuestionEvent
	err       error
}

func (s *recordingSink) TopicSelected(ctx context.Context, evt analytics.TopicEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = append(s.topics, evt)
	return s.err
}

func (s *recordingSink) QuestionAnswered(ctx context.Context, evt analytics.QuestionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = append(s.questions, evt)
	return s.err
}

type recordingDelivery struct {
	mu     sync.Mutex
	events []*dto.AgentSocketEvent
	users  []uuid.UUID
}

func (d *recordingDelivery) Deliver(userID uuid.UUID, event *dto.AgentSocketEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = append(d.users, userID)
	d.events = append(d.events, event)
}

func (d *recordingDelivery) Events() []*dto.AgentSocketEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*dto.AgentSocketEvent(nil), d.events...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	fail   bool
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("nats unavailable")
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Events() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}
