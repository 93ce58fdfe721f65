package followup

import (
	"context"
	"sync"
	"time"
)

// WaitFunc blocks for d or until ctx is done, returning ctx.Err() in the latter case.
type WaitFunc func(ctx context.Context, d time.Duration) error

// EmitFunc receives each follow-up text as it becomes due.
type EmitFunc func(text string)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithWaitFunc replaces the timer used between follow-ups.
func WithWaitFunc(w WaitFunc) Option {
	return func(s *Scheduler) { s.wait = w }
}

// WithPlans replaces the built-in plans.
func WithPlans(plans map[string]Plan) Option {
	return func(s *Scheduler) { s.plans = plans }
}

// Scheduler runs follow-up plans. Each scheduled plan is consumed in order by a
// single goroutine that can be cancelled through its Handle.
type Scheduler struct {
	wait  WaitFunc
	plans map[string]Plan

	mu     sync.Mutex
	active map[*Handle]struct{}
	closed bool
	wg     sync.WaitGroup
}

// Handle tracks one running plan.
type Handle struct {
	Label string
	Count int

	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops any follow-ups that have not been emitted yet. Safe on nil.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.cancel()
}

// Done is closed once the plan has finished or was cancelled.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// NewScheduler returns a scheduler using the built-in plans and real timers
// unless opts say otherwise.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		wait:   sleep,
		plans:  DefaultPlans(),
		active: make(map[*Handle]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlanFor returns the follow-up plan for a topic label.
func (s *Scheduler) PlanFor(label string) (Plan, bool) {
	plan, ok := s.plans[label]
	if !ok || len(plan) == 0 {
		return nil, false
	}
	return plan, true
}

// Schedule starts the plan for label and returns its handle, or nil when the
// label has no follow-ups or the scheduler is shutting down. emit is called
// from the scheduler goroutine.
func (s *Scheduler) Schedule(ctx context.Context, label string, emit EmitFunc) *Handle {
	plan, ok := s.PlanFor(label)
	if !ok {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	h := &Handle{
		Label:  label,
		Count:  len(plan),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	// Add under the lock so Shutdown never waits while a plan is being added.
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		cancel()
		return nil
	}
	s.active[h] = struct{}{}
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(runCtx, h, plan, emit)

	return h
}

func (s *Scheduler) run(ctx context.Context, h *Handle, plan Plan, emit EmitFunc) {
	defer s.wg.Done()
	defer close(h.done)
	defer s.forget(h)
	defer h.cancel()

	var elapsed time.Duration
	for _, f := range plan {
		d := f.At - elapsed
		if d < 0 {
			d = 0
		}
		if err := s.wait(ctx, d); err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
		elapsed = f.At
		emit(f.Text)
	}
}

func (s *Scheduler) forget(h *Handle) {
	s.mu.Lock()
	delete(s.active, h)
	s.mu.Unlock()
}

// Pending is the number of plans still running.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Shutdown cancels every running plan and waits for their goroutines to exit.
// Later calls to Schedule return nil.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	s.closed = true
	for h := range s.active {
		h.cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// Wait blocks until every running plan has finished.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
