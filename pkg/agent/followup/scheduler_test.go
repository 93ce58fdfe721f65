package followup

import (
	"context"
	"sync"
	"testing"
	"time"

	"microlearn-agent-be/pkg/agent/topic"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	waits []time.Duration
	texts []string
}

func (r *recorder) wait(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.waits = append(r.waits, d)
	r.mu.Unlock()
	return ctx.Err()
}

func (r *recorder) emit(text string) {
	r.mu.Lock()
	r.texts = append(r.texts, text)
	r.mu.Unlock()
}

func waitDone(t *testing.T, h *Handle) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("plan did not finish")
	}
}

func TestScheduleTrainingPlan(t *testing.T) {
	rec := &recorder{}
	s := NewScheduler(WithWaitFunc(rec.wait))

	h := s.Schedule(context.Background(), topic.LabelTraining, rec.emit)
	require.NotNil(t, h)
	assert.Equal(t, 2, h.Count)
	waitDone(t, h)

	plan := DefaultPlans()[topic.LabelTraining]
	if diff := cmp.Diff([]time.Duration{5 * time.Second, 10 * time.Second}, rec.waits); diff != "" {
		t.Errorf("waits mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{plan[0].Text, UniversalResource}, rec.texts)
	assert.Contains(t, rec.texts[0], "MIT Sloan")
	assert.Equal(t, 15*time.Second, plan.Total())
}

func TestScheduleLeadershipEmitsInOrder(t *testing.T) {
	rec := &recorder{}
	s := NewScheduler(WithWaitFunc(rec.wait))

	h := s.Schedule(context.Background(), topic.LabelLeadership, rec.emit)
	require.NotNil(t, h)
	waitDone(t, h)

	plan := DefaultPlans()[topic.LabelLeadership]
	want := make([]string, 0, len(plan))
	for _, f := range plan {
		want = append(want, f.Text)
	}
	assert.Equal(t, want, rec.texts)
	assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second, 5 * time.Second, 10 * time.Second}, rec.waits)
}

func TestScheduleUnknownLabel(t *testing.T) {
	rec := &recorder{}
	s := NewScheduler(WithWaitFunc(rec.wait))

	assert.Nil(t, s.Schedule(context.Background(), topic.LabelRACI, rec.emit))
	assert.Nil(t, s.Schedule(context.Background(), "training", rec.emit))
	assert.Zero(t, s.Pending())
	assert.Empty(t, rec.texts)
}

func TestHandleCancelStopsPendingFollowUps(t *testing.T) {
	emitted := make(chan string, 4)
	calls := 0
	var mu sync.Mutex
	wait := func(ctx context.Context, d time.Duration) error {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			return nil
		}
		<-ctx.Done()
		return ctx.Err()
	}

	s := NewScheduler(WithWaitFunc(wait))
	h := s.Schedule(context.Background(), topic.LabelLeadership, func(text string) { emitted <- text })
	require.NotNil(t, h)

	select {
	case <-emitted:
	case <-time.After(2 * time.Second):
		t.Fatal("first follow-up not emitted")
	}

	h.Cancel()
	waitDone(t, h)

	assert.Len(t, emitted, 0)
	assert.Zero(t, s.Pending())
}

func TestParentContextCancelsPlan(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	s := NewScheduler(WithWaitFunc(rec.wait))
	h := s.Schedule(ctx, topic.LabelROI, rec.emit)
	require.NotNil(t, h)
	waitDone(t, h)

	assert.Empty(t, rec.texts)
}

func TestShutdownCancelsAll(t *testing.T) {
	blocking := func(ctx context.Context, d time.Duration) error {
		<-ctx.Done()
		return ctx.Err()
	}
	s := NewScheduler(WithWaitFunc(blocking))

	h1 := s.Schedule(context.Background(), topic.LabelTraining, func(string) {})
	h2 := s.Schedule(context.Background(), topic.LabelFrameworks, func(string) {})
	require.NotNil(t, h1)
	require.NotNil(t, h2)
	assert.Equal(t, 2, s.Pending())

	s.Shutdown()

	waitDone(t, h1)
	waitDone(t, h2)
	assert.Zero(t, s.Pending())
}

func TestScheduleAfterShutdown(t *testing.T) {
	s := NewScheduler(WithWaitFunc(func(ctx context.Context, d time.Duration) error { return nil }))
	s.Shutdown()

	emitted := false
	h := s.Schedule(context.Background(), topic.LabelTraining, func(string) { emitted = true })
	assert.Nil(t, h)
	assert.Zero(t, s.Pending())
	s.Wait()
	assert.False(t, emitted)
}

func TestScheduleRacingShutdown(t *testing.T) {
	blocking := func(ctx context.Context, d time.Duration) error {
		<-ctx.Done()
		return ctx.Err()
	}
	s := NewScheduler(WithWaitFunc(blocking))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Schedule(context.Background(), topic.LabelLeadership, func(string) {})
		}()
	}
	s.Shutdown()
	wg.Wait()

	// Whatever slipped in before Shutdown was cancelled, the rest was refused.
	s.Shutdown()
	assert.Zero(t, s.Pending())
}

func TestNilHandleCancel(t *testing.T) {
	var h *Handle
	assert.NotPanics(t, h.Cancel)
}

func TestDefaultPlansAreOrdered(t *testing.T) {
	for label, plan := range DefaultPlans() {
		assert.True(t, topic.Known(label), "plan for unknown label %q", label)
		assert.LessOrEqual(t, len(plan), 4, label)
		for i := 1; i < len(plan); i++ {
			assert.LessOrEqual(t, plan[i-1].At, plan[i].At, label)
		}
		assert.Equal(t, UniversalResource, plan[len(plan)-1].Text, label)
	}
}

func TestSleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleep(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleep(context.Background(), time.Millisecond))
}
