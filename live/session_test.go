package live

import (
	"context"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

type frameRecorder struct {
	ch chan Frame
}

func newFrameRecorder() *frameRecorder {
	return &frameRecorder{ch: make(chan Frame, 32)}
}

func (r *frameRecorder) send(f Frame) {
	r.ch <- f
}

func (r *frameRecorder) next(t *testing.T) Frame {
	t.Helper()
	select {
	case f := <-r.ch:
		return f
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for a frame")
	}
	return Frame{}
}

func TestSession_goalShowsToast(t *testing.T) {
	mock := clock.NewMock()
	rec := newFrameRecorder()

	initial := newMatch(1, 0, model.EVENT_GOAL)
	s := NewSession(mock, initial, rec.send)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates := make(chan model.Match, 4)
	done := make(chan struct{})
	go func() {
		s.Run(ctx, updates)
		close(done)
	}()

	// Same score as when the page was opened, no toast
	updates <- *newMatch(1, 0, model.EVENT_GOAL, model.EVENT_YELLOW_CARD)
	f := rec.next(t)
	if f.Type != FrameMatch || f.Match.Home.Score != 1 || len(f.Match.Commentary) != 2 {
		t.Fatalf("unexpected frame: %+v", f)
	}
	if f.Match.Commentary[0].Kind != string(model.EVENT_YELLOW_CARD) {
		t.Errorf("expected newest event first, got %+v", f.Match.Commentary)
	}

	updates <- *newMatch(2, 0, model.EVENT_GOAL, model.EVENT_YELLOW_CARD, model.EVENT_GOAL)
	f = rec.next(t)
	if f.Type != FrameMatch || f.Match.Home.Score != 2 {
		t.Fatalf("unexpected frame: %+v", f)
	}
	f = rec.next(t)
	if f.Type != FrameToast || !f.Toast.Visible || f.Toast.Message != "GOAL! Boca Juniors 2 - 0 River Plate" {
		t.Fatalf("unexpected toast frame: %+v", f)
	}

	mock.Add(DefaultToastDuration)
	f = rec.next(t)
	if f.Type != FrameToast || f.Toast.Visible {
		t.Errorf("expected the toast to fade, got: %+v", f)
	}

	close(updates)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("session did not stop after the update channel closed")
	}

	// Run released the toast, the removal timer must not fire any more
	mock.Add(DefaultFadeDelay)
	select {
	case f := <-rec.ch:
		t.Errorf("unexpected frame after close: %+v", f)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSession_stopsOnContextCancel(t *testing.T) {
	rec := newFrameRecorder()
	s := NewSession(clock.NewMock(), newMatch(0, 0), rec.send)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, make(chan model.Match))
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("session did not stop after cancel")
	}
}
