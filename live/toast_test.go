package live

import (
	"testing"
	"time"

	"github.com/itbasis/go-clock"
)

func newTestToast() (*Toast, *clock.Mock, chan ToastState) {
	mock := clock.NewMock()
	states := make(chan ToastState, 16)
	toast := NewToast(mock, 0, 0, func(s ToastState) { states <- s })
	return toast, mock, states
}

func nextState(t *testing.T, states chan ToastState) ToastState {
	t.Helper()
	select {
	case s := <-states:
		return s
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for a toast state change")
	}
	return ToastState{}
}

func expectNoState(t *testing.T, states chan ToastState) {
	t.Helper()
	select {
	case s := <-states:
		t.Fatalf("unexpected toast state change: %+v", s)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestToast_dismissesInTwoSteps(t *testing.T) {
	toast, mock, states := newTestToast()
	defer toast.Close()

	if !toast.State().Removed {
		t.Fatalf("a new toast should not be displayed")
	}

	toast.Show("GOAL! 1 - 0")
	s := nextState(t, states)
	if !s.Visible || s.Message != "GOAL! 1 - 0" {
		t.Errorf("expected visible toast, got: %+v", s)
	}

	mock.Add(DefaultToastDuration - time.Millisecond)
	expectNoState(t, states)

	mock.Add(time.Millisecond)
	s = nextState(t, states)
	if s.Visible || s.Removed {
		t.Errorf("expected fading toast, got: %+v", s)
	}

	mock.Add(DefaultFadeDelay)
	s = nextState(t, states)
	if !s.Removed {
		t.Errorf("expected removed toast, got: %+v", s)
	}
	if !toast.State().Removed {
		t.Errorf("expected State() to report the toast as removed")
	}
}

func TestToast_showReplacesCurrent(t *testing.T) {
	toast, mock, states := newTestToast()
	defer toast.Close()

	toast.Show("first")
	nextState(t, states)

	mock.Add(3 * time.Second)
	toast.Show("second")
	s := nextState(t, states)
	if s.Message != "second" || !s.Visible {
		t.Errorf("expected the second toast to be visible, got: %+v", s)
	}

	// The first toast would have faded at 4s.
	mock.Add(2 * time.Second)
	expectNoState(t, states)

	mock.Add(2 * time.Second)
	s = nextState(t, states)
	if s.Message != "second" || s.Visible {
		t.Errorf("expected the second toast to fade, got: %+v", s)
	}
}

func TestToast_closeCancelsTimers(t *testing.T) {
	toast, mock, states := newTestToast()

	toast.Show("GOAL!")
	nextState(t, states)

	toast.Close()
	mock.Add(10 * time.Second)
	expectNoState(t, states)

	if !toast.State().Visible {
		t.Errorf("closing should leave the last state untouched")
	}
}
