package live

import (
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

const (
	DefaultToastDuration = 4000 * time.Millisecond
	DefaultFadeDelay     = 300 * time.Millisecond
)

type ToastState struct {
	Message string `json:"message"`
	Visible bool   `json:"visible"`
	Removed bool   `json:"removed"`
}

// Toast is a transient notification that dismisses itself in two steps:
// after the display duration it stops being visible (the fade out starts), and
// after the fade delay it is removed. Each state change is passed to onChange.
type Toast struct {
	clock     clock.Clock
	duration  time.Duration
	fadeDelay time.Duration
	onChange  func(ToastState)

	mu     sync.Mutex
	gen    uint64 // bumped on every Show and Close, timers from older generations are ignored
	state  ToastState
	hide   *clock.Timer
	remove *clock.Timer
}

func NewToast(clk clock.Clock, duration, fadeDelay time.Duration, onChange func(ToastState)) *Toast {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	if fadeDelay <= 0 {
		fadeDelay = DefaultFadeDelay
	}
	if onChange == nil {
		onChange = func(ToastState) {}
	}
	return &Toast{
		clock:     clk,
		duration:  duration,
		fadeDelay: fadeDelay,
		onChange:  onChange,
		state:     ToastState{Removed: true},
	}
}

// Show replaces whatever is currently displayed with message. Timers of the
// previous toast are cancelled.
func (t *Toast) Show(message string) {
	t.mu.Lock()
	t.stopTimersLocked()
	t.gen++
	gen := t.gen
	t.state = ToastState{Message: message, Visible: true}
	t.hide = t.clock.AfterFunc(t.duration, func() { t.fadeOut(gen) })
	state := t.state
	t.mu.Unlock()

	t.onChange(state)
}

func (t *Toast) State() ToastState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Close cancels any pending dismissal. It is called when the owner goes away.
func (t *Toast) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.stopTimersLocked()
}

func (t *Toast) fadeOut(gen uint64) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.state.Visible = false
	t.hide = nil
	t.remove = t.clock.AfterFunc(t.fadeDelay, func() { t.removeToast(gen) })
	state := t.state
	t.mu.Unlock()

	t.onChange(state)
}

func (t *Toast) removeToast(gen uint64) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.state = ToastState{Message: t.state.Message, Removed: true}
	t.remove = nil
	state := t.state
	t.mu.Unlock()

	t.onChange(state)
}

func (t *Toast) stopTimersLocked() {
	if t.hide != nil {
		t.hide.Stop()
		t.hide = nil
	}
	if t.remove != nil {
		t.remove.Stop()
		t.remove = nil
	}
}
