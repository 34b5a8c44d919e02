package live

import (
	"context"

	"github.com/itbasis/go-clock"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

// Session is the state owned by one viewer of a live match page. Every match
// update is forwarded as a scoreboard frame, and goals detected by the
// session's ScoreWatcher are announced through its Toast.
type Session struct {
	watcher *ScoreWatcher
	toast   *Toast
	send    func(Frame)
}

// NewSession starts watching from the score of initial, so opening the page
// in the middle of a match does not announce goals that were already scored.
func NewSession(clk clock.Clock, initial *model.Match, send func(Frame)) *Session {
	s := &Session{
		watcher: NewScoreWatcher(initial.Score()),
		send:    send,
	}
	s.toast = NewToast(clk, DefaultToastDuration, DefaultFadeDelay, func(ts ToastState) {
		s.send(Frame{Type: FrameToast, Toast: &ts})
	})
	return s
}

// Update handles a new snapshot of the match.
func (s *Session) Update(m *model.Match) {
	s.send(Frame{Type: FrameMatch, Match: NewScoreboard(m)})

	if n, ok := s.watcher.Observe(m); ok {
		s.toast.Show(n.Message)
	}
}

// Run applies updates until the context is cancelled or the channel is
// closed, then releases the session.
func (s *Session) Run(ctx context.Context, updates <-chan model.Match) {
	defer s.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-updates:
			if !ok {
				return
			}
			s.Update(&m)
		}
	}
}

func (s *Session) Close() {
	s.toast.Close()
}
