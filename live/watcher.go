// Package live holds the per-viewer state of the live match page: goal
// detection, the goal toast and the fan-out of match updates.
package live

import (
	"fmt"

	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

type Notification struct {
	MatchID int32
	Score   model.Score
	Message string
}

// ScoreWatcher remembers the last score a viewer has seen and reports a goal
// when a newer snapshot shows a higher score and the most recent event is a
// goal. Out-of-order events or score corrections can make it miss or
// misfire, which is accepted.
type ScoreWatcher struct {
	prev model.Score
}

func NewScoreWatcher(initial model.Score) *ScoreWatcher {
	return &ScoreWatcher{prev: initial}
}

func (w *ScoreWatcher) Previous() model.Score {
	return w.prev
}

// Observe compares the match against the previously seen score and then
// stores the match score as the new snapshot, whether or not a notification
// was produced.
func (w *ScoreWatcher) Observe(m *model.Match) (Notification, bool) {
	cur := m.Score()
	prev := w.prev
	w.prev = cur

	if cur.Home <= prev.Home && cur.Away <= prev.Away {
		return Notification{}, false
	}

	last := m.LastEvent()
	if last == nil || last.Kind != model.EVENT_GOAL {
		return Notification{}, false
	}

	return Notification{
		MatchID: m.ID,
		Score:   cur,
		Message: fmt.Sprintf("GOAL! %s %d - %d %s", m.HomeTeam.Name, cur.Home, cur.Away, m.AwayTeam.Name),
	}, true
}
