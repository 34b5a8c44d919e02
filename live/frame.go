package live

import (
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

const (
	FrameMatch = "match"
	FrameToast = "toast"
)

// Frame is a single message pushed to a live match viewer.
type Frame struct {
	Type  string      `json:"type"`
	Match *Scoreboard `json:"match,omitempty"`
	Toast *ToastState `json:"toast,omitempty"`
}

type ScoreboardTeam struct {
	ID      int32  `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
	Score   int    `json:"score"`
}

type CommentaryRow struct {
	Minute int    `json:"minute"`
	Kind   string `json:"kind"`
	Label  string `json:"label"`
	Text   string `json:"text"`
}

// Scoreboard is the JSON shape of a match as shown on the live page: both
// teams with their score, the match clock and the commentary, newest first.
type Scoreboard struct {
	MatchID    int32           `json:"match_id"`
	Home       ScoreboardTeam  `json:"home"`
	Away       ScoreboardTeam  `json:"away"`
	Clock      string          `json:"clock"`
	Status     string          `json:"status"`
	Commentary []CommentaryRow `json:"commentary"`
}

func NewScoreboard(m *model.Match) *Scoreboard {
	events := make([]model.MatchEvent, len(m.Events))
	copy(events, m.Events)
	model.SortEvents(events, true)

	rows := make([]CommentaryRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, CommentaryRow{
			Minute: e.Minute,
			Kind:   string(e.Kind),
			Label:  e.Kind.Label(),
			Text:   e.Description(m.TeamName(e.TeamID)),
		})
	}

	return &Scoreboard{
		MatchID: m.ID,
		Home: ScoreboardTeam{
			ID:      m.HomeTeam.ID,
			Name:    m.HomeTeam.Name,
			LogoURL: m.HomeTeam.LogoURL,
			Score:   m.HomeScore,
		},
		Away: ScoreboardTeam{
			ID:      m.AwayTeam.ID,
			Name:    m.AwayTeam.Name,
			LogoURL: m.AwayTeam.LogoURL,
			Score:   m.AwayScore,
		},
		Clock:      m.ElapsedClock(),
		Status:     string(m.Status),
		Commentary: rows,
	}
}
