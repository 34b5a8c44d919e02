package model

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type EventKind string

const (
	EVENT_UNKNOWN      EventKind = "unknown"
	EVENT_GOAL         EventKind = "goal"
	EVENT_YELLOW_CARD  EventKind = "yellow_card"
	EVENT_RED_CARD     EventKind = "red_card"
	EVENT_SUBSTITUTION EventKind = "substitution"
)

func ParseEventKind(kind string) EventKind {
	kind = strings.ToLower(strings.TrimSpace(kind))
	kind = strings.NewReplacer("-", "_", " ", "_").Replace(kind)
	switch kind {
	case "goal":
		return EVENT_GOAL
	case "yellow_card", "yellow", "yellowcard":
		return EVENT_YELLOW_CARD
	case "red_card", "red", "redcard":
		return EVENT_RED_CARD
	case "substitution", "sub":
		return EVENT_SUBSTITUTION
	default:
		return EVENT_UNKNOWN
	}
}

func (k EventKind) Label() string {
	switch k {
	case EVENT_GOAL:
		return "Goal"
	case EVENT_YELLOW_CARD:
		return "Yellow card"
	case EVENT_RED_CARD:
		return "Red card"
	case EVENT_SUBSTITUTION:
		return "Substitution"
	default:
		return "Event"
	}
}

type MatchStatus string

const (
	STATUS_SCHEDULED MatchStatus = "scheduled"
	STATUS_LIVE      MatchStatus = "live"
	STATUS_FINISHED  MatchStatus = "finished"
)

func ParseMatchStatus(s string) MatchStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "live", "in_play", "inplay":
		return STATUS_LIVE
	case "finished", "ft", "ended":
		return STATUS_FINISHED
	default:
		return STATUS_SCHEDULED
	}
}

type Score struct {
	Home int
	Away int
}

func (s Score) String() string {
	return fmt.Sprintf("%d - %d", s.Home, s.Away)
}

type Match struct {
	ID            int32
	CompetitionID int32
	HomeTeam      Team
	AwayTeam      Team
	HomeScore     int
	AwayScore     int
	// Elapsed playing time in seconds.
	Elapsed   int
	Status    MatchStatus
	Kickoff   time.Time
	StreamURL string
	Events    []MatchEvent
	Updated   time.Time
}

type MatchEvent struct {
	ID         int32
	ExternalID string
	MatchID    int32
	Kind       EventKind
	Minute     int
	TeamID     int32
	Player     *Player
	// Only set for substitutions, the player coming on.
	SecondaryPlayer *Player
	Created         time.Time
}

func (m *Match) Score() Score {
	return Score{Home: m.HomeScore, Away: m.AwayScore}
}

func (m *Match) ElapsedClock() string {
	return FormatElapsed(m.Elapsed)
}

func (m *Match) IsLive() bool {
	return m.Status == STATUS_LIVE
}

// TeamName returns the name of the home or away team with the given id, or
// an empty string when the id belongs to neither.
func (m *Match) TeamName(teamID int32) string {
	switch teamID {
	case m.HomeTeam.ID:
		return m.HomeTeam.Name
	case m.AwayTeam.ID:
		return m.AwayTeam.Name
	default:
		return ""
	}
}

// LastEvent returns the chronologically last event of the match: the one with
// the greatest minute, and for equal minutes the one appearing last in the
// sequence. Returns nil when the match has no events.
func (m *Match) LastEvent() *MatchEvent {
	var last *MatchEvent
	for i := range m.Events {
		if last == nil || m.Events[i].Minute >= last.Minute {
			last = &m.Events[i]
		}
	}
	return last
}

// Description renders a single commentary line for the event.
func (e *MatchEvent) Description(teamName string) string {
	player := e.Player.FullName()
	var line string
	switch e.Kind {
	case EVENT_GOAL:
		line = fmt.Sprintf("GOAL! %s scores", player)
	case EVENT_YELLOW_CARD:
		line = fmt.Sprintf("Yellow card for %s", player)
	case EVENT_RED_CARD:
		line = fmt.Sprintf("Red card! %s is sent off", player)
	case EVENT_SUBSTITUTION:
		line = fmt.Sprintf("Substitution: %s on, %s off", e.SecondaryPlayer.FullName(), player)
	default:
		line = player
	}
	if teamName != "" {
		line = fmt.Sprintf("%s (%s)", line, teamName)
	}
	return line
}

// SortEvents orders the events by minute. Events in the same minute keep
// their original relative order in both directions.
func SortEvents(events []MatchEvent, descending bool) {
	slices.SortStableFunc(events, func(a, b MatchEvent) int {
		if descending {
			return b.Minute - a.Minute
		}
		return a.Minute - b.Minute
	})
}

// FormatElapsed renders a number of seconds as MM:SS. Minutes are not capped,
// so 6000 seconds renders as "100:00".
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
