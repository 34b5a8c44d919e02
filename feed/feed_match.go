package feed

import (
	"log"

	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

type feedMatch struct {
	ID        int32       `json:"match_id"`
	HomeScore int         `json:"home_score"`
	AwayScore int         `json:"away_score"`
	Elapsed   int         `json:"elapsed_seconds"`
	Status    string      `json:"status"`
	StreamURL string      `json:"stream_url"`
	Events    []feedEvent `json:"events"`
}

type feedEvent struct {
	ID                string `json:"id"`
	Type              string `json:"type"`
	Minute            int    `json:"minute"`
	TeamID            int32  `json:"team_id"`
	PlayerID          int32  `json:"player_id"`
	SecondaryPlayerID int32  `json:"player_in_id"`
}

func (m *feedMatch) toUpdate() MatchUpdate {
	u := MatchUpdate{
		Match: model.Match{
			ID:        m.ID,
			HomeScore: max(m.HomeScore, 0),
			AwayScore: max(m.AwayScore, 0),
			Elapsed:   max(m.Elapsed, 0),
			Status:    model.ParseMatchStatus(m.Status),
			StreamURL: m.StreamURL,
		},
		Events: make([]model.MatchEvent, 0, len(m.Events)),
	}

	for _, e := range m.Events {
		kind := model.ParseEventKind(e.Type)
		if kind == model.EVENT_UNKNOWN {
			log.Printf("feed: skipping event %s of unknown type '%s' in match %d", e.ID, e.Type, m.ID)
			continue
		}
		u.Events = append(u.Events, model.MatchEvent{
			ExternalID:      e.ID,
			MatchID:         m.ID,
			Kind:            kind,
			Minute:          max(e.Minute, 0),
			TeamID:          e.TeamID,
			Player:          playerRef(e.PlayerID),
			SecondaryPlayer: playerRef(e.SecondaryPlayerID),
		})
	}
	return u
}

func playerRef(id int32) *model.Player {
	if id <= 0 {
		return nil
	}
	return &model.Player{ID: id}
}
