package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sporteventsagency-netizen/futbalito-sub001/db"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
	"github.com/sporteventsagency-netizen/futbalito-sub001/stream"
)

var (
	ErrInvalidEvent = errors.New("event must have a known kind, a minute and a team playing in the match")
	ErrInvalidScore = errors.New("scores and elapsed time cannot be negative")
)

func (c *controller) GetMatch(ctx context.Context, competitionID, matchID int32) (*model.MatchDetail, error) {
	m, err := c.db.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.CompetitionID != competitionID {
		return nil, db.ErrMatchNotFound
	}

	events := slices.Clone(m.Events)
	model.SortEvents(events, true)

	result := &model.MatchDetail{
		Match:   m,
		Events:  events,
		BackURL: "/",
	}
	if embed, ok := stream.ResolveEmbedURL(m.StreamURL); ok {
		result.EmbedURL = embed
	}

	comp, err := c.db.GetCompetition(ctx, competitionID)
	if err != nil && !errors.Is(err, db.ErrCompetitionNotFound) {
		return nil, err
	}
	if comp != nil {
		result.Competition = comp
		result.BackURL = competitionURL(comp.ID)
	}
	return result, nil
}

func (c *controller) GetLiveMatch(ctx context.Context, matchID int32) (*model.Match, error) {
	return c.db.GetMatch(ctx, matchID)
}

func (c *controller) UpdateMatchScore(ctx context.Context, matchID int32, u ScoreUpdate) (*model.Match, error) {
	if u.HomeScore < 0 || u.AwayScore < 0 || u.Elapsed < 0 {
		return nil, ErrInvalidScore
	}

	m, err := c.db.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	m.HomeScore = u.HomeScore
	m.AwayScore = u.AwayScore
	m.Elapsed = u.Elapsed
	if u.Status != "" {
		m.Status = u.Status
	}
	if err := c.db.UpdateMatchState(ctx, m); err != nil {
		return nil, err
	}

	c.broker.Publish(*m)
	return m, nil
}

func (c *controller) AddMatchEvent(ctx context.Context, e *model.MatchEvent) (*model.Match, error) {
	if e.Kind == model.EVENT_UNKNOWN || e.Kind == "" || e.Minute < 0 {
		return nil, ErrInvalidEvent
	}

	m, err := c.db.GetMatch(ctx, e.MatchID)
	if err != nil {
		return nil, err
	}
	if m.TeamName(e.TeamID) == "" {
		return nil, ErrInvalidEvent
	}

	// The store credits a goal to the score together with the event.
	if e.Kind == model.EVENT_GOAL {
		_, err = c.db.AddGoal(ctx, e)
	} else {
		_, err = c.db.AddMatchEvent(ctx, e)
	}
	if err != nil {
		return nil, err
	}

	// Reload so the published match carries the new event with its players.
	m, err = c.db.GetMatch(ctx, e.MatchID)
	if err != nil {
		return nil, fmt.Errorf("error reloading match %d: %w", e.MatchID, err)
	}
	c.broker.Publish(*m)
	return m, nil
}

func (c *controller) Subscribe(matchID int32) (<-chan model.Match, func()) {
	return c.broker.Subscribe(matchID)
}
