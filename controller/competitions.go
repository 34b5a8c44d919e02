package controller

import (
	"context"
	"fmt"

	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

func (c *controller) ListCompetitions(ctx context.Context) ([]model.Competition, error) {
	return c.db.ListCompetitions(ctx)
}

func (c *controller) GetCompetition(ctx context.Context, id int32) (*model.CompetitionOverview, error) {
	comp, err := c.db.GetCompetition(ctx, id)
	if err != nil {
		return nil, err
	}

	teams, err := c.db.ListTeams(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error listing teams of competition %d: %w", id, err)
	}

	matches, err := c.db.ListMatches(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error listing matches of competition %d: %w", id, err)
	}

	articles, err := c.db.ListArticles(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error listing articles of competition %d: %w", id, err)
	}

	return &model.CompetitionOverview{
		Competition: comp,
		Teams:       teams,
		Matches:     matches,
		Articles:    articles,
	}, nil
}

func competitionURL(competitionID int32) string {
	return fmt.Sprintf("/competitions/%d", competitionID)
}
