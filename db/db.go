package db

import (
	"context"

	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

// DB is the data store behind the portal pages.
type DB interface {
	ListCompetitions(ctx context.Context) ([]model.Competition, error)
	GetCompetition(ctx context.Context, id int32) (*model.Competition, error)
	AddCompetition(ctx context.Context, c *model.Competition) error

	ListTeams(ctx context.Context, competitionID int32) ([]model.Team, error)
	GetTeam(ctx context.Context, id int32) (*model.Team, error)
	AddTeam(ctx context.Context, t *model.Team) error

	ListPlayers(ctx context.Context, teamID int32) ([]model.Player, error)
	GetPlayer(ctx context.Context, id int32) (*model.Player, error)
	AddPlayer(ctx context.Context, p *model.Player) error

	// Lists the matches of a competition ordered by kickoff. Events are not loaded.
	ListMatches(ctx context.Context, competitionID int32) ([]model.Match, error)
	// Returns the match with both teams and all of its events, in the order
	// they were recorded.
	GetMatch(ctx context.Context, id int32) (*model.Match, error)
	AddMatch(ctx context.Context, m *model.Match) error
	// Saves the score, clock, status and stream url of the match.
	UpdateMatchState(ctx context.Context, m *model.Match) error
	// Records a match event. Events with an ExternalID that was already recorded
	// for the match are skipped, in which case false is returned.
	AddMatchEvent(ctx context.Context, e *model.MatchEvent) (bool, error)
	// Records a goal event and adds it to the score of the scoring team in a
	// single transaction. A goal already recorded leaves the score untouched
	// and returns false.
	AddGoal(ctx context.Context, e *model.MatchEvent) (bool, error)

	// Lists the published articles of a competition, most recently published first.
	ListArticles(ctx context.Context, competitionID int32) ([]model.Article, error)
	GetArticle(ctx context.Context, id int32) (*model.Article, error)
	AddArticle(ctx context.Context, a *model.Article) error

	// Lists the comments of an article, newest first.
	ListComments(ctx context.Context, articleID int32) ([]model.Comment, error)
	AddComment(ctx context.Context, c *model.Comment) error
}
