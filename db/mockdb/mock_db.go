package mockdb

import (
	"context"

	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) ListCompetitions(ctx context.Context) ([]model.Competition, error) {
	args := db.Called(ctx)

	var r []model.Competition
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Competition)
	}
	return r, args.Error(1)
}

func (db *DB) GetCompetition(ctx context.Context, id int32) (*model.Competition, error) {
	args := db.Called(ctx, id)

	var c *model.Competition
	if args.Get(0) != nil {
		c = args.Get(0).(*model.Competition)
	}
	return c, args.Error(1)
}

func (db *DB) AddCompetition(ctx context.Context, c *model.Competition) error {
	args := db.Called(ctx, c)
	return args.Error(0)
}

func (db *DB) ListTeams(ctx context.Context, competitionID int32) ([]model.Team, error) {
	args := db.Called(ctx, competitionID)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	args := db.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) AddTeam(ctx context.Context, t *model.Team) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) ListPlayers(ctx context.Context, teamID int32) ([]model.Player, error) {
	args := db.Called(ctx, teamID)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) GetPlayer(ctx context.Context, id int32) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) AddPlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) ListMatches(ctx context.Context, competitionID int32) ([]model.Match, error) {
	args := db.Called(ctx, competitionID)

	var r []model.Match
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Match)
	}
	return r, args.Error(1)
}

func (db *DB) GetMatch(ctx context.Context, id int32) (*model.Match, error) {
	args := db.Called(ctx, id)

	var m *model.Match
	if args.Get(0) != nil {
		m = args.Get(0).(*model.Match)
	}
	return m, args.Error(1)
}

func (db *DB) AddMatch(ctx context.Context, m *model.Match) error {
	args := db.Called(ctx, m)
	return args.Error(0)
}

func (db *DB) UpdateMatchState(ctx context.Context, m *model.Match) error {
	args := db.Called(ctx, m)
	return args.Error(0)
}

func (db *DB) AddMatchEvent(ctx context.Context, e *model.MatchEvent) (bool, error) {
	args := db.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}

func (db *DB) AddGoal(ctx context.Context, e *model.MatchEvent) (bool, error) {
	args := db.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}

func (db *DB) ListArticles(ctx context.Context, competitionID int32) ([]model.Article, error) {
	args := db.Called(ctx, competitionID)

	var r []model.Article
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Article)
	}
	return r, args.Error(1)
}

func (db *DB) GetArticle(ctx context.Context, id int32) (*model.Article, error) {
	args := db.Called(ctx, id)

	var a *model.Article
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Article)
	}
	return a, args.Error(1)
}

func (db *DB) AddArticle(ctx context.Context, a *model.Article) error {
	args := db.Called(ctx, a)
	return args.Error(0)
}

func (db *DB) ListComments(ctx context.Context, articleID int32) ([]model.Comment, error) {
	args := db.Called(ctx, articleID)

	var r []model.Comment
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Comment)
	}
	return r, args.Error(1)
}

func (db *DB) AddComment(ctx context.Context, c *model.Comment) error {
	args := db.Called(ctx, c)
	return args.Error(0)
}
