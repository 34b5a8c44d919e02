package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/sporteventsagency-netizen/futbalito-sub001/controller"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) Portal() model.PortalConfig {
	args := c.Called()
	return args.Get(0).(model.PortalConfig)
}

func (c *C) ListCompetitions(ctx context.Context) ([]model.Competition, error) {
	args := c.Called(ctx)

	var res []model.Competition
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Competition)
	}
	return res, args.Error(1)
}

func (c *C) GetCompetition(ctx context.Context, id int32) (*model.CompetitionOverview, error) {
	args := c.Called(ctx, id)

	var res *model.CompetitionOverview
	if args.Get(0) != nil {
		res = args.Get(0).(*model.CompetitionOverview)
	}
	return res, args.Error(1)
}

func (c *C) GetArticle(ctx context.Context, competitionID, articleID int32) (*model.ArticleDetail, error) {
	args := c.Called(ctx, competitionID, articleID)

	var res *model.ArticleDetail
	if args.Get(0) != nil {
		res = args.Get(0).(*model.ArticleDetail)
	}
	return res, args.Error(1)
}

func (c *C) AddComment(ctx context.Context, competitionID, articleID int32, author, content string) (*model.Comment, error) {
	args := c.Called(ctx, competitionID, articleID, author, content)

	var res *model.Comment
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Comment)
	}
	return res, args.Error(1)
}

func (c *C) GetMatch(ctx context.Context, competitionID, matchID int32) (*model.MatchDetail, error) {
	args := c.Called(ctx, competitionID, matchID)

	var res *model.MatchDetail
	if args.Get(0) != nil {
		res = args.Get(0).(*model.MatchDetail)
	}
	return res, args.Error(1)
}

func (c *C) GetLiveMatch(ctx context.Context, matchID int32) (*model.Match, error) {
	args := c.Called(ctx, matchID)

	var res *model.Match
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Match)
	}
	return res, args.Error(1)
}

func (c *C) UpdateMatchScore(ctx context.Context, matchID int32, u controller.ScoreUpdate) (*model.Match, error) {
	args := c.Called(ctx, matchID, u)

	var res *model.Match
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Match)
	}
	return res, args.Error(1)
}

func (c *C) AddMatchEvent(ctx context.Context, e *model.MatchEvent) (*model.Match, error) {
	args := c.Called(ctx, e)

	var res *model.Match
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Match)
	}
	return res, args.Error(1)
}

func (c *C) Subscribe(matchID int32) (<-chan model.Match, func()) {
	args := c.Called(matchID)

	var ch <-chan model.Match
	if args.Get(0) != nil {
		ch = args.Get(0).(<-chan model.Match)
	}
	unsubscribe := func() {}
	if args.Get(1) != nil {
		unsubscribe = args.Get(1).(func())
	}
	return ch, unsubscribe
}

func (c *C) SyncLiveMatches(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicMatchSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
