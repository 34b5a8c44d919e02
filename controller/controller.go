package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sporteventsagency-netizen/futbalito-sub001/db"
	"github.com/sporteventsagency-netizen/futbalito-sub001/feed"
	"github.com/sporteventsagency-netizen/futbalito-sub001/live"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

// ErrInvalidComment is returned when a comment is missing its author or its
// content. The message is safe to show to users.
var ErrInvalidComment = errors.New("please fill in both your name and your comment")

// C encapsulates business logic without worrying about any web layers
type C interface {
	Portal() model.PortalConfig

	ListCompetitions(ctx context.Context) ([]model.Competition, error)
	GetCompetition(ctx context.Context, id int32) (*model.CompetitionOverview, error)

	// Look up a published article of the competition with its comments, newest first.
	GetArticle(ctx context.Context, competitionID, articleID int32) (*model.ArticleDetail, error)
	// Add a comment to an article. The author and content are stored exactly as
	// given but must not be blank, otherwise ErrInvalidComment is returned.
	AddComment(ctx context.Context, competitionID, articleID int32, author, content string) (*model.Comment, error)

	GetMatch(ctx context.Context, competitionID, matchID int32) (*model.MatchDetail, error)
	// Look up the current state of a match regardless of competition, used by
	// the live endpoints.
	GetLiveMatch(ctx context.Context, matchID int32) (*model.Match, error)
	UpdateMatchScore(ctx context.Context, matchID int32, u ScoreUpdate) (*model.Match, error)
	// Record an event for the match. A goal also adds one to the score of the
	// scoring team.
	AddMatchEvent(ctx context.Context, e *model.MatchEvent) (*model.Match, error)
	// Subscribe to updates of a match. The returned func must be called once
	// the caller is no longer interested.
	Subscribe(matchID int32) (<-chan model.Match, func())

	SyncLiveMatches(ctx context.Context) error
	RunPeriodicMatchSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

// ScoreUpdate is a manual correction of a match entered by an editor.
type ScoreUpdate struct {
	HomeScore int
	AwayScore int
	Elapsed   int
	Status    model.MatchStatus
}

type controller struct {
	clock  clock.Clock
	db     db.DB
	feed   feed.Client
	broker *live.Broker
	portal model.PortalConfig
}

// New creates a controller. feed may be nil, in which case matches are only
// updated by editors.
func New(clock clock.Clock, db db.DB, feed feed.Client, broker *live.Broker, portal model.PortalConfig) (C, error) {
	if broker == nil {
		return nil, errors.New("broker must be provided")
	}

	c := &controller{
		clock:  clock,
		db:     db,
		feed:   feed,
		broker: broker,
		portal: portal,
	}
	return c, nil
}

func (c *controller) Portal() model.PortalConfig {
	return c.portal
}
