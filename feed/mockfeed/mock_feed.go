package mockfeed

import (
	"context"

	"github.com/sporteventsagency-netizen/futbalito-sub001/feed"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LiveMatches(ctx context.Context) ([]feed.MatchUpdate, error) {
	args := c.Called(ctx)

	var res []feed.MatchUpdate
	if args.Get(0) != nil {
		res = args.Get(0).([]feed.MatchUpdate)
	}

	return res, args.Error(1)
}
