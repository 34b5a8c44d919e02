package testutils

import (
	"github.com/itbasis/go-clock"
	"golang.org/x/oauth2/clientcredentials"
)

// TestController bundles what a controller needs in tests besides the DB: a
// mock clock and a fake upstream feed with matching credentials.
type TestController struct {
	Clock           *clock.Mock
	FeedCredentials *clientcredentials.Config
	fakeFeed        *FakeFeedServer
}

func (c *TestController) Close() {
	c.fakeFeed.Close()
}

func (c *TestController) FeedURL() string {
	return c.fakeFeed.URL()
}

func NewTestController() *TestController {
	fakeFeed := NewFakeFeedServer()

	return &TestController{
		Clock: clock.NewMock(),
		FeedCredentials: &clientcredentials.Config{
			ClientID:     FeedClientID,
			ClientSecret: FeedClientSecret,
			TokenURL:     fakeFeed.TokenURL(),
		},
		fakeFeed: fakeFeed,
	}
}
