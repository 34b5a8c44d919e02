package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
	"github.com/sporteventsagency-netizen/futbalito-sub001/testutils"
	"golang.org/x/oauth2/clientcredentials"
)

func TestLiveMatches_success(t *testing.T) {
	fakeFeed := testutils.NewFakeFeedServer()
	defer fakeFeed.Close()

	c, err := New(fakeFeed.URL(), &clientcredentials.Config{
		ClientID:     testutils.FeedClientID,
		ClientSecret: testutils.FeedClientSecret,
		TokenURL:     fakeFeed.TokenURL(),
	})
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	updates, err := c.LiveMatches(context.Background())
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	// The second match in the feed has no id and is skipped.
	if len(updates) != 1 {
		t.Fatalf("wrong number of updates, expected 1, got %d", len(updates))
	}

	u := updates[0]
	expectedMatch := model.Match{
		ID:        1,
		HomeScore: 1,
		AwayScore: 1,
		Elapsed:   3912,
		Status:    model.STATUS_LIVE,
		StreamURL: "https://www.youtube.com/watch?v=liveDerby01",
	}
	if !reflect.DeepEqual(u.Match, expectedMatch) {
		t.Errorf("expected match: '%v', got: '%v'", expectedMatch, u.Match)
	}

	// The corner has no known kind and is dropped.
	expectedEvents := []model.MatchEvent{
		{ExternalID: "ev-100", MatchID: 1, Kind: model.EVENT_GOAL, Minute: 23, TeamID: 1, Player: &model.Player{ID: 1}},
		{ExternalID: "ev-101", MatchID: 1, Kind: model.EVENT_YELLOW_CARD, Minute: 31, TeamID: 2, Player: &model.Player{ID: 3}},
		{ExternalID: "ev-102", MatchID: 1, Kind: model.EVENT_SUBSTITUTION, Minute: 58, TeamID: 2, Player: &model.Player{ID: 3}, SecondaryPlayer: &model.Player{ID: 4}},
		{ExternalID: "ev-103", MatchID: 1, Kind: model.EVENT_GOAL, Minute: 64, TeamID: 2, Player: &model.Player{ID: 4}},
	}
	if !reflect.DeepEqual(u.Events, expectedEvents) {
		t.Errorf("expected events: '%v', got: '%v'", expectedEvents, u.Events)
	}
}

func TestLiveMatches_withoutToken(t *testing.T) {
	fakeFeed := testutils.NewFakeFeedServer()
	defer fakeFeed.Close()

	c := NewForTest(fakeFeed.URL())

	updates, err := c.LiveMatches(context.Background())
	if err == nil {
		t.Fatalf("error should not have been nil")
	}
	if updates != nil {
		t.Fatalf("updates should have been nil")
	}
}

func TestLiveMatches_badCredentials(t *testing.T) {
	fakeFeed := testutils.NewFakeFeedServer()
	defer fakeFeed.Close()

	c, err := New(fakeFeed.URL(), &clientcredentials.Config{
		ClientID:     testutils.FeedClientID,
		ClientSecret: "wrong",
		TokenURL:     fakeFeed.TokenURL(),
	})
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	if _, err := c.LiveMatches(context.Background()); err == nil {
		t.Fatalf("error should not have been nil")
	}
}

func TestLiveMatches_httpError(t *testing.T) {
	fakeFeed := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer fakeFeed.Close()

	c := NewForTest(fakeFeed.URL)

	updates, err := c.LiveMatches(context.Background())
	if err == nil {
		t.Fatalf("error should not have been nil")
	}
	if updates != nil {
		t.Fatalf("updates should have been nil")
	}
}

func TestLiveMatches_badJSON(t *testing.T) {
	fakeFeed := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusOK)
		rw.Write([]byte(`{"matches": [`))
	}))
	defer fakeFeed.Close()

	c := NewForTest(fakeFeed.URL)

	if _, err := c.LiveMatches(context.Background()); err == nil {
		t.Fatalf("error should not have been nil")
	}
}

func TestToUpdate_clampsNegatives(t *testing.T) {
	m := feedMatch{
		ID:        7,
		HomeScore: -1,
		AwayScore: 2,
		Elapsed:   -30,
		Status:    "ft",
		Events: []feedEvent{
			{ID: "a", Type: "Red Card", Minute: -2, TeamID: 3},
		},
	}

	u := m.toUpdate()
	if u.Match.HomeScore != 0 || u.Match.AwayScore != 2 {
		t.Errorf("expected: '0 - 2', got: '%v'", u.Match.Score())
	}
	if u.Match.Elapsed != 0 {
		t.Errorf("expected: '0', got: '%v'", u.Match.Elapsed)
	}
	if u.Match.Status != model.STATUS_FINISHED {
		t.Errorf("expected: '%v', got: '%v'", model.STATUS_FINISHED, u.Match.Status)
	}
	if len(u.Events) != 1 {
		t.Fatalf("expected one event, got %d", len(u.Events))
	}
	if u.Events[0].Kind != model.EVENT_RED_CARD || u.Events[0].Minute != 0 || u.Events[0].Player != nil {
		t.Errorf("unexpected event: '%v'", u.Events[0])
	}
}

func TestNew_requiresURL(t *testing.T) {
	if _, err := New("", nil); err == nil {
		t.Fatalf("error should not have been nil")
	}
}
