// Package feed talks to the upstream live-score provider that keeps match
// scores, clocks and events up to date.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

type Client interface {
	// LiveMatches returns the current state of every match the provider is
	// tracking, including all events seen so far.
	LiveMatches(ctx context.Context) ([]MatchUpdate, error)
}

// MatchUpdate is the provider's view of a single match. Events carry the
// provider's ids in ExternalID so they can be recorded once.
type MatchUpdate struct {
	Match  model.Match
	Events []model.MatchEvent
}

type client struct {
	url        string
	httpClient *http.Client
}

// New creates a client for the provider at url. When creds is not nil every
// request carries an access token obtained with the OAuth2 client
// credentials flow.
func New(url string, creds *clientcredentials.Config) (Client, error) {
	if url == "" {
		return nil, errors.New("feed url must be provided")
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	if creds != nil {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = creds.Client(ctx)
		httpClient.Timeout = 30 * time.Second
	}

	c := &client{
		url:        url,
		httpClient: httpClient,
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{url: url, httpClient: http.DefaultClient}
}

func (c *client) LiveMatches(ctx context.Context) ([]MatchUpdate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v1/live", c.url), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed struct {
		Matches []feedMatch `json:"matches"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing response from feed: %w", err)
	}

	result := make([]MatchUpdate, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		if m.ID <= 0 {
			log.Printf("feed: skipping match without an id")
			continue
		}
		result = append(result, m.toUpdate())
	}
	return result, nil
}
