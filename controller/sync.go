package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/sporteventsagency-netizen/futbalito-sub001/db"
	"github.com/sporteventsagency-netizen/futbalito-sub001/feed"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

var ErrNoFeed = errors.New("no live feed configured")

// SyncLiveMatches pulls the state of all live matches from the feed, stores
// what changed and publishes every changed match to its subscribers.
func (c *controller) SyncLiveMatches(ctx context.Context) error {
	if c.feed == nil {
		return ErrNoFeed
	}

	start := c.clock.Now()
	log.Printf("live match sync starting at %v", start.Format(time.DateTime))

	updates, err := c.feed.LiveMatches(ctx)
	if err != nil {
		return fmt.Errorf("error loading live matches: %w", err)
	}

	changed := 0
	for _, u := range updates {
		ok, err := c.applyUpdate(ctx, u)
		if err != nil {
			if errors.Is(err, db.ErrMatchNotFound) {
				log.Printf("feed sent match %d which is not in the db, skipping", u.Match.ID)
				continue
			}
			return err
		}
		if ok {
			changed++
		}
	}

	log.Printf("live match sync finished, %d of %d matches changed, took %v", changed, len(updates), c.clock.Since(start))
	return nil
}

func (c *controller) applyUpdate(ctx context.Context, u feed.MatchUpdate) (bool, error) {
	m, err := c.db.GetMatch(ctx, u.Match.ID)
	if err != nil {
		return false, err
	}

	changed := false
	for i := range u.Events {
		e := &u.Events[i]
		if m.TeamName(e.TeamID) == "" {
			log.Printf("event %s of match %d belongs to unknown team %d, skipping", e.ExternalID, m.ID, e.TeamID)
			continue
		}
		added, err := c.db.AddMatchEvent(ctx, e)
		if err != nil {
			// Usually a player the portal does not know about yet.
			log.Printf("error recording event %s of match %d: %v", e.ExternalID, m.ID, err)
			continue
		}
		changed = changed || added
	}

	if stateChanged(m, &u.Match) {
		m.HomeScore = u.Match.HomeScore
		m.AwayScore = u.Match.AwayScore
		m.Elapsed = u.Match.Elapsed
		m.Status = u.Match.Status
		if u.Match.StreamURL != "" {
			m.StreamURL = u.Match.StreamURL
		}
		if err := c.db.UpdateMatchState(ctx, m); err != nil {
			return false, err
		}
		changed = true
	}

	if !changed {
		return false, nil
	}

	m, err = c.db.GetMatch(ctx, m.ID)
	if err != nil {
		return false, fmt.Errorf("error reloading match %d: %w", u.Match.ID, err)
	}
	c.broker.Publish(*m)
	return true, nil
}

func stateChanged(current, update *model.Match) bool {
	return current.HomeScore != update.HomeScore ||
		current.AwayScore != update.AwayScore ||
		current.Elapsed != update.Elapsed ||
		current.Status != update.Status ||
		(update.StreamURL != "" && current.StreamURL != update.StreamURL)
}

func (c *controller) RunPeriodicMatchSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer ticker.Stop()
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := c.SyncLiveMatches(ctx); err != nil {
				log.Printf("%v", err)
			}
			cancel()
		}
	}
}
