package live

import (
	"sync"

	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

const subscriberBuffer = 16

type subscription struct {
	ch   chan model.Match
	once sync.Once
}

// Broker fans match snapshots out to everybody watching the same match.
// A subscriber that falls behind misses updates instead of blocking Publish.
type Broker struct {
	mu   sync.RWMutex
	subs map[int32]map[*subscription]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[int32]map[*subscription]struct{}),
	}
}

// Subscribe returns a channel of updates for the match and a function that
// cancels the subscription and closes the channel.
func (b *Broker) Subscribe(matchID int32) (<-chan model.Match, func()) {
	s := &subscription{ch: make(chan model.Match, subscriberBuffer)}

	b.mu.Lock()
	if b.subs[matchID] == nil {
		b.subs[matchID] = make(map[*subscription]struct{})
	}
	b.subs[matchID][s] = struct{}{}
	b.mu.Unlock()

	unsubscribe := func() {
		s.once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			delete(b.subs[matchID], s)
			if len(b.subs[matchID]) == 0 {
				delete(b.subs, matchID)
			}
			close(s.ch)
		})
	}
	return s.ch, unsubscribe
}

func (b *Broker) Publish(m model.Match) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for s := range b.subs[m.ID] {
		select {
		case s.ch <- m:
		default:
		}
	}
}

// Subscribers returns the number of active subscriptions for a match.
func (b *Broker) Subscribers(matchID int32) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[matchID])
}
