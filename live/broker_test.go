package live

import (
	"testing"
	"time"

	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

func TestBroker_publishToSubscribers(t *testing.T) {
	b := NewBroker()

	ch1, unsub1 := b.Subscribe(1)
	defer unsub1()
	ch2, unsub2 := b.Subscribe(1)
	defer unsub2()
	other, unsubOther := b.Subscribe(2)
	defer unsubOther()

	if b.Subscribers(1) != 2 {
		t.Fatalf("expected 2 subscribers, got %d", b.Subscribers(1))
	}

	b.Publish(model.Match{ID: 1, HomeScore: 1})

	for i, ch := range []<-chan model.Match{ch1, ch2} {
		select {
		case m := <-ch:
			if m.HomeScore != 1 {
				t.Errorf("subscriber %d: unexpected match %+v", i, m)
			}
		case <-time.After(time.Second):
			t.Errorf("subscriber %d: did not receive the update", i)
		}
	}

	select {
	case m := <-other:
		t.Errorf("subscriber of another match received %+v", m)
	default:
	}
}

func TestBroker_unsubscribe(t *testing.T) {
	b := NewBroker()

	ch, unsub := b.Subscribe(1)
	unsub()
	unsub() // safe to call twice

	if _, ok := <-ch; ok {
		t.Errorf("expected channel to be closed")
	}
	if b.Subscribers(1) != 0 {
		t.Errorf("expected no subscribers, got %d", b.Subscribers(1))
	}

	// Publishing without subscribers is a no-op
	b.Publish(model.Match{ID: 1})
}

func TestBroker_slowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroker()
	ch, unsub := b.Subscribe(1)
	defer unsub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			b.Publish(model.Match{ID: 1, Elapsed: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked on a slow subscriber")
	}

	if len(ch) != subscriberBuffer {
		t.Errorf("expected %d buffered updates, got %d", subscriberBuffer, len(ch))
	}
}
