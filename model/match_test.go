package model

import (
	"reflect"
	"testing"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{seconds: 0, want: "00:00"},
		{seconds: 59, want: "00:59"},
		{seconds: 60, want: "01:00"},
		{seconds: 125, want: "02:05"},
		{seconds: 2700, want: "45:00"},
		{seconds: 5999, want: "99:59"},
		{seconds: 6000, want: "100:00"},
		{seconds: 7384, want: "123:04"},
		{seconds: -5, want: "00:00"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := FormatElapsed(tc.seconds)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestParseEventKind(t *testing.T) {
	tests := []struct {
		input    string
		expected EventKind
	}{
		{input: "goal", expected: EVENT_GOAL},
		{input: "GOAL", expected: EVENT_GOAL},
		{input: "yellow_card", expected: EVENT_YELLOW_CARD},
		{input: "Yellow Card", expected: EVENT_YELLOW_CARD},
		{input: "red-card", expected: EVENT_RED_CARD},
		{input: "substitution", expected: EVENT_SUBSTITUTION},
		{input: "sub", expected: EVENT_SUBSTITUTION},
		{input: "corner", expected: EVENT_UNKNOWN},
		{input: "", expected: EVENT_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParseEventKind(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestSortEvents(t *testing.T) {
	events := func() []MatchEvent {
		return []MatchEvent{
			{ID: 1, Minute: 30},
			{ID: 2, Minute: 10},
			{ID: 3, Minute: 30},
			{ID: 4, Minute: 75},
			{ID: 5, Minute: 10},
		}
	}

	tests := map[string]struct {
		descending bool
		want       []int32
	}{
		"ascending":  {descending: false, want: []int32{2, 5, 1, 3, 4}},
		"descending": {descending: true, want: []int32{4, 1, 3, 2, 5}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := events()
			SortEvents(e, tc.descending)

			got := make([]int32, 0, len(e))
			for _, ev := range e {
				got = append(got, ev.ID)
			}
			if !reflect.DeepEqual(tc.want, got) {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestLastEvent(t *testing.T) {
	m := &Match{}
	if m.LastEvent() != nil {
		t.Fatalf("expected no last event for a match without events")
	}

	m.Events = []MatchEvent{
		{ID: 1, Minute: 12, Kind: EVENT_GOAL},
		{ID: 2, Minute: 67, Kind: EVENT_YELLOW_CARD},
		{ID: 3, Minute: 40, Kind: EVENT_SUBSTITUTION},
		{ID: 4, Minute: 67, Kind: EVENT_GOAL},
	}
	last := m.LastEvent()
	if last == nil || last.ID != 4 {
		t.Errorf("expected event 4 to be the last event, got: %v", last)
	}
}

func TestEventDescription(t *testing.T) {
	scorer := &Player{FirstName: "Lionel", LastName: "Messi"}
	off := &Player{FirstName: "Ángel", LastName: "Di María"}
	on := &Player{LastName: "Garnacho", FirstName: "Alejandro"}

	tests := []struct {
		e    MatchEvent
		team string
		want string
	}{
		{e: MatchEvent{Kind: EVENT_GOAL, Player: scorer}, team: "Argentina", want: "GOAL! Lionel Messi scores (Argentina)"},
		{e: MatchEvent{Kind: EVENT_YELLOW_CARD, Player: scorer}, want: "Yellow card for Lionel Messi"},
		{e: MatchEvent{Kind: EVENT_RED_CARD, Player: off}, want: "Red card! Ángel Di María is sent off"},
		{e: MatchEvent{Kind: EVENT_SUBSTITUTION, Player: off, SecondaryPlayer: on}, want: "Substitution: Alejandro Garnacho on, Ángel Di María off"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := tc.e.Description(tc.team)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}
