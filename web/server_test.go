package web

import (
	"testing"
	"time"

	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

func TestDateFormatter(t *testing.T) {
	tests := []struct {
		d    time.Time
		want string
	}{
		{d: time.Time{}, want: "TBD"},
		{d: time.Date(2024, 8, 3, 19, 30, 0, 0, time.UTC), want: "Aug 3, 2024 19:30"},
		{d: time.Date(2025, 1, 12, 9, 5, 0, 0, time.UTC), want: "Jan 12, 2025 09:05"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := dateFormatter(tc.d)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestEventIcon(t *testing.T) {
	tests := []struct {
		kind model.EventKind
		want string
	}{
		{kind: model.EVENT_GOAL, want: "⚽"},
		{kind: model.EVENT_YELLOW_CARD, want: "🟨"},
		{kind: model.EVENT_RED_CARD, want: "🟥"},
		{kind: model.EVENT_SUBSTITUTION, want: "🔁"},
		{kind: model.EVENT_UNKNOWN, want: "•"},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			got := eventIcon(tc.kind)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}
