package model

import (
	"testing"
	"time"
)

func TestSortCommentsNewestFirst(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	t3 := t2.Add(time.Hour)

	comments := []Comment{
		{ID: "b", Created: t2},
		{ID: "a", Created: t1},
		{ID: "c", Created: t3},
		{ID: "d", Created: t2},
	}
	SortCommentsNewestFirst(comments)

	want := []string{"c", "b", "d", "a"}
	for i, id := range want {
		if comments[i].ID != id {
			t.Errorf("position %d: expected: '%v', got: '%v'", i, id, comments[i].ID)
		}
	}
}

func TestPlayerFullName(t *testing.T) {
	tests := []struct {
		p    *Player
		want string
	}{
		{p: &Player{FirstName: "Erling", LastName: "Haaland"}, want: "Erling Haaland"},
		{p: &Player{LastName: "Neymar"}, want: "Neymar"},
		{p: nil, want: ""},
	}

	for _, tc := range tests {
		got := tc.p.FullName()
		if tc.want != got {
			t.Errorf("expected: '%v', got: '%v'", tc.want, got)
		}
	}
}
