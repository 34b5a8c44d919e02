package model

import "time"

type Article struct {
	ID            int32
	CompetitionID int32
	Title         string
	Summary       string
	Content       string
	ImageURL      string
	Author        string
	Published     bool
	PublishedAt   time.Time
	Created       time.Time
}

func (a *Article) FormattedPublishedAt() string {
	if a.PublishedAt.IsZero() {
		return "unpublished"
	}
	return a.PublishedAt.Format("Jan 2, 2006 15:04")
}
