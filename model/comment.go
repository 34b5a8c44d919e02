package model

import (
	"slices"
	"time"
)

type Comment struct {
	ID        string
	ArticleID int32
	Author    string
	Content   string
	Created   time.Time
}

func (c *Comment) FormattedCreatedTime() string {
	if c.Created.IsZero() {
		return "unknown"
	}
	return c.Created.Format(time.DateTime)
}

// SortCommentsNewestFirst orders comments by creation time, most recent first.
// Comments created at the same instant keep their relative order.
func SortCommentsNewestFirst(comments []Comment) {
	slices.SortStableFunc(comments, func(a, b Comment) int {
		return b.Created.Compare(a.Created)
	})
}
