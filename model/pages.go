package model

// CompetitionOverview aggregates everything shown on a competition page.
type CompetitionOverview struct {
	Competition *Competition
	Teams       []Team
	Matches     []Match
	Articles    []Article
}

// ArticleDetail is an article with the comment thread belonging to it. Comments
// are ordered newest first.
type ArticleDetail struct {
	Article     *Article
	Competition *Competition
	Comments    []Comment
	BackURL     string
}

// MatchDetail backs the live match page. Events are ordered by minute,
// most recent first. EmbedURL is empty when the match has no playable stream.
type MatchDetail struct {
	Match       *Match
	Competition *Competition
	Events      []MatchEvent
	EmbedURL    string
	BackURL     string
}

func (d *MatchDetail) HasStream() bool {
	return d.EmbedURL != ""
}
