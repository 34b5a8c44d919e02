package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sporteventsagency-netizen/futbalito-sub001/db"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
)

func (c *controller) GetArticle(ctx context.Context, competitionID, articleID int32) (*model.ArticleDetail, error) {
	a, err := c.db.GetArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	// Drafts and articles of other competitions are not visible on this page.
	if !a.Published || a.CompetitionID != competitionID {
		return nil, db.ErrArticleNotFound
	}

	comments, err := c.db.ListComments(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments of article %d: %w", articleID, err)
	}
	comments = commentsForArticle(comments, articleID)
	model.SortCommentsNewestFirst(comments)

	result := &model.ArticleDetail{
		Article:  a,
		Comments: comments,
		BackURL:  "/",
	}

	comp, err := c.db.GetCompetition(ctx, competitionID)
	if err != nil && !errors.Is(err, db.ErrCompetitionNotFound) {
		return nil, err
	}
	if comp != nil {
		result.Competition = comp
		result.BackURL = competitionURL(comp.ID)
	}
	return result, nil
}

func (c *controller) AddComment(ctx context.Context, competitionID, articleID int32, author, content string) (*model.Comment, error) {
	if strings.TrimSpace(author) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrInvalidComment
	}

	a, err := c.db.GetArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !a.Published || a.CompetitionID != competitionID {
		return nil, db.ErrArticleNotFound
	}

	comment := &model.Comment{
		ID:        uuid.NewString(),
		ArticleID: articleID,
		Author:    author,
		Content:   content,
		Created:   c.clock.Now().UTC(),
	}
	if err := c.db.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func commentsForArticle(comments []model.Comment, articleID int32) []model.Comment {
	result := make([]model.Comment, 0, len(comments))
	for _, cm := range comments {
		if cm.ArticleID == articleID {
			result = append(result, cm)
		}
	}
	return result
}
