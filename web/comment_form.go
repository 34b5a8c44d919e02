package web

import (
	"errors"
	"strings"

	"github.com/sporteventsagency-netizen/futbalito-sub001/controller"
)

// CommentForm holds what a reader typed into the comment box of an article.
// Error is the inline message shown above the form, empty when there is none.
type CommentForm struct {
	Author  string
	Content string
	Error   string
}

// Submit validates the form and hands the values, exactly as typed, to
// submit. A blank author or content sets Error and returns
// controller.ErrInvalidComment without calling submit. On success the form
// is cleared.
func (f *CommentForm) Submit(submit func(author, content string) error) error {
	if strings.TrimSpace(f.Author) == "" || strings.TrimSpace(f.Content) == "" {
		f.Error = controller.ErrInvalidComment.Error()
		return controller.ErrInvalidComment
	}

	if err := submit(f.Author, f.Content); err != nil {
		if errors.Is(err, controller.ErrInvalidComment) {
			f.Error = err.Error()
		}
		return err
	}

	f.Author = ""
	f.Content = ""
	f.Error = ""
	return nil
}
