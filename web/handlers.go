package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sporteventsagency-netizen/futbalito-sub001/controller"
	"github.com/sporteventsagency-netizen/futbalito-sub001/db"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
	"github.com/unrolled/render"
)

func homeHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitions, err := ctrl.ListCompetitions(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		render.HTML(w, http.StatusOK, "home", competitions)
	}
}

func competitionHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "competitionID")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		overview, err := ctrl.GetCompetition(r.Context(), id)
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.HTML(w, http.StatusOK, "competition", overview)
	}
}

func articleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID, articleID, err := articleParams(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		detail, err := ctrl.GetArticle(r.Context(), competitionID, articleID)
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.HTML(w, http.StatusOK, "article", articlePage{Detail: detail, Form: &CommentForm{}})
	}
}

func addCommentHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID, articleID, err := articleParams(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		form := &CommentForm{
			Author:  r.PostForm.Get("author"),
			Content: r.PostForm.Get("content"),
		}
		err = form.Submit(func(author, content string) error {
			_, err := ctrl.AddComment(r.Context(), competitionID, articleID, author, content)
			return err
		})

		if errors.Is(err, controller.ErrInvalidComment) {
			// Show the article again with the message and what was typed so far.
			detail, lookupErr := ctrl.GetArticle(r.Context(), competitionID, articleID)
			if lookupErr != nil {
				renderError(w, render, lookupErr)
				return
			}
			render.HTML(w, http.StatusBadRequest, "article", articlePage{Detail: detail, Form: form})
			return
		}
		if err != nil {
			renderError(w, render, err)
			return
		}

		url := fmt.Sprintf("/competitions/%d/articles/%d#comments", competitionID, articleID)
		http.Redirect(w, r, url, http.StatusSeeOther)
	}
}

func matchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID, err := idParam(r, "competitionID")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		matchID, err := idParam(r, "matchID")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		detail, err := ctrl.GetMatch(r.Context(), competitionID, matchID)
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.HTML(w, http.StatusOK, "match", detail)
	}
}

type articlePage struct {
	Detail *model.ArticleDetail
	Form   *CommentForm
}

// renderError maps lookup errors to the not found page, anything else is a 500.
func renderError(w http.ResponseWriter, render *render.Render, err error) {
	switch {
	case errors.Is(err, db.ErrCompetitionNotFound):
		render.HTML(w, http.StatusNotFound, "404", "competition not found")
	case errors.Is(err, db.ErrArticleNotFound):
		render.HTML(w, http.StatusNotFound, "404", "article not found")
	case errors.Is(err, db.ErrMatchNotFound):
		render.HTML(w, http.StatusNotFound, "404", "match not found")
	default:
		render.HTML(w, http.StatusInternalServerError, "500", err.Error())
	}
}

func idParam(r *http.Request, name string) (int32, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", name, err)
	}
	return int32(id), nil
}

func articleParams(r *http.Request) (int32, int32, error) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		return 0, 0, err
	}
	articleID, err := idParam(r, "articleID")
	if err != nil {
		return 0, 0, err
	}
	return competitionID, articleID, nil
}
