package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sporteventsagency-netizen/futbalito-sub001/controller"
	"github.com/sporteventsagency-netizen/futbalito-sub001/db"
	"github.com/sporteventsagency-netizen/futbalito-sub001/live"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
	"github.com/unrolled/render"
)

func apiMatchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := lookupMatch(w, r, ctrl, render)
		if !ok {
			return
		}
		render.JSON(w, http.StatusOK, live.NewScoreboard(m))
	}
}

func updateScoreHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, err := idParam(r, "matchID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := r.ParseForm(); err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		var u controller.ScoreUpdate
		var parseErr error
		// Score and clock are saved as a whole.
		u.HomeScore, parseErr = requiredFormInt(r, "home", parseErr)
		u.AwayScore, parseErr = requiredFormInt(r, "away", parseErr)
		u.Elapsed, parseErr = requiredFormInt(r, "elapsed", parseErr)
		if parseErr != nil {
			render.Text(w, http.StatusBadRequest, parseErr.Error())
			return
		}
		if s := r.PostForm.Get("status"); s != "" {
			u.Status = model.ParseMatchStatus(s)
		}

		m, err := ctrl.UpdateMatchScore(r.Context(), matchID, u)
		if err != nil {
			renderAdminError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, live.NewScoreboard(m))
	}
}

func addEventHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, err := idParam(r, "matchID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := r.ParseForm(); err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		e := &model.MatchEvent{
			ExternalID: r.PostForm.Get("external_id"),
			MatchID:    matchID,
			Kind:       model.ParseEventKind(r.PostForm.Get("kind")),
		}
		var parseErr error
		e.Minute, parseErr = formInt(r, "minute", parseErr)
		e.TeamID, parseErr = formID(r, "team_id", parseErr)
		playerID, parseErr := formID(r, "player_id", parseErr)
		playerInID, parseErr := formID(r, "player_in_id", parseErr)
		if parseErr != nil {
			render.Text(w, http.StatusBadRequest, parseErr.Error())
			return
		}
		if playerID > 0 {
			e.Player = &model.Player{ID: playerID}
		}
		if playerInID > 0 {
			e.SecondaryPlayer = &model.Player{ID: playerInID}
		}

		m, err := ctrl.AddMatchEvent(r.Context(), e)
		if err != nil {
			renderAdminError(w, render, err)
			return
		}
		render.JSON(w, http.StatusCreated, live.NewScoreboard(m))
	}
}

func syncHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.SyncLiveMatches(r.Context()); err != nil {
			renderAdminError(w, render, err)
			return
		}
		render.Text(w, http.StatusOK, "live match sync completed successfully")
	}
}

func lookupMatch(w http.ResponseWriter, r *http.Request, ctrl controller.C, render *render.Render) (*model.Match, bool) {
	matchID, err := idParam(r, "matchID")
	if err != nil {
		render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return nil, false
	}

	m, err := ctrl.GetLiveMatch(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, db.ErrMatchNotFound) {
			render.JSON(w, http.StatusNotFound, map[string]string{"error": "match not found"})
		} else {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return nil, false
	}
	return m, true
}

func renderAdminError(w http.ResponseWriter, render *render.Render, err error) {
	switch {
	case errors.Is(err, db.ErrMatchNotFound):
		render.Text(w, http.StatusNotFound, err.Error())
	case errors.Is(err, controller.ErrInvalidEvent), errors.Is(err, controller.ErrInvalidScore):
		render.Text(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, controller.ErrNoFeed):
		render.Text(w, http.StatusServiceUnavailable, err.Error())
	default:
		render.Text(w, http.StatusInternalServerError, err.Error())
	}
}

// formInt reads an optional integer form value, 0 when absent. An earlier
// error is passed through so several fields can be read before checking.
func formInt(r *http.Request, name string, prev error) (int, error) {
	if prev != nil {
		return 0, prev
	}
	v := r.PostForm.Get(name)
	if v == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", name, err)
	}
	return i, nil
}

func requiredFormInt(r *http.Request, name string, prev error) (int, error) {
	if prev != nil {
		return 0, prev
	}
	if r.PostForm.Get(name) == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	return formInt(r, name, nil)
}

// formID reads an optional id form value, 0 when absent.
func formID(r *http.Request, name string, prev error) (int32, error) {
	if prev != nil {
		return 0, prev
	}
	v := r.PostForm.Get(name)
	if v == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", name, err)
	}
	return int32(id), nil
}
