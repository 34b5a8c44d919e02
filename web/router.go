package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/itbasis/go-clock"
	"github.com/rs/cors"
	"github.com/sporteventsagency-netizen/futbalito-sub001/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, clock clock.Clock, admins map[string]string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Live connections stay open for the whole match, so they are kept out of
	// the request timeout below.
	upgrader := &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	r.Get("/matches/{matchID:\\d+}/live", liveMatchHandler(ctrl, render, clock, upgrader))

	r.Group(func(r chi.Router) {
		// Set a timeout value on the request context (ctx), that will signal
		// through ctx.Done() that the request has timed out and further
		// processing should be stopped.
		r.Use(middleware.Timeout(10 * time.Second))

		r.Get("/", homeHandler(ctrl, render))

		r.Route("/competitions/{competitionID:\\d+}", func(r chi.Router) {
			r.Get("/", competitionHandler(ctrl, render))
			r.Get("/articles/{articleID:\\d+}", articleHandler(ctrl, render))
			r.Post("/articles/{articleID:\\d+}/comments", addCommentHandler(ctrl, render))
			r.Get("/matches/{matchID:\\d+}", matchHandler(ctrl, render))
		})

		r.Route("/api", func(r chi.Router) {
			r.Use(cors.New(cors.Options{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			}).Handler)

			r.Get("/matches/{matchID:\\d+}", apiMatchHandler(ctrl, render))
		})

		if len(admins) > 0 {
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.BasicAuth("futbalito", admins))

				r.Post("/matches/{matchID:\\d+}/score", updateScoreHandler(ctrl, render))
				r.Post("/matches/{matchID:\\d+}/events", addEventHandler(ctrl, render))
				r.Post("/sync", syncHandler(ctrl, render))
			})
		}
	})

	return r
}
