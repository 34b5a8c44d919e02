package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sporteventsagency-netizen/futbalito-sub001/controller"
	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

// NewServer wires the portal routes. The /admin routes are only mounted when
// admin credentials are given.
func NewServer(port int, ctrl controller.C, clock clock.Clock, admins map[string]string) (*Server, error) {
	if ctrl == nil {
		return nil, fmt.Errorf("controller must be provided")
	}

	render := newRender(ctrl)
	router := getRouter(ctrl, render, clock, admins)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender(ctrl controller.C) *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"clock":     model.FormatElapsed,
				"date":      dateFormatter,
				"eventIcon": eventIcon,
				"portal":    ctrl.Portal,
			},
		},
	})
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Format("Jan 2, 2006 15:04")
}

func eventIcon(kind model.EventKind) string {
	switch kind {
	case model.EVENT_GOAL:
		return "⚽"
	case model.EVENT_YELLOW_CARD:
		return "🟨"
	case model.EVENT_RED_CARD:
		return "🟥"
	case model.EVENT_SUBSTITUTION:
		return "🔁"
	default:
		return "•"
	}
}
