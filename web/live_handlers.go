package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/itbasis/go-clock"
	"github.com/sporteventsagency-netizen/futbalito-sub001/controller"
	"github.com/sporteventsagency-netizen/futbalito-sub001/db"
	"github.com/sporteventsagency-netizen/futbalito-sub001/live"
	"github.com/unrolled/render"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	frameBuffer    = 16
)

// liveMatchHandler upgrades to a websocket and pushes scoreboard and toast
// frames for one match until the viewer goes away.
func liveMatchHandler(ctrl controller.C, render *render.Render, clock clock.Clock, upgrader *websocket.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, err := idParam(r, "matchID")
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		m, err := ctrl.GetLiveMatch(r.Context(), matchID)
		if err != nil {
			if errors.Is(err, db.ErrMatchNotFound) {
				render.Text(w, http.StatusNotFound, "match not found")
			} else {
				render.Text(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client.
			log.Printf("websocket upgrade error for match %d: %v", matchID, err)
			return
		}
		defer conn.Close()

		updates, unsubscribe := ctrl.Subscribe(matchID)
		defer unsubscribe()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		frames := make(chan live.Frame, frameBuffer)
		session := live.NewSession(clock, m, func(f live.Frame) {
			select {
			case frames <- f:
			default:
				log.Printf("live viewer of match %d is too slow, dropping %s frame", matchID, f.Type)
			}
		})
		session.Update(m)
		go session.Run(ctx, updates)
		go readPump(conn, cancel)

		writePump(ctx, conn, frames)
	}
}

// readPump discards anything the viewer sends and cancels the session once
// the connection is gone.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			return
		}
	}
}

func writePump(ctx context.Context, conn *websocket.Conn, frames <-chan live.Frame) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case f := <-frames:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(f); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
