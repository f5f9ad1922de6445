package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/mr1hm/go-nearby-hospitals/internal/location"
	"github.com/mr1hm/go-nearby-hospitals/internal/session"
	"github.com/mr1hm/go-nearby-hospitals/internal/view"
)

const (
	reportWait = 30 * time.Second
	writeWait  = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamSession reads one location report from the client, then pushes every
// state transition of the session as a view.Model and closes.
func (h *Handler) streamSession(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("ws upgrade error", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(reportWait))
	var report location.Report
	if err := conn.ReadJSON(&report); err != nil {
		slog.Debug("ws location report not received", "error", err)
		return
	}
	conn.SetReadDeadline(time.Time{})

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// The client never sends again; a read error means it went away.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	writeFailed := false
	publish := func(s session.State) {
		if writeFailed {
			return
		}
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(view.FromState(s)); err != nil {
			writeFailed = true
			slog.Debug("ws write failed", "error", err)
		}
	}

	res := h.sessions.Run(ctx, report, publish)
	h.finish(res)

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, string(res.State.Status())))

	// Wait briefly for the client's close reply before tearing down.
	select {
	case <-readDone:
	case <-time.After(time.Second):
	}
}
