package dashboard

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/topicmap/internal/explorer"
	"github.com/ziadkadry99/topicmap/internal/observability"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Outgoing frame types.
const (
	frameUpdate = "update"
	frameError  = "error"
)

// selectFrame is the outgoing WebSocket message format. Error frames still
// carry the update when one was computed so the page can clear the chart.
type selectFrame struct {
	Type      string           `json:"type"`
	SessionID string           `json:"session_id"`
	Update    *explorer.Update `json:"update,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.logger.Error().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	ip := clientIP(r)
	log := d.logger.With().Str("session_id", sessionID).Str("client", ip).Logger()

	observability.WebsocketSessions.Inc()
	defer observability.WebsocketSessions.Dec()
	log.Debug().Msg("websocket session opened")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("websocket read")
			}
			log.Debug().Msg("websocket session closed")
			return
		}

		if !d.limiter.allow(ip) {
			d.sendError(conn, sessionID, nil, "rate limit exceeded")
			continue
		}

		ev, err := decodeEvent(msg)
		if err != nil {
			d.sendError(conn, sessionID, nil, err.Error())
			continue
		}

		u, err := d.handle(ev, "websocket")
		if err != nil {
			d.sendError(conn, sessionID, &u, err.Error())
			continue
		}
		d.sendFrame(conn, selectFrame{Type: frameUpdate, SessionID: sessionID, Update: &u})
	}
}

func (d *Dashboard) sendFrame(conn *websocket.Conn, frame selectFrame) {
	if err := conn.WriteJSON(frame); err != nil {
		d.logger.Warn().Err(err).Msg("websocket write")
	}
}

func (d *Dashboard) sendError(conn *websocket.Conn, sessionID string, u *explorer.Update, msg string) {
	d.sendFrame(conn, selectFrame{Type: frameError, SessionID: sessionID, Update: u, Error: msg})
}
