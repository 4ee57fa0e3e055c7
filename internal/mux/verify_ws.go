package mux

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"peerholdem/pkg/poker/texasholdem"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

type resultOrError struct {
	Accepted bool                  `json:"accepted"`
	Rejected *texasholdem.Rejected `json:"rejected,omitempty"`
	Digest   uint64                `json:"digest,string"`
	Error    *errorResponse        `json:"error,omitempty"`
}

// getVerifyWS verifies every request read from the websocket and writes back one response per request
func (m *Mux) getVerifyWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		send := make(chan *resultOrError)
		done := make(chan bool)
		defer func() {
			close(send)
			<-done
			_ = conn.Close()
		}()

		go m.webSocketWriteLoop(conn, send, done, logger)
		m.webSocketReadLoop(conn, send, logger)
	}
}

func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, send <-chan *resultOrError, done chan<- bool, logger logrus.FieldLogger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(done)
	}()

	for {
		select {
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				drain(send)
				return
			}
		case msg, ok := <-send:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				logger.WithError(err).Error("could not write message")
				drain(send)
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(conn *websocket.Conn, send chan<- *resultOrError, logger logrus.FieldLogger) {
	for {
		var payload verifyPayload
		if err := conn.ReadJSON(&payload); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Error("could not read message")
			}

			return
		}

		result, err := m.verify(&payload)
		if err != nil {
			send <- &resultOrError{Error: &errorResponse{Message: err.Error(), StatusCode: http.StatusBadRequest}}
			continue
		}

		send <- &resultOrError{
			Accepted: result.Accepted,
			Rejected: result.Rejected,
			Digest:   result.Digest,
		}
	}
}

// drain discards responses until the read loop exits
func drain(send <-chan *resultOrError) {
	for range send {
	}
}
