package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"peerholdem/internal/util"
	"peerholdem/pkg/poker/texasholdem"
)

type ctxKey int

const (
	ctxLoggerKey ctxKey = iota
)

const requestIDHeader = "PeerHoldem-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	logic   *texasholdem.Logic
}

// NewMux returns a new HTTP mux
func NewMux(version string, logic *texasholdem.Logic) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		logic:   logic,
	}

	r := this.Router
	r.Use(this.requestIDMiddleware)

	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/verify").Handler(this.postVerify())
	r.Methods(http.MethodGet).Path("/verify/ws").Handler(this.getVerifyWS())
	r.Methods(http.MethodPost).Path("/initial-move").Handler(this.postInitialMove())
	r.Methods(http.MethodPost).Path("/buy-in").Handler(this.postBuyIn())
	r.Methods(http.MethodPost).Path("/moves/{action:[a-zA-Z]+}").Handler(this.postMove())
	r.Methods(http.MethodPost).Path("/end-game").Handler(this.postEndGame())

	return this
}

// requestIDMiddleware tags the request and its log lines with an identifier
func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = util.NewRequestID()
		}

		w.Header().Set(requestIDHeader, id)

		logger := logrus.WithField("requestId", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxLoggerKey, logger)))
	})
}

func requestLogger(r *http.Request) logrus.FieldLogger {
	if logger, ok := r.Context().Value(ctxLoggerKey).(logrus.FieldLogger); ok {
		return logger
	}

	return logrus.StandardLogger()
}
