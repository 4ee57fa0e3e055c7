package mux

import (
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"

	"peerholdem/pkg/poker/action"
	"peerholdem/pkg/poker/operation"
	"peerholdem/pkg/poker/texasholdem"
	"peerholdem/pkg/poker/wirestate"
)

type verifyPayload struct {
	LastState   wirestate.Snapshot `json:"lastState"`
	LastMove    operation.List     `json:"lastMove"`
	PlayerIDs   []int64            `json:"playerIds"`
	ActorID     int64              `json:"actorId"`
	TokensInPot map[int64]int      `json:"tokensInPot"`
}

func (p *verifyPayload) request() (texasholdem.VerifyRequest, error) {
	state, err := wirestate.Decode(p.LastState)
	if err != nil {
		return texasholdem.VerifyRequest{}, err
	}

	return texasholdem.VerifyRequest{
		LastState:   state,
		LastMove:    p.LastMove,
		PlayerIDs:   p.PlayerIDs,
		ActorID:     p.ActorID,
		TokensInPot: p.TokensInPot,
	}, nil
}

// verify runs the verification of a payload; an error is returned for malformed input
func (m *Mux) verify(payload *verifyPayload) (*texasholdem.Result, error) {
	req, err := payload.request()
	if err != nil {
		return nil, err
	}

	return m.logic.Verify(req)
}

func (m *Mux) postVerify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload verifyPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		result, err := m.verify(&payload)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		requestLogger(r).WithField("accepted", result.Accepted).Debug("verified move")
		writeJSON(w, http.StatusOK, result)
	}
}

type initialMovePayload struct {
	PlayerIDs     []int64       `json:"playerIds"`
	StartingChips map[int64]int `json:"startingChips"`
}

func (m *Mux) postInitialMove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload initialMovePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		ops, err := m.logic.InitialMove(payload.PlayerIDs, payload.StartingChips)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ops)
	}
}

type buyInPayload struct {
	PlayerID int64 `json:"playerId"`
	Amount   int   `json:"amount"`
}

func (m *Mux) postBuyIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload buyInPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		ops, err := m.logic.BuyIn(payload.PlayerID, payload.Amount)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ops)
	}
}

type movePayload struct {
	State     wirestate.Snapshot `json:"state"`
	PlayerIDs []int64            `json:"playerIds"`
	Amount    int                `json:"amount"`
}

func (m *Mux) postMove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := action.FromString(strings.ToUpper(gmux.Vars(r)["action"]))
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		var payload movePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		state, err := wirestate.Decode(payload.State)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		ops, err := m.logic.Move(state, payload.PlayerIDs, a, payload.Amount)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		requestLogger(r).WithField("move", a).Debug(a.LogMessage(payload.Amount))
		writeJSON(w, http.StatusOK, ops)
	}
}

type endGamePayload struct {
	State     wirestate.Snapshot `json:"state"`
	PlayerIDs []int64            `json:"playerIds"`
}

func (m *Mux) postEndGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload endGamePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		state, err := wirestate.Decode(payload.State)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		ops, err := m.logic.EndGame(state, payload.PlayerIDs)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ops)
	}
}
