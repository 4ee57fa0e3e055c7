package mux

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"peerholdem/pkg/poker/operation"
	"peerholdem/pkg/poker/texasholdem"
	"peerholdem/pkg/poker/wirestate"
)

func TestMux_engine(t *testing.T) {
	a := assert.New(t)
	ts := newTestServer()
	defer ts.Close()

	ids := []int64{1, 2}

	var initial operation.List
	assertPost(t, ts, "/initial-move", initialMovePayload{
		PlayerIDs:     ids,
		StartingChips: map[int64]int{1: 1000, 2: 1000},
	}, &initial, http.StatusOK)
	a.Len(initial, 118)

	var result texasholdem.Result
	assertPost(t, ts, "/verify", verifyPayload{
		LastMove:    initial,
		PlayerIDs:   ids,
		ActorID:     1,
		TokensInPot: map[int64]int{1: 1000, 2: 1000},
	}, &result, http.StatusOK)
	a.True(result.Accepted)

	snapshot := wirestate.Apply(wirestate.Snapshot{}, initial)

	var errObj errorResponse
	assertPost(t, ts, "/moves/check", movePayload{State: snapshot, PlayerIDs: ids}, &errObj, http.StatusUnprocessableEntity)
	a.Equal("cannot check, P0 must call 100", errObj.Message)

	var call operation.List
	assertPost(t, ts, "/moves/call", movePayload{State: snapshot, PlayerIDs: ids, Amount: 100}, &call, http.StatusOK)
	a.True(call.Has(operation.KindSetTurn))

	result = texasholdem.Result{}
	assertPost(t, ts, "/verify", verifyPayload{
		LastState: snapshot,
		LastMove:  call,
		PlayerIDs: ids,
		ActorID:   1,
	}, &result, http.StatusOK)
	a.True(result.Accepted)
	a.NotEqual(uint64(0), result.Digest)

	result = texasholdem.Result{}
	assertPost(t, ts, "/verify", verifyPayload{
		LastState: snapshot,
		LastMove:  call,
		PlayerIDs: ids,
		ActorID:   2,
	}, &result, http.StatusOK)
	a.False(result.Accepted)
	a.Equal(&texasholdem.Rejected{PlayerID: 2, Reason: "it is player 1's turn, not 2's"}, result.Rejected)

	errObj = errorResponse{}
	assertPost(t, ts, "/end-game", endGamePayload{State: snapshot, PlayerIDs: ids}, &errObj, http.StatusUnprocessableEntity)
	a.Equal("cannot end the game during PRE_FLOP", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/moves/dance", movePayload{State: snapshot, PlayerIDs: ids}, &errObj, http.StatusNotFound)
	a.Equal("unknown action for identifier: DANCE", errObj.Message)
}

func TestMux_badRequests(t *testing.T) {
	a := assert.New(t)
	ts := newTestServer()
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/buy-in", buyInPayload{PlayerID: 1, Amount: 0}, &errObj, http.StatusUnprocessableEntity)
	a.Equal("buy-in must be > 0", errObj.Message)

	var ops operation.List
	assertPost(t, ts, "/buy-in", buyInPayload{PlayerID: 1, Amount: 500}, &ops, http.StatusOK)
	a.Equal(operation.List{operation.AttemptChangeTokens{
		PlayerIDToTokens:    map[int64]int{1: -500},
		PlayerIDToPotTokens: map[int64]int{1: 500},
	}}, ops)

	errObj = errorResponse{}
	assertPost(t, ts, "/moves/fold", `{"state": {"pots": 1}}`, &errObj, http.StatusBadRequest)
	a.Contains(errObj.Message, "could not decode pots")

	errObj = errorResponse{}
	assertPost(t, ts, "/verify", `{"lastState": {"currentRound": "FLOP"}, "lastMove": []}`, &errObj, http.StatusBadRequest)
	a.Equal("snapshot is missing previousMove", errObj.Message)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/verify", nil)
	a.NoError(err)
	req.Header.Set("Content-Type", "text/plain")
	assertDo(t, req, &errObj, http.StatusUnsupportedMediaType)
	a.Equal("Unsupported Media Type", errObj.Message)
}
