package mux

import (
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peerholdem/pkg/poker/operation"
)

func TestMux_getVerifyWS(t *testing.T) {
	a := assert.New(t)
	ts := newTestServer()
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/verify/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	buyIn := operation.List{operation.AttemptChangeTokens{
		PlayerIDToTokens:    map[int64]int{7: -300},
		PlayerIDToPotTokens: map[int64]int{7: 300},
	}}

	a.NoError(conn.WriteJSON(verifyPayload{
		LastMove:    buyIn,
		PlayerIDs:   []int64{7},
		ActorID:     7,
		TokensInPot: map[int64]int{7: 300},
	}))

	var resp resultOrError
	a.NoError(conn.ReadJSON(&resp))
	a.True(resp.Accepted)
	a.Nil(resp.Rejected)
	a.Nil(resp.Error)

	a.NoError(conn.WriteJSON(verifyPayload{
		LastMove:    buyIn,
		PlayerIDs:   []int64{7},
		ActorID:     7,
		TokensInPot: map[int64]int{7: 200},
	}))

	resp = resultOrError{}
	a.NoError(conn.ReadJSON(&resp))
	a.False(resp.Accepted)
	a.Equal(int64(7), resp.Rejected.PlayerID)

	a.NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"lastState": {"pots": true}}`)))
	resp = resultOrError{}
	err = conn.ReadJSON(&resp)
	a.Error(err, "a message that cannot be decoded closes the connection")
}
