package texasholdem

import (
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peerholdem/pkg/poker/action"
	"peerholdem/pkg/poker/operation"
)

func newTestLogic() *Logic {
	logic, err := NewLogic(logrus.StandardLogger(), DefaultOptions())
	if err != nil {
		panic(err)
	}

	return logic
}

func setupPlayerIDs(n int) []int64 {
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	return ids
}

func setupStacks(ids []int64, stacks ...int) map[int64]int {
	m := make(map[int64]int, len(ids))
	for i, id := range ids {
		m[id] = stacks[i]
	}

	return m
}

// dealHand returns the state after the initial move for a table with the stacks
func dealHand(t *testing.T, logic *Logic, stacks ...int) (*State, []int64) {
	t.Helper()

	ids := setupPlayerIDs(len(stacks))
	ops, err := logic.InitialMove(ids, setupStacks(ids, stacks...))
	require.NoError(t, err)

	state, err := (*State)(nil).Apply(ops)
	require.NoError(t, err)

	return state, ids
}

// assertMove makes a move, checks that the claim verifies after a round trip through JSON and
// returns the new state
func assertMove(t *testing.T, logic *Logic, state *State, ids []int64, a action.Action, amount int, msgAndArgs ...interface{}) *State {
	t.Helper()

	ops, err := logic.Move(state, ids, a, amount)
	require.NoError(t, err, msgAndArgs...)

	claim := roundTrip(t, ops)
	result, err := logic.Verify(VerifyRequest{
		LastState: state,
		LastMove:  claim,
		PlayerIDs: ids,
		ActorID:   ids[state.WhoseMove],
	})
	require.NoError(t, err, msgAndArgs...)
	assert.True(t, result.Accepted, msgAndArgs...)
	assert.Nil(t, result.Rejected, msgAndArgs...)

	next, err := state.Apply(ops)
	require.NoError(t, err, msgAndArgs...)
	assert.Equal(t, state.totalChips(), next.totalChips(), "chips are conserved")

	return next
}

// assertMoveFailed asserts the move is a rule violation
func assertMoveFailed(t *testing.T, logic *Logic, state *State, ids []int64, a action.Action, amount int, expectedErr string) {
	t.Helper()

	ops, err := logic.Move(state, ids, a, amount)
	assert.EqualError(t, err, expectedErr)
	assert.IsType(t, RuleViolation(""), err)
	assert.Nil(t, ops)
}

func roundTrip(t *testing.T, ops operation.List) operation.List {
	t.Helper()

	b, err := json.Marshal(ops)
	require.NoError(t, err)

	var claim operation.List
	require.NoError(t, json.Unmarshal(b, &claim))

	return claim
}

func findVisibility(ops operation.List, key string) (operation.SetVisibility, bool) {
	for _, op := range ops {
		if v, ok := op.(operation.SetVisibility); ok && v.Key == key {
			return v, true
		}
	}

	return operation.SetVisibility{}, false
}

func withoutOperation(ops operation.List, i int) operation.List {
	c := make(operation.List, 0, len(ops)-1)
	c = append(c, ops[:i]...)
	return append(c, ops[i+1:]...)
}
