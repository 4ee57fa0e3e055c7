package texasholdem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"peerholdem/pkg/poker/operation"
)

func TestLogic_Verify_initialMove(t *testing.T) {
	a := assert.New(t)
	logic := newTestLogic()

	ids := setupPlayerIDs(3)
	stacks := setupStacks(ids, 1000, 1000, 1000)
	ops, err := logic.InitialMove(ids, stacks)
	a.NoError(err)

	verify := func(claim operation.List, actorID int64) *Result {
		t.Helper()

		result, err := logic.Verify(VerifyRequest{
			LastMove:    roundTrip(t, claim),
			PlayerIDs:   ids,
			ActorID:     actorID,
			TokensInPot: stacks,
		})
		a.NoError(err)

		return result
	}

	result := verify(ops, 1)
	a.True(result.Accepted)
	a.Nil(result.Rejected)
	a.Equal(uint64(0), result.Digest)

	result = verify(ops, 2)
	a.False(result.Accepted)
	a.Equal(&Rejected{PlayerID: 2, Reason: "the hand must be dealt by the first player"}, result.Rejected)

	extra := append(operation.List{}, ops...)
	extra = append(extra, operation.Set{Key: "C0", Value: "3c"})
	result = verify(extra, 1)
	a.False(result.Accepted)
	a.Contains(result.Rejected.Reason, "claimed operations do not match the move")

	for i, op := range ops {
		if op.Kind() == operation.KindShuffle {
			result = verify(withoutOperation(ops, i), 1)
			a.False(result.Accepted, "missing shuffle")
		}
	}

	peek := append(operation.List{}, ops...)
	for i, op := range peek {
		if v, ok := op.(operation.SetVisibility); ok && v.Key == "C0" {
			peek[i] = operation.VisibleToAll("C0")
		}
	}

	result = verify(peek, 1)
	a.False(result.Accepted, "hole card visible to everyone")

	result = verify(operation.List{}, 1)
	a.Equal("the move has no operations", result.Rejected.Reason)
}

func TestLogic_Verify_initialMoveOnStartedHand(t *testing.T) {
	a := assert.New(t)
	logic := newTestLogic()

	ids := setupPlayerIDs(3)
	stacks := setupStacks(ids, 1000, 1000, 1000)
	ops, err := logic.InitialMove(ids, stacks)
	a.NoError(err)

	state, err := (*State)(nil).Apply(ops)
	a.NoError(err)

	result, err := logic.Verify(VerifyRequest{
		LastState:   state,
		LastMove:    ops,
		PlayerIDs:   ids,
		ActorID:     1,
		TokensInPot: stacks,
	})
	a.NoError(err)
	a.False(result.Accepted)
	a.Equal("raise must be > 0", result.Rejected.Reason)
	a.Equal(state.Digest(), result.Digest)
}

func TestLogic_Verify_buyIn(t *testing.T) {
	a := assert.New(t)
	logic := newTestLogic()

	ops, err := logic.BuyIn(4, 500)
	a.NoError(err)

	runTest := func(t *testing.T, tokens map[int64]int, accepted bool, reason string) {
		t.Helper()

		result, err := logic.Verify(VerifyRequest{
			LastMove:    roundTrip(t, ops),
			PlayerIDs:   []int64{1, 2, 3, 4},
			ActorID:     4,
			TokensInPot: tokens,
		})
		assert.NoError(t, err)
		assert.Equal(t, accepted, result.Accepted)
		if reason != "" {
			assert.Equal(t, reason, result.Rejected.Reason)
		}
	}

	runTest(t, map[int64]int{4: 500}, true, "")
	runTest(t, map[int64]int{4: 400}, false, "")
	runTest(t, map[int64]int{}, false, "player 4 has no tokens in the pot")
}

func TestLogic_Verify_moves(t *testing.T) {
	a := assert.New(t)
	logic := newTestLogic()

	state, ids := dealHand(t, logic, 1000, 1000)
	ops, err := logic.DoCall(state, ids, 100)
	a.NoError(err)

	verify := func(claim operation.List, actorID int64) *Result {
		t.Helper()

		result, err := logic.Verify(VerifyRequest{
			LastState: state,
			LastMove:  claim,
			PlayerIDs: ids,
			ActorID:   actorID,
		})
		a.NoError(err)

		return result
	}

	a.True(verify(ops, 1).Accepted)

	result := verify(ops, 2)
	a.False(result.Accepted)
	a.Equal("it is player 1's turn, not 2's", result.Rejected.Reason)

	short := append(operation.List{}, ops...)
	for i, op := range short {
		if s, ok := op.(operation.Set); ok && s.Key == operation.PlayerChips {
			short[i] = operation.Set{Key: operation.PlayerChips, Value: []int{850, 800}}
		}
	}

	result = verify(short, 1)
	a.False(result.Accepted)
	a.Equal("call must be 100, got 50", result.Rejected.Reason)

	result = verify(operation.List{operation.SetTurn{PlayerID: 2}}, 1)
	a.Equal("the move does not set previousMove", result.Rejected.Reason)

	result = verify(operation.List{operation.Set{Key: operation.PreviousMove, Value: "DANCE"}}, 1)
	a.Equal("unknown action for identifier: DANCE", result.Rejected.Reason)

	result = verify(operation.List{operation.Set{Key: operation.PreviousMove, Value: "BET"}}, 1)
	a.Equal("the move does not set playerBets", result.Rejected.Reason)

	result = verify(operation.List{operation.EndGame{}}, 1)
	a.Equal("cannot end the game during PRE_FLOP", result.Rejected.Reason)

	result, err = logic.Verify(VerifyRequest{
		LastState: state,
		LastMove:  ops,
		PlayerIDs: []int64{1, 2, 3},
		ActorID:   1,
	})
	a.ErrorIs(err, ErrMalformedState)
	a.Nil(result)
}
