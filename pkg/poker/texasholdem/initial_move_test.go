package texasholdem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"peerholdem/pkg/deck"
	"peerholdem/pkg/poker/action"
	"peerholdem/pkg/poker/operation"
	"peerholdem/pkg/poker/potmanager"
	"peerholdem/pkg/snapshot"
)

func TestLogic_InitialMove(t *testing.T) {
	a := assert.New(t)
	logic := newTestLogic()

	ids := setupPlayerIDs(3)
	ops, err := logic.InitialMove(ids, setupStacks(ids, 1000, 1000, 1000))
	a.NoError(err)
	a.Len(ops, 118)
	a.Equal(operation.SetTurn{PlayerID: 1}, ops[0])

	state, err := (*State)(nil).Apply(ops)
	a.NoError(err)
	a.Equal(3, state.NumberOfPlayers)
	a.Equal(RoundPreFlop, state.Round)
	a.Equal(action.Raise, state.PreviousMove)
	a.False(state.PreviousMoveAllIn)
	a.Equal(Seat(0), state.WhoseMove)
	a.Equal(Seat(2), state.CurrentBetter)
	a.Equal([]Seat{0, 1, 2}, state.PlayersInHand)
	a.Equal([][]int{{0, 1}, {2, 3}, {4, 5}}, state.HoleCards)
	a.Equal([]int{6, 7, 8, 9, 10}, state.Board)
	a.Equal([]int{0, 100, 200}, state.PlayerBets)
	a.Equal([]int{1000, 900, 800}, state.PlayerChips)
	a.Equal(potmanager.Pots{{
		Chips:       300,
		RequiredBet: 200,
		Players:     []Seat{1, 2},
		PlayerBets:  []int{0, 100, 200},
	}}, state.Pots)
	a.Equal("14s", deck.CardToString(state.Cards[51]))
	a.Equal("2c", deck.CardToString(state.Cards[0]))
	a.NoError(state.validate())

	a.True(ops.Has(operation.KindShuffle))

	v, ok := findVisibility(ops, "C3")
	a.True(ok)
	a.Equal([]int64{2}, v.VisibleTo)

	v, ok = findVisibility(ops, "C6")
	a.True(ok)
	a.Equal([]int64{}, v.VisibleTo)
}

func TestLogic_InitialMove_headsUp(t *testing.T) {
	a := assert.New(t)
	logic := newTestLogic()

	state, _ := dealHand(t, logic, 1000, 1000)
	a.Equal(Seat(0), state.WhoseMove, "small blind acts first")
	a.Equal(Seat(1), state.CurrentBetter)
	a.Equal([]int{100, 200}, state.PlayerBets)
	a.Equal([]int{900, 800}, state.PlayerChips)
	a.Equal([]int{4, 5, 6, 7, 8}, state.Board)
}

func TestLogic_InitialMove_positions(t *testing.T) {
	logic := newTestLogic()

	runTest := func(t *testing.T, n int, utg Seat) {
		t.Helper()

		stacks := make([]int, n)
		for i := range stacks {
			stacks[i] = 1000
		}

		state, _ := dealHand(t, logic, stacks...)
		assert.Equal(t, utg, state.WhoseMove)
		assert.Equal(t, Seat(2), state.CurrentBetter)
		assert.Equal(t, 100, state.PlayerBets[1])
		assert.Equal(t, 200, state.PlayerBets[2])
	}

	runTest(t, 3, 0)
	runTest(t, 4, 3)
	runTest(t, 9, 3)
}

func TestLogic_InitialMove_allInBigBlind(t *testing.T) {
	a := assert.New(t)
	logic := newTestLogic()

	state, _ := dealHand(t, logic, 1000, 1000, 200)
	a.True(state.PreviousMoveAllIn)
	a.Equal([]int{1000, 900, 0}, state.PlayerChips)
	a.Len(state.Pots, 2)
	a.Equal(300, state.Pots[0].Chips)
	a.Equal([]Seat{1}, state.Pots[1].Players, "the big blind is not eligible for later bets")
}

func TestLogic_InitialMove_errors(t *testing.T) {
	a := assert.New(t)
	logic := newTestLogic()

	ops, err := logic.InitialMove([]int64{1}, map[int64]int{1: 1000})
	a.EqualError(err, "a hand needs 2 to 9 players, got 1")
	a.Nil(ops)

	ops, err = logic.InitialMove([]int64{1, 2}, map[int64]int{1: 1000})
	a.EqualError(err, "player 2 has not bought in")
	a.Nil(ops)

	ops, err = logic.InitialMove([]int64{1, 1}, map[int64]int{1: 1000})
	a.EqualError(err, "player 1 is seated twice")
	a.Nil(ops)

	ops, err = logic.InitialMove([]int64{1, 2, 3}, map[int64]int{1: 1000, 2: 1000, 3: 150})
	a.EqualError(err, "player 3 cannot post the big blind of 200")
	a.IsType(RuleViolation(""), err)
	a.Nil(ops)

	ops, err = logic.InitialMove([]int64{1, 2, 3}, map[int64]int{1: 1000, 2: 50, 3: 1000})
	a.EqualError(err, "player 2 cannot post the small blind of 100")
	a.Nil(ops)
}

func TestLogic_BuyIn(t *testing.T) {
	a := assert.New(t)
	logic := newTestLogic()

	ops, err := logic.BuyIn(5, 2500)
	a.NoError(err)
	a.Equal(operation.List{operation.AttemptChangeTokens{
		PlayerIDToTokens:    map[int64]int{5: -2500},
		PlayerIDToPotTokens: map[int64]int{5: 2500},
	}}, ops)

	ops, err = logic.BuyIn(5, 0)
	a.EqualError(err, "buy-in must be > 0")
	a.Nil(ops)
}

func TestLogic_InitialMove_snapshot(t *testing.T) {
	logic := newTestLogic()

	ids := setupPlayerIDs(4)
	ops, err := logic.InitialMove(ids, setupStacks(ids, 1000, 150, 1000, 1000))
	assert.NoError(t, err)
	snapshot.ValidateSnapshot(t, ops)
}
