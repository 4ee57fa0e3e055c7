package texasholdem

import (
	"golang.org/x/exp/slices"

	"peerholdem/pkg/poker/action"
	"peerholdem/pkg/poker/operation"
)

// move is a betting move being turned into operations
type move struct {
	logic     *Logic
	playerIDs []int64
	prior     *State
	next      *State
	actor     Seat
	action    action.Action
	allIn     bool
}

func (l *Logic) newMove(state *State, playerIDs []int64, a action.Action) (*move, error) {
	if state == nil {
		return nil, newRuleViolation("the hand has not started")
	}

	if err := state.validate(); err != nil {
		return nil, err
	}

	if len(playerIDs) != state.NumberOfPlayers {
		return nil, malformed("%d player ids for %d players", len(playerIDs), state.NumberOfPlayers)
	}

	if !state.Round.IsBetting() {
		return nil, newRuleViolation("cannot %s during %s", a, state.Round)
	}

	actor := state.WhoseMove
	if !state.IsInHand(actor) {
		return nil, newRuleViolation("%s is not in the hand", actor)
	}

	if state.PlayerChips[actor] == 0 {
		return nil, newRuleViolation("%s is all-in and cannot act", actor)
	}

	return &move{
		logic:     l,
		playerIDs: playerIDs,
		prior:     state,
		next:      state.Clone(),
		actor:     actor,
		action:    a,
	}, nil
}

// put moves chips from the actor's stack to its bet
func (m *move) put(amount int) {
	m.next.PlayerChips[m.actor] -= amount
	m.next.PlayerBets[m.actor] += amount
	m.allIn = m.next.PlayerChips[m.actor] == 0
}

// canBeAnswered returns a rule violation if no other player could respond to a bet
func (m *move) canBeAnswered() error {
	for _, seat := range m.prior.activePlayers() {
		if seat != m.actor {
			return nil
		}
	}

	return newRuleViolation("no other player can respond to a %s", m.action)
}

// DoFold returns the operations of the current player folding
func (l *Logic) DoFold(state *State, playerIDs []int64) (operation.List, error) {
	m, err := l.newMove(state, playerIDs, action.Fold)
	if err != nil {
		return nil, err
	}

	if i, found := slices.BinarySearch(m.next.PlayersInHand, m.actor); found {
		m.next.PlayersInHand = slices.Delete(m.next.PlayersInHand, i, i+1)
	}

	m.next.Pots = m.next.Pots.Fold(m.actor)

	return m.finish(), nil
}

// DoCheck returns the operations of the current player checking
func (l *Logic) DoCheck(state *State, playerIDs []int64) (operation.List, error) {
	m, err := l.newMove(state, playerIDs, action.Check)
	if err != nil {
		return nil, err
	}

	if outstanding := state.Outstanding(m.actor); outstanding != 0 {
		return nil, newRuleViolation("cannot check, %s must call %d", m.actor, outstanding)
	}

	return m.finish(), nil
}

// DoCall returns the operations of the current player calling with amount
// An amount less than what is owed is only allowed when it is the player's whole stack.
func (l *Logic) DoCall(state *State, playerIDs []int64, amount int) (operation.List, error) {
	m, err := l.newMove(state, playerIDs, action.Call)
	if err != nil {
		return nil, err
	}

	outstanding := state.Outstanding(m.actor)
	if outstanding <= 0 {
		return nil, newRuleViolation("there is nothing to call")
	}

	chips := state.PlayerChips[m.actor]
	if amount > chips {
		return nil, newRuleViolation("cannot call %d with %d chips", amount, chips)
	}

	n := state.NumberOfPlayers
	switch {
	case amount == chips && amount <= outstanding:
		m.next.Pots = m.next.Pots.CallAllIn(m.actor, amount, n)
	case amount == outstanding:
		m.next.Pots = m.next.Pots.Call(m.actor)
	default:
		return nil, newRuleViolation("call must be %d, got %d", outstanding, amount)
	}

	m.put(amount)

	return m.finish(), nil
}

// DoBet returns the operations of the current player opening the betting round with amount
func (l *Logic) DoBet(state *State, playerIDs []int64, amount int) (operation.List, error) {
	m, err := l.newMove(state, playerIDs, action.Bet)
	if err != nil {
		return nil, err
	}

	if state.Round == RoundPreFlop {
		return nil, newRuleViolation("cannot bet before the flop")
	}

	if required := state.RequiredBet(); required != 0 {
		return nil, newRuleViolation("cannot bet, there is already a bet of %d", required)
	}

	if amount <= 0 {
		return nil, newRuleViolation("bet must be > 0")
	}

	if chips := state.PlayerChips[m.actor]; amount > chips {
		return nil, newRuleViolation("cannot bet %d with %d chips", amount, chips)
	}

	if err := m.canBeAnswered(); err != nil {
		return nil, err
	}

	m.put(amount)
	m.next.Pots = m.next.Pots.Bet(m.actor, amount, m.allIn, state.NumberOfPlayers)

	return m.finish(), nil
}

// DoRaise returns the operations of the current player putting additional chips in over a bet
// The raise is the amount the new bet exceeds the required bet by; it must be at least the
// required bet unless the player is all-in.
func (l *Logic) DoRaise(state *State, playerIDs []int64, additional int) (operation.List, error) {
	m, err := l.newMove(state, playerIDs, action.Raise)
	if err != nil {
		return nil, err
	}

	required := state.RequiredBet()
	if required == 0 {
		return nil, newRuleViolation("cannot raise, there is no bet")
	}

	if additional <= 0 {
		return nil, newRuleViolation("raise must be > 0")
	}

	chips := state.PlayerChips[m.actor]
	if additional > chips {
		return nil, newRuleViolation("cannot raise %d with %d chips", additional, chips)
	}

	raiseBy := state.PlayerBets[m.actor] + additional - required
	if raiseBy <= 0 {
		return nil, newRuleViolation("%d does not raise the bet of %d", additional, required)
	}

	if additional < chips && raiseBy < required {
		return nil, newRuleViolation("raise must be at least %d", required)
	}

	if err := m.canBeAnswered(); err != nil {
		return nil, err
	}

	m.put(additional)
	m.next.Pots = m.next.Pots.Raise(m.actor, raiseBy, m.allIn, state.NumberOfPlayers)

	return m.finish(), nil
}

// Move returns the operations of the current player making the betting move
// amount is the call, the bet or the additional chips of a raise; it is ignored for folds and checks.
func (l *Logic) Move(state *State, playerIDs []int64, a action.Action, amount int) (operation.List, error) {
	switch a {
	case action.Fold:
		return l.DoFold(state, playerIDs)
	case action.Check:
		return l.DoCheck(state, playerIDs)
	case action.Call:
		return l.DoCall(state, playerIDs, amount)
	case action.Bet:
		return l.DoBet(state, playerIDs, amount)
	case action.Raise:
		return l.DoRaise(state, playerIDs, amount)
	}

	return nil, newRuleViolation("unknown move %s", string(a))
}
