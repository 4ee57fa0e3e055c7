package texasholdem

import (
	"github.com/sirupsen/logrus"

	"peerholdem/pkg/deck"
	"peerholdem/pkg/poker/action"
	"peerholdem/pkg/poker/operation"
)

// finish checks the new state and returns the operations of the move
func (m *move) finish() operation.List {
	m.prior.checkTransition(m.next)

	m.logic.logger.WithFields(logrus.Fields{
		"seat":  m.actor,
		"round": m.prior.Round,
		"move":  m.action,
		"allIn": m.allIn,
	}).Debug(m.action.LogMessage(m.prior.PlayerChips[m.actor] - m.next.PlayerChips[m.actor]))

	switch {
	case m.action == action.Fold && len(m.next.PlayersInHand) == 1:
		return m.lastPlayerStanding()
	case m.action == action.Bet || m.action == action.Raise:
		return m.continueRound()
	case m.nobodyLeftToAct() || m.roundEnds():
		return m.nextRound()
	}

	return m.continueRound()
}

// nobodyLeftToAct returns true if at most one player can still act and that player owes nothing
func (m *move) nobodyLeftToAct() bool {
	active := m.next.activePlayers()
	switch len(active) {
	case 0:
		return true
	case 1:
		return m.next.Outstanding(active[0]) <= 0
	}

	return false
}

// header returns the operations every move starts with
func (m *move) header(turn Seat) operation.List {
	return operation.List{
		operation.SetTurn{PlayerID: m.playerIDs[turn]},
		operation.Set{Key: operation.PreviousMove, Value: string(m.action)},
		operation.Set{Key: operation.PreviousMoveAllIn, Value: m.allIn},
		operation.Set{Key: operation.WhoseMove, Value: turn},
	}
}

// chipOperations returns the operations updating bets and stacks if the move put chips in
func (m *move) chipOperations() operation.List {
	if m.action != action.Call && m.action != action.Bet && m.action != action.Raise {
		return nil
	}

	return operation.List{
		operation.Set{Key: operation.PlayerBets, Value: m.next.PlayerBets},
		operation.Set{Key: operation.PlayerChips, Value: m.next.PlayerChips},
	}
}

func (m *move) continueRound() operation.List {
	turn := m.nextTurn()
	ops := m.header(turn)

	switch m.action {
	case action.Fold:
		ops = append(ops, operation.Set{Key: operation.PlayersInHand, Value: m.next.PlayersInHand})
		if m.prior.CurrentBetter == m.actor {
			ops = append(ops, operation.Set{Key: operation.CurrentBetter, Value: turn})
		}

		if m.foldChangedPots() {
			ops = append(ops, operation.Set{Key: operation.Pots, Value: m.next.Pots})
		}
	case action.Bet, action.Raise:
		ops = append(ops, operation.Set{Key: operation.CurrentBetter, Value: m.actor})
	}

	ops = append(ops, m.chipOperations()...)
	if m.action != action.Fold && m.action != action.Check {
		ops = append(ops, operation.Set{Key: operation.Pots, Value: m.next.Pots})
	}

	return ops
}

// foldChangedPots returns true if the folding seat was eligible for any pot
func (m *move) foldChangedPots() bool {
	for _, pot := range m.prior.Pots {
		if pot.HasPlayer(m.actor) {
			return true
		}
	}

	return false
}

// nextTurn returns the next seat in the hand after the actor that can still act
func (m *move) nextTurn() Seat {
	players := m.prior.PlayersInHand
	start := indexOf(players, m.actor)
	for i := 1; i < len(players); i++ {
		seat := players[(start+i)%len(players)]
		if seat != m.actor && m.next.PlayerChips[seat] > 0 && m.next.IsInHand(seat) {
			return seat
		}
	}

	panic("there is no player left to act")
}

// roundEnds returns true if the betting round is over after a fold, check or call
func (m *move) roundEnds() bool {
	p := m.prior
	_, bb, _ := blindSeats(p.NumberOfPlayers)
	bigBlindOption := p.Round == RoundPreFlop && p.RequiredBet() == m.logic.options.BigBlind

	if bigBlindOption && p.WhoseMove == bb && (m.action == action.Check || m.action == action.Fold) {
		return true
	}

	reached := false
	players := p.PlayersInHand
	start := indexOf(players, m.actor)
	for i := 1; i < len(players); i++ {
		seat := players[(start+i)%len(players)]
		if seat == p.CurrentBetter {
			reached = true
			break
		}

		if p.PlayerChips[seat] == 0 {
			continue
		}

		break
	}

	if reached && bigBlindOption && p.IsInHand(bb) && p.PlayerChips[bb] > 0 {
		return false
	}

	return reached
}

// nextRound returns the operations of a move that ends the betting round
func (m *move) nextRound() operation.List {
	n := m.prior.NumberOfPlayers
	m.next.PlayerBets = make([]int, n)
	m.next.Pots = m.next.Pots.ResetRound(n)

	round := m.prior.Round.Next()
	showdown := round == RoundShowdown || len(m.next.activePlayers()) < 2
	turn := m.actor
	if showdown {
		round = RoundShowdown
	} else {
		turn = m.firstToAct()
	}

	ops := m.header(turn)
	ops = append(ops, operation.Set{Key: operation.CurrentRound, Value: round.String()})
	if !showdown {
		ops = append(ops, operation.Set{Key: operation.CurrentBetter, Value: turn})
	}

	if m.action == action.Fold {
		ops = append(ops, operation.Set{Key: operation.PlayersInHand, Value: m.next.PlayersInHand})
	}

	ops = append(ops, operation.Set{Key: operation.PlayerBets, Value: m.next.PlayerBets})
	if m.action == action.Call {
		ops = append(ops, operation.Set{Key: operation.PlayerChips, Value: m.next.PlayerChips})
	}

	ops = append(ops, operation.Set{Key: operation.Pots, Value: m.next.Pots})

	if showdown {
		for _, seat := range m.next.PlayersInHand {
			for _, slot := range m.next.HoleCards[seat] {
				ops = append(ops, operation.VisibleToAll(deck.SlotKey(slot)))
			}
		}
	}

	for _, slot := range m.boardReveals(round) {
		ops = append(ops, operation.VisibleToAll(deck.SlotKey(slot)))
	}

	return ops
}

// lastPlayerStanding returns the operations of a fold that leaves a single player in the hand
func (m *move) lastPlayerStanding() operation.List {
	n := m.prior.NumberOfPlayers
	m.next.PlayerBets = make([]int, n)
	m.next.Pots = m.next.Pots.ResetRound(n)

	ops := m.header(m.actor)
	return append(ops,
		operation.Set{Key: operation.CurrentRound, Value: RoundShowdown.String()},
		operation.Set{Key: operation.PlayersInHand, Value: m.next.PlayersInHand},
		operation.Set{Key: operation.PlayerBets, Value: m.next.PlayerBets},
		operation.Set{Key: operation.Pots, Value: m.next.Pots},
	)
}

// firstToAct returns the first seat after the dealer that can act in a new betting round
func (m *move) firstToAct() Seat {
	n := m.next.NumberOfPlayers
	for i := 1; i <= n; i++ {
		seat := Seat(i % n)
		if m.next.IsInHand(seat) && m.next.PlayerChips[seat] > 0 {
			return seat
		}
	}

	panic("there is no player left to act")
}

// boardReveals returns the board slots opened when the hand moves from the prior round to round
func (m *move) boardReveals(round Round) []int {
	board := m.prior.Board
	slots := make([]int, 0, len(board))
	for r := m.prior.Round.Next(); r <= round && r <= RoundRiver; r++ {
		switch r {
		case RoundFlop:
			slots = append(slots, board[0:3]...)
		case RoundTurn:
			slots = append(slots, board[3])
		case RoundRiver:
			slots = append(slots, board[4])
		}
	}

	return slots
}

func indexOf(seats []Seat, seat Seat) int {
	for i, s := range seats {
		if s == seat {
			return i
		}
	}

	panic(seat.String() + " is not in the hand")
}
