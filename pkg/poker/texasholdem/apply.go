package texasholdem

import (
	"fmt"

	"golang.org/x/exp/slices"

	"peerholdem/pkg/deck"
	"peerholdem/pkg/poker/action"
	"peerholdem/pkg/poker/operation"
	"peerholdem/pkg/poker/potmanager"
)

// Apply returns the state after the Set operations of ops
// Other operations are handled by the container and are skipped. A nil state is the empty table.
func (s *State) Apply(ops operation.List) (*State, error) {
	next := &State{}
	if s != nil {
		next = s.Clone()
	}

	for _, op := range ops {
		set, ok := op.(operation.Set)
		if !ok {
			continue
		}

		if err := next.set(set.Key, set.Value); err != nil {
			return nil, err
		}
	}

	return next, nil
}

func (s *State) set(key string, value interface{}) error {
	ok := true
	switch key {
	case operation.PreviousMove:
		var tag string
		if tag, ok = value.(string); ok {
			a, err := action.FromString(tag)
			if err != nil {
				return err
			}

			s.PreviousMove = a
		}
	case operation.PreviousMoveAllIn:
		s.PreviousMoveAllIn, ok = value.(bool)
	case operation.NumberOfPlayers:
		s.NumberOfPlayers, ok = value.(int)
	case operation.WhoseMove:
		s.WhoseMove, ok = value.(Seat)
	case operation.CurrentBetter:
		s.CurrentBetter, ok = value.(Seat)
	case operation.CurrentRound:
		var name string
		if name, ok = value.(string); ok {
			r, err := RoundFromString(name)
			if err != nil {
				return err
			}

			s.Round = r
		}
	case operation.PlayersInHand:
		var seats []Seat
		seats, ok = value.([]Seat)
		s.PlayersInHand = slices.Clone(seats)
	case operation.Board:
		var board []int
		board, ok = value.([]int)
		s.Board = slices.Clone(board)
	case operation.HoleCards:
		var holeCards [][]int
		if holeCards, ok = value.([][]int); ok {
			s.HoleCards = make([][]int, len(holeCards))
			for i, hole := range holeCards {
				s.HoleCards[i] = slices.Clone(hole)
			}
		}
	case operation.PlayerBets:
		var bets []int
		bets, ok = value.([]int)
		s.PlayerBets = slices.Clone(bets)
	case operation.PlayerChips:
		var chips []int
		chips, ok = value.([]int)
		s.PlayerChips = slices.Clone(chips)
	case operation.Pots:
		var pots potmanager.Pots
		pots, ok = value.(potmanager.Pots)
		s.Pots = pots.Clone()
	default:
		slot, isSlot := deck.SlotFromKey(key)
		if !isSlot {
			return fmt.Errorf("%w: %s", operation.ErrUnknownKey, key)
		}

		if value == nil {
			s.Cards[slot] = nil
			return nil
		}

		var str string
		if str, ok = value.(string); ok {
			card, err := deck.ParseCard(str)
			if err != nil {
				return err
			}

			s.Cards[slot] = card
		}
	}

	if !ok {
		return fmt.Errorf("unexpected value for %s: %T", key, value)
	}

	return nil
}
