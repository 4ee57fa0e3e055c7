// Package wirestate converts between the key/value snapshot a container keeps for a table and the
// engine's table state.
package wirestate

import (
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"peerholdem/pkg/deck"
	"peerholdem/pkg/poker/operation"
	"peerholdem/pkg/poker/texasholdem"
)

// Snapshot maps a state key to its value, typed the way operation.Set values are
type Snapshot map[string]interface{}

var requiredKeys = []string{
	operation.PreviousMove,
	operation.PreviousMoveAllIn,
	operation.NumberOfPlayers,
	operation.WhoseMove,
	operation.CurrentBetter,
	operation.CurrentRound,
	operation.PlayersInHand,
	operation.Board,
	operation.HoleCards,
	operation.PlayerBets,
	operation.PlayerChips,
	operation.Pots,
}

// UnmarshalJSON decodes every value to the type registered for its key
func (s *Snapshot) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return errors.Wrap(err, "snapshot must be an object")
	}

	snapshot := make(Snapshot, len(raw))
	for key, value := range raw {
		v, err := operation.DecodeValue(key, value)
		if err != nil {
			return err
		}

		snapshot[key] = v
	}

	*s = snapshot
	return nil
}

// Keys returns the keys of the snapshot in sorted order
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of the snapshot
// Values are never modified in place, so they can be shared.
func (s Snapshot) Clone() Snapshot {
	c := make(Snapshot, len(s))
	for key, value := range s {
		c[key] = value
	}

	return c
}

// Decode returns the table state held by the snapshot
// An empty snapshot is a table without a hand and decodes to nil.
func Decode(s Snapshot) (*texasholdem.State, error) {
	if len(s) == 0 {
		return nil, nil
	}

	for _, key := range requiredKeys {
		if _, ok := s[key]; !ok {
			return nil, errors.Errorf("snapshot is missing %s", key)
		}
	}

	keys := s.Keys()
	ops := make(operation.List, len(keys))
	for i, key := range keys {
		ops[i] = operation.Set{Key: key, Value: s[key]}
	}

	state, err := (*texasholdem.State)(nil).Apply(ops)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode snapshot")
	}

	return state, nil
}

// Encode returns the snapshot of a table state
// Hidden card slots are stored as nil.
func Encode(state *texasholdem.State) Snapshot {
	if state == nil {
		return Snapshot{}
	}

	holeCards := make([][]int, len(state.HoleCards))
	for i, hole := range state.HoleCards {
		holeCards[i] = slices.Clone(hole)
	}

	s := Snapshot{
		operation.PreviousMoveAllIn: state.PreviousMoveAllIn,
		operation.NumberOfPlayers:   state.NumberOfPlayers,
		operation.WhoseMove:         state.WhoseMove,
		operation.CurrentBetter:     state.CurrentBetter,
		operation.CurrentRound:      state.Round.String(),
		operation.PlayersInHand:     slices.Clone(state.PlayersInHand),
		operation.Board:             slices.Clone(state.Board),
		operation.HoleCards:         holeCards,
		operation.PlayerBets:        slices.Clone(state.PlayerBets),
		operation.PlayerChips:       slices.Clone(state.PlayerChips),
		operation.Pots:              state.Pots.Clone(),
	}

	if state.PreviousMove != "" {
		s[operation.PreviousMove] = string(state.PreviousMove)
	}

	for slot, card := range state.Cards {
		if card == nil {
			s[deck.SlotKey(slot)] = nil
			continue
		}

		s[deck.SlotKey(slot)] = deck.CardToString(card)
	}

	return s
}

// Apply returns a copy of the snapshot with the Set operations of ops applied
// Turn, visibility, shuffle and token operations are carried out by the container and are skipped.
func Apply(s Snapshot, ops operation.List) Snapshot {
	c := s.Clone()
	for _, op := range ops {
		if set, ok := op.(operation.Set); ok {
			c[set.Key] = set.Value
		}
	}

	return c
}
