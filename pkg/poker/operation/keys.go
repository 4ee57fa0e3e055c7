package operation

import (
	"encoding/json"

	"github.com/pkg/errors"

	"peerholdem/pkg/deck"
	"peerholdem/pkg/poker/potmanager"
)

// state keys
const (
	PreviousMove      = "previousMove"
	PreviousMoveAllIn = "previousMoveAllIn"
	NumberOfPlayers   = "numberOfPlayers"
	WhoseMove         = "whoseMove"
	CurrentBetter     = "currentBetter"
	CurrentRound      = "currentRound"
	PlayersInHand     = "playersInHand"
	Board             = "board"
	HoleCards         = "holeCards"
	PlayerBets        = "playerBets"
	PlayerChips       = "playerChips"
	Pots              = "pots"
)

// ErrUnknownKey is returned when a value is decoded for a key outside of the state vocabulary
var ErrUnknownKey = errors.New("unknown state key")

func decodeAs[T any](raw json.RawMessage) (interface{}, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	return v, nil
}

// DecodeValue decodes the JSON value of a state key into the type the engine uses for it:
// strings for moves, rounds and cards, potmanager.Seat for seats, []int for chip lists and
// potmanager.Pots for pots. A hidden card decodes to nil.
func DecodeValue(key string, raw json.RawMessage) (interface{}, error) {
	var v interface{}
	var err error

	switch key {
	case PreviousMove, CurrentRound:
		v, err = decodeAs[string](raw)
	case PreviousMoveAllIn:
		v, err = decodeAs[bool](raw)
	case NumberOfPlayers:
		v, err = decodeAs[int](raw)
	case WhoseMove, CurrentBetter:
		v, err = decodeAs[potmanager.Seat](raw)
	case PlayersInHand:
		v, err = decodeAs[[]potmanager.Seat](raw)
	case Board, PlayerBets, PlayerChips:
		v, err = decodeAs[[]int](raw)
	case HoleCards:
		v, err = decodeAs[[][]int](raw)
	case Pots:
		v, err = decodeAs[potmanager.Pots](raw)
	default:
		if _, ok := deck.SlotFromKey(key); !ok {
			return nil, errors.Wrap(ErrUnknownKey, key)
		}

		if string(raw) == "null" {
			return nil, nil
		}

		v, err = decodeAs[string](raw)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "could not decode %s", key)
	}

	return v, nil
}
