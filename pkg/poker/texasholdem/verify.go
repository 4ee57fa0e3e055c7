package texasholdem

import (
	"errors"

	"github.com/sirupsen/logrus"

	"peerholdem/pkg/poker/action"
	"peerholdem/pkg/poker/operation"
)

// VerifyRequest is a move claimed by a player, together with the state it was made from
type VerifyRequest struct {
	// LastState is the state before the move; nil before the first move of a hand
	LastState   *State
	LastMove    operation.List
	PlayerIDs   []int64
	ActorID     int64
	TokensInPot map[int64]int
}

// Rejected explains why a claimed move was not accepted
type Rejected struct {
	PlayerID int64  `json:"playerId"`
	Reason   string `json:"reason"`
}

// Result is the outcome of verifying a move
type Result struct {
	Accepted bool      `json:"accepted"`
	Rejected *Rejected `json:"rejected,omitempty"`
	// Digest is the fingerprint of the state the move was made from
	Digest uint64 `json:"digest,string"`
}

// Verify recomputes the operations of the claimed move and compares them with the claim
// A move that breaks the rules is rejected; an error is only returned for malformed input.
func (l *Logic) Verify(req VerifyRequest) (*Result, error) {
	result := &Result{Digest: req.LastState.Digest()}

	expected, err := l.expectedMove(req)
	if err != nil {
		var violation RuleViolation
		if !errors.As(err, &violation) {
			return nil, err
		}

		return l.reject(result, req, violation.Error()), nil
	}

	if diff := operation.Diff(expected, req.LastMove); diff != "" {
		return l.reject(result, req, "claimed operations do not match the move (-expected +claimed):\n"+diff), nil
	}

	result.Accepted = true
	return result, nil
}

func (l *Logic) reject(result *Result, req VerifyRequest, reason string) *Result {
	l.logger.WithFields(logrus.Fields{
		"actor":  req.ActorID,
		"reason": reason,
		"digest": result.Digest,
	}).Debug("move rejected")

	result.Rejected = &Rejected{
		PlayerID: req.ActorID,
		Reason:   reason,
	}

	return result
}

// expectedMove returns the operations the claimed move should have produced
func (l *Logic) expectedMove(req VerifyRequest) (operation.List, error) {
	if len(req.LastMove) == 0 {
		return nil, newRuleViolation("the move has no operations")
	}

	state := req.LastState
	if state == nil {
		if _, ok := req.LastMove[0].(operation.AttemptChangeTokens); ok {
			amount, ok := req.TokensInPot[req.ActorID]
			if !ok {
				return nil, newRuleViolation("player %d has no tokens in the pot", req.ActorID)
			}

			return l.BuyIn(req.ActorID, amount)
		}

		if len(req.PlayerIDs) == 0 || req.PlayerIDs[0] != req.ActorID {
			return nil, newRuleViolation("the hand must be dealt by the first player")
		}

		return l.InitialMove(req.PlayerIDs, req.TokensInPot)
	}

	if len(req.PlayerIDs) != state.NumberOfPlayers || !state.validSeat(state.WhoseMove) {
		return nil, malformed("%d player ids for %d players", len(req.PlayerIDs), state.NumberOfPlayers)
	}

	if id := req.PlayerIDs[state.WhoseMove]; id != req.ActorID {
		return nil, newRuleViolation("it is player %d's turn, not %d's", id, req.ActorID)
	}

	if req.LastMove.Has(operation.KindEndGame) {
		return l.EndGame(state, req.PlayerIDs)
	}

	set, ok := req.LastMove.FindSet(operation.PreviousMove)
	if !ok {
		return nil, newRuleViolation("the move does not set %s", operation.PreviousMove)
	}

	tag, _ := set.Value.(string)
	a, err := action.FromString(tag)
	if err != nil {
		return nil, newRuleViolation("%s", err.Error())
	}

	amount, err := claimedMoveAmount(state, req.LastMove, a)
	if err != nil {
		return nil, err
	}

	return l.Move(state, req.PlayerIDs, a, amount)
}

// claimedMoveAmount derives the amount of a betting move from the chip lists the claim sets
func claimedMoveAmount(state *State, ops operation.List, a action.Action) (int, error) {
	actor := state.WhoseMove
	switch a {
	case action.Call:
		chips, err := claimedAmount(ops, operation.PlayerChips, actor)
		if err != nil {
			return 0, err
		}

		return state.PlayerChips[actor] - chips, nil
	case action.Bet:
		return claimedAmount(ops, operation.PlayerBets, actor)
	case action.Raise:
		bet, err := claimedAmount(ops, operation.PlayerBets, actor)
		if err != nil {
			return 0, err
		}

		return bet - state.PlayerBets[actor], nil
	}

	return 0, nil
}

// claimedAmount returns the seat's entry of a chip list set by the claim
func claimedAmount(ops operation.List, key string, seat Seat) (int, error) {
	set, ok := ops.FindSet(key)
	if !ok {
		return 0, newRuleViolation("the move does not set %s", key)
	}

	values, ok := set.Value.([]int)
	if !ok || int(seat) >= len(values) {
		return 0, newRuleViolation("the move sets an invalid %s", key)
	}

	return values[seat], nil
}
