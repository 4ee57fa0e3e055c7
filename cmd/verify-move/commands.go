package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"peerholdem/pkg/poker/operation"
	"peerholdem/pkg/poker/texasholdem"
	"peerholdem/pkg/poker/wirestate"
)

// VerifyCmd verifies one claimed move
type VerifyCmd struct {
	File string `arg:"" optional:"" default:"-" help:"Verify request JSON (- for stdin)"`
}

type verifyRequest struct {
	LastState   wirestate.Snapshot `json:"lastState"`
	LastMove    operation.List     `json:"lastMove"`
	PlayerIDs   []int64            `json:"playerIds"`
	ActorID     int64              `json:"actorId"`
	TokensInPot map[int64]int      `json:"tokensInPot"`
}

// Run implements the verify command
func (c *VerifyCmd) Run(logic *texasholdem.Logic) error {
	var req verifyRequest
	if err := readJSON(c.File, &req); err != nil {
		return err
	}

	state, err := wirestate.Decode(req.LastState)
	if err != nil {
		return err
	}

	result, err := logic.Verify(texasholdem.VerifyRequest{
		LastState:   state,
		LastMove:    req.LastMove,
		PlayerIDs:   req.PlayerIDs,
		ActorID:     req.ActorID,
		TokensInPot: req.TokensInPot,
	})
	if err != nil {
		return errors.Wrap(err, "could not verify move")
	}

	if err := writeJSON(os.Stdout, result); err != nil {
		return err
	}

	if !result.Accepted {
		return errors.Errorf("move rejected: %s", result.Rejected.Reason)
	}

	return nil
}

// InitialCmd prints the operations of the first move of a hand
type InitialCmd struct {
	PlayerIDs []int64 `name:"player" short:"p" required:"" help:"Player ids in seat order (repeatable)"`
	Chips     []int   `name:"chips" short:"c" required:"" help:"Starting chips of each player, in seat order"`
}

// Run implements the initial command
func (c *InitialCmd) Run(logic *texasholdem.Logic) error {
	if len(c.PlayerIDs) != len(c.Chips) {
		return errors.Errorf("%d players but %d stacks", len(c.PlayerIDs), len(c.Chips))
	}

	chips := make(map[int64]int, len(c.PlayerIDs))
	for i, id := range c.PlayerIDs {
		chips[id] = c.Chips[i]
	}

	ops, err := logic.InitialMove(c.PlayerIDs, chips)
	if err != nil {
		return err
	}

	return writeJSON(os.Stdout, ops)
}

// ReplayCmd verifies a hand history move by move
type ReplayCmd struct {
	File   string `arg:"" optional:"" default:"-" help:"Hand history JSON (- for stdin)"`
	Digest bool   `help:"Print the digest of each state instead of the final state"`
}

type historyMove struct {
	ActorID    int64          `json:"actorId"`
	Operations operation.List `json:"operations"`
}

type history struct {
	PlayerIDs   []int64       `json:"playerIds"`
	TokensInPot map[int64]int `json:"tokensInPot"`
	Moves       []historyMove `json:"moves"`
}

// Run implements the replay command
func (c *ReplayCmd) Run(logic *texasholdem.Logic) error {
	var h history
	if err := readJSON(c.File, &h); err != nil {
		return err
	}

	snapshot, digests, err := replay(logic, h)
	if err != nil {
		return err
	}

	if c.Digest {
		for i, digest := range digests {
			fmt.Printf("%d\t%d\n", i, digest)
		}

		return nil
	}

	state, err := wirestate.Decode(snapshot)
	if err != nil {
		return err
	}

	hands, err := showdownHands(state, h.PlayerIDs)
	if err != nil {
		return err
	}

	return writeJSON(os.Stdout, replayResult{State: state, Hands: hands})
}

type replayResult struct {
	State *texasholdem.State `json:"state"`
	Hands map[int64]string   `json:"hands,omitempty"`
}

// showdownHands describes the hand of every player still in a hand that reached a contested showdown
func showdownHands(state *texasholdem.State, playerIDs []int64) (map[int64]string, error) {
	if state == nil || state.Round != texasholdem.RoundShowdown || len(state.PlayersInHand) < 2 {
		return nil, nil
	}

	descriptions, err := state.DescribeHands()
	if err != nil {
		return nil, errors.Wrap(err, "could not describe hands")
	}

	hands := make(map[int64]string, len(descriptions))
	for seat, description := range descriptions {
		hands[playerIDs[seat]] = description
	}

	return hands, nil
}

// replay verifies and applies each move in order.
// It returns the final snapshot and the digest of the state after every move.
func replay(logic *texasholdem.Logic, h history) (wirestate.Snapshot, []uint64, error) {
	snapshot := wirestate.Snapshot{}
	digests := make([]uint64, 0, len(h.Moves))

	for i, move := range h.Moves {
		state, err := wirestate.Decode(snapshot)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "move %d", i)
		}

		result, err := logic.Verify(texasholdem.VerifyRequest{
			LastState:   state,
			LastMove:    move.Operations,
			PlayerIDs:   h.PlayerIDs,
			ActorID:     move.ActorID,
			TokensInPot: h.TokensInPot,
		})
		if err != nil {
			return nil, nil, errors.Wrapf(err, "move %d", i)
		}

		if !result.Accepted {
			return nil, nil, errors.Errorf("move %d by player %d rejected: %s", i, move.ActorID, result.Rejected.Reason)
		}

		snapshot = wirestate.Apply(snapshot, move.Operations)

		next, err := wirestate.Decode(snapshot)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "move %d", i)
		}

		digests = append(digests, next.Digest())
	}

	return snapshot, digests, nil
}

func readJSON(filename string, v interface{}) error {
	var r io.Reader = os.Stdin
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return errors.Wrap(err, "could not open input")
		}
		defer f.Close()

		r = f
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return errors.Wrap(err, "could not decode input")
	}

	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(v), "could not encode output")
}
