package texasholdem

import (
	"encoding/json"
	"fmt"
)

// Round is the stage of a hand
type Round int

// constants for Round
const (
	RoundPreFlop Round = iota
	RoundFlop
	RoundTurn
	RoundRiver
	RoundShowdown
	RoundEndGame
)

func (r Round) String() string {
	switch r {
	case RoundPreFlop:
		return "PRE_FLOP"
	case RoundFlop:
		return "FLOP"
	case RoundTurn:
		return "TURN"
	case RoundRiver:
		return "RIVER"
	case RoundShowdown:
		return "SHOWDOWN"
	case RoundEndGame:
		return "END_GAME"
	}

	return ""
}

// RoundFromString returns the round for its wire name (e.g., PRE_FLOP)
func RoundFromString(s string) (Round, error) {
	for r := RoundPreFlop; r <= RoundEndGame; r++ {
		if r.String() == s {
			return r, nil
		}
	}

	return 0, fmt.Errorf("unknown round: %q", s)
}

// Next returns the round that follows r
// END_GAME is followed by a new hand, so it returns PRE_FLOP
func (r Round) Next() Round {
	if r >= RoundEndGame {
		return RoundPreFlop
	}

	return r + 1
}

// IsBetting returns true if players make betting moves during the round
func (r Round) IsBetting() bool {
	return r >= RoundPreFlop && r <= RoundRiver
}

// MarshalJSON encodes JSON
func (r Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(r),
		Name: r.String(),
	})
}
