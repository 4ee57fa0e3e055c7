package texasholdem

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"peerholdem/pkg/poker/handanalyzer"
	"peerholdem/pkg/poker/operation"
	"peerholdem/pkg/poker/potmanager"
)

// EndGame returns the operations that pay out every pot at showdown
func (l *Logic) EndGame(state *State, playerIDs []int64) (operation.List, error) {
	if state == nil {
		return nil, newRuleViolation("the hand has not started")
	}

	if err := state.validate(); err != nil {
		return nil, err
	}

	if len(playerIDs) != state.NumberOfPlayers {
		return nil, malformed("%d player ids for %d players", len(playerIDs), state.NumberOfPlayers)
	}

	if state.Round != RoundShowdown {
		return nil, newRuleViolation("cannot end the game during %s", state.Round)
	}

	hands, err := l.bestHands(state)
	if err != nil {
		return nil, err
	}

	if len(hands) > 0 {
		descriptions, err := state.DescribeHands()
		if err != nil {
			return nil, err
		}

		l.logger.WithField("hands", descriptions).Debug("showdown")
	}

	stacks := slices.Clone(state.PlayerChips)
	won := make([]bool, state.NumberOfPlayers)
	for i, pot := range state.Pots {
		if pot.Chips == 0 {
			continue
		}

		winners := potWinners(state, pot, hands)
		share := pot.Chips / len(winners)
		for j, seat := range winners {
			amount := share
			if j == len(winners)-1 {
				amount = pot.Chips - share*(len(winners)-1)
			}

			stacks[seat] += amount
			won[seat] = won[seat] || amount > 0
		}

		l.logger.WithFields(logrus.Fields{
			"pot":     i,
			"chips":   pot.Chips,
			"winners": winners,
		}).Debug("pot paid out")
	}

	potmanager.CheckConservation(state.totalChips(), sumOf(stacks))

	tokens := make(map[int64]int, len(playerIDs))
	potTokens := make(map[int64]int, len(playerIDs))
	scores := make(map[int64]int, len(playerIDs))
	for seat, id := range playerIDs {
		tokens[id] = stacks[seat]
		potTokens[id] = 0
		if won[seat] {
			scores[id] = 1
		} else {
			scores[id] = 0
		}
	}

	return operation.List{
		operation.AttemptChangeTokens{
			PlayerIDToTokens:    tokens,
			PlayerIDToPotTokens: potTokens,
		},
		operation.EndGame{PlayerIDToScore: scores},
	}, nil
}

// bestHands evaluates the best hand of every player in the hand
// A player left alone in the hand wins without showing, so nothing is evaluated.
func (l *Logic) bestHands(state *State) (map[Seat]*handanalyzer.HandAnalyzer, error) {
	hands := make(map[Seat]*handanalyzer.HandAnalyzer, len(state.PlayersInHand))
	if len(state.PlayersInHand) == 1 {
		return hands, nil
	}

	board, err := state.cardsOf(state.Board)
	if err != nil {
		return nil, err
	}

	for _, seat := range state.PlayersInHand {
		hole, err := state.cardsOf(state.HoleCards[seat])
		if err != nil {
			return nil, err
		}

		hand, err := handanalyzer.BestHand(board, hole)
		if err != nil {
			return nil, err
		}

		hands[seat] = hand
	}

	return hands, nil
}

// DescribeHands returns a short description of the best hand of every player in the hand (e.g., KKKK-Q)
// The board and the hole cards of those players must be visible.
func (s *State) DescribeHands() (map[Seat]string, error) {
	board, err := s.cardsOf(s.Board)
	if err != nil {
		return nil, err
	}

	descriptions := make(map[Seat]string, len(s.PlayersInHand))
	for _, seat := range s.PlayersInHand {
		hole, err := s.cardsOf(s.HoleCards[seat])
		if err != nil {
			return nil, err
		}

		description, err := handanalyzer.Describe(append(slices.Clone(board), hole...))
		if err != nil {
			return nil, fmt.Errorf("could not describe the hand of %s: %w", seat, err)
		}

		descriptions[seat] = description
	}

	return descriptions, nil
}

// potWinners returns the seats with the best hand among those eligible for the pot, in seat order
func potWinners(state *State, pot *potmanager.Pot, hands map[Seat]*handanalyzer.HandAnalyzer) []Seat {
	eligible := make([]Seat, 0, len(pot.Players))
	for _, seat := range pot.Players {
		if state.IsInHand(seat) {
			eligible = append(eligible, seat)
		}
	}

	if len(eligible) == 0 {
		eligible = state.PlayersInHand
	}

	if len(eligible) == 1 || len(hands) == 0 {
		return eligible[:1]
	}

	var winners []Seat
	var best *handanalyzer.HandAnalyzer
	for _, seat := range eligible {
		hand := hands[seat]
		switch {
		case best == nil || hand.Compare(best) > 0:
			best = hand
			winners = []Seat{seat}
		case hand.Compare(best) == 0:
			winners = append(winners, seat)
		}
	}

	return winners
}

func sumOf(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}

	return total
}
