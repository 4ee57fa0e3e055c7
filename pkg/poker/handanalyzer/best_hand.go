package handanalyzer

import (
	"errors"
	"fmt"

	"peerholdem/pkg/deck"
)

// errors returned by BestHand
var (
	ErrInvalidBoard = errors.New("the board must be exactly five cards")
	ErrInvalidHole  = errors.New("hole cards must be exactly two cards")
)

const (
	boardSize = 5
	holeSize  = 2
)

// BestHand returns the best five-card hand that can be made from the board and hole cards.
// Every one of the 21 possible hands is evaluated.
func BestHand(board, hole []*deck.Card) (*HandAnalyzer, error) {
	if len(board) != boardSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBoard, len(board))
	}

	if len(hole) != holeSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHole, len(hole))
	}

	cards := make(deck.Hand, 0, boardSize+holeSize)
	cards = append(cards, board...)
	cards = append(cards, hole...)

	var best *HandAnalyzer
	err := eachHand(cards, 0, make(deck.Hand, 0, handSize), func(hand deck.Hand) error {
		h, err := New(hand)
		if err != nil {
			return err
		}

		if best == nil || h.Compare(best) > 0 {
			best = h
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return best, nil
}

// eachHand calls fn with every combination of five cards chosen from cards[start:]
func eachHand(cards deck.Hand, start int, chosen deck.Hand, fn func(deck.Hand) error) error {
	if len(chosen) == handSize {
		return fn(chosen.Clone())
	}

	for i := start; i <= len(cards)-(handSize-len(chosen)); i++ {
		if err := eachHand(cards, i+1, append(chosen, cards[i]), fn); err != nil {
			return err
		}
	}

	return nil
}
