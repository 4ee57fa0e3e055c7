package handanalyzer

import (
	"github.com/paulhankin/poker"

	"peerholdem/pkg/deck"
)

var libSuits = map[deck.Suit]poker.Suit{
	deck.Clubs:    poker.Club,
	deck.Diamonds: poker.Diamond,
	deck.Hearts:   poker.Heart,
	deck.Spades:   poker.Spade,
}

// Describe returns a human-readable description of the hand.
// Ranking never depends on it.
func Describe(cards []*deck.Card) (string, error) {
	libCards := make([]poker.Card, len(cards))
	for i, card := range cards {
		rank := card.Rank
		if rank == deck.Ace {
			rank = deck.LowAce
		}

		c, err := poker.MakeCard(libSuits[card.Suit], poker.Rank(rank))
		if err != nil {
			return "", err
		}

		libCards[i] = c
	}

	return poker.Describe(libCards)
}
