package handanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"peerholdem/pkg/deck"
)

func TestBestHand(t *testing.T) {
	a := assert.New(t)

	board := deck.CardsFromString("10c,11c,12c,13c,2h")
	hole := deck.CardsFromString("14c,3d")

	best, err := BestHand(board, hole)
	a.NoError(err)
	a.Equal(StraightFlush, best.GetHand())
	a.Equal(Ranking{8, 14}, best.Ranking())
	a.Equal("14c,13c,12c,11c,10c", best.Cards().String())
}

func TestBestHand_boardPlays(t *testing.T) {
	a := assert.New(t)

	best, err := BestHand(deck.CardsFromString("Kd,Kc,Qs,Qh,Qd"), deck.CardsFromString("As,Ah"))
	a.NoError(err)
	a.Equal(Ranking{6, 12, 14}, best.Ranking())

	best, err = BestHand(deck.CardsFromString("Kd,Kc,Qs,Qh,Qd"), deck.CardsFromString("Ks,Kh"))
	a.NoError(err)
	a.Equal(Ranking{7, 13, 12}, best.Ranking())
}

func TestBestHand_invalid(t *testing.T) {
	a := assert.New(t)

	_, err := BestHand(deck.CardsFromString("2c,3c,4c,5c"), deck.CardsFromString("As,Ah"))
	a.ErrorIs(err, ErrInvalidBoard)

	_, err = BestHand(deck.CardsFromString("2c,3c,4c,5c,7d"), deck.CardsFromString("As"))
	a.ErrorIs(err, ErrInvalidHole)

	_, err = BestHand(deck.CardsFromString("2c,3c,4c,5c,7d"), deck.CardsFromString("As,2c"))
	a.ErrorIs(err, ErrInvalidHand)
}
