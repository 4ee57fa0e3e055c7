package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits is the logical suit order used to map deck slots to cards
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// Letter returns the single lowercase letter for the suit
func (s Suit) Letter() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	}

	return ""
}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack   = 11
	Queen  = 12
	King   = 13
	Ace    = 14
	LowAce = 1
)

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Clone returns a copy of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4]|[akqjt])([cdhs])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 2..14 or one of A, K, Q, J, T
// and suit is one of c, d, h, s
func ParseCard(s string) (*Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank int
	switch strings.ToUpper(match[1]) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T":
		rank = 10
	default:
		// the regexp only allows digits here
		rank, _ = strconv.Atoi(match[1])
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return &Card{Rank: rank, Suit: suit}, nil
}

// CardFromString is like ParseCard but panics on malformed input.
// It is meant for tests and constants.
func CardFromString(s string) *Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// CardsFromString will return a slice of cards from a comma separated list
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	return fmt.Sprintf("%d%s", card.Rank, card.Suit.Letter())
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
