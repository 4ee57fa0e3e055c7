package texasholdem

import (
	"github.com/mitchellh/hashstructure/v2"
	"golang.org/x/exp/slices"

	"peerholdem/pkg/deck"
	"peerholdem/pkg/poker/action"
	"peerholdem/pkg/poker/potmanager"
)

// MinPlayers and MaxPlayers bound the size of a table
const (
	MinPlayers = 2
	MaxPlayers = 9
)

// Seat is a position at the table
type Seat = potmanager.Seat

// State is the table state of a hand as seen by one observer
type State struct {
	NumberOfPlayers   int
	Round             Round
	PreviousMove      action.Action
	PreviousMoveAllIn bool
	WhoseMove         Seat
	CurrentBetter     Seat

	// Cards holds the card of every deck slot; nil if the slot is hidden from the observer
	Cards [deck.Size]*deck.Card

	PlayersInHand []Seat
	HoleCards     [][]int
	Board         []int

	PlayerBets  []int
	PlayerChips []int
	Pots        potmanager.Pots
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	c := *s
	for i, card := range s.Cards {
		if card != nil {
			c.Cards[i] = card.Clone()
		}
	}

	c.PlayersInHand = slices.Clone(s.PlayersInHand)
	c.HoleCards = make([][]int, len(s.HoleCards))
	for i, hole := range s.HoleCards {
		c.HoleCards[i] = slices.Clone(hole)
	}

	c.Board = slices.Clone(s.Board)
	c.PlayerBets = slices.Clone(s.PlayerBets)
	c.PlayerChips = slices.Clone(s.PlayerChips)
	c.Pots = s.Pots.Clone()

	return &c
}

// Digest returns a fingerprint of the state
func (s *State) Digest() uint64 {
	if s == nil {
		return 0
	}

	hash, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	if err != nil {
		panic(err)
	}

	return hash
}

// RequiredBet is what every player must have bet this round to stay in the hand
func (s *State) RequiredBet() int {
	return s.Pots.RequiredBet()
}

// Outstanding returns what the seat still has to put in to call
func (s *State) Outstanding(seat Seat) int {
	return s.RequiredBet() - s.PlayerBets[seat]
}

// IsInHand returns true if the seat has not folded
func (s *State) IsInHand(seat Seat) bool {
	_, found := slices.BinarySearch(s.PlayersInHand, seat)
	return found
}

// IsAllIn returns true if the seat is in the hand with no chips left
func (s *State) IsAllIn(seat Seat) bool {
	return s.IsInHand(seat) && s.PlayerChips[seat] == 0
}

// activePlayers returns the seats in the hand that can still make a move
func (s *State) activePlayers() []Seat {
	seats := make([]Seat, 0, len(s.PlayersInHand))
	for _, seat := range s.PlayersInHand {
		if s.PlayerChips[seat] > 0 {
			seats = append(seats, seat)
		}
	}

	return seats
}

// totalChips returns the chips on the table: every pot plus every stack
func (s *State) totalChips() int {
	total := s.Pots.Total()
	for _, chips := range s.PlayerChips {
		total += chips
	}

	return total
}

func (s *State) validSeat(seat Seat) bool {
	return seat >= 0 && int(seat) < s.NumberOfPlayers
}

// validate returns ErrMalformedState if the parts of the state do not fit together
func (s *State) validate() error {
	n := s.NumberOfPlayers
	if n < MinPlayers || n > MaxPlayers {
		return malformed("%d players", n)
	}

	if len(s.PlayerBets) != n || len(s.PlayerChips) != n || len(s.HoleCards) != n {
		return malformed("player lists do not match %d players", n)
	}

	if len(s.Board) != 5 {
		return malformed("the board must hold 5 slots")
	}

	for _, hole := range s.HoleCards {
		if len(hole) != 2 {
			return malformed("every player must hold 2 hole slots")
		}
	}

	if !s.validSeat(s.WhoseMove) || !s.validSeat(s.CurrentBetter) {
		return malformed("seat out of range")
	}

	if len(s.PlayersInHand) == 0 || !slices.IsSorted(s.PlayersInHand) {
		return malformed("players in hand must be a sorted, non-empty list")
	}

	for _, seat := range s.PlayersInHand {
		if !s.validSeat(seat) {
			return malformed("%s is not at the table", seat)
		}
	}

	if len(s.Pots) == 0 {
		return malformed("there are no pots")
	}

	for _, pot := range s.Pots {
		if len(pot.PlayerBets) != n {
			return malformed("pot bets do not match %d players", n)
		}
	}

	for seat := 0; seat < n; seat++ {
		if s.PlayerChips[seat] < 0 || s.PlayerBets[seat] < 0 {
			return malformed("%s has a negative stack or bet", Seat(seat))
		}
	}

	return nil
}

// checkTransition panics if next is not a valid successor of s
func (s *State) checkTransition(next *State) {
	potmanager.CheckConservation(s.totalChips(), next.totalChips())
	next.Pots.CheckBets(next.PlayerBets)

	for seat, chips := range next.PlayerChips {
		if chips < 0 {
			panic(Seat(seat).String() + " has a negative stack")
		}
	}

	for _, pot := range next.Pots {
		if pot.Chips < 0 {
			panic("pot has a negative amount of chips")
		}
	}
}

// cardsOf returns the cards in the slots; an error is returned if any is hidden
func (s *State) cardsOf(slots []int) ([]*deck.Card, error) {
	cards := make([]*deck.Card, len(slots))
	for i, slot := range slots {
		if slot < 0 || slot >= deck.Size || s.Cards[slot] == nil {
			return nil, malformed("card %s is not visible", deck.SlotKey(slot))
		}

		cards[i] = s.Cards[slot]
	}

	return cards, nil
}
