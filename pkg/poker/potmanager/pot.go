package potmanager

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"
)

// Pot is a pot of chips and the players eligible to win it
type Pot struct {
	// Chips includes chips collected in previous betting rounds
	Chips int `json:"chips"`
	// RequiredBet is what each player must put into this pot during the current round
	RequiredBet int `json:"currentPotBet"`
	// Players are the seats eligible to win the pot, in seat order
	Players []Seat `json:"playersInPot"`
	// PlayerBets is what each seat put into this pot during the current round
	PlayerBets []int `json:"playerBets"`
}

// NewPot returns a pot with no chips for n seats
func NewPot(players []Seat, n int) *Pot {
	p := &Pot{
		Players:    make([]Seat, 0, len(players)),
		PlayerBets: make([]int, n),
	}

	for _, seat := range players {
		p.addPlayer(seat)
	}

	return p
}

// Clone returns a deep copy of the pot
func (p *Pot) Clone() *Pot {
	return &Pot{
		Chips:       p.Chips,
		RequiredBet: p.RequiredBet,
		Players:     slices.Clone(p.Players),
		PlayerBets:  slices.Clone(p.PlayerBets),
	}
}

// HasPlayer returns true if the seat is eligible to win the pot
func (p *Pot) HasPlayer(seat Seat) bool {
	_, found := slices.BinarySearch(p.Players, seat)
	return found
}

func (p *Pot) addPlayer(seat Seat) {
	i, found := slices.BinarySearch(p.Players, seat)
	if !found {
		p.Players = slices.Insert(p.Players, i, seat)
	}
}

func (p *Pot) removePlayer(seat Seat) {
	if i, found := slices.BinarySearch(p.Players, seat); found {
		p.Players = slices.Delete(p.Players, i, i+1)
	}
}

// betTotal returns the chips put into the pot during the current round
func (p *Pot) betTotal() int {
	total := 0
	for _, bet := range p.PlayerBets {
		total += bet
	}

	return total
}

// topUp makes the seat match the required bet of the pot
func (p *Pot) topUp(seat Seat) int {
	shortfall := p.RequiredBet - p.PlayerBets[seat]
	if shortfall < 0 {
		panic(fmt.Sprintf("%s bet more than the required bet of the pot", seat))
	}

	p.Chips += shortfall
	p.PlayerBets[seat] = p.RequiredBet
	p.addPlayer(seat)

	return shortfall
}

// split divides the pot at the level the seat can afford with amount more chips.
// The lower pot keeps chips carried from earlier rounds; the seat is not eligible for the upper pot.
func (p *Pot) split(seat Seat, amount int) (*Pot, *Pot) {
	carried := p.Chips - p.betTotal()
	if carried < 0 {
		panic(fmt.Sprintf("pot holds %d chips but %d were bet into it", p.Chips, p.betTotal()))
	}

	cap1 := p.PlayerBets[seat] + amount
	lower := &Pot{
		RequiredBet: cap1,
		Players:     slices.Clone(p.Players),
		PlayerBets:  make([]int, len(p.PlayerBets)),
	}
	lower.addPlayer(seat)

	upper := &Pot{
		RequiredBet: p.RequiredBet - cap1,
		Players:     slices.Clone(p.Players),
		PlayerBets:  make([]int, len(p.PlayerBets)),
	}
	upper.removePlayer(seat)

	for i, bet := range p.PlayerBets {
		if Seat(i) == seat {
			bet = cap1
		}

		if bet > cap1 {
			lower.PlayerBets[i] = cap1
			upper.PlayerBets[i] = bet - cap1
		} else {
			lower.PlayerBets[i] = bet
		}
	}

	lower.Chips = carried + lower.betTotal()
	upper.Chips = upper.betTotal()

	if lower.Chips+upper.Chips != p.Chips+amount {
		panic(fmt.Sprintf("invalid pot split: %d + %d != %d + %d", lower.Chips, upper.Chips, p.Chips, amount))
	}

	return lower, upper
}

type potJSON Pot

// MarshalJSON always writes lists, never null
func (p Pot) MarshalJSON() ([]byte, error) {
	if p.Players == nil {
		p.Players = []Seat{}
	}

	if p.PlayerBets == nil {
		p.PlayerBets = []int{}
	}

	return json.Marshal(potJSON(p))
}
