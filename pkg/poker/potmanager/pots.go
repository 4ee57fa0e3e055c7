package potmanager

import (
	"fmt"
)

// Pots is an ordered list of pots, oldest (smallest required bet) first
type Pots []*Pot

// Total returns the combined chips of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Chips
	}

	return total
}

// RequiredBet returns what a player must have bet this round to stay in every pot
func (p Pots) RequiredBet() int {
	total := 0
	for _, pot := range p {
		total += pot.RequiredBet
	}

	return total
}

// BetOf returns what the seat put into the pots this round
func (p Pots) BetOf(seat Seat) int {
	total := 0
	for _, pot := range p {
		total += pot.PlayerBets[seat]
	}

	return total
}

// Clone returns a deep copy of the pots
func (p Pots) Clone() Pots {
	c := make(Pots, len(p))
	for i, pot := range p {
		c[i] = pot.Clone()
	}

	return c
}

func (p Pots) last() *Pot {
	if len(p) == 0 {
		panic("there are no pots")
	}

	return p[len(p)-1]
}

// sealed appends an empty pot the all-in seat is not eligible for, unless the last pot already excludes it
func (p Pots) sealed(seat Seat, n int) Pots {
	last := p.last()
	if !last.HasPlayer(seat) {
		return p
	}

	pot := NewPot(last.Players, n)
	pot.removePlayer(seat)

	return append(p, pot)
}

// Call returns the pots after the seat matches the required bet of every pot
func (p Pots) Call(seat Seat) Pots {
	pots := p.Clone()
	for _, pot := range pots {
		pot.topUp(seat)
	}

	return pots
}

// CallAllIn returns the pots after the seat calls with the last amount chips it has,
// which may be less than needed.
// Whole pots are matched oldest first; the first pot the seat cannot match is split in two
// and the seat is only eligible for the lower one.
func (p Pots) CallAllIn(seat Seat, amount, n int) Pots {
	pots := make(Pots, 0, len(p)+1)
	remaining := amount
	exhausted := false

	for _, pot := range p.Clone() {
		if exhausted {
			pot.removePlayer(seat)
			pots = append(pots, pot)
			continue
		}

		shortfall := pot.RequiredBet - pot.PlayerBets[seat]
		if remaining >= shortfall {
			remaining -= pot.topUp(seat)
			pots = append(pots, pot)
			exhausted = remaining == 0
			continue
		}

		lower, upper := pot.split(seat, remaining)
		pots = append(pots, lower, upper)
		remaining = 0
		exhausted = true
	}

	if remaining != 0 {
		panic(fmt.Sprintf("%s called %d more than the required bet", seat, remaining))
	}

	return pots.sealed(seat, n)
}

// Bet returns the pots after the seat opens the betting round with amount
// The bet goes into the last pot only.
func (p Pots) Bet(seat Seat, amount int, allIn bool, n int) Pots {
	pots := p.Clone()
	pot := pots.last()
	pot.Chips += amount
	pot.PlayerBets[seat] += amount
	pot.RequiredBet = pot.PlayerBets[seat]
	pot.addPlayer(seat)

	if allIn {
		return pots.sealed(seat, n)
	}

	return pots
}

// Raise returns the pots after the seat matches every pot and raises the last one by raiseBy
func (p Pots) Raise(seat Seat, raiseBy int, allIn bool, n int) Pots {
	pots := p.Clone()
	last := pots.last()
	last.RequiredBet += raiseBy
	for _, pot := range pots {
		pot.topUp(seat)
	}

	if allIn {
		return pots.sealed(seat, n)
	}

	return pots
}

// Fold returns the pots with the seat no longer eligible for any of them
func (p Pots) Fold(seat Seat) Pots {
	pots := p.Clone()
	for _, pot := range pots {
		pot.removePlayer(seat)
	}

	return pots
}

// ResetRound returns the pots at the start of a new betting round
// Chips stay in the pots; required bets and per-seat bets go back to zero.
func (p Pots) ResetRound(n int) Pots {
	pots := p.Clone()
	for _, pot := range pots {
		pot.RequiredBet = 0
		pot.PlayerBets = make([]int, n)
	}

	return pots
}

// CheckBets panics if the per-pot bets of any seat do not add up to its round bet
func (p Pots) CheckBets(playerBets []int) {
	for seat, bet := range playerBets {
		if inPots := p.BetOf(Seat(seat)); inPots != bet {
			panic(fmt.Sprintf("%s bet %d but has %d in the pots", Seat(seat), bet, inPots))
		}
	}
}

// CheckConservation panics if the chips on the table changed
func CheckConservation(before, after int) {
	if before != after {
		panic(fmt.Sprintf("chips are not conserved: %d before, %d after", before, after))
	}
}
