package potmanager

import "strconv"

// Seat is a player's position at the table
// Seat 0 is the dealer; seats index the player list handed to the engine
type Seat int

func (s Seat) String() string {
	return "P" + strconv.Itoa(int(s))
}
