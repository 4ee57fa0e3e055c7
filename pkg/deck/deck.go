package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the number of slots in the logical deck
const Size = 52

// SlotPrefix is the key prefix of a card slot in the table state (C0..C51)
const SlotPrefix = "C"

// Deck is the logical, unshuffled deck.
// Slot i holds rank i/4+2 of suit Suits[i%4]; shuffling is performed outside of this package.
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns the 52 cards in slot order
func New() *Deck {
	cards := make([]*Card, 0, Size)
	for i := 0; i < Size; i++ {
		cards = append(cards, cardForSlot(i))
	}

	return &Deck{Cards: cards}
}

func cardForSlot(slot int) *Card {
	return &Card{
		Rank: slot/4 + 2,
		Suit: Suits[slot%4],
	}
}

// CardForSlot returns the card that occupies slot before it is shuffled
func CardForSlot(slot int) (*Card, error) {
	if slot < 0 || slot >= Size {
		return nil, fmt.Errorf("slot %d out of range", slot)
	}

	return cardForSlot(slot), nil
}

// SlotKey returns the state key of a slot (e.g., C12)
func SlotKey(slot int) string {
	return SlotPrefix + strconv.Itoa(slot)
}

// SlotKeys returns the keys of every slot in [from, to]
func SlotKeys(from, to int) []string {
	keys := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		keys = append(keys, SlotKey(i))
	}

	return keys
}

// SlotFromKey parses a slot key.
// The second return value is false when key is not a slot key.
func SlotFromKey(key string) (int, bool) {
	if !strings.HasPrefix(key, SlotPrefix) {
		return 0, false
	}

	slot, err := strconv.Atoi(key[len(SlotPrefix):])
	if err != nil || slot < 0 || slot >= Size {
		return 0, false
	}

	return slot, true
}
