package handanalyzer

import (
	"errors"
	"fmt"
	"sort"

	"peerholdem/pkg/deck"
)

// ErrInvalidHand is returned when a hand is not made of exactly five distinct cards
var ErrInvalidHand = errors.New("a hand must be exactly five distinct cards")

const handSize = 5

// HandAnalyzer ranks a five-card hand
type HandAnalyzer struct {
	cards    deck.Hand
	ranks    []int
	flush    bool
	straight int
	quads    []int
	trips    []int
	pairs    []int

	hand    Hand
	ranking Ranking
}

// New will return a new HandAnalyzer instance
func New(cards []*deck.Card) (*HandAnalyzer, error) {
	if len(cards) != handSize {
		return nil, fmt.Errorf("%w: got %d cards", ErrInvalidHand, len(cards))
	}

	for _, card := range cards {
		if card == nil || card.Rank < 2 || card.Rank > deck.Ace {
			return nil, fmt.Errorf("%w: unknown card", ErrInvalidHand)
		}
	}

	if deck.Hand(cards).HasDuplicates() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHand, deck.CardsToString(cards))
	}

	// clone to prevent modifying original
	sortedCards := deck.Hand(cards).Clone()
	sort.Sort(sort.Reverse(sortByRank(sortedCards)))

	h := &HandAnalyzer{cards: sortedCards}
	h.analyzeHand()
	h.calculateHand()
	h.ranking = h.calculateRanking()

	return h, nil
}

// analyzeHand records groups of equal ranks, flushes and straights
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	h.ranks = make([]int, len(h.cards))
	h.flush = true
	for i, card := range h.cards {
		h.ranks[i] = card.Rank
		if card.Suit != h.cards[0].Suit {
			h.flush = false
		}
	}

	for i := 0; i < len(h.ranks); {
		j := i
		for j < len(h.ranks) && h.ranks[j] == h.ranks[i] {
			j++
		}

		switch j - i {
		case 4:
			h.quads = append(h.quads, h.ranks[i])
		case 3:
			h.trips = append(h.trips, h.ranks[i])
		case 2:
			h.pairs = append(h.pairs, h.ranks[i])
		}

		i = j
	}

	h.straight = checkStraight(h.ranks)
}

// checkStraight returns the top rank of the straight, or 0 if there is none.
// ranks must be sorted descending. A wheel (A-2-3-4-5) is five-high.
func checkStraight(ranks []int) int {
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1]-ranks[i] != 1 {
			if i == 1 && ranks[0] == deck.Ace && ranks[1] == 5 {
				// possibly a wheel, ace plays low
				continue
			}

			return 0
		}
	}

	if ranks[0] == deck.Ace && ranks[1] == 5 {
		return 5
	}

	return ranks[0]
}

func (h *HandAnalyzer) calculateHand() {
	if _, ok := h.GetStraightFlush(); ok {
		h.hand = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.hand = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.hand = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.hand = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.hand = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.hand = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.hand = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.hand = OnePair
	} else {
		h.hand = HighCard
	}
}

func (h *HandAnalyzer) calculateRanking() Ranking {
	ranking := Ranking{int(h.hand)}

	switch h.hand {
	case StraightFlush:
		s, _ := h.GetStraightFlush()
		return append(ranking, s)
	case FourOfAKind:
		q, _ := h.GetFourOfAKind()
		return append(append(ranking, q), h.kickers(q)...)
	case FullHouse:
		fh, _ := h.GetFullHouse()
		return append(ranking, fh...)
	case Flush:
		f, _ := h.GetFlush()
		return append(ranking, f...)
	case Straight:
		s, _ := h.GetStraight()
		return append(ranking, s)
	case ThreeOfAKind:
		t, _ := h.GetThreeOfAKind()
		return append(append(ranking, t), h.kickers(t)...)
	case TwoPair:
		tp, _ := h.GetTwoPair()
		return append(append(ranking, tp...), h.kickers(tp...)...)
	case OnePair:
		p, _ := h.GetPair()
		return append(append(ranking, p), h.kickers(p)...)
	}

	hc, _ := h.GetHighCard()
	return append(ranking, hc...)
}

// kickers returns the ranks not in exclude, descending
func (h *HandAnalyzer) kickers(exclude ...int) []int {
	kickers := make([]int, 0, len(h.ranks))
outer:
	for _, rank := range h.ranks {
		for _, e := range exclude {
			if rank == e {
				continue outer
			}
		}

		kickers = append(kickers, rank)
	}

	return kickers
}

// GetHand will return the category of the hand
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// Ranking returns the ordinal vector of the hand
func (h *HandAnalyzer) Ranking() Ranking {
	r := make(Ranking, len(h.ranking))
	copy(r, h.ranking)
	return r
}

// Cards returns the cards sorted by rank, high to low
func (h *HandAnalyzer) Cards() deck.Hand {
	return h.cards.Clone()
}

// Compare compares the hand with another hand, see Compare
func (h *HandAnalyzer) Compare(other *HandAnalyzer) int {
	return Compare(h.ranking, other.ranking)
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	s, ok := h.GetStraightFlush()
	return ok && s == deck.Ace
}

// GetStraightFlush will return the top card of the straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.flush && h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetFourOfAKind will return the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the trips and pair of a full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 || len(h.pairs) == 0 {
		return nil, false
	}

	return []int{h.trips[0], h.pairs[0]}, true
}

// GetFlush will return the ranks of the flush, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if h.flush {
		return h.copyRanks(), true
	}

	return nil, false
}

// GetStraight will return the top card of the straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the high and low pair, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return []int{h.pairs[0], h.pairs[1]}, true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the ranks high to low
func (h *HandAnalyzer) GetHighCard() ([]int, bool) {
	return h.copyRanks(), true
}

func (h *HandAnalyzer) copyRanks() []int {
	r := make([]int, len(h.ranks))
	copy(r, h.ranks)
	return r
}

func (h *HandAnalyzer) String() string {
	if h.GetRoyalFlush() {
		return "Royal flush"
	}

	return fmt.Sprintf("%s %s", h.hand, h.ranking)
}

type sortByRank deck.Hand

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	if s[i].Rank == s[j].Rank {
		return s[i].Suit < s[j].Suit
	}

	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
