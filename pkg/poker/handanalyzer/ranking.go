package handanalyzer

import (
	"strconv"
	"strings"
)

// Ranking is the ordinal vector of a five-card hand.
// The first element is the Hand category, the rest are tie-breakers in
// descending significance. Greater is better.
type Ranking []int

// Hand returns the category of the ranking
func (r Ranking) Hand() Hand {
	if len(r) == 0 {
		return HighCard
	}

	return Hand(r[0])
}

func (r Ranking) String() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, ",") + "]"
}

// Compare returns -1, 0 or 1 if a is worse than, equal to or better than b.
// Elements past the length of the shorter ranking are never compared.
func Compare(a, b Ranking) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i] > b[i] {
			return 1
		} else if a[i] < b[i] {
			return -1
		}
	}

	return 0
}
