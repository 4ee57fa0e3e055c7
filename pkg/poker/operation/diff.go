package operation

import (
	"encoding/json"
	"sort"

	"github.com/google/go-cmp/cmp"
)

// canonical returns the JSON encoding of every operation, sorted
func canonical(l List) ([]string, error) {
	out := make([]string, len(l))
	for i, op := range l {
		b, err := json.Marshal(op)
		if err != nil {
			return nil, err
		}

		out[i] = string(b)
	}

	sort.Strings(out)
	return out, nil
}

// Diff compares two lists as multisets of operations; ordering does not matter.
// It returns an empty string if they are equal, otherwise a readable diff (-expected +claimed).
func Diff(expected, claimed List) string {
	e, err := canonical(expected)
	if err != nil {
		return "could not encode expected operations: " + err.Error()
	}

	c, err := canonical(claimed)
	if err != nil {
		return "could not encode claimed operations: " + err.Error()
	}

	return cmp.Diff(e, c)
}
