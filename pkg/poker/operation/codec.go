package operation

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// UnmarshalJSON decodes a list of typed operations
func (l *List) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return errors.Wrap(err, "operation list must be an array")
	}

	ops := make(List, len(raw))
	for i, r := range raw {
		op, err := decodeOperation(r)
		if err != nil {
			return errors.Wrapf(err, "operation %d", i)
		}

		ops[i] = op
	}

	*l = ops
	return nil
}

func decodeOperation(b json.RawMessage) (Operation, error) {
	var head struct {
		Type Kind `json:"type"`
	}

	if err := json.Unmarshal(b, &head); err != nil {
		return nil, err
	}

	switch head.Type {
	case KindSet:
		var s struct {
			Key   string          `json:"key"`
			Value json.RawMessage `json:"value"`
		}

		if err := json.Unmarshal(b, &s); err != nil {
			return nil, err
		}

		value, err := DecodeValue(s.Key, s.Value)
		if err != nil {
			return nil, err
		}

		return Set{Key: s.Key, Value: value}, nil
	case KindSetTurn:
		var op SetTurn
		err := json.Unmarshal(b, &op)
		return op, err
	case KindSetVisibility:
		var op SetVisibility
		err := json.Unmarshal(b, &op)
		return op, err
	case KindShuffle:
		var op Shuffle
		err := json.Unmarshal(b, &op)
		return op, err
	case KindAttemptChangeTokens:
		var op AttemptChangeTokens
		err := json.Unmarshal(b, &op)
		return op, err
	case KindEndGame:
		var op EndGame
		err := json.Unmarshal(b, &op)
		return op, err
	}

	return nil, errors.Errorf("unknown operation type %q", head.Type)
}
