package texasholdem

import (
	"errors"
	"fmt"
)

// ErrMalformedState is returned when a table state is internally inconsistent
var ErrMalformedState = errors.New("malformed state")

// RuleViolation is returned when a move is not allowed by the rules of the game
// The claim that caused it is rejected; it is not an error of the engine.
type RuleViolation string

func (r RuleViolation) Error() string {
	return string(r)
}

func newRuleViolation(format string, a ...interface{}) RuleViolation {
	return RuleViolation(fmt.Sprintf(format, a...))
}

func malformed(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedState, fmt.Sprintf(format, a...))
}
