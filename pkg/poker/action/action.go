package action

import (
	"fmt"
)

// Action represents a betting move a player can make
type Action string

// action constants
const (
	Fold  Action = "FOLD"
	Check Action = "CHECK"
	Call  Action = "CALL"
	Bet   Action = "BET"
	Raise Action = "RAISE"
)

var allowedActions = map[Action]bool{
	Fold:  true,
	Check: true,
	Call:  true,
	Bet:   true,
	Raise: true,
}

// FromString returns an action for the given string
func FromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Bet:
		return "Bet"
	case Raise:
		return "Raise"
	}

	panic("unknown action")
}

// MarshalText encodes the action identifier
func (a Action) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("unknown action for identifier: %s", string(a))
	}

	return []byte(a), nil
}

// UnmarshalText decodes and validates an action identifier
func (a *Action) UnmarshalText(text []byte) error {
	action, err := FromString(string(text))
	if err != nil {
		return err
	}

	*a = action
	return nil
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// HasAmount returns true if the action moves chips
func (a Action) HasAmount() bool {
	return a == Call || a == Bet || a == Raise
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called %d", amount)
	case Bet:
		return fmt.Sprintf("bet %d", amount)
	case Raise:
		return fmt.Sprintf("raised by %d", amount)
	}

	return ""
}
