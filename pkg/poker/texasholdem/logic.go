package texasholdem

import (
	"github.com/sirupsen/logrus"
)

// Logic is the betting state machine of a table
// It holds no table state; every method takes the prior state and returns the operations of the move.
type Logic struct {
	logger  logrus.FieldLogger
	options Options
}

// NewLogic returns a new state machine for the table options
func NewLogic(logger logrus.FieldLogger, opts Options) (*Logic, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Logic{
		logger:  logger,
		options: opts,
	}, nil
}

// Options returns the table options
func (l *Logic) Options() Options {
	return l.options
}

// blindSeats returns the small blind, the big blind and the first seat to act pre-flop
func blindSeats(n int) (sb, bb, utg Seat) {
	if n == 2 {
		return 0, 1, 0
	}

	return 1, 2, Seat(3 % n)
}
