package texasholdem

import (
	"errors"
)

// Options are the table options of a hand
type Options struct {
	SmallBlind int `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind   int `yaml:"bigBlind" envconfig:"big_blind"`
}

// DefaultOptions returns the default blinds
func DefaultOptions() Options {
	return Options{
		SmallBlind: 100,
		BigBlind:   200,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind <= opts.SmallBlind {
		return errors.New("big blind must be greater than the small blind")
	}

	return nil
}
