package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"peerholdem/internal/config"
	"peerholdem/pkg/poker/texasholdem"
)

var version = "v0.0.0-dev"

// CLI is the command line of verify-move
type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version and exit"`
	LogLevel string           `default:"warn" enum:"trace,debug,info,warn,error" help:"Log level (${enum})"`

	Verify  VerifyCmd  `cmd:"" help:"Verify a claimed move"`
	Initial InitialCmd `cmd:"" help:"Print the operations that deal a new hand"`
	Replay  ReplayCmd  `cmd:"" help:"Verify every move of a hand history"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("verify-move"),
		kong.Description("Verify Texas Hold'em moves made in a peer-to-peer game"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	logic, err := newLogic(cli.LogLevel)
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(ctx.Run(logic))
}

func newLogic(logLevel string) (*texasholdem.Logic, error) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse level")
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)

	logic, err := texasholdem.NewLogic(logger, config.Instance().Table)
	if err != nil {
		return nil, errors.Wrap(err, "invalid table options")
	}

	return logic, nil
}
