package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/saeidalz13/battleship-sim/cli"
	"github.com/saeidalz13/battleship-sim/internal/config"
	"github.com/saeidalz13/battleship-sim/internal/logging"
)

func main() {
	if os.Getenv("STAGE") != config.StageProd {
		// optional in dev, there is nothing secret to load
		_ = godotenv.Load(".env")
	}

	if err := config.Load(); err != nil {
		panic(err)
	}

	logger := logging.New(os.Stderr, config.LogLevel())

	runner := cli.NewRunner(os.Stdin, os.Stdout, logger)
	if err := runner.Run(); err != nil {
		logger.Error().Err(err).Msg("session aborted")
		os.Exit(1)
	}
}
