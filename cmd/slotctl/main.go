package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/wb-go/wbf/logger"
)

func main() {
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		log, lerr := newLogger("error")
		if lerr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Error("slotctl failed", logger.String("error", err.Error()))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "slotctl",
		Usage: "Inspect and register activity slots against the matching service.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "matching service base URL",
				EnvVars: []string{"MATCHING_BASE_URL"},
				Value:   "http://localhost:8081",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "per-request timeout",
				EnvVars: []string{"MATCHING_TIMEOUT"},
				Value:   defaultTimeout,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "warn",
			},
		},
		Commands: []*cli.Command{
			activitiesCommand(),
			slotsCommand(),
			slotCommand(),
			registerCommand(),
			routeCommand(),
			icsCommand(),
			watchCommand(),
		},
	}
}
