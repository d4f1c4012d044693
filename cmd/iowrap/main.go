package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var logLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	Usage:   "zerolog level: debug, info, warn, error",
	Value:   "info",
	EnvVars: []string{"IOWRAP_LOG_LEVEL"},
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "iowrap",
		Usage: "push files through the io decorators and report what they saw",
		Flags: []cli.Flag{logLevelFlag},
		Before: func(cctx *cli.Context) error {
			level, err := zerolog.ParseLevel(cctx.String(logLevelFlag.Name))
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			ScanCmd,
			DiscardCmd,
		},
	}
}

func run() int {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newApp().Run(os.Args); err != nil {
		log.Error().Err(err).Msg("iowrap failed")
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
