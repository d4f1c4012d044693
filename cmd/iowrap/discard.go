package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	nullstream "github.com/usherasnick/iowrap/null-stream"
	"github.com/usherasnick/iowrap/pos"
	"github.com/usherasnick/iowrap/throttle"
)

// DiscardCmd 把标准输入全部写进空流.
var DiscardCmd = &cli.Command{
	Name:  "discard",
	Usage: "swallow stdin into the null stream and report how much went in",
	Flags: []cli.Flag{
		&cli.Int64Flag{
			Name:    "rate",
			Usage:   "throttle writes to this many bytes per second, 0 for no limit",
			EnvVars: []string{"IOWRAP_RATE"},
		},
	},
	Action: discardCommand,
}

func discardCommand(cctx *cli.Context) error {
	n, err := discard(cctx.App.Reader, cctx.Int64("rate"))
	if err != nil {
		return fmt.Errorf("discard: %w", err)
	}
	fmt.Fprintf(cctx.App.Writer, "discarded: %s (%d)\n", humanize.Bytes(n), n)
	return nil
}

func discard(r io.Reader, rate int64) (uint64, error) {
	sink := pos.NewWriter(throttle.NewWriter(nullstream.New(), &throttle.Cfg{Rate: rate}))
	if _, err := io.Copy(sink, r); err != nil {
		return sink.Position(), err
	}
	return sink.Position(), nil
}
