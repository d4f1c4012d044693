package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	pool "github.com/libp2p/go-buffer-pool"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/usherasnick/iowrap/eof"
	"github.com/usherasnick/iowrap/pos"
	readmany "github.com/usherasnick/iowrap/read-many"
	shortread "github.com/usherasnick/iowrap/short-read"
	"github.com/usherasnick/iowrap/throttle"
)

const (
	__DefaultChunkSize = 4096
	__StdinName        = "-"
)

var scanFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "file",
		Usage:    "file to scan, - for stdin",
		Required: true,
	},
	&cli.IntFlag{
		Name:    "chunk",
		Usage:   "bytes requested per read_many call",
		Value:   __DefaultChunkSize,
		EnvVars: []string{"IOWRAP_CHUNK"},
	},
	&cli.IntSliceFlag{
		Name:  "short",
		Usage: "inject short reads with these per-call caps, e.g. 1,2,3",
	},
	&cli.StringFlag{
		Name:  "exhaust",
		Usage: "what the short read policy does once its caps run out: saturate, cycle, stop",
		Value: shortread.Saturate.String(),
	},
	&cli.Int64Flag{
		Name:    "rate",
		Usage:   "throttle the input to this many bytes per second, 0 for no limit",
		EnvVars: []string{"IOWRAP_RATE"},
	},
}

// ScanCmd 逐块读取文件直到末尾, 报告读到的字节数.
var ScanCmd = &cli.Command{
	Name:   "scan",
	Usage:  "read a file through eof, pos, read_many and optional short reads",
	Flags:  scanFlags,
	Action: scanCommand,
}

// ScanCfg scan子命令配置
type ScanCfg struct {
	Chunk   int
	Short   []int
	Exhaust string
	Rate    int64
}

// ScanResult scan子命令的统计结果
type ScanResult struct {
	Bytes    uint64
	Chunks   int
	Position uint64
	Steps    int
}

func scanCommand(cctx *cli.Context) error {
	in, err := openInput(cctx, cctx.String("file"))
	if err != nil {
		return err
	}
	defer in.Close()

	cfg := &ScanCfg{
		Chunk:   cctx.Int("chunk"),
		Short:   cctx.IntSlice("short"),
		Exhaust: cctx.String("exhaust"),
		Rate:    cctx.Int64("rate"),
	}
	res, err := scan(in, cfg)
	if err != nil {
		return fmt.Errorf("scan %s: %w", cctx.String("file"), err)
	}

	out := cctx.App.Writer
	fmt.Fprintf(out, "bytes: %s (%d)\n", humanize.Bytes(res.Bytes), res.Bytes)
	fmt.Fprintf(out, "chunks: %d\n", res.Chunks)
	fmt.Fprintf(out, "position: %d\n", res.Position)
	if len(cfg.Short) > 0 {
		fmt.Fprintf(out, "short read steps: %d\n", res.Steps)
	}
	return nil
}

func openInput(cctx *cli.Context, name string) (io.ReadCloser, error) {
	if name == __StdinName {
		return io.NopCloser(cctx.App.Reader), nil
	}
	path, err := homedir.Expand(name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func scan(r io.Reader, cfg *ScanCfg) (*ScanResult, error) {
	if cfg.Chunk <= 0 {
		log.Warn().Msgf("chunk size %d is invalid, use %d", cfg.Chunk, __DefaultChunkSize)
		cfg.Chunk = __DefaultChunkSize
	}

	var src io.Reader = throttle.NewReader(r, &throttle.Cfg{Rate: cfg.Rate})

	var naughty *shortread.Reader
	if len(cfg.Short) > 0 {
		exhaustion, err := shortread.ParseExhaustion(cfg.Exhaust)
		if err != nil {
			return nil, err
		}
		naughty, err = shortread.New(src, shortread.Sequence(cfg.Short...).WithExhaustion(exhaustion))
		if err != nil {
			return nil, err
		}
		src = naughty
	}

	tracker := pos.NewReader(src)
	checker := eof.New(tracker)

	buf := pool.Get(cfg.Chunk)
	defer pool.Put(buf)

	res := &ScanResult{}
	for {
		end, err := checker.Eof()
		if err != nil {
			return nil, err
		}
		if end {
			break
		}
		n, err := readmany.ReadMany(checker, buf)
		if err != nil {
			return nil, err
		}
		res.Bytes += uint64(n)
		res.Chunks++
		log.Debug().Int("chunk", res.Chunks).Int("bytes", n).Uint64("position", tracker.Position()).Msg("chunk read")
	}

	res.Position = tracker.Position()
	if naughty != nil {
		res.Steps = naughty.Steps()
	}
	return res, nil
}
