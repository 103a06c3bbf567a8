package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"picdiff/batch"
	"picdiff/compare"
	"picdiff/parallel"
)

type cli struct {
	Workers  int             `help:"Number of parallel workers. 0 uses every CPU" default:"0"`
	LogLevel string          `help:"Minimum level of log messages" enum:"debug,info,warn,error" default:"info"`
	LogJSON  bool            `help:"Write logs as JSON" default:"false"`
	Config   kong.ConfigFlag `help:"JSON file with flag defaults"`

	Compare compare.CLICmd `cmd:"" help:"Compare two images and draw the regions that differ"`
	Batch   batch.CLICmd   `cmd:"" help:"Compare every image of a folder with its namesake in another folder"`
}

func setupLogging(level string, asJSON bool) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if asJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("picdiff"),
		kong.Description("Find and highlight the regions where two images differ."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "~/.config/picdiff.json", ".picdiff.json"),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	setupLogging(c.LogLevel, c.LogJSON)
	slog.Debug("running", "command", kctx.Command(), "workers", c.Workers)

	pool := parallel.Start(c.Workers)
	err := kctx.Run(pool, pool.Do, pool.Wait)
	pool.Wait(true)

	kctx.FatalIfErrorf(err)
}
