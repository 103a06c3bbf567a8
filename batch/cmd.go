package batch

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/alecthomas/kong"

	"picdiff/compare"
	"picdiff/diff"
	"picdiff/parallel"
	"picdiff/report"
)

type CLICmd struct {
	Baseline  string `arg:"" help:"Folder with reference images"`
	Candidate string `arg:"" help:"Folder with images to check, matched to references by file name"`
	Dest      string `help:"Destination folder for rendered differences. Relative to the candidate folder if not absolute" default:"diffs"`
	Progress  bool   `help:"Show a progress spinner on stderr" default:"true" negatable:""`
	compare.Settings
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	for _, p := range []*string{&c.Baseline, &c.Candidate} {
		dir, err := filepath.Abs(*p)
		var info os.FileInfo
		if err == nil {
			if info, err = os.Stat(dir); err == nil && !info.IsDir() {
				err = fmt.Errorf("not a directory")
			}
		}
		if err != nil {
			return fmt.Errorf("invalid folder %q: %w", *p, err)
		}
		*p = dir
	}

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(c.Candidate, c.Dest)
	}
	return c.Settings.Check()
}

// Stats counts the outcomes of a batch run.
type Stats struct {
	Matched      uint64
	Different    uint64
	SizeMismatch uint64
	Errors       uint64
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc, out io.Writer) error {
	stats, err := c.compareAll(worker, wait, out)
	if err != nil {
		return err
	}

	slog.Info("stats", "matched", stats.Matched, "different", stats.Different,
		"size_mismatch", stats.SizeMismatch, "errors", stats.Errors,
		"total", stats.Matched+stats.Different+stats.SizeMismatch+stats.Errors)

	if stats.Errors > 0 {
		return fmt.Errorf("error processing %d files", stats.Errors)
	}
	if failed := stats.Different + stats.SizeMismatch; failed > 0 && !c.AllowDiff {
		return fmt.Errorf("%w: %d of %d images", compare.ErrDifferent, failed, failed+stats.Matched)
	}
	return nil
}

func (c *CLICmd) compareAll(worker parallel.WorkerFunc, wait parallel.WaitFunc, out io.Writer) (Stats, error) {
	files, err := os.ReadDir(c.Baseline)
	if err != nil {
		return Stats{}, fmt.Errorf("unable to read folder %q: %w", c.Baseline, err)
	}
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return Stats{}, fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	var names []string
	for _, file := range files {
		if file.Type().IsRegular() {
			names = append(names, file.Name())
		}
	}

	var matched, different, sizeMismatch, errCount, processed atomic.Uint64
	var outMu sync.Mutex

	stop := func() {}
	if c.Progress {
		stop = startSpinner(os.Stderr, &processed, uint64(len(names)))
	}

	for _, name := range names {
		worker(func() {
			defer processed.Add(1)

			basePath := filepath.Join(c.Baseline, name)
			candPath := filepath.Join(c.Candidate, name)
			logger := slog.Default().With("file", name)

			// Pairs already run in parallel; each mask is built on one goroutine.
			result, candidate, err := compare.Files(basePath, candPath, c.Config(1))
			if err != nil {
				errCount.Add(1)
				logger.Error("could not compare images", "error", err)
				return
			}

			b := candidate.Bounds()
			summary := report.Summarize(result, b.Dx(), b.Dy())
			outMu.Lock()
			err = report.Write(out, name, result, summary, 0, false)
			outMu.Unlock()
			if err != nil {
				logger.Error("could not write report", "error", err)
			}

			switch result.Outcome() {
			case diff.Match:
				matched.Add(1)
				return
			case diff.SizeMismatch:
				sizeMismatch.Add(1)
				logger.Warn("size mismatch", "baseline", basePath)
				return
			}

			dest := filepath.Join(c.Dest, strings.TrimSuffix(name, filepath.Ext(name))+".png")
			if _, err := compare.WriteImage(candidate, result, c.RenderOptions(), dest); err != nil {
				errCount.Add(1)
				logger.Error("could not save differences", "dest", dest, "error", err)
				return
			}
			different.Add(1)
			logger.Info("saved differences", "dest", dest, "differences", summary.Count)
		})
	}

	wait(true)
	stop()

	return Stats{
		Matched:      matched.Load(),
		Different:    different.Load(),
		SizeMismatch: sizeMismatch.Load(),
		Errors:       errCount.Load(),
	}, nil
}
