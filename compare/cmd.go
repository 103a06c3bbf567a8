package compare

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/alecthomas/kong"

	"picdiff/diff"
	"picdiff/imageio"
	"picdiff/parallel"
	"picdiff/render"
	"picdiff/report"
)

var (
	ErrDifferent    = errors.New("images differ")
	ErrSizeMismatch = errors.New("images have different sizes")
)

type CLICmd struct {
	Baseline  string `arg:"" help:"Reference image"`
	Candidate string `arg:"" help:"Image checked against the reference"`
	Out       string `help:"Where to write the candidate with differences drawn. Defaults to a new file in the temporary directory" short:"o"`
	NoImage   bool   `help:"Do not write the rendered differences" default:"false"`
	List      int    `help:"Number of rectangles to list, largest first" default:"10"`
	Plain     bool   `help:"Disable colored output" default:"false"`
	Settings
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	for _, p := range []*string{&c.Baseline, &c.Candidate} {
		abs, err := filepath.Abs(*p)
		if err != nil {
			return fmt.Errorf("invalid image path %q: %w", *p, err)
		}
		*p = abs
	}
	if c.List < 0 {
		return fmt.Errorf("invalid list length: %d", c.List)
	}
	return c.Check()
}

func (c *CLICmd) Run(pool *parallel.Pool, out io.Writer) error {
	logger := slog.Default().With("baseline", c.Baseline, "candidate", c.Candidate)

	result, candidate, err := Files(c.Baseline, c.Candidate, c.Config(pool.Size()))
	if err != nil {
		return err
	}
	logger.Info("compared", "outcome", result.Outcome(), "differences", len(result.Differences()))

	b := candidate.Bounds()
	summary := report.Summarize(result, b.Dx(), b.Dy())
	if err := report.Write(out, filepath.Base(c.Candidate), result, summary, c.List, !c.Plain); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	if result.Outcome() == diff.Mismatch && !c.NoImage {
		dest, err := WriteImage(candidate, result, c.RenderOptions(), c.Out)
		if err != nil {
			return err
		}
		logger.Info("saved differences", "dest", dest)
	}

	if c.AllowDiff {
		return nil
	}
	return OutcomeError(result)
}

// Files loads both images and compares them. The decoded candidate is
// returned for rendering.
func Files(baseline, candidate string, cfg diff.Config) (*diff.Result, *image.NRGBA, error) {
	base, _, err := imageio.Load(baseline)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load baseline: %w", err)
	}
	cand, _, err := imageio.Load(candidate)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load candidate: %w", err)
	}

	if !imageio.SameSize(base, cand) {
		slog.Debug("size mismatch", "baseline", base.Bounds().Size(), "candidate", cand.Bounds().Size())
	}
	return diff.CompareImages(base, cand, cfg), cand, nil
}

// WriteImage draws result onto candidate and saves it to dest, or to a
// temporary file when dest is empty. It returns the path written.
func WriteImage(candidate image.Image, result *diff.Result, opts render.Options, dest string) (string, error) {
	img, err := render.Draw(candidate, result, opts)
	if err != nil {
		return "", err
	}

	if dest == "" {
		path, err := imageio.SaveTemp(img)
		if err != nil {
			return "", fmt.Errorf("could not save differences: %w", err)
		}
		return path, nil
	}
	if err := imageio.Save(img, dest); err != nil {
		return "", fmt.Errorf("could not save differences: %w", err)
	}
	return dest, nil
}

// OutcomeError maps a result that is not a match to an error.
func OutcomeError(result *diff.Result) error {
	switch result.Outcome() {
	case diff.SizeMismatch:
		return ErrSizeMismatch
	case diff.Mismatch:
		return fmt.Errorf("%w: %d regions, largest %d px", ErrDifferent, len(result.Differences()), result.MaxDifferenceSize())
	}
	return nil
}
