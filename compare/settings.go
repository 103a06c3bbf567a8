package compare

import (
	"fmt"
	"image/color"

	"picdiff/diff"
	"picdiff/render"
)

// Settings are the comparison and rendering flags shared by every command.
type Settings struct {
	Threshold      int         `help:"Largest pixel offset at which two differences still join the same region" default:"5" env:"PICDIFF_THRESHOLD" group:"comparison"`
	MinSize        int         `help:"Drop difference rectangles whose area is smaller" default:"1" env:"PICDIFF_MIN_SIZE" group:"comparison"`
	ColorRatio     float64     `help:"Normalized RGB distance above which two pixels differ (0-1)" default:"0.1" env:"PICDIFF_COLOR_RATIO" group:"comparison"`
	AllowDiff      bool        `help:"Exit successfully even when images differ" default:"false" group:"comparison"`
	Max            int         `help:"Draw at most this many rectangles, largest first. 0 draws all" default:"0" group:"render"`
	Style          string      `help:"How rectangles are drawn" enum:"outline,fill" default:"outline" group:"render"`
	Highlight      string      `help:"Highlight color as #RGB or #RRGGBB" default:"#F00" group:"render"`
	Alpha          float64     `help:"Opacity of filled rectangles" default:"0.4" group:"render"`
	HighlightColor color.Color `kong:"-"`
}

// DefaultSettings mirrors the flag defaults.
func DefaultSettings() Settings {
	cfg := diff.DefaultConfig()
	return Settings{
		Threshold:  cfg.Threshold,
		MinSize:    cfg.MinRectangleSize,
		ColorRatio: cfg.ColorRatio,
		Style:      string(render.StyleOutline),
		Highlight:  "#F00",
		Alpha:      render.DefaultAlpha,
	}
}

// Check validates the flags and resolves the highlight color.
func (s *Settings) Check() error {
	if err := s.Config(1).Validate(); err != nil {
		return err
	}
	if s.Max < 0 {
		return fmt.Errorf("invalid rectangle limit: %d", s.Max)
	}
	if s.Alpha < 0 || s.Alpha > 1 {
		return fmt.Errorf("invalid fill opacity: %g", s.Alpha)
	}

	c, err := render.ParseColor(s.Highlight)
	if err != nil {
		return err
	}
	s.HighlightColor = c
	return nil
}

// Config returns the comparison configuration for the given number of mask
// workers.
func (s *Settings) Config(workers int) diff.Config {
	cfg := diff.DefaultConfig()
	cfg.Threshold = s.Threshold
	cfg.MinRectangleSize = s.MinSize
	cfg.ColorRatio = s.ColorRatio
	cfg.Workers = workers
	return cfg
}

func (s *Settings) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.Style = render.Style(s.Style)
	opts.Alpha = s.Alpha
	opts.Max = s.Max
	if s.HighlightColor != nil {
		opts.Color = s.HighlightColor
	}
	return opts
}
