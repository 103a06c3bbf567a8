// Package report summarizes comparison results for people.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/stat"

	"picdiff/diff"
)

// Summary holds figures derived from a result.
type Summary struct {
	Outcome         diff.Outcome
	Count           int
	Largest         int
	TotalArea       int
	MeanArea        float64
	StdDevArea      float64
	DifferentPixels int
	// PixelRatio is the share of image pixels that belong to a reported
	// region.
	PixelRatio float64
}

// Summarize computes the summary of result for an image of the given size.
func Summarize(result *diff.Result, width, height int) Summary {
	rects := result.Differences()
	s := Summary{
		Outcome: result.Outcome(),
		Count:   len(rects),
		Largest: result.MaxDifferenceSize(),
	}
	if len(rects) == 0 {
		return s
	}

	areas := make([]float64, len(rects))
	for i, r := range rects {
		areas[i] = float64(r.Size())
		s.TotalArea += r.Size()
		s.DifferentPixels += r.Pixels
	}
	s.MeanArea, s.StdDevArea = stat.PopMeanStdDev(areas, nil)
	if total := width * height; total > 0 {
		s.PixelRatio = float64(s.DifferentPixels) / float64(total)
	}
	return s
}

var (
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	sizeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Write prints one line for the comparison named name followed by up to
// limit rectangles, largest first. A limit of zero lists none. Styled output
// is colored for terminals.
func Write(w io.Writer, name string, result *diff.Result, s Summary, limit int, styled bool) error {
	render := func(st lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return st.Render(text)
	}

	var status string
	switch s.Outcome {
	case diff.Match:
		status = render(matchStyle, s.Outcome.String())
	case diff.Mismatch:
		status = render(mismatchStyle, s.Outcome.String())
	default:
		status = render(sizeStyle, s.Outcome.String())
	}

	line := fmt.Sprintf("%s: %s", name, status)
	if s.Outcome == diff.Mismatch {
		line += render(detailStyle, fmt.Sprintf(" %d differences, largest %d px, mean %.1f px, %.2f%% of pixels",
			s.Count, s.Largest, s.MeanArea, s.PixelRatio*100))
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for i, r := range result.MaxDifferences(limit) {
		text := fmt.Sprintf("  #%d rows %d-%d cols %d-%d size %d", i+1, r.MinRow, r.MaxRow, r.MinCol, r.MaxCol, r.Size())
		if _, err := fmt.Fprintln(w, render(detailStyle, text)); err != nil {
			return err
		}
	}
	return nil
}
