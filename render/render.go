// Package render draws comparison results onto a copy of the candidate
// image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"picdiff/diff"
)

type Style string

const (
	StyleOutline Style = "outline"
	StyleFill    Style = "fill"
)

// DefaultColor is the highlight color of differences.
var DefaultColor color.Color = color.RGBA{R: 0xFF, A: 0xFF}

const DefaultAlpha = 0.4

type Options struct {
	Style Style
	Color color.Color
	// Alpha is the opacity of filled boxes.
	Alpha float64
	// Max caps the number of rectangles drawn, largest first. Zero draws all.
	Max int
}

func DefaultOptions() Options {
	return Options{
		Style: StyleOutline,
		Color: DefaultColor,
		Alpha: DefaultAlpha,
	}
}

// ParseColor reads #RGB or #RRGGBB, with or without the leading '#'.
func ParseColor(s string) (color.Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return nil, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("could not read color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// Draw renders result onto a copy of candidate according to opts.
func Draw(candidate image.Image, result *diff.Result, opts Options) (image.Image, error) {
	rects := result.Differences()
	if opts.Max > 0 {
		rects = result.MaxDifferences(opts.Max)
	}
	c := opts.Color
	if c == nil {
		c = DefaultColor
	}

	switch opts.Style {
	case StyleOutline, "":
		return Outline(candidate, rects, c), nil
	case StyleFill:
		return Fill(candidate, rects, c, opts.Alpha), nil
	}
	return nil, fmt.Errorf("unsupported style: %s", opts.Style)
}

// Outline copies candidate and draws a one pixel border along the inclusive
// bounds of every rectangle. The copy has a zero origin.
func Outline(candidate image.Image, rects []diff.Rectangle, c color.Color) *image.RGBA {
	dest := copyImage(candidate)
	src := image.NewUniform(c)

	for _, r := range rects {
		b := r.Bounds().Intersect(dest.Bounds())
		if b.Empty() {
			continue
		}
		edges := [4]image.Rectangle{
			image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+1),
			image.Rect(b.Min.X, b.Max.Y-1, b.Max.X, b.Max.Y),
			image.Rect(b.Min.X, b.Min.Y, b.Min.X+1, b.Max.Y),
			image.Rect(b.Max.X-1, b.Min.Y, b.Max.X, b.Max.Y),
		}
		for _, e := range edges {
			draw.Draw(dest, e, src, image.Point{}, draw.Src)
		}
	}
	return dest
}

// Fill copies candidate and covers every rectangle with c at the given
// opacity.
func Fill(candidate image.Image, rects []diff.Rectangle, c color.Color, alpha float64) image.Image {
	ctx := gg.NewContextForImage(copyImage(candidate))

	r, g, b, _ := c.RGBA()
	ctx.SetRGBA(float64(r)/0xFFFF, float64(g)/0xFFFF, float64(b)/0xFFFF, alpha)
	for _, rect := range rects {
		if rect.Empty() {
			continue
		}
		ctx.DrawRectangle(float64(rect.MinCol), float64(rect.MinRow), float64(rect.Width()), float64(rect.Height()))
		ctx.Fill()
	}
	return ctx.Image()
}

func copyImage(img image.Image) *image.RGBA {
	b := img.Bounds()
	dest := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dest, dest.Bounds(), img, b.Min, draw.Src)
	return dest
}
