package diff

import (
	"image"
	"image/color"
)

// RGB is a 24-bit color. Alpha is ignored by the comparison.
type RGB struct {
	R, G, B uint8
}

// Grid is a read-only raster of RGB values with a zero origin. X is the
// column and y the row.
type Grid interface {
	Size() (width, height int)
	RGB(x, y int) RGB
}

// SameSize reports whether both grids have the same width and height.
func SameSize(a, b Grid) bool {
	aw, ah := a.Size()
	bw, bh := b.Size()
	return aw == bw && ah == bh
}

type imageGrid struct {
	img image.Image
	min image.Point
	w   int
	h   int
}

type rgbaGrid struct {
	img *image.RGBA
	w   int
	h   int
}

type nrgbaGrid struct {
	img *image.NRGBA
	w   int
	h   int
}

// FromImage wraps img so that its top left pixel is at (0, 0).
func FromImage(img image.Image) Grid {
	b := img.Bounds()
	switch m := img.(type) {
	case *image.RGBA:
		return &rgbaGrid{img: m, w: b.Dx(), h: b.Dy()}
	case *image.NRGBA:
		return &nrgbaGrid{img: m, w: b.Dx(), h: b.Dy()}
	}
	return &imageGrid{img: img, min: b.Min, w: b.Dx(), h: b.Dy()}
}

func (g *imageGrid) Size() (int, int) { return g.w, g.h }

func (g *imageGrid) RGB(x, y int) RGB {
	c := color.NRGBAModel.Convert(g.img.At(g.min.X+x, g.min.Y+y)).(color.NRGBA)
	return RGB{R: c.R, G: c.G, B: c.B}
}

func (g *rgbaGrid) Size() (int, int) { return g.w, g.h }

func (g *rgbaGrid) RGB(x, y int) RGB {
	// PixOffset takes absolute coordinates.
	i := g.img.PixOffset(g.img.Rect.Min.X+x, g.img.Rect.Min.Y+y)
	p := g.img.Pix[i : i+3 : i+3]
	return RGB{R: p[0], G: p[1], B: p[2]}
}

func (g *nrgbaGrid) Size() (int, int) { return g.w, g.h }

func (g *nrgbaGrid) RGB(x, y int) RGB {
	i := g.img.PixOffset(g.img.Rect.Min.X+x, g.img.Rect.Min.Y+y)
	p := g.img.Pix[i : i+3 : i+3]
	return RGB{R: p[0], G: p[1], B: p[2]}
}
