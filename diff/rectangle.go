package diff

import (
	"fmt"
	"image"
	"math"
)

// Rectangle is the inclusive bounding box of one region. Pixels is the number
// of region cells inside it.
type Rectangle struct {
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
	Pixels int
}

// emptyRectangle is the bounding box of a region without cells. Growing it
// with the first cell yields a 1x1 box.
var emptyRectangle = Rectangle{
	MinRow: math.MaxInt,
	MinCol: math.MaxInt,
	MaxRow: math.MinInt,
	MaxCol: math.MinInt,
}

func (r Rectangle) Empty() bool {
	return r.MinRow > r.MaxRow || r.MinCol > r.MaxCol
}

func (r Rectangle) Width() int {
	if r.Empty() {
		return 0
	}
	return r.MaxCol - r.MinCol + 1
}

func (r Rectangle) Height() int {
	if r.Empty() {
		return 0
	}
	return r.MaxRow - r.MinRow + 1
}

// Size is the area of the bounding box, not the pixel count of the region.
func (r Rectangle) Size() int {
	return r.Width() * r.Height()
}

// Bounds converts r to an image rectangle with x as column and an exclusive
// maximum.
func (r Rectangle) Bounds() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(r.MinCol, r.MinRow, r.MaxCol+1, r.MaxRow+1)
}

func (r Rectangle) String() string {
	if r.Empty() {
		return "(empty)"
	}
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.MinRow, r.MinCol, r.MaxRow, r.MaxCol)
}

func (r *Rectangle) add(row, col int) {
	r.MinRow = min(r.MinRow, row)
	r.MinCol = min(r.MinCol, col)
	r.MaxRow = max(r.MaxRow, row)
	r.MaxCol = max(r.MaxCol, col)
	r.Pixels++
}

// Rectangles returns the bounding box of every region with a label up to
// maxLabel, in label order, skipping those with a size below minSize. The
// mask must have been labeled.
func (m *Mask) Rectangles(maxLabel, minSize int) []Rectangle {
	if maxLabel < int(firstLabel) {
		return nil
	}

	boxes := make([]Rectangle, maxLabel-int(firstLabel)+1)
	for i := range boxes {
		boxes[i] = emptyRectangle
	}

	for i, v := range m.Cells {
		if v < firstLabel || int(v) > maxLabel {
			continue
		}
		boxes[v-firstLabel].add(i/m.Width, i%m.Width)
	}

	var rects []Rectangle
	for _, r := range boxes {
		if r.Empty() || r.Size() < minSize {
			continue
		}
		rects = append(rects, r)
	}
	return rects
}
