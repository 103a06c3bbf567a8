package diff

import "picdiff/parallel"

// Cell values of a mask. Labels of regions start at firstLabel.
const (
	same       int32 = 0
	different  int32 = 1
	firstLabel int32 = 2
)

// Mask is a row-major grid of cell states: 0 (same), 1 (different, not yet
// labeled) or a region label >= 2.
type Mask struct {
	Width  int
	Height int
	Cells  []int32
}

func NewMask(width, height int) *Mask {
	width, height = max(width, 0), max(height, 0)
	return &Mask{
		Width:  width,
		Height: height,
		Cells:  make([]int32, width*height),
	}
}

// At returns the cell at row, col.
func (m *Mask) At(row, col int) int32 {
	return m.Cells[row*m.Width+col]
}

// Set marks the cell at row, col with v.
func (m *Mask) Set(row, col int, v int32) {
	m.Cells[row*m.Width+col] = v
}

// BuildMask classifies every pixel pair of a and b. Both grids must have the
// same size. Rows are shared between up to workers goroutines; every cell is
// written by exactly one of them.
func BuildMask(a, b Grid, classify Classifier, workers int) *Mask {
	width, height := a.Size()
	mask := NewMask(width, height)
	if len(mask.Cells) == 0 {
		return mask
	}

	parallel.ForEach(workers, mask.Height, func(rows parallel.Span) {
		for y := rows.Start; y < rows.End; y++ {
			row := mask.Cells[y*width : (y+1)*width]
			for x := range row {
				if classify(a.RGB(x, y), b.RGB(x, y)) {
					row[x] = different
				}
			}
		}
	})
	return mask
}
