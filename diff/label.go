package diff

// Label groups the different cells of m into regions and replaces each 1 with
// the label of its region. Labels are handed out in row-major order of the
// first cell of each region, starting at 2. It returns the highest label
// assigned, or 1 when the mask has no different cells.
//
// From a cell at (r, c) a region reaches, for i in 1..threshold, the cells
// (r+i, c), (r, c+i), (r+i, c-i), (r-i, c+i) and (r+i, c+i). The relation is
// not symmetric: a cell straight above or to the left is only reached through
// some other path.
func (m *Mask) Label(threshold int) int {
	threshold = max(threshold, 0)

	l := labeler{mask: m, threshold: threshold}
	next := firstLabel
	for i, v := range m.Cells {
		if v != different {
			continue
		}
		l.fill(i, next)
		next++
	}
	return int(next - 1)
}

type labeler struct {
	mask      *Mask
	threshold int
	// stack holds cell indexes that are already labeled but whose
	// neighbours have not been probed yet. Each cell is pushed at most
	// once, so its length is bounded by the number of cells.
	stack []int
}

func (l *labeler) fill(start int, label int32) {
	m := l.mask
	m.Cells[start] = label
	l.stack = append(l.stack[:0], start)

	for len(l.stack) > 0 {
		i := l.stack[len(l.stack)-1]
		l.stack = l.stack[:len(l.stack)-1]

		row, col := i/m.Width, i%m.Width
		for d := 1; d <= l.threshold; d++ {
			l.visit(row+d, col, label)
			l.visit(row, col+d, label)
			l.visit(row+d, col-d, label)
			l.visit(row-d, col+d, label)
			l.visit(row+d, col+d, label)
		}
	}
}

func (l *labeler) visit(row, col int, label int32) {
	m := l.mask
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return
	}
	i := row*m.Width + col
	if m.Cells[i] != different {
		return
	}
	m.Cells[i] = label
	l.stack = append(l.stack, i)
}
