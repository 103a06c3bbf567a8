package diff

import (
	"cmp"
	"fmt"
	"slices"
)

type Outcome int

const (
	// SizeMismatch means the images have different dimensions.
	SizeMismatch Outcome = iota
	// Match means no qualifying difference was found.
	Match
	// Mismatch means at least one rectangle qualified.
	Mismatch
)

func (o Outcome) String() string {
	switch o {
	case SizeMismatch:
		return "size-mismatch"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is the outcome of one comparison. Its rectangles are ordered from
// the largest to the smallest size.
type Result struct {
	outcome     Outcome
	differences []Rectangle
}

// NewResult ranks rects. The outcome is Match when rects is empty and
// Mismatch otherwise. Rectangles of equal size keep their relative order.
func NewResult(rects []Rectangle) *Result {
	sorted := slices.Clone(rects)
	slices.SortStableFunc(sorted, func(a, b Rectangle) int {
		return cmp.Compare(b.Size(), a.Size())
	})

	outcome := Match
	if len(sorted) > 0 {
		outcome = Mismatch
	}
	return &Result{outcome: outcome, differences: sorted}
}

func SizeMismatchResult() *Result {
	return &Result{outcome: SizeMismatch}
}

func (r *Result) Outcome() Outcome {
	return r.outcome
}

// Differences returns every rectangle.
func (r *Result) Differences() []Rectangle {
	return slices.Clone(r.differences)
}

func (r *Result) HasDifferences() bool {
	return len(r.differences) > 0
}

// MaxDifferences returns the n largest rectangles. Asking for more than
// there are is not an error.
func (r *Result) MaxDifferences(n int) []Rectangle {
	n = max(0, min(n, len(r.differences)))
	return slices.Clone(r.differences[:n])
}

// MaxDifference returns the largest rectangle, if any.
func (r *Result) MaxDifference() (Rectangle, bool) {
	if len(r.differences) == 0 {
		return Rectangle{}, false
	}
	return r.differences[0], true
}

// MaxDifferenceSize is the size of the largest rectangle or 0.
func (r *Result) MaxDifferenceSize() int {
	if len(r.differences) == 0 {
		return 0
	}
	return r.differences[0].Size()
}

func (r *Result) String() string {
	return fmt.Sprintf("%s (%d differences)", r.outcome, len(r.differences))
}
