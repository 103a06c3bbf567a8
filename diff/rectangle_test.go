package diff

import (
	"image"
	"testing"
)

func TestRectangleGeometry(t *testing.T) {
	r := Rectangle{MinRow: 2, MinCol: 3, MaxRow: 4, MaxCol: 7}
	if r.Width() != 5 || r.Height() != 3 || r.Size() != 15 {
		t.Errorf("width, height, size = %d, %d, %d, want 5, 3, 15", r.Width(), r.Height(), r.Size())
	}
	if got, want := r.Bounds(), image.Rect(3, 2, 8, 5); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
	if got := r.String(); got != "(2,3)-(4,7)" {
		t.Errorf("string = %q", got)
	}

	single := Rectangle{MinRow: 1, MinCol: 1, MaxRow: 1, MaxCol: 1}
	if single.Size() != 1 {
		t.Errorf("1x1 size = %d, want 1", single.Size())
	}
}

func TestEmptyRectangle(t *testing.T) {
	r := emptyRectangle
	if !r.Empty() || r.Size() != 0 || r.Bounds() != (image.Rectangle{}) {
		t.Errorf("empty rectangle reports %v size %d", r.Bounds(), r.Size())
	}

	r.add(3, 4)
	want := Rectangle{MinRow: 3, MinCol: 4, MaxRow: 3, MaxCol: 4, Pixels: 1}
	if r != want {
		t.Errorf("after one cell = %+v, want %+v", r, want)
	}
}

func TestRectanglesMinSize(t *testing.T) {
	m := maskOf(t,
		"##........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		".....###..",
		".....###..",
		".....###..",
	)
	maxLabel := m.Label(DefaultThreshold)
	if maxLabel != 3 {
		t.Fatalf("max label = %d, want 3", maxLabel)
	}

	all := m.Rectangles(maxLabel, 1)
	if len(all) != 2 {
		t.Fatalf("min size 1: got %d rectangles, want 2", len(all))
	}
	if all[0].Size() != 2 || all[1].Size() != 9 {
		t.Errorf("min size 1: sizes = %d, %d, want 2, 9 in label order", all[0].Size(), all[1].Size())
	}

	filtered := m.Rectangles(maxLabel, 4)
	if len(filtered) != 1 {
		t.Fatalf("min size 4: got %d rectangles, want 1", len(filtered))
	}
	want := Rectangle{MinRow: 7, MinCol: 5, MaxRow: 9, MaxCol: 7, Pixels: 9}
	if filtered[0] != want {
		t.Errorf("min size 4: rectangle = %+v, want %+v", filtered[0], want)
	}

	if got := m.Rectangles(maxLabel, 10); len(got) != 0 {
		t.Errorf("min size 10: got %v", got)
	}
}

func TestRectanglesIrregularRegion(t *testing.T) {
	m := maskOf(t,
		"#.....",
		".#....",
		"..#.#.",
		"......",
	)
	maxLabel := m.Label(2)
	rects := m.Rectangles(maxLabel, 1)
	if len(rects) != 1 {
		t.Fatalf("got %d rectangles, want 1", len(rects))
	}
	want := Rectangle{MinRow: 0, MinCol: 0, MaxRow: 2, MaxCol: 4, Pixels: 4}
	if rects[0] != want {
		t.Errorf("rectangle = %+v, want %+v", rects[0], want)
	}
}

func TestRectanglesUnlabeledMask(t *testing.T) {
	m := maskOf(t, "#.#")
	if got := m.Rectangles(1, 1); got != nil {
		t.Errorf("got %v for a mask without labels", got)
	}
}
