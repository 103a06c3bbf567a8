// Package diff finds the regions where two equally sized images differ and
// reports them as bounding rectangles, largest first.
//
// A comparison classifies every pixel pair by color distance, groups
// different pixels lying within cfg.Threshold cells of each other into
// regions, and keeps the bounding box of each region whose area reaches
// cfg.MinRectangleSize.
package diff

import "image"

// Compare compares a and b. Grids of different size yield a SizeMismatch
// result without any pixel being classified.
func Compare(a, b Grid, cfg Config) *Result {
	if !SameSize(a, b) {
		return SizeMismatchResult()
	}

	mask := BuildMask(a, b, cfg.classifier(), cfg.Workers)
	maxLabel := mask.Label(cfg.Threshold)
	return NewResult(mask.Rectangles(maxLabel, cfg.MinRectangleSize))
}

// CompareImages compares two decoded images. See Compare.
func CompareImages(a, b image.Image, cfg Config) *Result {
	return Compare(FromImage(a), FromImage(b), cfg)
}
