package diff

import (
	"fmt"
	"runtime"
)

const (
	DefaultThreshold        = 5
	DefaultMinRectangleSize = 1
)

// Config holds the tunables of one comparison.
type Config struct {
	// Threshold is the largest cell offset across which two different
	// pixels still join the same region.
	Threshold int
	// MinRectangleSize drops rectangles whose bounding box area is smaller.
	MinRectangleSize int
	// ColorRatio is used to build the classifier when Classifier is nil.
	ColorRatio float64
	// Workers is the number of goroutines building the mask. Values below
	// 2 build it on the calling goroutine.
	Workers int
	// Classifier overrides the color distance test.
	Classifier Classifier
}

func DefaultConfig() Config {
	return Config{
		Threshold:        DefaultThreshold,
		MinRectangleSize: DefaultMinRectangleSize,
		ColorRatio:       DefaultColorRatio,
		Workers:          runtime.GOMAXPROCS(0),
	}
}

func (c Config) Validate() error {
	switch {
	case c.Threshold < 0:
		return fmt.Errorf("invalid threshold: %d", c.Threshold)
	case c.MinRectangleSize < 0:
		return fmt.Errorf("invalid minimum rectangle size: %d", c.MinRectangleSize)
	case c.ColorRatio < 0 || c.ColorRatio > 1:
		return fmt.Errorf("invalid color ratio: %g", c.ColorRatio)
	}
	return nil
}

func (c Config) classifier() Classifier {
	if c.Classifier != nil {
		return c.Classifier
	}
	if c.ColorRatio == DefaultColorRatio {
		return defaultClassifier
	}
	return NewClassifier(c.ColorRatio)
}
