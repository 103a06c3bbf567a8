package diff

// DefaultColorRatio is the normalized RGB distance above which two pixels
// count as different.
const DefaultColorRatio = 0.1

// maxDistanceSq is the squared distance between black and white.
const maxDistanceSq = 3 * 255 * 255

// Classifier reports whether two pixels are different.
type Classifier func(a, b RGB) bool

// NewClassifier returns a classifier flagging pixel pairs whose Euclidean
// RGB distance, divided by the black to white distance, is strictly greater
// than ratio.
func NewClassifier(ratio float64) Classifier {
	// Compare squared distances to keep the hot loop free of math.Sqrt.
	limit := ratio * ratio * maxDistanceSq
	if ratio < 0 {
		limit = -1
	}
	return func(a, b RGB) bool {
		return float64(distanceSq(a, b)) > limit
	}
}

var defaultClassifier = NewClassifier(DefaultColorRatio)

// IsDifferent classifies a and b with DefaultColorRatio.
func IsDifferent(a, b RGB) bool {
	return defaultClassifier(a, b)
}

func distanceSq(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
