package downsample

import "math"

// Bucket is a half-open index range [Start, End) of the input series.
type Bucket struct {
	Start int
	End   int
}

// Len returns the number of points in the bucket.
func (b Bucket) Len() int {
	return b.End - b.Start
}

// Buckets returns the selection bucket of every interior output slot that Downsample
// would use for a series of the given length. It returns nil when Downsample would not
// run the selection loop (identity result, or threshold <= 2).
func Buckets(length, threshold int) []Bucket {
	if threshold >= length || threshold <= 2 {
		return nil
	}

	every := float64(length-2) / float64(threshold-2)
	buckets := make([]Bucket, threshold-2)
	for i := range buckets {
		buckets[i] = Bucket{
			Start: int(math.Floor(float64(i)*every)) + 1,
			End:   int(math.Floor(float64(i+1)*every)) + 1,
		}
	}

	return buckets
}

// Ratio returns the fraction of points kept when a series of length before is reduced
// to length after. It returns 1 for an empty input.
func Ratio(before, after int) float64 {
	if before == 0 {
		return 1
	}

	return float64(after) / float64(before)
}
