// Package downsample reduces dense point series with the Largest-Triangle-Three-Buckets
// (LTTB) algorithm.
//
// LTTB keeps the first and last point and fills the remaining slots with one point per
// bucket: the point forming the largest triangle with the previously kept point and the
// average of the following bucket. Compared with stride sampling this keeps peaks, valleys
// and trend changes visible when a long series is drawn with few points.
//
// # Usage
//
//	reduced := downsample.Downsample(points, 500)
//
// Downsample is a pure function. It never modifies its input and returns the input itself
// when there is nothing to reduce (threshold <= 0 or threshold >= len(points)).
//
// # Bucket Partition
//
// The interior of the series (everything except the first and last point) is divided into
// threshold-2 buckets of real-valued width
//
//	every = (len - 2) / (threshold - 2)
//
// Bucket boundaries are floor(i*every)+1, so bucket sizes differ by one when every is not
// an integer. Buckets exposes the exact selection ranges.
//
// # Degenerate Input
//
// The algorithm never reports errors:
//   - A threshold of 1 or 2 (with a longer series) yields just the first and last point.
//   - NaN coordinates propagate into the area comparison. A bucket whose areas are all NaN
//     cannot beat the initial maximum, so the previously selected point is emitted again.
//     In the first slot that is the first input point.
package downsample
