package series

import "math"

// Series is an ordered sequence of points. Position is significant: downsampling
// partitions by index, not by X value.
type Series []Point

// FromXY zips two equally long coordinate slices into a Series.
// Extra values in the longer slice are ignored.
func FromXY[X, Y any](xs []X, ys []Y) Series {
	n := min(len(xs), len(ys))
	s := make(Series, n)
	for i := range n {
		s[i] = NewPoint(xs[i], ys[i])
	}

	return s
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s)
}

// Clone returns an independent copy of the series. A nil series stays nil.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)

	return out
}

// XRange returns the smallest and largest X value. Both are NaN for an empty series.
// NaN X values are skipped.
func (s Series) XRange() (lo, hi float64) {
	lo, hi = math.NaN(), math.NaN()
	for _, p := range s {
		if math.IsNaN(p.X) {
			continue
		}
		if math.IsNaN(lo) || p.X < lo {
			lo = p.X
		}
		if math.IsNaN(hi) || p.X > hi {
			hi = p.X
		}
	}

	return lo, hi
}

// Concat joins several series into a new one, preserving order.
func Concat(sets ...Series) Series {
	total := 0
	for _, s := range sets {
		total += len(s)
	}
	out := make(Series, 0, total)
	for _, s := range sets {
		out = append(out, s...)
	}

	return out
}

// Equal reports whether a and b have the same length and bit-identical points in
// the same order.
func Equal(a, b Series) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Same(b[i]) {
			return false
		}
	}

	return true
}
