package trend

import (
	"github.com/watchcharts/chartkit/series"
)

const (
	// DefaultExtension widens the projected range by 25% of the data range on each side.
	DefaultExtension = 0.25
	// DefaultSteps is the number of intervals ProjectRange samples when asked for none.
	DefaultSteps = 100
)

// ProjectRange samples the fitter's curve on [minX - ext, maxX + ext], where
// ext = (maxX - minX) * extension. It returns steps+1 evenly spaced points, starting at
// the lower bound and ending at the upper bound. steps <= 0 selects DefaultSteps.
//
// The projected y values are not checked; a degenerate fit yields non-finite Y.
func ProjectRange(f *Fitter, minX, maxX, extension float64, steps int) series.Series {
	if steps <= 0 {
		steps = DefaultSteps
	}

	curve := f.Curve()
	ext := (maxX - minX) * extension
	lo := minX - ext
	hi := maxX + ext
	width := hi - lo

	out := make(series.Series, steps+1)
	for i := range out {
		x := lo + width*float64(i)/float64(steps)
		if i == steps {
			x = hi
		}
		out[i] = series.Point{X: x, Y: curve.Estimate(x)}
	}

	return out
}
