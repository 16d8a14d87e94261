// Package trend fits exponential trend lines to chart data.
//
// A Fitter accumulates points and performs ordinary least squares on (x, ln y), which
// yields the exponential model
//
//	y = A * r^x,  A = e^b,  r = e^m
//
// where m and b are the slope and intercept of the fit in log space. The Fitter keeps only
// five running sums, so adding a point is O(1) and the fitter can be fed any number of
// datasets in turn:
//
//	var f trend.Fitter
//	for _, p := range points {
//	    f.Add(p.X, p.Y)
//	}
//	y := f.Project(42)
//
// # Degenerate Input
//
// Nothing is validated. A y value <= 0 makes ln y non-finite and poisons the sums. Fewer
// than two distinct x values make the normal-equation determinant zero. In both cases
// Project returns NaN or ±Inf instead of an error, so misuse stays visible to the caller.
//
// ProjectRange samples a fitted curve over the data range widened by an extension factor,
// which is how a chart draws the trend line past the observed data.
package trend
