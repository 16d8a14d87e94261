package trend

import (
	"math"

	"github.com/watchcharts/chartkit/series"
)

// Fitter accumulates the sums needed for a least-squares fit of ln(y) against x.
//
// The zero value is an empty fitter ready for use. A Fitter is not safe for concurrent
// use; create one per render pass.
type Fitter struct {
	count int
	sumX  float64
	sumX2 float64
	sumXY float64
	sumY  float64
}

// NewFitter returns an empty fitter.
func NewFitter() *Fitter {
	return &Fitter{}
}

// Add accumulates one point. y must be positive for the fit to be meaningful.
func (f *Fitter) Add(x, y float64) {
	y = math.Log(y)
	f.count++
	f.sumX += x
	f.sumX2 += x * x
	f.sumXY += x * y
	f.sumY += y
}

// AddPoint accumulates p.
func (f *Fitter) AddPoint(p series.Point) {
	f.Add(p.X, p.Y)
}

// AddSeries accumulates every point of s in order.
func (f *Fitter) AddSeries(s series.Series) {
	for _, p := range s {
		f.Add(p.X, p.Y)
	}
}

// Count returns the number of accumulated points.
func (f *Fitter) Count() int {
	return f.count
}

// Coefficients returns the slope m and intercept b of the log-space fit ln(y) = m*x + b.
// Both are recomputed from the running sums on every call.
func (f *Fitter) Coefficients() (m, b float64) {
	n := float64(f.count)
	det := n*f.sumX2 - f.sumX*f.sumX
	m = (n*f.sumXY - f.sumX*f.sumY) / det
	b = (f.sumX2*f.sumY - f.sumX*f.sumXY) / det

	return m, b
}

// Project returns the fitted value A * r^x at x.
func (f *Fitter) Project(x float64) float64 {
	return f.Curve().Estimate(x)
}

// Curve returns the exponential curve for the points accumulated so far.
// Later calls to Add do not affect the returned curve.
func (f *Fitter) Curve() *Curve {
	m, b := f.Coefficients()

	return NewCurve(math.Pow(math.E, b), math.Pow(math.E, m))
}
