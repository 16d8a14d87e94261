package trend

import (
	"fmt"
	"math"
)

// Curve is the exponential model y = A * R^x.
type Curve struct {
	A float64
	R float64
}

// NewCurve creates a curve with the given scale and growth factor.
func NewCurve(a, r float64) *Curve {
	return &Curve{A: a, R: r}
}

// Estimate calculates y at x.
func (c *Curve) Estimate(x float64) float64 {
	return c.A * math.Pow(c.R, x)
}

// Rate returns the continuous growth rate ln(R), the slope of the fit in log space.
func (c *Curve) Rate() float64 {
	return math.Log(c.R)
}

// IsFinite reports whether both parameters are finite. A curve fitted from degenerate
// input is not.
func (c *Curve) IsFinite() bool {
	return !math.IsNaN(c.A) && !math.IsInf(c.A, 0) && !math.IsNaN(c.R) && !math.IsInf(c.R, 0)
}

// Formula returns a human-readable form of the curve.
func (c *Curve) Formula() string {
	return fmt.Sprintf("y = %.4g * %.4g^x", c.A, c.R)
}

// String returns a string representation of the curve.
func (c *Curve) String() string {
	return fmt.Sprintf("Curve{A: %.4g, R: %.4g, Formula: %s}", c.A, c.R, c.Formula())
}
