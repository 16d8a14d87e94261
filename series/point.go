package series

import (
	"math"
	"time"

	"github.com/spf13/cast"
)

// Point is a single chart sample with numeric coordinates.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewPoint builds a Point from loosely typed coordinates, coercing each with Float.
func NewPoint(x, y any) Point {
	return Point{X: Float(x), Y: Float(y)}
}

// Float coerces a coordinate value into a float64.
//
// time.Time becomes Unix milliseconds and time.Duration becomes milliseconds, the
// numeric forms a chart time axis works with. Any other value is converted with
// cast.ToFloat64E. Values that cannot be converted yield NaN.
func Float(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case time.Time:
		return float64(val.UnixMilli())
	case *time.Time:
		if val == nil {
			return math.NaN()
		}

		return float64(val.UnixMilli())
	case time.Duration:
		return float64(val.Milliseconds())
	case nil:
		return math.NaN()
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return math.NaN()
	}

	return f
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Same reports whether two points hold bit-identical coordinates.
// Unlike ==, two NaN coordinates with the same bit pattern compare equal.
func (p Point) Same(o Point) bool {
	return math.Float64bits(p.X) == math.Float64bits(o.X) &&
		math.Float64bits(p.Y) == math.Float64bits(o.Y)
}
