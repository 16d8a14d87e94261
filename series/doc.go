// Package series defines the point and series types shared by the chartkit packages.
//
// A Series is an ordered, index-significant sequence of points. Nothing in chartkit
// requires the X values to be sorted, although time-ordered input is the common case.
//
// Chart data frequently carries date-like X values. NewPoint and Float coerce such
// values into plain float64 coordinates before any arithmetic happens:
//
//	p := series.NewPoint(time.Now(), "42.5") // X in Unix milliseconds, Y = 42.5
//
// Values that cannot be coerced become NaN instead of producing an error, so malformed
// input propagates through the numeric code rather than aborting it.
package series
