package downsample

import (
	"math"

	"github.com/watchcharts/chartkit/series"
)

// Downsample reduces data to threshold points using LTTB.
//
// When threshold >= len(data) or threshold <= 0 the input slice is returned unchanged.
// Otherwise the result is a new slice that starts with data[0] and ends with
// data[len(data)-1]. Ties between equal triangle areas keep the first point encountered.
func Downsample(data series.Series, threshold int) series.Series {
	dataLength := len(data)
	if threshold >= dataLength || threshold <= 0 {
		return data
	}

	sampled := make(series.Series, 0, max(threshold, 2))

	// bucket width, leaving room for the first and last point
	every := float64(dataLength-2) / float64(threshold-2)

	a := 0
	nextA := 0
	maxAreaPoint := data[0]

	sampled = append(sampled, data[a])

	for i := 0; i < threshold-2; i++ {
		// average of the next bucket is the third triangle vertex
		avgRangeStart := int(math.Floor(float64(i+1)*every)) + 1
		avgRangeEnd := min(int(math.Floor(float64(i+2)*every))+1, dataLength)
		avg := average(data[avgRangeStart:avgRangeEnd])

		rangeOffs := int(math.Floor(float64(i)*every)) + 1
		rangeTo := int(math.Floor(float64(i+1)*every)) + 1

		pointA := data[a]
		maxArea := -1.0

		for ; rangeOffs < rangeTo; rangeOffs++ {
			area := triangleArea(pointA, data[rangeOffs], avg)
			if area > maxArea {
				maxArea = area
				maxAreaPoint = data[rangeOffs]
				nextA = rangeOffs
			}
		}

		sampled = append(sampled, maxAreaPoint)
		a = nextA
	}

	sampled = append(sampled, data[dataLength-1])

	return sampled
}

// average returns the arithmetic mean of a bucket.
func average(bucket series.Series) series.Point {
	var avg series.Point
	for _, p := range bucket {
		avg.X += p.X
		avg.Y += p.Y
	}
	n := float64(len(bucket))
	avg.X /= n
	avg.Y /= n

	return avg
}

// triangleArea returns the area of the triangle (a, b, c).
func triangleArea(a, b, c series.Point) float64 {
	return math.Abs((a.X-c.X)*(b.Y-a.Y)-(a.X-b.X)*(c.Y-a.Y)) * 0.5
}
