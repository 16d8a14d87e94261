package trend

import (
	"fmt"
	"math"
	"testing"

	"github.com/watchcharts/chartkit/series"
)

func generateBenchmarkData(size int) series.Series {
	s := make(series.Series, size)
	for i := range s {
		x := float64(i)
		s[i] = series.Point{X: x, Y: 10 * math.Pow(1.01, x) * (1 + 0.02*math.Sin(x))}
	}

	return s
}

// BenchmarkFitter_AddSeries benchmarks accumulating the running sums
func BenchmarkFitter_AddSeries(b *testing.B) {
	sizes := []int{10, 100, 1000, 5000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			data := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				f := NewFitter()
				f.AddSeries(data)
			}
		})
	}
}

// BenchmarkProjectRange benchmarks sampling a fitted curve
func BenchmarkProjectRange(b *testing.B) {
	steps := []int{10, 100, 1000}
	f := NewFitter()
	f.AddSeries(generateBenchmarkData(1000))

	for _, n := range steps {
		b.Run(fmt.Sprintf("Steps_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ProjectRange(f, 0, 999, DefaultExtension, n)
			}
		})
	}
}
