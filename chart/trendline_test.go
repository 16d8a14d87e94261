package chart

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/watchcharts/chartkit/series"
)

func exponentialSeries(a, r float64, xs ...float64) series.Series {
	s := make(series.Series, len(xs))
	for i, x := range xs {
		s[i] = series.Point{X: x, Y: a * math.Pow(r, x)}
	}

	return s
}

func TestTrendLine(t *testing.T) {
	datasets := []Dataset{
		{ID: "low", Data: exponentialSeries(2, 1.5, 0, 1, 2)},
		{ID: "high", Data: exponentialSeries(2, 1.5, 3, 4)},
		{ID: "noise", Hidden: true, Data: series.Series{{X: 100, Y: -50}}},
	}
	cfg := TrendConfig{Enabled: true, Extension: 0.25, Steps: 8}

	line := TrendLine(datasets, cfg)
	require.Len(t, line, 9)
	require.Equal(t, -1.0, line[0].X)
	require.Equal(t, 5.0, line[8].X)
	for _, p := range line {
		require.InDelta(t, 2*math.Pow(1.5, p.X), p.Y, 1e-9)
	}
}

func TestTrendLine_TooFewPoints(t *testing.T) {
	cfg := DefaultTrendConfig()
	require.Nil(t, TrendLine(nil, cfg))
	require.Nil(t, TrendLine([]Dataset{{ID: "a", Data: exponentialSeries(1, 2, 0, 1)}}, cfg))
	require.Nil(t, TrendLine([]Dataset{
		{ID: "a", Data: exponentialSeries(1, 2, 0, 1)},
		{ID: "b", Hidden: true, Data: exponentialSeries(1, 2, 2, 3)},
	}, cfg))
}

func TestTrendLine_Degenerate(t *testing.T) {
	line := TrendLine([]Dataset{{ID: "a", Data: series.Series{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 3}}}}, DefaultTrendConfig())
	require.Len(t, line, 101)
	for _, p := range line {
		require.False(t, p.IsFinite())
	}
}

func TestDownsampler_TrendLine(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestDownsampler(t, WithThreshold(10))
	require.NoError(t, d.SetData(ctx, Dataset{ID: "a", Data: exponentialSeries(3, 1.1, seq(50)...)}))
	require.NoError(t, d.Init(ctx))

	require.Nil(t, d.TrendLine(DefaultTrendConfig()))

	line := d.TrendLine(TrendConfig{Enabled: true, Steps: 4})
	require.Len(t, line, 5)
	require.Equal(t, 0.0, line[0].X)
	require.Equal(t, 49.0, line[4].X)
	for _, p := range line {
		require.InDelta(t, 3*math.Pow(1.1, p.X), p.Y, 1e-6*p.Y)
	}
}

func seq(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	return xs
}
