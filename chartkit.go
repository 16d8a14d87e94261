// Package chartkit reduces and summarizes time-series data for chart rendering.
//
// Dense series are reduced with the Largest-Triangle-Three-Buckets (LTTB) algorithm,
// which keeps the points that carry the visual shape of a line: peaks, valleys and
// trend changes. An exponential trend line can be fitted over the same data by
// least-squares regression on ln(y).
//
// # Core Features
//
//   - LTTB downsampling to a fixed point budget, deterministic and allocation-bounded
//   - Exponential trend fitting (y = A·R^x) with range projection
//   - Chart-level Downsampler with lifecycle hooks that always reduces from the
//     full-resolution original, never from already reduced data
//   - Original series stashed in memory or in Redis, with optional payload compression
//   - Coercion of timestamps, durations and numeric strings to float coordinates
//
// # Basic Usage
//
// Reducing a series:
//
//	import "github.com/watchcharts/chartkit"
//
//	points := chartkit.DownsampleXY(timestamps, values, 500)
//
// Driving a chart:
//
//	cfg, _ := chart.NewConfig(chart.WithEnabled(true), chart.WithThreshold(500))
//	ds := chartkit.NewDownsampler(cfg)
//	_ = ds.SetData(ctx, chart.Dataset{ID: "cpu", Data: points})
//	_ = ds.Init(ctx)
//
//	// on every redraw
//	_ = ds.BeforeUpdate(ctx)
//	render(ds.Datasets())
//	_ = ds.AfterUpdate(ctx)
//
// Fitting a trend:
//
//	curve := chartkit.FitTrend(points)
//	fmt.Println(curve.Formula())
//
// # Package Structure
//
// This package provides top-level wrappers around the series, downsample, trend,
// chart, store and codec packages for the most common use cases. Use those packages
// directly for fine-grained control.
package chartkit

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/watchcharts/chartkit/chart"
	"github.com/watchcharts/chartkit/codec"
	"github.com/watchcharts/chartkit/downsample"
	"github.com/watchcharts/chartkit/format"
	"github.com/watchcharts/chartkit/series"
	"github.com/watchcharts/chartkit/store"
	"github.com/watchcharts/chartkit/trend"
)

// Downsample reduces s to at most threshold points with LTTB.
//
// The input is returned unchanged when threshold >= len(s) or threshold <= 0.
// Otherwise the result holds exactly threshold points and always starts with the
// first and ends with the last input point.
func Downsample(s series.Series, threshold int) series.Series {
	return downsample.Downsample(s, threshold)
}

// DownsampleXY builds a series from parallel x and y slices and reduces it with LTTB.
//
// Coordinates may be any value series.Float understands: numbers, numeric strings,
// time.Time (Unix milliseconds) or time.Duration (milliseconds). Unconvertible values
// become NaN. Extra elements of the longer slice are ignored.
//
// Example:
//
//	points := chartkit.DownsampleXY(
//	    []time.Time{t0, t1, t2, t3},
//	    []float64{1.5, 2.5, 0.5, 3},
//	    3,
//	)
func DownsampleXY[X, Y any](xs []X, ys []Y, threshold int) series.Series {
	return downsample.Downsample(series.FromXY(xs, ys), threshold)
}

// NewTrendFitter creates an empty exponential trend fitter.
func NewTrendFitter() *trend.Fitter {
	return trend.NewFitter()
}

// FitTrend fits y = A·R^x to s and returns the fitted curve.
//
// Points with y <= 0, or a series without two distinct x values, produce a curve
// with non-finite coefficients; check Curve.IsFinite before drawing it.
func FitTrend(s series.Series) *trend.Curve {
	f := trend.NewFitter()
	f.AddSeries(s)

	return f.Curve()
}

// TrendLine fits one trend over the visible datasets and samples it across their
// x range widened by cfg.Extension. See chart.TrendLine.
func TrendLine(datasets []chart.Dataset, cfg chart.TrendConfig) series.Series {
	return chart.TrendLine(datasets, cfg)
}

// NewDownsampler creates a chart Downsampler that keeps original series in memory.
//
// Parameters:
//   - cfg: Downsampler configuration, usually from chart.NewConfig or chart.LoadSettings
//   - opts: Optional settings such as chart.WithLogger
func NewDownsampler(cfg chart.Config, opts ...chart.DownsamplerOption) *chart.Downsampler {
	return chart.NewDownsampler(store.NewMemoryStore(0), cfg, opts...)
}

// NewRedisDownsampler creates a chart Downsampler that keeps original series in Redis,
// so several renderers of the same chart share one full-resolution copy.
//
// Parameters:
//   - ctx: Context for the initial connection check
//   - redisCfg: Redis connection and payload settings
//   - cfg: Downsampler configuration
//   - logger: Logger for both the store and the downsampler; nil uses the standard logger
//
// Returns:
//   - *chart.Downsampler: The downsampler
//   - *store.RedisStore: The underlying store, to be closed by the caller
//   - error: An error if Redis cannot be reached
func NewRedisDownsampler(ctx context.Context, redisCfg store.RedisConfig, cfg chart.Config, logger *log.Entry) (*chart.Downsampler, *store.RedisStore, error) {
	rs, err := store.NewRedisStore(ctx, redisCfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return chart.NewDownsampler(rs, cfg, chart.WithLogger(logger)), rs, nil
}

// LoadSettings reads chart settings from a YAML file. See chart.LoadSettings.
func LoadSettings(path string) (chart.Settings, error) {
	return chart.LoadSettings(path)
}

// EncodeSeries serializes s into the binary series payload with the given compression.
func EncodeSeries(s series.Series, compression format.CompressionType) ([]byte, error) {
	return codec.Encode(s, codec.WithCompression(compression))
}

// DecodeSeries parses a payload produced by EncodeSeries.
func DecodeSeries(data []byte) (series.Series, error) {
	return codec.Decode(data)
}
