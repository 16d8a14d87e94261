// Package chart connects the downsample and trend packages to a chart's datasets.
//
// A chart owns a set of datasets, each with the series it currently displays. The
// Downsampler in this package plays the role of a chart plugin: the chart calls its hooks
// at fixed points of its lifecycle and the Downsampler replaces each targeted dataset's
// displayed series with an LTTB reduction.
//
//	cfg, err := chart.NewConfig(chart.WithEnabled(true), chart.WithThreshold(500))
//	d := chart.NewDownsampler(store.NewMemoryStore(0), cfg)
//	d.SetData(ctx, chart.Dataset{ID: "cpu", Data: points})
//	d.Init(ctx)          // once, when the chart is created
//	d.BeforeUpdate(ctx)  // before every redraw
//	d.AfterUpdate(ctx)   // after every redraw
//	d.Trigger(ctx, 200)  // manual re-downsample with a new threshold
//
// # Original Data
//
// The first downsample of a dataset stashes its full-resolution series in a store.Store.
// Every later pass reduces the stashed original, never the already reduced series, so
// repeated redraws or threshold changes do not compound information loss. Supplying new
// data with SetData discards the stash; the next pass stashes the new data.
//
// # Trend Lines
//
// TrendLine fits one exponential curve over all visible datasets and samples it over the
// data range widened by an extension factor.
package chart
