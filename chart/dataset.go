package chart

import "github.com/watchcharts/chartkit/series"

// Dataset is one series of a chart.
type Dataset struct {
	ID     string
	Hidden bool
	Data   series.Series
}

// DatasetState pairs the full-resolution series of a dataset with the series on display.
// Before the first downsample both are the same series.
type DatasetState struct {
	Original  series.Series
	Displayed series.Series
}

// Downsampled reports whether the displayed series is shorter than the original.
func (s DatasetState) Downsampled() bool {
	return len(s.Displayed) < len(s.Original)
}
