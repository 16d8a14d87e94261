package chart

import (
	"github.com/watchcharts/chartkit/series"
	"github.com/watchcharts/chartkit/trend"
)

// minTrendPoints is the fewest points a trend line is drawn for.
const minTrendPoints = 3

// TrendLine fits one exponential curve to the points of every visible dataset and
// samples it over their combined x range, widened by cfg.Extension on each side.
//
// It returns nil when the visible datasets hold fewer than three points. Degenerate fits
// (for example y <= 0 or a single distinct x) are returned as points with non-finite Y.
func TrendLine(datasets []Dataset, cfg TrendConfig) series.Series {
	visible := make([]series.Series, 0, len(datasets))
	for _, ds := range datasets {
		if !ds.Hidden {
			visible = append(visible, ds.Data)
		}
	}

	points := series.Concat(visible...)
	if len(points) < minTrendPoints {
		return nil
	}

	fitter := trend.NewFitter()
	fitter.AddSeries(points)
	minX, maxX := points.XRange()

	return trend.ProjectRange(fitter, minX, maxX, cfg.Extension, cfg.Steps)
}

// TrendLine fits a trend line over the currently displayed data of the visible datasets.
// It returns nil when cfg is not enabled.
func (d *Downsampler) TrendLine(cfg TrendConfig) series.Series {
	if !cfg.Enabled {
		return nil
	}

	return TrendLine(d.Datasets(), cfg)
}
