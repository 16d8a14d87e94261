package chart

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/watchcharts/chartkit/downsample"
	"github.com/watchcharts/chartkit/series"
	"github.com/watchcharts/chartkit/store"
)

// Downsampler applies LTTB downsampling to the datasets of one chart.
//
// It is safe for concurrent use, although a chart normally drives it from a single
// render loop.
type Downsampler struct {
	sync.Mutex

	cfg    Config
	stash  store.Store
	logger *log.Entry

	order    []string
	datasets map[string]*record

	initOnce sync.Once
}

// record is a registered dataset together with its full-resolution series. The stash
// holds a copy of original; when a stash entry expires or is evicted, original is
// written back instead of the displayed data.
type record struct {
	Dataset
	original series.Series
}

// DownsamplerOption configures a Downsampler beyond its Config.
type DownsamplerOption func(*Downsampler)

// WithLogger sets the logger. The default is the standard logrus logger.
func WithLogger(logger *log.Entry) DownsamplerOption {
	return func(d *Downsampler) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDownsampler creates a Downsampler that stashes original series in stash.
// A nil stash uses an in-memory store without expiry.
func NewDownsampler(stash store.Store, cfg Config, opts ...DownsamplerOption) *Downsampler {
	if stash == nil {
		stash = store.NewMemoryStore(0)
	}

	d := &Downsampler{
		cfg:      cfg,
		stash:    stash,
		logger:   log.NewEntry(log.StandardLogger()),
		datasets: make(map[string]*record),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.WithField("component", "downsampler")

	return d
}

// Config returns a copy of the current configuration.
func (d *Downsampler) Config() Config {
	d.Lock()
	defer d.Unlock()

	cfg := d.cfg
	cfg.TargetDatasets = append([]string{}, d.cfg.TargetDatasets...)

	return cfg
}

// SetData registers a dataset or replaces its data. The new data becomes the
// full-resolution original: any stashed original of the dataset is discarded.
// ds.Data is copied, so the caller may reuse the slice.
func (d *Downsampler) SetData(ctx context.Context, ds Dataset) error {
	if ds.ID == "" {
		return errors.New("dataset id must not be empty")
	}

	d.Lock()
	defer d.Unlock()

	if err := d.stash.Delete(ctx, ds.ID); err != nil {
		return errors.Wrapf(err, "discard original of dataset %q", ds.ID)
	}

	if _, ok := d.datasets[ds.ID]; !ok {
		d.order = append(d.order, ds.ID)
	}
	original := ds.Data.Clone()
	d.datasets[ds.ID] = &record{
		Dataset:  Dataset{ID: ds.ID, Hidden: ds.Hidden, Data: original},
		original: original,
	}

	return nil
}

// SetHidden changes the visibility of a dataset. Hidden datasets are still downsampled
// but are left out of trend lines.
func (d *Downsampler) SetHidden(id string, hidden bool) bool {
	d.Lock()
	defer d.Unlock()

	rec, ok := d.datasets[id]
	if ok {
		rec.Hidden = hidden
	}

	return ok
}

// Remove forgets a dataset and its stashed original.
func (d *Downsampler) Remove(ctx context.Context, id string) error {
	d.Lock()
	defer d.Unlock()

	if _, ok := d.datasets[id]; !ok {
		return nil
	}
	delete(d.datasets, id)
	for i, oid := range d.order {
		if oid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}

	return errors.Wrapf(d.stash.Delete(ctx, id), "remove original of dataset %q", id)
}

// Displayed returns a copy of the series currently displayed for a dataset.
func (d *Downsampler) Displayed(id string) (series.Series, bool) {
	d.Lock()
	defer d.Unlock()

	rec, ok := d.datasets[id]
	if !ok {
		return nil, false
	}

	return rec.Data.Clone(), true
}

// Datasets returns the registered datasets in registration order with copies of their
// displayed data.
func (d *Downsampler) Datasets() []Dataset {
	d.Lock()
	defer d.Unlock()

	out := make([]Dataset, 0, len(d.order))
	for _, id := range d.order {
		ds := d.datasets[id].Dataset
		ds.Data = ds.Data.Clone()
		out = append(out, ds)
	}

	return out
}

// State returns copies of the original and displayed series of a dataset. Before the
// dataset has been downsampled the original is the displayed series.
func (d *Downsampler) State(ctx context.Context, id string) (DatasetState, error) {
	d.Lock()
	defer d.Unlock()

	rec, ok := d.datasets[id]
	if !ok {
		return DatasetState{}, errors.Errorf("unknown dataset %q", id)
	}

	original, err := d.original(ctx, rec, false)
	if err != nil {
		return DatasetState{}, err
	}

	return DatasetState{Original: original.Clone(), Displayed: rec.Data.Clone()}, nil
}

// Init runs the chart initialization hook. It downsamples when OnInit is set and only
// has an effect the first time it is called.
func (d *Downsampler) Init(ctx context.Context) error {
	var err error
	d.initOnce.Do(func() {
		d.Lock()
		defer d.Unlock()

		if d.cfg.OnInit {
			err = d.downsampleAll(ctx)
		}
	})

	return err
}

// BeforeUpdate runs before each chart update and downsamples when Auto is set.
func (d *Downsampler) BeforeUpdate(ctx context.Context) error {
	d.Lock()
	defer d.Unlock()

	if !d.cfg.Auto {
		return nil
	}

	return d.downsampleAll(ctx)
}

// AfterUpdate runs after each chart update. With RestoreOriginalData set, every targeted
// dataset with a stashed original displays that original again.
func (d *Downsampler) AfterUpdate(ctx context.Context) error {
	d.Lock()
	defer d.Unlock()

	if !d.cfg.Enabled || !d.cfg.RestoreOriginalData {
		return nil
	}

	for _, rec := range d.targets() {
		original, err := d.original(ctx, rec, false)
		if err != nil {
			return err
		}
		rec.Data = original
	}

	return nil
}

// Trigger downsamples immediately. An optional threshold replaces the configured one
// for this and all later passes.
func (d *Downsampler) Trigger(ctx context.Context, threshold ...int) error {
	d.Lock()
	defer d.Unlock()

	if len(threshold) > 0 {
		d.cfg.Threshold = threshold[0]
	}

	return d.downsampleAll(ctx)
}

// targets returns the datasets selected by TargetDatasets, in registration order.
func (d *Downsampler) targets() []*record {
	out := make([]*record, 0, len(d.order))
	for _, id := range d.order {
		if d.cfg.Targets(id) {
			out = append(out, d.datasets[id])
		}
	}

	return out
}

func (d *Downsampler) downsampleAll(ctx context.Context) error {
	if !d.cfg.Enabled {
		return nil
	}

	for _, rec := range d.targets() {
		if err := d.downsampleDataset(ctx, rec); err != nil {
			return err
		}
	}

	return nil
}

// original returns the full-resolution series of rec, preferring the stash. A missing
// stash entry falls back to the series registered by SetData, which is written back to
// the stash when restash is set.
func (d *Downsampler) original(ctx context.Context, rec *record, restash bool) (series.Series, error) {
	stashed, ok, err := d.stash.Load(ctx, rec.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "load original of dataset %q", rec.ID)
	}
	if ok {
		return stashed, nil
	}

	if restash {
		if err := d.stash.Save(ctx, rec.ID, rec.original); err != nil {
			return nil, errors.Wrapf(err, "stash original of dataset %q", rec.ID)
		}
	}

	return rec.original, nil
}

// downsampleDataset reduces the full-resolution series of rec onto its displayed data.
// The displayed data is never used as a source.
func (d *Downsampler) downsampleDataset(ctx context.Context, rec *record) error {
	source, err := d.original(ctx, rec, true)
	if err != nil {
		return err
	}

	rec.Data = downsample.Downsample(source, d.cfg.Threshold)

	d.logger.WithFields(log.Fields{
		"dataset":   rec.ID,
		"threshold": d.cfg.Threshold,
		"points":    len(source),
		"displayed": len(rec.Data),
		"ratio":     downsample.Ratio(len(source), len(rec.Data)),
	}).Debug("downsampled dataset")

	return nil
}
