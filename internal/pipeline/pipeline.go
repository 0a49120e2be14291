// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package pipeline drives card refreshes the way a host would: it loads a
// data view and a persisted settings snapshot, layers them, checks the data
// view and hands it to a long-lived refresh.Visual.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/davetashner/advancecard/internal/card"
	"github.com/davetashner/advancecard/internal/config"
	"github.com/davetashner/advancecard/internal/dataview"
	"github.com/davetashner/advancecard/internal/pane"
	"github.com/davetashner/advancecard/internal/refresh"
)

// ErrNoDataView is returned by Run when a request names no data view.
var ErrNoDataView = errors.New("no data view given")

// Request describes one refresh.
type Request struct {
	// DataPath is a data view JSON file. Ignored when DataView is set.
	DataPath string
	DataView *dataview.DataView

	// SettingsPath is a persisted settings snapshot (.yaml, .toml or .json)
	// layered over the data view's own objects.
	SettingsPath string
	// Objects are layered last, over the snapshot.
	Objects card.Objects

	// Locale overrides the data view locale. DefaultLocale applies only
	// when neither is set.
	Locale        string
	DefaultLocale string
	Viewport      refresh.Viewport
}

// Pipeline owns one card instance across refreshes. It is safe for
// concurrent use; refreshes run one at a time.
type Pipeline struct {
	mu     sync.Mutex
	visual *refresh.Visual
}

// New creates a Pipeline whose card reports to events.
func New(events refresh.Events, opts ...refresh.Option) *Pipeline {
	return &Pipeline{visual: refresh.New(events, opts...)}
}

// Run loads the request inputs and refreshes the card. Input problems are
// returned as errors; a refresh that fails is reported in the outcome.
func (p *Pipeline) Run(ctx context.Context, req Request) (refresh.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return refresh.Outcome{}, err
	}
	dv, err := Load(req)
	if err != nil {
		return refresh.Outcome{}, err
	}
	for _, problem := range ValidateDataView(dv) {
		slog.Warn("data view problem", "field", problem.Field, "error", problem.Message)
	}

	locale := req.Locale
	if locale == "" && dv.Locale == "" {
		locale = req.DefaultLocale
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.visual.Update(refresh.UpdateOptions{
		DataView: dv,
		Viewport: req.Viewport,
		Locale:   locale,
	})
	return out, nil
}

// Describe projects one settings object of the last successful refresh.
func (p *Pipeline) Describe(obj card.ObjectName) []pane.Instance {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visual.Describe(obj)
}

// DescribeNames projects the named settings objects, or every object when
// names is empty. An unknown name is an error.
func (p *Pipeline) DescribeNames(names []string) ([]pane.Instance, error) {
	objects := card.ObjectNames()
	if len(names) > 0 {
		objects = objects[:0:0]
		for _, name := range names {
			obj, ok := card.ParseObjectName(name)
			if !ok {
				return nil, fmt.Errorf("unknown settings object %q", name)
			}
			objects = append(objects, obj)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	instances := make([]pane.Instance, 0, len(objects))
	for _, obj := range objects {
		instances = append(instances, p.visual.Describe(obj)...)
	}
	return instances, nil
}

// FormattingModel returns the formatting cards of the last successful refresh.
func (p *Pipeline) FormattingModel() []pane.FormattingCard {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visual.FormattingModel()
}

// Load reads the data view of req and layers the settings snapshot and
// inline objects over its objects. The returned data view is a copy when
// layering applies.
func Load(req Request) (*dataview.DataView, error) {
	dv := req.DataView
	if dv == nil {
		if req.DataPath == "" {
			return nil, ErrNoDataView
		}
		var err error
		if dv, err = LoadDataView(req.DataPath); err != nil {
			return nil, err
		}
	}

	overlay := req.Objects
	if req.SettingsPath != "" {
		snapshot, err := config.LoadSnapshot(req.SettingsPath)
		if err != nil {
			return nil, err
		}
		overlay = card.Merge(snapshot, req.Objects)
	}
	if len(overlay) == 0 {
		return dv, nil
	}
	layered := *dv
	layered.Objects = card.Merge(dv.Objects, overlay)
	return &layered, nil
}

// LoadDataView decodes the data view JSON file at path.
func LoadDataView(path string) (*dataview.DataView, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-supplied by design
	if err != nil {
		return nil, fmt.Errorf("open data view: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	dv, err := dataview.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dv, nil
}
