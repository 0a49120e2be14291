// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package refresh runs one host-triggered update of the card: it rebuilds
// settings from persisted metadata, extracts label values from the table,
// resolves conditional colors and assembles the frame the rendering layer
// draws. Failures are reported to the host events channel, never raised.
package refresh

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/davetashner/advancecard/internal/card"
	"github.com/davetashner/advancecard/internal/dataview"
	"github.com/davetashner/advancecard/internal/format"
	"github.com/davetashner/advancecard/internal/pane"
)

// Status is the result kind of one refresh.
type Status int

// Refresh statuses.
const (
	Rendered Status = iota
	NoData
	Failed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Rendered:
		return "rendered"
	case NoData:
		return "no_data"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UpdateOptions is what the host supplies on every refresh.
type UpdateOptions struct {
	DataView *dataview.DataView
	Viewport Viewport
	// Locale overrides the data view locale when set.
	Locale string
}

// Outcome is the result of one refresh.
type Outcome struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
	Frame  *Frame `json:"frame,omitempty"`
	Err    error  `json:"-"`
}

// Visual is one card instance. It keeps the settings and table of the last
// successful refresh for the property pane. A Visual is not safe for
// concurrent use; the host drives one refresh at a time.
type Visual struct {
	events Events
	newID  func() string
	build  func(*card.Settings, dataview.Values) *Frame

	settings *card.Settings
	table    *dataview.Table
}

// Option configures a Visual.
type Option func(*Visual)

// WithIDGenerator replaces the refresh ID source.
func WithIDGenerator(fn func() string) Option {
	return func(v *Visual) { v.newID = fn }
}

// New creates a Visual reporting to events. A nil events logs through slog.
func New(events Events, opts ...Option) *Visual {
	if events == nil {
		events = LogEvents{}
	}
	v := &Visual{
		events:   events,
		newID:    uuid.NewString,
		build:    buildFrame,
		settings: card.Defaults(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Update runs one refresh.
func (v *Visual) Update(opts UpdateOptions) Outcome {
	id := v.newID()
	v.events.RenderingStarted(id)

	frame, status, err := v.render(id, opts)
	if err != nil {
		v.events.RenderingFailed(id, err.Error())
		return Outcome{ID: id, Status: Failed, Err: err}
	}
	if status == NoData {
		slog.Debug("refresh: nothing to render", "refresh_id", id)
	}
	v.events.RenderingFinished(id)
	return Outcome{ID: id, Status: status, Frame: frame}
}

// render does the work of Update and turns a panic into an error.
func (v *Visual) render(id string, opts UpdateOptions) (frame *Frame, status Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			frame, status = nil, Failed
			err = fmt.Errorf("refresh panicked: %v", r)
		}
	}()

	dv := opts.DataView
	if dv == nil || dv.Table.Empty() {
		return nil, NoData, nil
	}

	settings, err := card.Parse(dv.Objects)
	if err != nil {
		return nil, Failed, fmt.Errorf("parse settings: %w", err)
	}
	settings.Conditions.Clamp()

	locale := opts.Locale
	if locale == "" {
		locale = dv.Locale
	}
	if locale == "" {
		locale = format.DefaultLocale
	}

	values := dataview.Extract(dv.Table, settings, locale)
	if !values.HasData {
		v.commit(settings, dv.Table)
		return nil, NoData, nil
	}

	frame = v.build(settings, values)
	frame.ID = id
	frame.Locale = locale
	frame.Viewport = opts.Viewport

	v.commit(settings, dv.Table)
	return frame, Rendered, nil
}

func (v *Visual) commit(s *card.Settings, t *dataview.Table) {
	v.settings = s
	v.table = t
}

// Settings returns the settings of the last successful refresh, or the
// defaults before the first one.
func (v *Visual) Settings() *card.Settings {
	return v.settings
}

// Describe projects the last refreshed settings through the property pane.
func (v *Visual) Describe(obj card.ObjectName) []pane.Instance {
	return pane.Describe(obj, v.settings, v.table)
}

// FormattingModel builds the formatting cards of the last refreshed settings.
func (v *Visual) FormattingModel() []pane.FormattingCard {
	return pane.FormattingModel(v.settings)
}

// ErrFailed marks an outcome error returned by Result.
var ErrFailed = errors.New("refresh failed")

// Result converts an outcome to an error-returning form for callers that
// treat a failed refresh as an error.
func (o Outcome) Result() (*Frame, error) {
	if o.Status == Failed {
		return nil, fmt.Errorf("%w: %w", ErrFailed, o.Err)
	}
	return o.Frame, nil
}
