// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package refresh

import "log/slog"

// Events is the host channel that tracks the rendering lifecycle. Every
// refresh reports started, then exactly one of finished or failed.
type Events interface {
	RenderingStarted(id string)
	RenderingFinished(id string)
	RenderingFailed(id string, reason string)
}

// LogEvents reports rendering events through slog.
type LogEvents struct {
	Logger *slog.Logger
}

func (e LogEvents) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// RenderingStarted implements Events.
func (e LogEvents) RenderingStarted(id string) {
	e.logger().Debug("rendering started", "refresh_id", id)
}

// RenderingFinished implements Events.
func (e LogEvents) RenderingFinished(id string) {
	e.logger().Debug("rendering finished", "refresh_id", id)
}

// RenderingFailed implements Events.
func (e LogEvents) RenderingFailed(id string, reason string) {
	e.logger().Warn("rendering failed", "refresh_id", id, "error", reason)
}
