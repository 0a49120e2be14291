// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the advancecard CLI.
const (
	ExitOK           = 0 // Card rendered.
	ExitInvalidArgs  = 1 // Invalid arguments, config or input files.
	ExitRenderFailed = 2 // The refresh failed; the failure is in the output.
	ExitNoData       = 3 // The data view had nothing to render.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitRenderFailed:
			msg = "advancecard: refresh failed"
		case ExitNoData:
			msg = "advancecard: nothing to render"
		default:
			msg = "advancecard: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
