// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/davetashner/advancecard/internal/redact"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the root command and maps its error to a process exit code.
// Messages are redacted before they reach w.
func run(ctx context.Context, w io.Writer) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	code := 1
	var ece *exitCodeError
	if errors.As(err, &ece) {
		code = ece.code
	}
	if msg := err.Error(); msg != "" {
		_, _ = fmt.Fprintln(w, redact.String(msg))
	}
	return code
}
