// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand named by args, or starts the interactive
	// view when args is empty, and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}

// Interactive is the full-screen view started when no subcommand is given.
type Interactive interface {
	Run(ctx context.Context) error
}
