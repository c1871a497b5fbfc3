// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the notes client application runtime.
//
// It dispatches the one-shot subcommands (list, import, delete, version)
// to the notes adapter and falls back to the interactive terminal view
// when started without arguments.
package client
