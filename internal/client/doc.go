// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

// Package client implements the interactive application runtime.
//
// It wires the local storage, the remote food database adapter, the service
// layer, the background cache refresher, and the terminal UI into a single
// process lifecycle.
package client
