// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the timer sync client runtime.
//
// It wires the stored access config, the timer session and background
// workers into a single process lifecycle.
package client
