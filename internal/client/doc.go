// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the gitstalker application runtime.
//
// It runs either the terminal wizard or the headless line-oriented flow on
// top of the same services.
package client
