// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the harbor-admin application runtime.
//
// It wires the backend adapter, the account service and the terminal UI into
// a single process lifecycle.
package client
