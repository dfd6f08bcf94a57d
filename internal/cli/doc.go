// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli defines the harbor-admin command tree.
//
// Running harbor-admin without a subcommand opens the interactive panel. The
// list, create, passwd and delete subcommands perform the same account
// operations non-interactively and share the account rules of the panel.
// Configuration flags are persistent and apply to every subcommand.
package cli
