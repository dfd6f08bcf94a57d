// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo carries build metadata injected with -ldflags. Empty values
// are reported as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

// Version returns the release version of the binary.
func (a AppBuildInfo) Version() string { return orNotAvailable(a.version) }

// Date returns the build timestamp.
func (a AppBuildInfo) Date() string { return orNotAvailable(a.date) }

// Commit returns the source commit the binary was built from.
func (a AppBuildInfo) Commit() string { return orNotAvailable(a.commit) }

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
