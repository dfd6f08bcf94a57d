// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/harbor-admin/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, backend string) string {
	var b strings.Builder

	b.WriteString("Application: harbor-admin\n")
	b.WriteString("Version: ")
	b.WriteString(info.Version())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.Date())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.Commit())
	if backend != "" {
		b.WriteString("\n")
		b.WriteString("Backend: ")
		b.WriteString(backend)
	}

	return renderPage("About", b.String(), "esc: back")
}
