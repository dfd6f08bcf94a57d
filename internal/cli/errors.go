// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"strings"

	"github.com/MKhiriev/harbor-admin/internal/service"
)

// describeError turns err into the line printed for the operator: the
// backend's own message when there is one, a short hint for network
// failures, the raw error otherwise.
func describeError(err error) string {
	if err == nil {
		return ""
	}
	if notice, ok := service.Feedback(err); ok {
		return notice.Text
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "backend unavailable: " + err.Error()
	}

	return err.Error()
}
