package config

import (
	"errors"
	"net/url"
	"strings"
)

// NormalizeBaseURL turns a user supplied backend address into a base URL:
// the scheme defaults to http, the scheme must be http or https, a host is
// required and trailing slashes are trimmed. A path prefix is kept so that
// the backend may be mounted under a sub-path.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", errors.New("address scheme must be http or https")
	}
	if u.Host == "" {
		return "", errors.New("address must include host")
	}
	u.RawQuery = ""
	u.Fragment = ""

	return strings.TrimRight(u.String(), "/"), nil
}
