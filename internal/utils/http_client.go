// Package utils provides small helpers shared by the transport layer: the
// HTTP client wrapper and the trace identifier generator.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:2345/users")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own resty.Client. Redirects
// are limited to five hops.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("User-Agent", "harbor-admin")
	return &HTTPClient{Client: client}
}
