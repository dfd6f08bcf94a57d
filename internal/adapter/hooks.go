// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the per-request trace identifier.
const TraceIDHeader = "X-Trace-ID"

func (h *httpAccountsAdapter) withTraceID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(TraceIDHeader) == "" {
		r.SetHeader(TraceIDHeader, h.traces.Generate())
	}
	return nil
}

func (h *httpAccountsAdapter) withLogging(_ *resty.Client, resp *resty.Response) error {
	req := resp.Request

	h.logger.WithTraceID(req.Header.Get(TraceIDHeader)).Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Int("size", len(resp.Body())).
		Send()

	return nil
}

func (h *httpAccountsAdapter) logTransportError(req *resty.Request, err error) {
	h.logger.WithTraceID(req.Header.Get(TraceIDHeader)).Error().
		Err(err).
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("request failed")
}
