package jaws

import (
	"net/http"
)

// Transport attaches basic auth and the run's correlation id to every request.
type Transport struct {
	Login         string
	Password      string
	CorrelationID string
	Base          http.RoundTripper
}

func (t Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

func (t Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the original request
	req = req.Clone(req.Context())
	req.SetBasicAuth(t.Login, t.Password)
	req.Header.Set("Accept", "application/json")
	if t.CorrelationID != "" {
		req.Header.Set("X-Correlation-ID", t.CorrelationID)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
