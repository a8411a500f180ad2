package logging

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Transport is an http.RoundTripper that tags each outbound request with a
// request id and logs its outcome. Only the URL path is logged so query
// credentials never reach the log.
type Transport struct {
	Base   http.RoundTripper
	Logger zerolog.Logger
}

// NewHTTPClient returns an http.Client that logs through logger.
func NewHTTPClient(logger zerolog.Logger, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &Transport{Logger: logger},
	}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	reqID := req.Header.Get(HeaderRequestID)
	if reqID == "" {
		reqID = uuid.New().String()
		req = req.Clone(req.Context())
		req.Header.Set(HeaderRequestID, reqID)
	}

	child := t.Logger.With().
		Str(FieldRequestID, reqID).
		Str(FieldMethod, req.Method).
		Str(FieldPath, req.URL.Path).
		Logger()

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	latency := float64(time.Since(start).Milliseconds())
	if err != nil {
		child.Warn().
			Err(err).
			Float64(FieldLatency, latency).
			Msg("request failed")
		return nil, err
	}

	event := child.Debug()
	if resp.StatusCode >= 400 {
		event = child.Warn()
	}
	event.
		Int(FieldStatus, resp.StatusCode).
		Float64(FieldLatency, latency).
		Msg("request completed")
	return resp, nil
}
