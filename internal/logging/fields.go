package logging

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"

	// Search
	FieldQuery = "query"
	FieldCount = "count"
	FieldSound = "sound_id"

	FieldService = "service"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-ID"
