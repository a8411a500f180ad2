// Package logging builds zerolog loggers and an HTTP transport that logs
// outbound API requests.
//
// The search browser owns the terminal, so loggers normally write to a file
// opened with OpenFile. Transport records method, path, status and latency
// for every request at debug level (warn for failures) and stamps an
// X-Request-ID header. Query strings are never logged because they carry
// the API token.
package logging
