// Package freesound provides an HTTP client for the Freesound API v2.
//
// # Overview
//
// This package builds authenticated requests against the Freesound REST API,
// renders search parameters into query strings, and decodes JSON responses
// into typed records. Every call is a single request/response round trip.
//
// # Architecture
//
// The package is split into a handful of files:
//
//   - query.go: SearchQuery builder, SortOption and SoundQuery
//   - types.go: Sound, Previews, Images and SearchResponse
//   - decode.go: payload decoding with per-field defaults
//   - client.go: HTTP transport, credential handling, status routing
//   - errors.go: RequestError, AuthError and APIError
//
// # Client Usage
//
//	client, err := freesound.NewClient(apiKey)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	if err := client.ValidateKey(ctx); err != nil {
//		var authErr *freesound.AuthError
//		if errors.As(err, &authErr) {
//			log.Fatalf("api key rejected: %v", err)
//		}
//		log.Fatalf("probe failed: %v", err)
//	}
//
//	query := freesound.NewSearchQuery().
//		Query("piano").
//		Filter("tag:acoustic").
//		Sort(freesound.SortRatingDesc).
//		PageSize(15).
//		Fields("id", "name", "tags")
//	page, err := client.Search(ctx, query)
//
//	sound, err := client.GetSound(ctx, 1234, freesound.SoundQuery{
//		Descriptors: []string{"lowlevel.mfcc", "rhythm.bpm"},
//		Normalized:  freesound.Bool(true),
//	})
//
// # Query Rendering
//
// SearchQuery.Params renders parameters in a fixed order (query, filter,
// sort, group_by_pack, page, page_size, fields, descriptors, normalized)
// regardless of the order setters were called in. Parameters that were never
// set are omitted. Booleans render as "1" or "0". Lists are comma-joined
// as given, duplicates included. Values are not validated locally; the
// server decides what is acceptable.
//
// # Decoding
//
// Which sound fields the server returns depends on the fields and
// descriptors requested, so decoding is permissive: any absent field takes
// its zero default (empty string, zero, empty tag list, nil optional).
// Bitrate, Bitdepth, Geotag, Pack, Previews, Images and Analysis are
// optional and stay nil when absent. A single sound must carry a numeric id.
// Payloads that are not JSON objects are rejected.
//
// # Authentication
//
// The API key is sent as the token query parameter on every request,
// including FetchPage. The key is scrubbed from transport error messages.
//
// # Error Handling
//
// Request outcomes fail with exactly one of:
//
//   - *RequestError: the request could not complete (network, timeout,
//     cancellation)
//   - *AuthError: ValidateKey received 401
//   - *APIError: any other failure status, or a body that did not decode
//
// For failure statuses the client tries to recover the server's message
// from a JSON body ({"detail": "..."}) before falling back to the status
// text.
//
// # Thread Safety
//
// A Client is safe for concurrent use. SearchQuery values are not; build one
// per search.
//
// # Design Rationale
//
// The package is intentionally minimal:
//   - No caching
//   - No retries or rate-limit handling
//   - No automatic pagination (FetchPage fetches one linked page)
package freesound
