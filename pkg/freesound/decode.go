package freesound

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotObject is returned when a payload is not a JSON object.
	ErrNotObject = errors.New("payload is not a JSON object")
	// ErrMissingID is returned when a single sound payload has no usable id.
	ErrMissingID = errors.New("sound id missing")
)

// DecodeSound decodes a single sound payload. The id field is mandatory and
// must be a number; every other field falls back to its default.
func DecodeSound(data []byte) (Sound, error) {
	if err := requireObject(data); err != nil {
		return Sound{}, err
	}
	var probe struct {
		ID *json.Number `json:"id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Sound{}, fmt.Errorf("decode sound id: %w", err)
	}
	if probe.ID == nil {
		return Sound{}, ErrMissingID
	}
	var sound Sound
	if err := json.Unmarshal(data, &sound); err != nil {
		return Sound{}, fmt.Errorf("decode sound: %w", err)
	}
	return sound, nil
}

// DecodeSearchResponse decodes a page of search results, preserving the
// server's item order and links.
func DecodeSearchResponse(data []byte) (SearchResponse, error) {
	if err := requireObject(data); err != nil {
		return SearchResponse{}, err
	}
	var resp SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return SearchResponse{}, fmt.Errorf("decode search response: %w", err)
	}
	return resp, nil
}

// requireObject rejects anything that is not an object up front; json.Unmarshal
// would otherwise accept a bare null.
func requireObject(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrNotObject
	}
	return nil
}

// errorMessage recovers a human-readable message from an error body.
func errorMessage(body []byte) string {
	if requireObject(body) != nil {
		return ""
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"detail", "error", "message"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
			return msg
		}
	}
	return ""
}
