package freesound

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestDecodeSound_MinimalPayloadUsesDefaults(t *testing.T) {
	sound, err := DecodeSound([]byte(`{"id": 7}`))
	if err != nil {
		t.Fatalf("DecodeSound returned error: %v", err)
	}
	want := defaultSound()
	want.ID = 7
	if !reflect.DeepEqual(sound, want) {
		t.Fatalf("DecodeSound = %#v, want %#v", sound, want)
	}
	if sound.Tags == nil {
		t.Fatalf("Tags is nil, want empty slice")
	}
	if sound.Bitrate != nil || sound.Bitdepth != nil || sound.Pack != nil || sound.Previews != nil || sound.Images != nil || sound.Analysis != nil {
		t.Fatalf("optional fields should be absent: %#v", sound)
	}
	if sound.Duration != 0 || sound.Samplerate != 0 {
		t.Fatalf("Duration/Samplerate = %v/%v, want zero", sound.Duration, sound.Samplerate)
	}
}

func TestDecodeSound_FullPayload(t *testing.T) {
	payload := `{
  "id": 794253,
  "url": "https://freesound.org/people/x/sounds/794253/",
  "name": "Rain.wav",
  "tags": ["rain", "field-recording"],
  "description": "Light rain",
  "geotag": "41.4 2.1",
  "created": "2025-03-01T10:20:30.123456",
  "license": "http://creativecommons.org/publicdomain/zero/1.0/",
  "type": "wav",
  "channels": 2,
  "filesize": 5242880,
  "bitrate": 1411.2,
  "bitdepth": 16,
  "duration": 29.7,
  "samplerate": 44100,
  "username": "x",
  "pack": "https://freesound.org/apiv2/packs/1/",
  "previews": {
    "preview-hq-mp3": "hq.mp3",
    "preview-lq-mp3": "lq.mp3",
    "preview-hq-ogg": "hq.ogg",
    "preview-lq-ogg": "lq.ogg"
  },
  "images": {"waveform_l": "wl", "waveform_m": "wm", "spectral_l": "sl", "spectral_m": "sm"},
  "num_downloads": 12,
  "avg_rating": 4.5,
  "num_ratings": 3,
  "num_comments": 1,
  "analysis": {"rhythm": {"bpm": 120}},
  "unknown_field": true
}`
	sound, err := DecodeSound([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeSound returned error: %v", err)
	}
	if sound.ID != 794253 || sound.Name != "Rain.wav" || sound.Channels != 2 || sound.Filesize != 5242880 {
		t.Fatalf("core fields = %#v", sound)
	}
	if !reflect.DeepEqual(sound.Tags, []string{"rain", "field-recording"}) {
		t.Fatalf("Tags = %v", sound.Tags)
	}
	if sound.Bitrate == nil || *sound.Bitrate != 1411.2 || sound.Bitdepth == nil || *sound.Bitdepth != 16 {
		t.Fatalf("Bitrate/Bitdepth = %v/%v", sound.Bitrate, sound.Bitdepth)
	}
	if sound.Pack == nil || *sound.Pack == "" || sound.Geotag == nil {
		t.Fatalf("Pack/Geotag = %v/%v", sound.Pack, sound.Geotag)
	}
	if sound.Previews == nil || sound.Previews.HQMP3 != "hq.mp3" || sound.Previews.LQOGG != "lq.ogg" {
		t.Fatalf("Previews = %#v", sound.Previews)
	}
	if sound.Images == nil || sound.Images.SpectralM != "sm" {
		t.Fatalf("Images = %#v", sound.Images)
	}
	if string(sound.Analysis) != `{"rhythm": {"bpm": 120}}` {
		t.Fatalf("Analysis = %s", sound.Analysis)
	}
	if sound.AvgRating != 4.5 || sound.NumRatings != 3 {
		t.Fatalf("rating = %v/%d", sound.AvgRating, sound.NumRatings)
	}
	created := sound.CreatedAt()
	if created.Year() != 2025 || created.Month() != time.March || created.Second() != 30 {
		t.Fatalf("CreatedAt = %v", created)
	}
	if got := sound.DurationValue(); got != 29700*time.Millisecond {
		t.Fatalf("DurationValue = %v", got)
	}
}

func TestDecodeSound_NullsKeepDefaults(t *testing.T) {
	sound, err := DecodeSound([]byte(`{"id": 1, "tags": null, "name": null, "analysis": null, "bitrate": null, "previews": null}`))
	if err != nil {
		t.Fatalf("DecodeSound returned error: %v", err)
	}
	if sound.Tags == nil || len(sound.Tags) != 0 {
		t.Fatalf("Tags = %#v, want empty slice", sound.Tags)
	}
	if sound.Name != "" || sound.Analysis != nil || sound.Bitrate != nil || sound.Previews != nil {
		t.Fatalf("nulls not defaulted: %#v", sound)
	}
}

func TestDecodeSound_RequiresID(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing", `{"name": "x"}`},
		{"null", `{"id": null}`},
		{"string", `{"id": "abc"}`},
		{"bool", `{"id": true}`},
		{"fraction", `{"id": 1.5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSound([]byte(tt.payload)); err == nil {
				t.Fatalf("DecodeSound(%s) returned nil error", tt.payload)
			}
		})
	}
	if _, err := DecodeSound([]byte(`{}`)); !errors.Is(err, ErrMissingID) {
		t.Fatalf("DecodeSound({}) error = %v, want ErrMissingID", err)
	}
}

func TestDecode_RejectsNonObjects(t *testing.T) {
	payloads := []string{"", "null", "[]", `[{"id":1}]`, `"id"`, "42", "{not-json", "<html>"}
	for _, p := range payloads {
		if _, err := DecodeSound([]byte(p)); err == nil {
			t.Fatalf("DecodeSound(%q) returned nil error", p)
		}
		if _, err := DecodeSearchResponse([]byte(p)); err == nil {
			t.Fatalf("DecodeSearchResponse(%q) returned nil error", p)
		}
	}
	if _, err := DecodeSound([]byte("[]")); !errors.Is(err, ErrNotObject) {
		t.Fatalf("DecodeSound([]) error = %v, want ErrNotObject", err)
	}
}

func TestDecodeSearchResponse_EmptyPage(t *testing.T) {
	resp, err := DecodeSearchResponse([]byte(`{"count": 0, "next": null, "previous": null, "results": []}`))
	if err != nil {
		t.Fatalf("DecodeSearchResponse returned error: %v", err)
	}
	if resp.Count != 0 || resp.Next != nil || resp.Previous != nil {
		t.Fatalf("resp = %#v, want empty page without links", resp)
	}
	if resp.Results == nil || len(resp.Results) != 0 {
		t.Fatalf("Results = %#v, want empty slice", resp.Results)
	}
	if resp.HasNext() || resp.HasPrevious() {
		t.Fatalf("HasNext/HasPrevious should be false")
	}
}

func TestDecodeSearchResponse_MissingFieldsDefault(t *testing.T) {
	resp, err := DecodeSearchResponse([]byte(`{}`))
	if err != nil {
		t.Fatalf("DecodeSearchResponse returned error: %v", err)
	}
	if resp.Count != 0 || resp.Next != nil || resp.Previous != nil || resp.Results == nil {
		t.Fatalf("resp = %#v, want defaults", resp)
	}
}

func TestDecodeSearchResponse_PreservesOrderAndLinks(t *testing.T) {
	payload := `{
  "count": 120,
  "next": "https://freesound.org/apiv2/search/text/?query=rain&page=3",
  "previous": "https://freesound.org/apiv2/search/text/?query=rain&page=1",
  "results": [{"id": 30, "name": "c"}, {"id": 10, "name": "a"}, {"name": "no id"}]
}`
	resp, err := DecodeSearchResponse([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeSearchResponse returned error: %v", err)
	}
	if resp.Count != 120 {
		t.Fatalf("Count = %d, want 120", resp.Count)
	}
	if !resp.HasNext() || *resp.Next != "https://freesound.org/apiv2/search/text/?query=rain&page=3" {
		t.Fatalf("Next = %v", resp.Next)
	}
	if !resp.HasPrevious() || *resp.Previous != "https://freesound.org/apiv2/search/text/?query=rain&page=1" {
		t.Fatalf("Previous = %v", resp.Previous)
	}
	if len(resp.Results) != 3 || resp.Results[0].ID != 30 || resp.Results[1].ID != 10 || resp.Results[2].ID != 0 {
		t.Fatalf("Results order = %#v", resp.Results)
	}
	if resp.Results[2].Tags == nil {
		t.Fatalf("item defaults not applied: %#v", resp.Results[2])
	}
}

func TestDecodeSearchResponse_WrongTypeFails(t *testing.T) {
	if _, err := DecodeSearchResponse([]byte(`{"count": "many"}`)); err == nil {
		t.Fatalf("DecodeSearchResponse returned nil error, want type error")
	}
}

func TestParseTimeLayouts(t *testing.T) {
	if !parseTime("").IsZero() || !parseTime("yesterday").IsZero() {
		t.Fatalf("parseTime should return zero for empty or invalid input")
	}
	if parseTime("2025-12-13T10:11:12Z").IsZero() {
		t.Fatalf("parseTime should parse RFC3339")
	}
	got := parseTime("2025-12-13T10:11:12")
	if got.Year() != 2025 || got.Month() != time.December || got.Day() != 13 {
		t.Fatalf("parseTime = %v, want 2025-12-13", got)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"detail": "Invalid token."}`, "Invalid token."},
		{`{"error": "boom"}`, "boom"},
		{`{"message": "nope"}`, "nope"},
		{`{"detail": 5}`, ""},
		{`<html>`, ""},
		{``, ""},
	}
	for _, tt := range tests {
		if got := errorMessage([]byte(tt.body)); got != tt.want {
			t.Fatalf("errorMessage(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}
