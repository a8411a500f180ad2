package freesound

import (
	"encoding/json"
	"time"
)

// Freesound emits upload timestamps without a zone, e.g.
// "2014-04-16T20:07:11.145346".
const createdLayout = "2006-01-02T15:04:05.999999999"

// Previews holds preview URLs for the two encodings at two qualities.
type Previews struct {
	HQMP3 string `json:"preview-hq-mp3"`
	LQMP3 string `json:"preview-lq-mp3"`
	HQOGG string `json:"preview-hq-ogg"`
	LQOGG string `json:"preview-lq-ogg"`
}

// Images holds waveform and spectrogram URLs.
type Images struct {
	WaveformL string `json:"waveform_l"`
	WaveformM string `json:"waveform_m"`
	SpectralL string `json:"spectral_l"`
	SpectralM string `json:"spectral_m"`
}

// Sound mirrors a sound instance. Fields missing from the payload keep the
// defaults set by defaultSound; which fields appear depends on the fields
// and descriptors requested.
type Sound struct {
	ID          int64    `json:"id"`
	URL         string   `json:"url"`
	Name        string   `json:"name"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Geotag      *string  `json:"geotag"`
	Created     string   `json:"created"`
	License     string   `json:"license"`
	Type        string   `json:"type"`
	Channels    int      `json:"channels"`
	Filesize    int64    `json:"filesize"`
	// Bitrate and Bitdepth are nil when unknown, unlike Duration and
	// Samplerate which read as zero.
	Bitrate        *float64        `json:"bitrate"`
	Bitdepth       *int            `json:"bitdepth"`
	Duration       float64         `json:"duration"`
	Samplerate     float64         `json:"samplerate"`
	Username       string          `json:"username"`
	Pack           *string         `json:"pack"`
	Download       string          `json:"download"`
	Bookmark       string          `json:"bookmark"`
	Previews       *Previews       `json:"previews"`
	Images         *Images         `json:"images"`
	NumDownloads   int             `json:"num_downloads"`
	AvgRating      float64         `json:"avg_rating"`
	NumRatings     int             `json:"num_ratings"`
	Rate           string          `json:"rate"`
	Comments       string          `json:"comments"`
	NumComments    int             `json:"num_comments"`
	Comment        string          `json:"comment"`
	SimilarSounds  string          `json:"similar_sounds"`
	Analysis       json.RawMessage `json:"analysis"`
	AnalysisStats  string          `json:"analysis_stats"`
	AnalysisFrames string          `json:"analysis_frames"`
}

func defaultSound() Sound {
	return Sound{
		ID:             0,
		URL:            "",
		Name:           "",
		Tags:           []string{},
		Description:    "",
		Geotag:         nil,
		Created:        "",
		License:        "",
		Type:           "",
		Channels:       0,
		Filesize:       0,
		Bitrate:        nil,
		Bitdepth:       nil,
		Duration:       0,
		Samplerate:     0,
		Username:       "",
		Pack:           nil,
		Download:       "",
		Bookmark:       "",
		Previews:       nil,
		Images:         nil,
		NumDownloads:   0,
		AvgRating:      0,
		NumRatings:     0,
		Rate:           "",
		Comments:       "",
		NumComments:    0,
		Comment:        "",
		SimilarSounds:  "",
		Analysis:       nil,
		AnalysisStats:  "",
		AnalysisFrames: "",
	}
}

// UnmarshalJSON decodes a sound object, leaving every absent or null field
// at its default.
func (s *Sound) UnmarshalJSON(data []byte) error {
	type plain Sound
	decoded := plain(defaultSound())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.Tags == nil {
		decoded.Tags = []string{}
	}
	if isJSONNull(decoded.Analysis) {
		decoded.Analysis = nil
	}
	*s = Sound(decoded)
	return nil
}

// CreatedAt parses the upload timestamp. It returns the zero time when the
// field is empty or unparsable.
func (s Sound) CreatedAt() time.Time {
	return parseTime(s.Created)
}

// DurationValue returns Duration as a time.Duration.
func (s Sound) DurationValue() time.Duration {
	return time.Duration(s.Duration * float64(time.Second))
}

// SearchResponse mirrors a page of text search results.
type SearchResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Sound `json:"results"`
}

// UnmarshalJSON decodes a results page. Absent or null links stay nil and a
// missing results array decodes as empty.
func (r *SearchResponse) UnmarshalJSON(data []byte) error {
	type plain SearchResponse
	decoded := plain{Results: []Sound{}}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.Results == nil {
		decoded.Results = []Sound{}
	}
	*r = SearchResponse(decoded)
	return nil
}

// HasNext reports whether the server linked a following page.
func (r SearchResponse) HasNext() bool {
	return r.Next != nil && *r.Next != ""
}

// HasPrevious reports whether the server linked a preceding page.
func (r SearchResponse) HasPrevious() bool {
	return r.Previous != nil && *r.Previous != ""
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.Parse(createdLayout, value); err == nil {
		return t
	}
	return time.Time{}
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 4 && string(raw) == "null"
}
