package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_WritesJSONWithService(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Config{Level: "info", ServiceName: "freesound"})
	logger.Debug().Msg("hidden")
	logger.Info().Str(FieldQuery, "rain").Msg("searched")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry[FieldService] != "freesound" || entry[FieldQuery] != "rain" || entry["message"] != "searched" {
		t.Fatalf("entry = %v", entry)
	}
}

func TestOpenFile_CreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	if _, err := OpenFile("  "); err == nil {
		t.Fatalf("OpenFile with empty path returned nil error")
	}
}

func TestCtx_FallsBackToNop(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Config{Level: "debug"})
	ctx := WithLogger(context.Background(), logger)
	stored := Ctx(ctx)
	stored.Info().Msg("stored")
	dropped := Ctx(context.Background())
	dropped.Info().Msg("dropped")

	if !strings.Contains(buf.String(), "stored") || strings.Contains(buf.String(), "dropped") {
		t.Fatalf("log output = %q", buf.String())
	}
}

func TestTransport_LogsPathWithoutQuery(t *testing.T) {
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(HeaderRequestID)
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	var buf bytes.Buffer
	client := NewHTTPClient(New(&buf, Config{Level: "debug"}), 2*time.Second)

	for _, path := range []string{"/apiv2/search/text/?token=secret&query=rain", "/missing?token=secret"} {
		resp, err := client.Get(server.URL + path)
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		_ = resp.Body.Close()
	}

	if gotRequestID == "" {
		t.Fatalf("request id header not set")
	}
	out := buf.String()
	if strings.Contains(out, "secret") || strings.Contains(out, "token") {
		t.Fatalf("log leaks query string: %q", out)
	}
	if !strings.Contains(out, `"path":"/apiv2/search/text/"`) || !strings.Contains(out, `"status":404`) {
		t.Fatalf("log output = %q, want path and status fields", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Fatalf("log output = %q, want 404 logged at warn", out)
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial failed")
}

func TestTransport_LogsFailuresAndKeepsRequestID(t *testing.T) {
	var buf bytes.Buffer
	transport := &Transport{Base: failingTransport{}, Logger: New(&buf, Config{Level: "debug"})}

	req, err := http.NewRequest(http.MethodGet, "http://example.invalid/x?token=secret", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set(HeaderRequestID, "fixed-id")
	if _, err := transport.RoundTrip(req); err == nil {
		t.Fatalf("RoundTrip returned nil error")
	}
	out := buf.String()
	if !strings.Contains(out, "fixed-id") || !strings.Contains(out, "request failed") || strings.Contains(out, "secret") {
		t.Fatalf("log output = %q", out)
	}
}
