package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const chunkSize = 8 * 1024

// Tail returns at most n lines from the end of the file at path, reading
// backwards so large logs are not scanned in full. A missing file yields no
// lines and no error.
func Tail(path string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}

	// One newline more than n guarantees the first kept line is complete.
	var buf []byte
	offset := info.Size()
	for offset > 0 && bytes.Count(buf, []byte{'\n'}) <= n {
		size := min(int64(chunkSize), offset)
		offset -= size
		chunk := make([]byte, size)
		if _, err := file.ReadAt(chunk, offset); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read log: %w", err)
		}
		buf = append(chunk, buf...)
	}

	text := strings.TrimRight(string(buf), "\r\n")
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// Print writes lines to w. JSON log events are rendered in console form;
// anything else is copied through unchanged.
func Print(w io.Writer, lines []string) error {
	console := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	for _, line := range lines {
		if _, err := console.Write([]byte(line)); err == nil {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
