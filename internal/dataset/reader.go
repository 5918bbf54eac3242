// Package dataset reads and writes the ColorPaps colour-list format: a
// header line followed by one "R, G, B" line per colour, all channels
// 8-bit integers. Files may be stored plain or compressed with gzip or xz;
// compression is detected from the file extension.
package dataset

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/colorpaps/colorpaps/internal/colour"
)

// maxDecompressedSize caps how much a compressed colour list may expand to.
// A full 16.7M-colour list is under 250 MB of text.
const maxDecompressedSize = 1 << 30

// Load reads a colour list from path. The first line is a header and is
// skipped; every following non-empty line must hold exactly three
// comma-separated integers in [0, 255]. A malformed row aborts the load
// with an error naming the file and line.
func Load(path string) ([]colour.RGB, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			resolved, absErr := filepath.Abs(path)
			if absErr != nil {
				resolved = path
			}
			return nil, fmt.Errorf("colour list not found: %s", resolved)
		}
		return nil, fmt.Errorf("failed to open colour list: %w", err)
	}
	defer f.Close()

	reader, err := decompressingReader(f, path)
	if err != nil {
		return nil, err
	}

	return Read(reader, path)
}

// Read parses a colour list from r. name is used in error messages.
func Read(r io.Reader, name string) ([]colour.RGB, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var colors []colour.RGB
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if line == 1 || text == "" {
			// Header line, or trailing blank line.
			continue
		}

		c, err := parseRow(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		colors = append(colors, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return colors, nil
}

// parseRow parses one "R, G, B" data row.
func parseRow(text string) (colour.RGB, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		return colour.RGB{}, fmt.Errorf("expected 3 comma-separated values, got %d", len(fields))
	}

	var channels [3]uint8
	for i, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return colour.RGB{}, fmt.Errorf("invalid channel value %q", strings.TrimSpace(field))
		}
		if v < 0 || v > 255 {
			return colour.RGB{}, fmt.Errorf("channel value %d out of range [0, 255]", v)
		}
		channels[i] = uint8(v)
	}

	return colour.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// decompressingReader wraps f according to the path's extension.
func decompressingReader(f *os.File, path string) (io.Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return newLimitedReader(gzr, maxDecompressedSize), nil
	case ".xz":
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return newLimitedReader(xzr, maxDecompressedSize), nil
	default:
		return f, nil
	}
}

// limitedReader returns an error, unlike io.LimitReader's silent EOF, when
// the underlying stream exceeds the remaining byte budget.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func newLimitedReader(r io.Reader, maxBytes int64) *limitedReader {
	return &limitedReader{r: r, remaining: maxBytes}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, fmt.Errorf("decompressed data exceeds %d byte limit", int64(maxDecompressedSize))
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
