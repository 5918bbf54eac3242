package dataset

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/colorpaps/colorpaps/internal/colour"
)

// header is the first line of every colour list.
const header = "# R, G, B"

// Save writes a colour list to path, compressing with gzip or xz when the
// extension asks for it. A zero-length list produces a valid file holding
// only the header.
func Save(path string, colors []colour.RGB) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create colour list: %w", err)
	}

	var w io.Writer = f
	var closers []io.Closer

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gzw := gzip.NewWriter(f)
		w = gzw
		closers = append(closers, gzw)
	case ".xz":
		xzw, err := xz.NewWriter(f)
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to create xz writer: %w", err)
		}
		w = xzw
		closers = append(closers, xzw)
	}

	writeErr := Write(w, colors)
	for _, c := range closers {
		if err := c.Close(); err != nil && writeErr == nil {
			writeErr = fmt.Errorf("failed to finish compression: %w", err)
		}
	}
	if err := f.Close(); err != nil && writeErr == nil {
		writeErr = fmt.Errorf("failed to close colour list: %w", err)
	}
	if writeErr != nil {
		os.Remove(path)
		return writeErr
	}
	return nil
}

// Write emits the colour list format to w.
func Write(w io.Writer, colors []colour.RGB) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	if _, err := fmt.Fprintln(bw, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range colors {
		if _, err := fmt.Fprintf(bw, "%d, %d, %d\n", c.R, c.G, c.B); err != nil {
			return fmt.Errorf("failed to write colour row: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush colour list: %w", err)
	}
	return nil
}
