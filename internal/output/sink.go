package output

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/colorcode/internal/image"
)

// Sink receives named stage buffers.
type Sink interface {
	// Write stores buf under name. The name carries no extension.
	Write(name string, buf *image.Buffer) error
	// Close flushes pending output.
	Close() error
}

// Discard is a Sink that drops every buffer.
var Discard Sink = discard{}

type discard struct{}

func (discard) Write(string, *image.Buffer) error { return nil }
func (discard) Close() error                      { return nil }

// DirSink writes every stage as one file in a directory.
type DirSink struct {
	dir    string
	format image.Format

	mu      sync.Mutex
	written []string
}

// NewDirSink creates dir if needed and returns a sink writing files in
// format f there.
func NewDirSink(dir string, f image.Format) (*DirSink, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("output: %w: %v", image.ErrUnsupportedFormat, f)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("output: create directory: %w", err)
	}
	return &DirSink{dir: dir, format: f}, nil
}

// Write saves buf as <dir>/<name><ext>.
func (s *DirSink) Write(name string, buf *image.Buffer) error {
	path := filepath.Join(s.dir, name+s.format.Ext())
	if err := buf.Save(path, s.format); err != nil {
		return fmt.Errorf("output: write %s: %w", name, err)
	}

	s.mu.Lock()
	s.written = append(s.written, path)
	s.mu.Unlock()
	return nil
}

// Paths returns the files written so far, in order.
func (s *DirSink) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.written))
	copy(out, s.written)
	return out
}

// Close is a no-op; files are closed as they are written.
func (s *DirSink) Close() error {
	return nil
}

// ArchiveSink writes every stage as an entry of a tar stream compressed
// with zstd.
type ArchiveSink struct {
	format image.Format
	now    func() time.Time

	mu  sync.Mutex
	zw  *zstd.Encoder
	tw  *tar.Writer
	buf bytes.Buffer
	n   int
}

// NewArchiveSink returns a sink writing a .tar.zst stream to w with entries
// encoded in format f. Close must be called to finish the stream; it does
// not close w.
func NewArchiveSink(w io.Writer, f image.Format) (*ArchiveSink, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("output: %w: %v", image.ErrUnsupportedFormat, f)
	}
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("output: zstd writer: %w", err)
	}
	return &ArchiveSink{
		format: f,
		now:    time.Now,
		zw:     zw,
		tw:     tar.NewWriter(zw),
	}, nil
}

// Write encodes buf and appends it as <name><ext>.
func (s *ArchiveSink) Write(name string, buf *image.Buffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	if err := buf.Encode(&s.buf, s.format); err != nil {
		return fmt.Errorf("output: encode %s: %w", name, err)
	}

	hdr := &tar.Header{
		Name:    name + s.format.Ext(),
		Mode:    0o644,
		Size:    int64(s.buf.Len()),
		ModTime: s.now(),
		Format:  tar.FormatPAX,
	}
	if err := s.tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("output: archive header %s: %w", name, err)
	}
	if _, err := s.tw.Write(s.buf.Bytes()); err != nil {
		return fmt.Errorf("output: archive entry %s: %w", name, err)
	}
	s.n++
	return nil
}

// Len returns the number of entries written.
func (s *ArchiveSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

// Close finishes the tar stream and flushes the zstd frame.
func (s *ArchiveSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tw.Close(); err != nil {
		_ = s.zw.Close()
		return fmt.Errorf("output: close archive: %w", err)
	}
	if err := s.zw.Close(); err != nil {
		return fmt.Errorf("output: close zstd: %w", err)
	}
	return nil
}
