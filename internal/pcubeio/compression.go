package pcubeio

import (
	"compress/gzip"
	"fmt"
	"io"
)

// Compression is the wire-format compression byte. The .pcube format
// fixes this to a two-value enum; see DESIGN.md for why no third-party
// compression library from the corpus is wired in here.
type Compression byte

const (
	CompressionNone Compression = 0
	CompressionGzip Compression = 1
)

// ParseCompression maps a CLI flag value ("none"/"gzip") to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "none", "":
		return CompressionNone, nil
	case "gzip":
		return CompressionGzip, nil
	default:
		return 0, fmt.Errorf("pcubeio: unknown compression %q", s)
	}
}

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	default:
		return fmt.Sprintf("unknown(%d)", byte(c))
	}
}

// compressionFromByte validates the wire byte, distinct from ParseCompression
// which validates CLI flag strings.
func compressionFromByte(b byte) (Compression, bool) {
	switch Compression(b) {
	case CompressionNone, CompressionGzip:
		return Compression(b), true
	default:
		return 0, false
	}
}

// newReader wraps r according to c. The returned closer, if non-nil, must
// be closed after reading is done (gzip readers hold an internal buffer).
func newReader(c Compression, r io.Reader) (io.Reader, io.Closer, error) {
	switch c {
	case CompressionNone:
		return r, nil, nil
	case CompressionGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return gr, gr, nil
	default:
		return nil, nil, fmt.Errorf("pcubeio: unsupported compression byte %d", c)
	}
}

// writeCloser is satisfied by both a plain io.Writer (no-op Close) and
// *gzip.Writer.
type writeCloser struct {
	io.Writer
	closeFn func() error
}

func (w writeCloser) Close() error {
	if w.closeFn == nil {
		return nil
	}
	return w.closeFn()
}

func newWriter(c Compression, w io.Writer) (writeCloser, error) {
	switch c {
	case CompressionNone:
		return writeCloser{Writer: w}, nil
	case CompressionGzip:
		gw := gzip.NewWriter(w)
		return writeCloser{Writer: gw, closeFn: gw.Close}, nil
	default:
		return writeCloser{}, fmt.Errorf("pcubeio: unsupported compression %d", c)
	}
}
