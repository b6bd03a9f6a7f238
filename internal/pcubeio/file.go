package pcubeio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arxos/opencubes/internal/polycube"
	"github.com/arxos/opencubes/pkg/cubeerr"
)

var magic = [4]byte{0xCB, 0xEC, 0xCB, 0xEC}

// Reader iterates the RawPCube records of one .pcube byte stream: magic,
// header, LEB128 length, then optionally-gzipped records.
type Reader struct {
	path        string
	src         io.Reader
	closer      io.Closer
	length      *int // nil means "stream until EOF"
	read        int
	canonical   bool
	compression Compression
}

// Open reads the header of the .pcube file at path and returns a Reader
// positioned at the first record.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cubeerr.IO(cubeerr.CodeFileNotFound, path, "file not found", err)
		}
		return nil, cubeerr.IO(cubeerr.CodeFileNotFound, path, "failed to open file", err)
	}
	r, err := NewReader(path, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// NewReader parses the header of src and returns a Reader over it. path is
// used only for diagnostics and may be empty.
func NewReader(path string, src io.Reader) (*Reader, error) {
	counted := newBufferedCounter(src)

	var gotMagic [4]byte
	if _, err := io.ReadFull(counted, gotMagic[:]); err != nil {
		return nil, cubeerr.Malformed(cubeerr.CodeBadMagic, path, 0, "failed to read magic", err)
	}
	if gotMagic != magic {
		return nil, cubeerr.Malformed(cubeerr.CodeBadMagic, path, 0,
			fmt.Sprintf("bad magic %x", gotMagic), nil)
	}

	var header [2]byte
	if _, err := io.ReadFull(counted, header[:]); err != nil {
		return nil, cubeerr.Malformed(cubeerr.CodeTruncatedRecord, path, 4, "failed to read header", err)
	}
	canonical := header[0] != 0
	compression, ok := compressionFromByte(header[1])
	if !ok {
		return nil, cubeerr.Malformed(cubeerr.CodeUnsupportedCompr, path, 5,
			fmt.Sprintf("unsupported compression byte %d", header[1]), nil)
	}

	count, err := ReadLEB128(counted)
	if err != nil {
		return nil, err
	}

	var length *int
	if count != 0 {
		n := int(count)
		length = &n
	}

	payload, closer, err := newReader(compression, counted)
	if err != nil {
		return nil, cubeerr.Malformed(cubeerr.CodeUnsupportedCompr, path, 6, "failed to init decompressor", err)
	}

	return &Reader{
		path:        path,
		src:         payload,
		closer:      closer,
		length:      length,
		canonical:   canonical,
		compression: compression,
	}, nil
}

// Len reports the declared cube count, and whether one was declared at all
// (false means "stream until EOF").
func (r *Reader) Len() (int, bool) {
	if r.length == nil {
		return 0, false
	}
	return *r.length, true
}

// Canonical reports the file's advisory orientation flag.
func (r *Reader) Canonical() bool { return r.canonical }

// Compression reports the file's compression byte.
func (r *Reader) Compression() Compression { return r.compression }

// Next reads the next record. It returns io.EOF once the declared length is
// reached (length-known mode) or once any read fails (stream mode, where a
// partial trailing record also ends the stream). Any read error while fewer than the declared count
// have been read is a cubeerr.ErrMalformed cache-length mismatch.
func (r *Reader) Next() (*polycube.RawPCube, error) {
	if r.length != nil && r.read >= *r.length {
		return nil, io.EOF
	}

	cube, err := polycube.Unpack(r.src)
	if err == nil {
		r.read++
		return cube, nil
	}

	if r.length == nil {
		return nil, io.EOF
	}

	return nil, cubeerr.Malformed(cubeerr.CodeLengthMismatch, r.path, -1,
		fmt.Sprintf("expected %d cubes, failed to read after %d", *r.length, r.read), err)
}

// Close releases any decompressor resources.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// ReadAll drains every record from the file at path, for callers (validate,
// convert, small caches) that want the whole set in memory.
func ReadAll(path string) ([]*polycube.RawPCube, bool, Compression, error) {
	r, err := Open(path)
	if err != nil {
		return nil, false, 0, err
	}
	defer r.Close()

	var out []*polycube.RawPCube
	for {
		c, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, r.Canonical(), r.Compression(), err
		}
		out = append(out, c)
	}
	return out, r.Canonical(), r.Compression(), nil
}

func writeHeader(w io.Writer, canonical bool, compression Compression) error {
	orientation := byte(0)
	if canonical {
		orientation = 1
	}
	_, err := w.Write([]byte{orientation, byte(compression)})
	return err
}

// WriteAll writes every cube in cubes (a known-length slice) to w: magic,
// header, LEB128 length, then the records, gzip-wrapped if requested.
func WriteAll(w io.Writer, canonical bool, compression Compression, cubes []*polycube.RawPCube) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := writeHeader(w, canonical, compression); err != nil {
		return err
	}
	if err := WriteLEB128(w, uint64(len(cubes))); err != nil {
		return err
	}

	payload, err := newWriter(compression, w)
	if err != nil {
		return err
	}
	for _, c := range cubes {
		if err := c.Pack(payload); err != nil {
			payload.Close()
			return err
		}
	}
	return payload.Close()
}

// WriteFile writes cubes to path via the temp-file-then-rename discipline:
// the magic bytes are written last, so a reader that observes the file
// mid-write (or after a crash) never mistakes a partial file for valid.
func WriteFile(path string, canonical bool, compression Compression, cubes []*polycube.RawPCube) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pcube-tmp-*")
	if err != nil {
		return cubeerr.IO(cubeerr.CodeWritePermission, path, "failed to create temp file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write([]byte{0, 0, 0, 0}); err != nil {
		tmp.Close()
		return cubeerr.IO(cubeerr.CodeWritePermission, path, "failed to write placeholder magic", err)
	}
	if err := writeHeader(tmp, canonical, compression); err != nil {
		tmp.Close()
		return err
	}
	if err := WriteLEB128(tmp, uint64(len(cubes))); err != nil {
		tmp.Close()
		return err
	}

	payload, err := newWriter(compression, tmp)
	if err != nil {
		tmp.Close()
		return err
	}
	for _, c := range cubes {
		if err := c.Pack(payload); err != nil {
			payload.Close()
			tmp.Close()
			return err
		}
	}
	if err := payload.Close(); err != nil {
		tmp.Close()
		return err
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(magic[:]); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return cubeerr.IO(cubeerr.CodeWritePermission, path, "failed to rename into place", err)
	}
	return nil
}

// WriteFileStreaming writes records produced by next (which returns ok=false
// once exhausted) to path without knowing the count in advance: it reserves
// the 10-byte padded LEB128 length field, streams records counting them,
// then seeks back to rewrite the length and the magic. The header fields are
// those of WriteFile, except that the length is always padded to 10 bytes.
func WriteFileStreaming(path string, canonical bool, compression Compression, next func() (*polycube.RawPCube, bool)) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pcube-tmp-*")
	if err != nil {
		return cubeerr.IO(cubeerr.CodeWritePermission, path, "failed to create temp file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write([]byte{0, 0, 0, 0}); err != nil {
		tmp.Close()
		return err
	}
	if err := writeHeader(tmp, canonical, compression); err != nil {
		tmp.Close()
		return err
	}

	lengthOffset, err := tmp.Seek(0, io.SeekCurrent)
	if err != nil {
		tmp.Close()
		return err
	}
	if err := WriteLEB128Padded(tmp, 0); err != nil {
		tmp.Close()
		return err
	}

	payload, err := newWriter(compression, tmp)
	if err != nil {
		tmp.Close()
		return err
	}

	count := 0
	for {
		cube, ok := next()
		if !ok {
			break
		}
		if err := cube.Pack(payload); err != nil {
			payload.Close()
			tmp.Close()
			return err
		}
		count++
	}
	if err := payload.Close(); err != nil {
		tmp.Close()
		return err
	}

	var lenBuf bytes.Buffer
	if err := WriteLEB128Padded(&lenBuf, uint64(count)); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.WriteAt(lenBuf.Bytes(), lengthOffset); err != nil {
		tmp.Close()
		return err
	}

	if _, err := tmp.WriteAt(magic[:], 0); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return cubeerr.IO(cubeerr.CodeWritePermission, path, "failed to rename into place", err)
	}
	return nil
}
