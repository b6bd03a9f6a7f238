// Package pcubeio implements the .pcube binary cache/interchange format:
// magic, header flags, an unsigned LEB128 length field, optional gzip
// wrapping, and a sequence of packed RawPCube records.
package pcubeio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arxos/opencubes/pkg/cubeerr"
)

// maxLEB128Bytes bounds a 64-bit unsigned value to at most 10 continuation
// bytes (70 bits of payload, the last of which may only hold 1 bit).
const maxLEB128Bytes = 10

// WriteLEB128 encodes v as an unsigned LEB128 varint.
func WriteLEB128(w io.Writer, v uint64) error {
	ranOnce := false
	for v > 0 || !ranOnce {
		ranOnce = true
		b := byte(v) & 0x7f
		v >>= 7
		if v > 0 {
			b |= 0x80
		}
		if _, err := w.Write([]byte{b}); err != nil {
			return err
		}
	}
	return nil
}

// WriteLEB128Padded writes v as LEB128 padded to exactly maxLEB128Bytes
// bytes via trailing continuation bits, used by the streaming writer so a
// reserved-then-rewritten length field never changes size.
func WriteLEB128Padded(w io.Writer, v uint64) error {
	buf := make([]byte, 0, maxLEB128Bytes)
	ranOnce := false
	for v > 0 || !ranOnce || len(buf) < maxLEB128Bytes {
		ranOnce = true
		b := byte(v) & 0x7f
		v >>= 7
		buf = append(buf, b)
		if len(buf) == maxLEB128Bytes {
			break
		}
	}
	for i := 0; i < len(buf)-1; i++ {
		buf[i] |= 0x80
	}
	_, err := w.Write(buf)
	return err
}

// ReadLEB128 decodes an unsigned LEB128 varint, rejecting values that would
// overflow 64 bits: more than 10 continuation bytes, or a 10th byte greater
// than 1 once the preceding nine carried no payload bits beyond the
// continuation flag.
func ReadLEB128(r io.Reader) (uint64, error) {
	var result uint64
	var shift uint
	var buf [1]byte

	for i := 0; i < maxLEB128Bytes; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		b := buf[0]

		if i == maxLEB128Bytes-1 && b > 1 {
			return 0, cubeerr.Malformed(cubeerr.CodeLEB128Overflow, "", -1,
				fmt.Sprintf("LEB128 value exceeds 64 bits at final byte 0x%02x", b), nil)
		}

		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}

	return 0, cubeerr.Malformed(cubeerr.CodeLEB128Overflow, "", -1,
		"LEB128 value did not terminate within 10 continuation bytes", nil)
}

// bufferedCounter wraps a reader to count bytes consumed, letting callers
// report a byte position in malformed-input diagnostics.
type bufferedCounter struct {
	r *bufio.Reader
	n int64
}

func newBufferedCounter(r io.Reader) *bufferedCounter {
	return &bufferedCounter{r: bufio.NewReader(r)}
}

func (b *bufferedCounter) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	b.n += int64(n)
	return n, err
}
