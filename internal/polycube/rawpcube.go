package polycube

import (
	"fmt"
	"io"
	"strings"
)

// RawPCube is the wire/interchange form: three axis lengths followed by a
// dense, bit-packed occupancy grid in row-major [D1][D2][D3] order, bit s of
// byte k meaning position 8k+s (LSB first). It carries no shape-normalisation
// or canonicalisation guarantee of its own — it is the format the `.pcube`
// codec reads and writes, and the form PointList round-trips through.
type RawPCube struct {
	D1, D2, D3 uint8
	Data       []byte
}

// NewEmptyRawPCube allocates a zeroed occupancy grid of the given dims.
func NewEmptyRawPCube(d1, d2, d3 uint8) *RawPCube {
	n := int(d1) * int(d2) * int(d3)
	return &RawPCube{D1: d1, D2: d2, D3: d3, Data: make([]byte, (n+7)/8)}
}

// NewRawPCube validates data against the dims before accepting it.
func NewRawPCube(d1, d2, d3 uint8, data []byte) (*RawPCube, error) {
	n := int(d1) * int(d2) * int(d3)
	want := (n + 7) / 8
	if len(data) != want {
		return nil, fmt.Errorf("polycube: expected %d data bytes for dims (%d,%d,%d), got %d", want, d1, d2, d3, len(data))
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return &RawPCube{D1: d1, D2: d2, D3: d3, Data: cp}, nil
}

// Dims returns the three axis lengths.
func (r *RawPCube) Dims() (uint8, uint8, uint8) { return r.D1, r.D2, r.D3 }

func (r *RawPCube) index(d1, d2, d3 uint8) (int, byte) {
	i := int(d1)*int(r.D2)*int(r.D3) + int(d2)*int(r.D3) + int(d3)
	return i / 8, 1 << uint(i%8)
}

// Get reports whether the cell at (d1,d2,d3) is occupied.
func (r *RawPCube) Get(d1, d2, d3 uint8) bool {
	idx, mask := r.index(d1, d2, d3)
	return r.Data[idx]&mask == mask
}

// Set occupies or clears the cell at (d1,d2,d3).
func (r *RawPCube) Set(d1, d2, d3 uint8, value bool) {
	idx, mask := r.index(d1, d2, d3)
	if value {
		r.Data[idx] |= mask
	} else {
		r.Data[idx] &^= mask
	}
}

// Unpack reads one RawPCube record (3 dimension bytes plus packed payload)
// from r.
func Unpack(r io.Reader) (*RawPCube, error) {
	var xyz [3]byte
	if _, err := io.ReadFull(r, xyz[:]); err != nil {
		return nil, err
	}
	d1, d2, d3 := xyz[0], xyz[1], xyz[2]
	n := int(d1) * int(d2) * int(d3)
	data := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return &RawPCube{D1: d1, D2: d2, D3: d3, Data: data}, nil
}

// Pack writes one RawPCube record to w.
func (r *RawPCube) Pack(w io.Writer) error {
	if _, err := w.Write([]byte{r.D1, r.D2, r.D3}); err != nil {
		return err
	}
	_, err := w.Write(r.Data)
	return err
}

// String renders the cube as a sequence of X-slice grids, for debugging.
func (r *RawPCube) String() string {
	var sb strings.Builder
	rule := strings.Repeat("-", int(r.D3))

	sb.WriteString(rule)
	sb.WriteByte('\n')
	for x := uint8(0); x < r.D1; x++ {
		for y := uint8(0); y < r.D2; y++ {
			for z := uint8(0); z < r.D3; z++ {
				if r.Get(x, y, z) {
					sb.WriteByte('1')
				} else {
					sb.WriteByte('0')
				}
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(rule)
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}
