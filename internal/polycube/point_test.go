package polycube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimValid(t *testing.T) {
	cases := []struct {
		name string
		dim  Dim
		want bool
	}{
		{"ordered", Dim{3, 2, 1}, true},
		{"equal", Dim{2, 2, 2}, true},
		{"unordered", Dim{1, 2, 3}, false},
		{"negative", Dim{-1, 0, 0}, false},
		{"over mask", Dim{axisMask + 1, 0, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dim.Valid())
		})
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for x := uint16(0); x <= axisMask; x += 7 {
		for y := uint16(0); y <= axisMask; y += 11 {
			for z := uint16(0); z <= axisMask; z += 13 {
				c := pack(x, y, z)
				assert.Equal(t, x, unpackX(c))
				assert.Equal(t, y, unpackY(c))
				assert.Equal(t, z, unpackZ(c))
			}
		}
	}
}

func TestDimString(t *testing.T) {
	assert.Equal(t, "(3,2,1)", Dim{3, 2, 1}.String())
}
