package f80

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressEmptyInput(t *testing.T) {
	out := Compress(nil)
	require.Equal(t, []byte{0x00, 0x00, 0x00}, out)

	back, err := Decompress(out)
	require.NoError(t, err)
	require.Empty(t, back)
}

func TestCompressSingleByte(t *testing.T) {
	out := Compress([]byte{0x42})
	require.Equal(t, []byte{0x01, 0x42, 0x00, 0x00, 0x00}, out)

	back, err := Decompress(out)
	require.NoError(t, err)
	require.Equal(t, []byte{0x42}, back)
}

func TestRoundTripShortRepeat(t *testing.T) {
	data := []byte("ABABABAB")
	back, err := Decompress(Compress(data))
	require.NoError(t, err)
	require.Equal(t, data, back)
}

func TestRoundTripRunViaOverlap(t *testing.T) {
	data := bytes.Repeat([]byte{0x55}, 200)
	back, err := Decompress(Compress(data))
	require.NoError(t, err)
	require.Equal(t, data, back)
}

func TestRoundTripLiteralRunCrossesSingleByteBoundary(t *testing.T) {
	// Exercises the 1-byte (<0x40), 2-byte (0x40..0xBF), and 3-byte
	// (>=0xC0) literal-run header forms by round-tripping runs whose
	// lengths straddle each boundary.
	for _, n := range []int{0x3f, 0x40, 0x41, 0xbf, 0xc0, 0x500} {
		data := incompressible(n)
		back, err := Decompress(Compress(data))
		require.NoErrorf(t, err, "length %#x", n)
		require.Equalf(t, data, back, "length %#x", n)
	}
}

func TestRoundTripClass2LongMatch(t *testing.T) {
	data := append(incompressible(40), bytes.Repeat([]byte("0123456789"), 13)...)
	data = append(data, incompressible(5000)...)
	data = append(data, bytes.Repeat([]byte("0123456789"), 13)...)

	back, err := Decompress(Compress(data))
	require.NoError(t, err)
	require.Equal(t, data, back)
}

func TestDecompressRejectsTruncatedStream(t *testing.T) {
	_, err := Decompress([]byte{0x01})
	require.Error(t, err)
}

// incompressible returns n bytes with no internal repeats a brute-force
// matcher could exploit, forcing every byte through the literal path.
// Within each 256-byte block neighbouring bytes differ by a different odd
// step, so no two-byte pair occurs twice for n up to 32768.
func incompressible(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		block, j := i/256, i%256
		out[i] = byte(j * (2*block + 1))
	}
	return out
}
