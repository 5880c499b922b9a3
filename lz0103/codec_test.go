package lz0103

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRoundTripF01(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox runs again")
	back, err := DecompressF01(CompressF01(data))
	require.NoError(t, err)
	if diff := cmp.Diff(data, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripF03(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox runs again")
	back, err := DecompressF03(CompressF03(data))
	require.NoError(t, err)
	if diff := cmp.Diff(data, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripF01Empty(t *testing.T) {
	back, err := DecompressF01(CompressF01(nil))
	require.NoError(t, err)
	require.Empty(t, back)
}

// TestF03RLEPath is spec.md's scenario 5: compressing 21 repeats of a
// single byte must take the RLE path (no prior back-reference exists for a
// byte never seen before), producing the documented flag-bit/ctrl1/ctrl2/A
// layout.
func TestF03RLEPath(t *testing.T) {
	data := bytes.Repeat([]byte{0xAA}, 21)
	out := CompressF03(data)

	require.Equal(t, []byte{0x00, 0x02, 0x0F, 0xAA}, out)

	back, err := DecompressF03(out)
	require.NoError(t, err)
	require.Equal(t, data, back)
}

func TestF03RLEShortForm(t *testing.T) {
	data := bytes.Repeat([]byte{0x7E}, 10)
	back, err := DecompressF03(CompressF03(data))
	require.NoError(t, err)
	require.Equal(t, data, back)
}

// TestF03RunLengthThreeAvoidsRLECtrl2Collision guards the boundary where a
// run's length would pack ctrl2 = 0 in the RLE short form — the decoder's
// sentinel for the long form instead. A run of exactly 3 must round-trip
// via the BST/literal path, not RLE.
func TestF03RunLengthThreeAvoidsRLECtrl2Collision(t *testing.T) {
	data := bytes.Repeat([]byte{0x5A}, 3)
	back, err := DecompressF03(CompressF03(data))
	require.NoError(t, err)
	require.Equal(t, data, back)
}

// TestFormatMismatchCorruptsOutput exercises the zero_offset split between
// F01 (0x12) and F03 (0x11): decoding an F01 stream as F03 must not
// silently reproduce the original bytes, since the two formats disagree on
// where the ring buffer's logical zero sits.
func TestFormatMismatchCorruptsOutput(t *testing.T) {
	data := []byte("   prefix-referencing match data   prefix-referencing match data")
	compressed := CompressF01(data)

	wrong, err := DecompressF03(compressed)
	if err == nil {
		require.NotEqual(t, data, wrong)
	}
}

func TestDecompressF01RejectsTruncatedStream(t *testing.T) {
	_, err := DecompressF01([]byte{0x00, 0x01})
	require.Error(t, err)
}
