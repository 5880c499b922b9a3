package lz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func classes() []MatchClass {
	return []MatchClass{
		{Overhead: 1, Length: Range{Min: 3, Max: 18}, Offset: Range{Min: 1, Max: 64}},
	}
}

// TestBinaryTreeMatcherAgreesWithBruteForce drives both matchers over the
// same buffer step by step and requires they report the same best match at
// every position — BinaryTreeMatcher is only a faster index over the same
// window BruteForceMatcher scans exhaustively, so any divergence is a bug
// in the tree, not a legitimate search-strategy difference.
func TestBinaryTreeMatcherAgreesWithBruteForce(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox runs again and again and again")

	bf := NewBruteForceMatcher(64, classes())
	bst := NewBinaryTreeMatcher(64, classes())

	for pos := 0; pos < len(data); pos++ {
		want := bf.FindMatches(data, pos)
		got := bst.FindMatches(data, pos)
		require.Equalf(t, want, got, "position %d", pos)

		bf.Advance(data, pos, 1)
		bst.Advance(data, pos, 1)
	}
}

// TestBinaryTreeMatcherEvictsOutsideWindow confirms a match outside the
// configured window length is never reported, exercising the eviction path
// in Advance/remove.
func TestBinaryTreeMatcherEvictsOutsideWindow(t *testing.T) {
	window := 8
	bst := NewBinaryTreeMatcher(window, []MatchClass{
		{Overhead: 1, Length: Range{Min: 3, Max: 8}, Offset: Range{Min: 1, Max: window}},
	})

	// "abcdefgh" fills the window exactly, then more bytes push "abc"
	// out of range before it's ever queried again.
	data := []byte("abcdefghXXXXXXXXabc")
	for pos := 0; pos < 16; pos++ {
		bst.Advance(data, pos, 1)
	}

	result := bst.FindMatches(data, 16)
	require.False(t, result.Valid(), "match against evicted bytes should not be found")
}

func TestBinaryTreeMatcherFindsRepeat(t *testing.T) {
	data := []byte("banana banana")
	bst := NewBinaryTreeMatcher(32, classes())

	for pos := 0; pos < 7; pos++ {
		bst.Advance(data, pos, 1)
	}

	result := bst.FindMatches(data, 7)
	require.True(t, result.Valid())
	require.Equal(t, 7, result.Offset)
	require.Equal(t, 6, result.Length)
}
