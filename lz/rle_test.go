package lz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRLEMatcherFindsRun(t *testing.T) {
	m := NewRLEMatcher([]MatchClass{
		{Overhead: 2, Length: Range{Min: 3, Max: 18}},
		{Overhead: 3, Length: Range{Min: 19, Max: 274}},
	})

	data := append([]byte{'X'}, repeat('a', 10)...)
	result := m.FindMatches(data, 1)

	require.True(t, result.Valid())
	require.Equal(t, 0, result.Class)
	require.Equal(t, 10, result.Length)
}

func TestRLEMatcherPicksLongClassPastShortMax(t *testing.T) {
	m := NewRLEMatcher([]MatchClass{
		{Overhead: 2, Length: Range{Min: 3, Max: 18}},
		{Overhead: 3, Length: Range{Min: 19, Max: 274}},
	})

	data := repeat('z', 30)
	result := m.FindMatches(data, 0)

	require.True(t, result.Valid())
	require.Equal(t, 1, result.Class)
	require.Equal(t, 30, result.Length)
}

func TestRLEMatcherNoRunIsInvalid(t *testing.T) {
	m := NewRLEMatcher([]MatchClass{{Overhead: 2, Length: Range{Min: 3, Max: 18}}})
	data := []byte("ab")
	require.False(t, m.FindMatches(data, 0).Valid())
}

func repeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
