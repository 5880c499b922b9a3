package lz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeContains(t *testing.T) {
	r := Range{Min: 3, Max: 18}
	require.True(t, r.Contains(3))
	require.True(t, r.Contains(18))
	require.True(t, r.Contains(10))
	require.False(t, r.Contains(2))
	require.False(t, r.Contains(19))
}

func TestMatchClassQuality(t *testing.T) {
	mc := MatchClass{Overhead: 2, Length: Range{Min: 3, Max: 18}, Offset: Range{Min: 1, Max: 4096}}
	require.Equal(t, 1, mc.Quality(3))
	require.Equal(t, 16, mc.Quality(18))
}

func TestMatchResultValid(t *testing.T) {
	require.False(t, MatchResult{}.Valid())
	require.True(t, MatchResult{Length: 1}.Valid())
}
