package lz

// Sink is the format-specific destination a Compressor hands tokens to.
// Implementations bit-pack literal runs and matches however their wire
// format requires; the driver itself has no opinion on byte layout.
//
// matcherIndex identifies which of the Compressor's configured matchers
// produced the winning match, letting a format distinguish, say, a
// back-reference class from an RLE class without the driver needing to
// know anything about "RLE-ness" itself.
type Sink interface {
	ConsumeLiteral(data []byte, pos int)
	ConsumeMatch(data []byte, pos int, matcherIndex int, match MatchResult)
}

// Compressor is the greedy tokenizer described in spec.md's LzCompressor
// driver (C6): at each position it asks every configured matcher for its
// best match, picks the single best across all of them by quality, and
// hands the winner to a Sink. Ties resolve to the earlier-registered
// matcher, then (within a matcher) to the lower class index — the latter
// is already guaranteed by each Matcher implementation.
//
// Grounded on razzie-go-doboz/compressor.go's Compressor.Compress main
// loop (match-then-literal dispatch), generalized from the teacher's
// single embedded Dictionary to an ordered slice of Matcher
// implementations, per original_source/squeeze.h's
// LzCompressor<Matchers...> (spec.md's "sum type over a fixed capability
// set" in place of a compile-time tuple).
type Compressor struct {
	matchers []Matcher
}

// NewCompressor builds a driver over the given matchers, in priority
// order for quality ties.
func NewCompressor(matchers ...Matcher) *Compressor {
	return &Compressor{matchers: matchers}
}

// Compress tokenizes data into literals and matches, starting at
// startOffset (used by formats that pre-fill the window with a known
// prefix and begin encoding partway through a logically prefixed
// buffer). startOffset bytes are fed to every matcher via Advance before
// any token is emitted.
func (c *Compressor) Compress(data []byte, sink Sink, startOffset int) {
	for _, m := range c.matchers {
		m.Advance(data, 0, startOffset)
	}

	pos := startOffset
	for pos < len(data) {
		bestIdx := -1
		var best MatchResult

		for idx, m := range c.matchers {
			r := m.FindMatches(data, pos)
			if !r.Valid() {
				continue
			}
			if bestIdx == -1 || r.Quality > best.Quality {
				bestIdx = idx
				best = r
			}
		}

		if bestIdx >= 0 {
			sink.ConsumeMatch(data, pos, bestIdx, best)
			start := pos
			pos += best.Length
			for _, m := range c.matchers {
				m.Advance(data, start, best.Length)
			}
		} else {
			sink.ConsumeLiteral(data, pos)
			start := pos
			pos++
			for _, m := range c.matchers {
				m.Advance(data, start, 1)
			}
		}
	}
}
