// Package lz implements the generic, format-agnostic half of an LZ-family
// byte-stream codec: windowed string matching, multi-class match scoring,
// and the decompression scratchpad that replays (literal | match | run)
// tokens into an output buffer. Concrete wire formats (package f80,
// package lz0103) configure a Compressor with their own MatchClass tables
// and bit-pack the resulting tokens however their format demands.
package lz

// Range is a closed interval [Min, Max] over non-negative integers. A
// disabled match class is represented by leaving it out of a matcher's
// class table, not by an empty Range.
type Range struct {
	Min, Max int
}

// Contains reports whether value lies within the closed interval.
func (r Range) Contains(value int) bool {
	return value >= r.Min && value <= r.Max
}

// Match is a back-reference candidate: Length bytes copied from Offset
// bytes earlier in the output. Length == 0 means "no match". Class
// identifies which MatchClass this candidate was evaluated against.
type Match struct {
	Class  int
	Offset int
	Length int
}

// Valid reports whether m denotes an actual match.
func (m Match) Valid() bool {
	return m.Length > 0
}

// RLEMatch is a run-length match candidate: Length copies of the byte at
// the current position. It carries no offset because the replicated byte
// is always the current byte, not a window lookup.
type RLEMatch struct {
	Class  int
	Length int
}

// Valid reports whether m denotes an actual run.
func (m RLEMatch) Valid() bool {
	return m.Length > 0
}

// MatchClass is one encoding slot a format offers the compressor: a fixed
// byte-cost (Overhead) beyond a single literal, plus the (length, offset)
// ranges this class is legal for. The compressor picks, among all matches
// found across all matchers, the one whose class maximizes Quality.
type MatchClass struct {
	Overhead int
	Length   Range
	Offset   Range
}

// Quality is the signed score used to rank one class's match against
// every other class's match: the longer the replicated run relative to
// what encoding it costs, the better.
func (c MatchClass) Quality(length int) int {
	return length - c.Overhead
}

// MatchResult is what a Matcher reports back to the Compressor driver for
// a single position: the best match across all of that matcher's
// configured classes, already scored. Offset is meaningless (left 0) for
// RLE-style matchers, whose sink knows to ignore it based on which
// matcher produced the result.
type MatchResult struct {
	Class   int
	Offset  int
	Length  int
	Quality int
}

// Valid reports whether r denotes an actual match.
func (r MatchResult) Valid() bool {
	return r.Length > 0
}

// Matcher is the capability set spec.md's driver requires of any window
// matcher: find the best match at a position, and advance past consumed
// bytes. Modeled as an interface (a sum type over
// BruteForceMatcher | BinaryTreeMatcher | RLEMatcher) rather than a
// closed set, per spec.md's note that Go has no variadic-template tuple.
type Matcher interface {
	// FindMatches returns the best match at data[pos:], or a zero-length
	// result if none of this matcher's classes admit one.
	FindMatches(data []byte, pos int) MatchResult
	// Advance moves the matcher's internal state (if any) forward by
	// steps bytes, starting at pos. Called with the position the bytes
	// begin at, before the cursor itself has been advanced past them.
	Advance(data []byte, pos, steps int)
	// MaxMatchLength is the longest length any configured class admits.
	MaxMatchLength() int
}
