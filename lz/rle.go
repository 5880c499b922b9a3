package lz

// RLEMatcher detects a run of the current byte repeating forward, for
// formats that offer a length-only ("repeat this byte N times") encoding
// class cheaper than a regular back-reference. It reports no offset: the
// replicated byte is always the byte at the current position.
//
// Ported directly from original_source/squeeze.h's
// RleMatcher::findMatches — the teacher (razzie-go-doboz) has no
// equivalent, since doboz's single LZSS-style encoding has no dedicated
// run class.
type RLEMatcher struct {
	classes   []MatchClass
	maxLength int
}

// NewRLEMatcher configures a matcher with the given run-length classes.
func NewRLEMatcher(classes []MatchClass) *RLEMatcher {
	m := &RLEMatcher{classes: append([]MatchClass(nil), classes...)}
	for _, c := range m.classes {
		if c.Length.Max > m.maxLength {
			m.maxLength = c.Length.Max
		}
	}
	return m
}

// MaxMatchLength returns the longest run length any configured class admits.
func (m *RLEMatcher) MaxMatchLength() int {
	return m.maxLength
}

// FindMatches counts the run of data[pos] forward, bounded by
// MaxMatchLength and the remaining lookahead, then reports the best
// class whose length range admits it. A run of length < 2 is never
// reported.
func (m *RLEMatcher) FindMatches(data []byte, pos int) MatchResult {
	value := data[pos]
	end := pos
	limit := pos + m.maxLength
	if limit > len(data) {
		limit = len(data)
	}
	for end < limit && data[end] == value {
		end++
	}
	length := end - pos

	var best MatchResult
	found := false
	if length > 1 {
		for cls, mc := range m.classes {
			if length < mc.Length.Min {
				continue
			}
			clamped := length
			if clamped > mc.Length.Max {
				clamped = mc.Length.Max
			}
			q := mc.Quality(clamped)
			if !found || q > best.Quality {
				best = MatchResult{Class: cls, Length: clamped, Quality: q}
				found = true
			}
		}
	}
	return best
}

// Advance is a no-op: RLEMatcher keeps no state between calls.
func (m *RLEMatcher) Advance(data []byte, pos, steps int) {}
