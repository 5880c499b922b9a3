package lz

// BruteForceMatcher performs an O(window*lookahead) longest-match search
// over a window of the given length. It keeps no persistent index: every
// FindMatches call rescans the offsets in range. It exists both as a
// correctness oracle for BinaryTreeMatcher and as the matcher used by
// formats whose window is small enough for the brute-force cost to be
// acceptable (F80's 32 KiB window among three short match classes).
//
// Grounded on original_source/squeeze.h's BruteForceMatcher::findMatches:
// this is the search half of razzie-go-doboz/dictionary.go's
// Dictionary.FindMatches without the binary tree, since the teacher's own
// matcher is always tree-based.
type BruteForceMatcher struct {
	classes      []MatchClass
	windowLength int
	maxLength    int
}

// NewBruteForceMatcher configures a matcher with the given window length
// and match classes (index order is the class id order).
func NewBruteForceMatcher(windowLength int, classes []MatchClass) *BruteForceMatcher {
	m := &BruteForceMatcher{
		classes:      append([]MatchClass(nil), classes...),
		windowLength: windowLength,
	}
	for _, c := range m.classes {
		if c.Length.Max > m.maxLength {
			m.maxLength = c.Length.Max
		}
	}
	return m
}

// MaxMatchLength returns the longest length any configured class admits.
func (m *BruteForceMatcher) MaxMatchLength() int {
	return m.maxLength
}

// FindMatches scans every valid offset in [1, min(pos, windowLength))
// and returns the best match across all configured classes by quality.
// Minimum useful match length is 2; a common prefix of length 1 is never
// reported.
func (m *BruteForceMatcher) FindMatches(data []byte, pos int) MatchResult {
	var best MatchResult
	found := false

	searchLength := pos
	if searchLength > m.windowLength {
		searchLength = m.windowLength
	}
	lookAhead := len(data) - pos

	for offset := 1; offset < searchLength; offset++ {
		length := 0
		maxLen := m.maxLength
		if lookAhead < maxLen {
			maxLen = lookAhead
		}
		for length < maxLen && data[pos-offset+length] == data[pos+length] {
			length++
		}
		if length <= 1 {
			continue
		}
		for cls, mc := range m.classes {
			if !mc.Offset.Contains(offset) || !mc.Length.Contains(length) {
				continue
			}
			q := mc.Quality(length)
			if !found || q > best.Quality {
				// Ascending class iteration means a later class only
				// displaces the current best on strictly higher quality,
				// so ties resolve to the lower class index for free.
				best = MatchResult{Class: cls, Offset: offset, Length: length, Quality: q}
				found = true
			}
		}
	}
	return best
}

// Advance is a no-op: BruteForceMatcher keeps no state between calls.
func (m *BruteForceMatcher) Advance(data []byte, pos, steps int) {}
