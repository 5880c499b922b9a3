// Package lz0103 implements the ring-buffer-prefilled, flag-bit-stream LZ
// formats F01 and F03 (spec.md): a 4096-byte sliding window seeded with a
// fixed prefill before any real byte is read, an LSB-first control-byte
// bitstream selecting literal vs match per token, and — for F03 only — an
// RLE extension sharing the match record's bit layout.
//
// Grounded on original_source/examples/namco/Lz0103.cc
// (Lz0103Compressor/Lz0103Decompressor, compressLz01/03, decompressLz01/03).
package lz0103

import (
	"github.com/lzsqueeze/squeeze/lz"
)

const ringSize = 4096

// zeroOffset0103 returns each format's starting zero_offset, matching
// Lz01Compressor/Lz03Compressor's constructor arguments (and independently
// derived by Lz0103Decompressor as 0x1000-(rle?0xfef:0xfee)).
func zeroOffset0103(rle bool) int {
	if rle {
		return 0x11
	}
	return 0x12
}

func matchClass(rle bool) lz.MatchClass {
	max := 18
	if rle {
		max = 17
	}
	return lz.MatchClass{Overhead: 2, Length: lz.Range{Min: 3, Max: max}, Offset: lz.Range{Min: 1, Max: ringSize}}
}

// rleClasses mirrors the two wire shapes Lz0103Decompressor's RLE branch
// decodes: a 2-byte record for short runs, a 3-byte record (carrying the
// repeated value itself) for runs too long for the 2-byte form. The short
// form's minimum is 4, not 3: a length-3 run packs ctrl2 = 0, which is the
// decoder's sentinel for "read the long form instead" (§4.7), so a real
// length-3 run would be misread as the long form on decode. Length-3 runs
// fall through to the BST/literal path instead.
func rleClasses() []lz.MatchClass {
	return []lz.MatchClass{
		{Overhead: 2, Length: lz.Range{Min: 4, Max: 18}},
		{Overhead: 3, Length: lz.Range{Min: 19, Max: 274}},
	}
}

const rleMatcherIndex = 1

// CompressF01 encodes data into the F01 wire format.
func CompressF01(data []byte) []byte { return compress(data, false) }

// CompressF03 encodes data into the F03 wire format (F01 plus the RLE
// extension).
func CompressF03(data []byte) []byte { return compress(data, true) }

func compress(data []byte, rle bool) []byte {
	prefill := prefillFor(rle)
	prefixed := make([]byte, 0, len(prefill)+len(data))
	prefixed = append(prefixed, prefill...)
	prefixed = append(prefixed, data...)

	bst := lz.NewBinaryTreeMatcher(ringSize, []lz.MatchClass{matchClass(rle)})
	matchers := []lz.Matcher{bst}
	if rle {
		matchers = append(matchers, lz.NewRLEMatcher(rleClasses()))
	}

	s := newSink(zeroOffset0103(rle), rle)
	lz.NewCompressor(matchers...).Compress(prefixed, s, len(prefill))
	return s.finish()
}

// sink packs tokens into the flag-bit-stream format shared by F01 and F03.
//
// Grounded on Lz0103Compressor: the LSB-first flag-byte construction (shift
// right, OR 0x80 for a literal, leave 0 for a match), the 2-byte match
// record, and the zero_offset/ring_offset rotation in advance().
type sink struct {
	out        []byte
	flagPos    int
	flagsLeft  int
	zeroOffset int
	ringOffset int
	rle        bool
}

func newSink(zeroOffset int, rle bool) *sink {
	s := &sink{zeroOffset: zeroOffset, rle: rle, flagsLeft: 8}
	s.out = append(s.out, 0x00)
	return s
}

func (s *sink) ConsumeLiteral(data []byte, pos int) {
	s.out[s.flagPos] >>= 1
	s.out[s.flagPos] |= 0x80
	s.out = append(s.out, data[pos])
	s.advance(1)
}

func (s *sink) ConsumeMatch(data []byte, pos int, matcherIndex int, match lz.MatchResult) {
	s.out[s.flagPos] >>= 1
	if s.rle && matcherIndex == rleMatcherIndex {
		s.encodeRLE(match.Length, data[pos])
	} else {
		s.encodeMatch(match.Offset, match.Length)
	}
	s.advance(match.Length)
}

func (s *sink) encodeMatch(offset, length int) {
	ring := ringSize - offset + s.ringOffset
	blub := floorMod(ring-s.zeroOffset, ringSize)
	a := byte(blub)
	b := byte(length-3) | byte(blub>>8)<<4
	s.out = append(s.out, a, b)
}

// encodeRLE mirrors the two RLE record shapes decoded by
// Lz0103Decompressor's `m_rle && control1 == 0x0F` branch. This has no
// direct counterpart in the source: Lz0103Compressor::consumeRLE is an
// empty stub in original_source/examples/namco/Lz0103.cc, so the encoding
// side is reconstructed from the decoder's read order, the only half of
// the record spec.md's source actually specifies.
func (s *sink) encodeRLE(length int, value byte) {
	if length <= 18 {
		b := 0x0F | byte(length-3)<<4
		s.out = append(s.out, value, b)
		return
	}
	nextControl1 := byte(length - 19)
	s.out = append(s.out, nextControl1, 0x0F, value)
}

func (s *sink) advance(length int) {
	s.ringOffset += length
	if s.ringOffset >= s.zeroOffset {
		s.zeroOffset += ringSize
	}
	s.flagsLeft--
	if s.flagsLeft == 0 {
		s.flagsLeft = 8
		s.flagPos = len(s.out)
		s.out = append(s.out, 0x00)
	}
}

// finish trims the trailing flag byte if the stream ended exactly on an
// 8-token boundary, leaving no token pending in it. A partly filled last
// flag byte is shifted down so its first token's bit sits at bit 0, where
// the decoder reads it.
func (s *sink) finish() []byte {
	if s.flagsLeft == 8 {
		s.out = s.out[:len(s.out)-1]
	} else {
		s.out[s.flagPos] >>= s.flagsLeft
	}
	return s.out
}

// DecompressF01 decodes an F01 byte stream back into its original bytes.
func DecompressF01(data []byte) ([]byte, error) { return decompress(data, false) }

// DecompressF03 decodes an F03 byte stream back into its original bytes.
func DecompressF03(data []byte) ([]byte, error) { return decompress(data, true) }

func decompress(data []byte, rle bool) ([]byte, error) {
	prefill := prefillFor(rle)
	zeroOffset := zeroOffset0103(rle)
	ringOffset := 0

	var pad lz.Scratchpad
	pad.Reset(data, prefill, 0)

	var control byte
	bitsLeft := 0

	for !pad.AtEnd() {
		if bitsLeft == 0 {
			b, err := pad.Fetch()
			if err != nil {
				return nil, err
			}
			control = b
			bitsLeft = 8
		}
		bitsLeft--
		isLiteral := control&1 != 0
		control >>= 1

		if isLiteral {
			if err := pad.EmitLiterals(1); err != nil {
				return nil, err
			}
			ringOffset, zeroOffset = advanceRing(ringOffset, zeroOffset, 1)
			continue
		}

		b1, err := pad.Fetch()
		if err != nil {
			return nil, err
		}
		b2, err := pad.Fetch()
		if err != nil {
			return nil, err
		}
		control1 := b2 & 0x0F
		control2 := b2 >> 4

		if rle && control1 == 0x0F {
			var runLength int
			var value byte
			if control2 == 0 {
				runLength = int(b1) + 19
				value, err = pad.Fetch()
				if err != nil {
					return nil, err
				}
			} else {
				runLength = int(control2) + 3
				value = b1
			}
			if err := pad.EmitRun(runLength, value); err != nil {
				return nil, err
			}
			ringOffset, zeroOffset = advanceRing(ringOffset, zeroOffset, runLength)
			continue
		}

		length := 3 + int(control1)
		refOffset := int(b1) | int(control2)<<8
		absoluteOffset := floorMod(zeroOffset+refOffset-ringOffset, ringSize)
		offset := ringSize - absoluteOffset
		if err := pad.EmitMatch(offset, length); err != nil {
			return nil, err
		}
		ringOffset, zeroOffset = advanceRing(ringOffset, zeroOffset, length)
	}

	out := pad.Finish()
	return out[len(prefill):], nil
}

func advanceRing(ringOffset, zeroOffset, length int) (int, int) {
	ringOffset += length
	if ringOffset >= zeroOffset {
		zeroOffset += ringSize
	}
	return ringOffset, zeroOffset
}

func floorMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
