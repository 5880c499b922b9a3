// Package f80 implements the byte-aligned, 32 KiB-window LZ format
// (spec.md's "F80"): three back-reference classes dispatched on the top
// two bits of each opcode byte, and a separately-packed variable-length
// literal run class. No ring-buffer prefill; the stream terminates with
// three zero bytes.
//
// Grounded on original_source/examples/namco/Lz80.cc
// (compressLz80/decompressLz80), using package lz's BruteForceMatcher
// the way Lz80.cc configures squeeze::BruteForceMatcher<3>.
package f80

import (
	"github.com/lzsqueeze/squeeze/lz"
)

const windowLength = 32768

// maxLiteralRun is the compressor's literal-buffering cap: pending
// literals flush once they reach this count, same threshold as
// Lz80Compressor::consumeLiteral's 0x8000 check.
const maxLiteralRun = 0x8000

func matchClasses() []lz.MatchClass {
	return []lz.MatchClass{
		{Overhead: 0, Length: lz.Range{Min: 2, Max: 5}, Offset: lz.Range{Min: 1, Max: 16}},
		{Overhead: 1, Length: lz.Range{Min: 3, Max: 18}, Offset: lz.Range{Min: 1, Max: 1024}},
		{Overhead: 2, Length: lz.Range{Min: 4, Max: 131}, Offset: lz.Range{Min: 1, Max: 32768}},
	}
}

// Compress encodes data into the F80 wire format.
func Compress(data []byte) []byte {
	sink := &sink{data: data}
	matcher := lz.NewBruteForceMatcher(windowLength, matchClasses())
	compressor := lz.NewCompressor(matcher)
	compressor.Compress(data, sink, 0)
	return sink.finish()
}

type sink struct {
	data         []byte
	out          []byte
	literalStart int
	literalEnd   int
}

func (s *sink) ConsumeLiteral(data []byte, pos int) {
	if s.literalEnd == s.literalStart {
		s.literalStart = pos
	}
	s.literalEnd = pos + 1
	if s.literalEnd-s.literalStart == maxLiteralRun {
		s.flushLiterals()
	}
}

func (s *sink) ConsumeMatch(data []byte, pos int, matcherIndex int, match lz.MatchResult) {
	s.flushLiterals()
	switch match.Class {
	case 0:
		flags := byte(match.Offset-1) | byte(match.Length-2)<<4 | 1<<6
		s.out = append(s.out, flags)
	case 1:
		off := match.Offset - 1
		flags := byte(match.Length-3)<<2 | byte(off>>8) | 2<<6
		s.out = append(s.out, flags, byte(off))
	case 2:
		adjLen := match.Length - 4
		adjOff := match.Offset - 1
		b0 := byte(adjLen>>1) | 3<<6
		b1 := byte((adjOff>>8)&0x7f) | byte(adjLen&1)<<7
		b2 := byte(adjOff)
		s.out = append(s.out, b0, b1, b2)
	}
	s.literalStart = pos + match.Length
	s.literalEnd = s.literalStart
}

func (s *sink) flushLiterals() {
	if s.literalEnd <= s.literalStart {
		return
	}
	s.encodeLiteralRun(s.data[s.literalStart:s.literalEnd])
	s.literalStart = s.literalEnd
}

func (s *sink) encodeLiteralRun(run []byte) {
	length := len(run)
	switch {
	case length < 0x40:
		s.out = append(s.out, byte(length))
	case length < 0xC0:
		s.out = append(s.out, 0x00, 0x80|byte(length-0x40))
	default:
		adjusted := length - 0xBF
		s.out = append(s.out, 0x00, byte(adjusted>>8), byte(adjusted))
	}
	s.out = append(s.out, run...)
}

func (s *sink) finish() []byte {
	s.flushLiterals()
	s.out = append(s.out, 0x00, 0x00, 0x00)
	return s.out
}

// Decompress decodes an F80 byte stream back into its original bytes.
func Decompress(data []byte) ([]byte, error) {
	var pad lz.Scratchpad
	pad.Reset(data, nil, 0)

	for !pad.AtEnd() {
		flags, err := pad.Fetch()
		if err != nil {
			return nil, err
		}
		switch flags >> 6 {
		case 0:
			done, err := decodeLiteralRun(&pad, flags)
			if err != nil {
				return nil, err
			}
			if done {
				return pad.Finish(), nil
			}
		case 1:
			length := 2 + int((flags>>4)&0x3)
			offset := 1 + int(flags&0xf)
			if err := pad.EmitMatch(offset, length); err != nil {
				return nil, err
			}
		case 2:
			lsb, err := pad.Fetch()
			if err != nil {
				return nil, err
			}
			length := 3 + int((flags>>2)&0xf)
			offset := 1 + (int(flags&0x3)<<8 | int(lsb))
			if err := pad.EmitMatch(offset, length); err != nil {
				return nil, err
			}
		case 3:
			lsb1, err := pad.Fetch()
			if err != nil {
				return nil, err
			}
			lsb2, err := pad.Fetch()
			if err != nil {
				return nil, err
			}
			length := 4 + (int(flags&0x3f)<<1 | int(lsb1>>7))
			offset := 1 + (int(lsb1&0x7f)<<8 | int(lsb2))
			if err := pad.EmitMatch(offset, length); err != nil {
				return nil, err
			}
		}
	}
	return pad.Finish(), nil
}

// decodeLiteralRun decodes the variable-length literal-run header that
// begins with flags (already fetched, top two bits zero) and emits the
// literal bytes it describes. It reports done=true when it reads the
// three-zero-byte end-of-stream marker.
func decodeLiteralRun(pad *lz.Scratchpad, flags byte) (done bool, err error) {
	length := int(flags & 0x3f)
	if length == 0 {
		b1, err := pad.Fetch()
		if err != nil {
			return false, err
		}
		if b1>>7 == 0 {
			b2, err := pad.Fetch()
			if err != nil {
				return false, err
			}
			if b1 == 0 && b2 == 0 {
				return true, nil
			}
			length = 0xbf + (int(b1)<<8 | int(b2))
		} else {
			length = 0x40 + int(b1&0x7f)
		}
	}
	if err := pad.EmitLiterals(length); err != nil {
		return false, err
	}
	return false, nil
}
