package lz0103

// ringbufferPrefill reconstructs the initial ring-buffer content the F01/F03
// encoder and decoder both seed their window with before any real byte is
// seen. The original C++ source (original_source/examples/namco/Lz0103.cc)
// reads this from a generated Lz0103Data.h that wasn't part of the
// retrieved sources, so this port falls back to the classic LZSS ring
// buffer convention — an all-space window, the seed most LZSS ports since
// Okumura's use when the original table is unavailable.
//
// F01 reads the first 4096 bytes of this array as its prefill; F03 reads
// bytes [1:4097], mirroring Lz0103Decompressor's constructor
// (`RingbufferPrefill + (m_rle ? 1 : 0)`).
var ringbufferPrefill = func() [4097]byte {
	var buf [4097]byte
	for i := range buf {
		buf[i] = ' '
	}
	return buf
}()

func prefillFor(rle bool) []byte {
	if rle {
		return ringbufferPrefill[1:4097]
	}
	return ringbufferPrefill[0:4096]
}
