package lz

import "errors"

// Sentinel errors surfaced by the scratchpad and by format decoders built
// on top of it. Callers that need to attach position context should wrap
// these with github.com/pkg/errors.Wrapf rather than fmt.Errorf, so that
// errors.Is against the sentinel still succeeds after wrapping.
var (
	// ErrTruncatedInput is returned when a compressed stream ends mid-token.
	ErrTruncatedInput = errors.New("lz: truncated input")
	// ErrOffsetUnderflow is returned when a match offset exceeds the
	// current output length (a malformed stream).
	ErrOffsetUnderflow = errors.New("lz: match offset underflows output")
	// ErrOutputLimitExceeded is returned when decoded output crosses the
	// configured size cap.
	ErrOutputLimitExceeded = errors.New("lz: output size limit exceeded")
	// ErrInvalidToken denotes a format-specific token that cannot be
	// decoded (not a truncation). The f80 and lz0103 decoders do not return
	// it: a stream that ends inside a token yields ErrTruncatedInput.
	ErrInvalidToken = errors.New("lz: invalid token")
	// ErrConfiguration denotes match classes with contradictory ranges. The
	// matcher and compressor constructors do not validate their classes and
	// never return it.
	ErrConfiguration = errors.New("lz: contradictory match class configuration")
)
