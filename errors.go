package b64frame

import (
	"errors"
	"fmt"
)

var (
	ErrLength        = errors.New("b64frame: invalid text length")
	ErrAlphabet      = errors.New("b64frame: invalid base64 character")
	ErrDecompression = errors.New("b64frame: decompression failed")
	ErrFrame         = errors.New("b64frame: cannot build compression frame")
)

// LengthError reports decode input whose length is not a multiple of 4.
type LengthError struct {
	Len int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("b64frame: text length %d is not a multiple of 4", e.Len)
}

func (e *LengthError) Unwrap() error { return ErrLength }

// AlphabetError reports a byte outside the Base64 alphabet, or a misplaced
// padding character, at Offset in the decode input.
type AlphabetError struct {
	Offset int
	Char   byte
}

func (e *AlphabetError) Error() string {
	if e.Char == '=' {
		return fmt.Sprintf("b64frame: misplaced padding at offset %d", e.Offset)
	}
	return fmt.Sprintf("b64frame: invalid character %q at offset %d", e.Char, e.Offset)
}

func (e *AlphabetError) Unwrap() error { return ErrAlphabet }

// DecompressionError reports a compression frame that could not be inflated
// to its declared length.
//
// Reason ∈ {"truncated", "empty", "over_limit", "size_mismatch", "inflate"}.
// Want and Got are set for "size_mismatch" (Got == Want+1 means the stream
// ran past Want).
type DecompressionError struct {
	Reason string
	Want   int
	Got    int
	Err    error
}

func (e *DecompressionError) Error() string {
	switch {
	case e.Reason == "size_mismatch":
		return fmt.Sprintf("b64frame: decompression: declared %d bytes, inflated %d", e.Want, e.Got)
	case e.Err != nil:
		return fmt.Sprintf("b64frame: decompression: %s: %v", e.Reason, e.Err)
	default:
		return fmt.Sprintf("b64frame: decompression: %s", e.Reason)
	}
}

func (e *DecompressionError) Unwrap() []error {
	errs := make([]error, 0, 2)
	errs = append(errs, ErrDecompression)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// FrameError reports a buffer that could not be wrapped in a compression
// frame. Reason ∈ {"too_large", "compress"}.
type FrameError struct {
	Reason string
	Err    error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("b64frame: compression frame: %s: %v", e.Reason, e.Err)
}

func (e *FrameError) Unwrap() []error {
	return []error{ErrFrame, e.Err}
}
