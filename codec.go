package b64frame

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/unkn0wn-root/b64frame/deflate"
	"github.com/unkn0wn-root/b64frame/internal/wire"
)

// Codec is the Base64 codec with its compression collaborator. It holds no
// mutable state and is safe for concurrent use.
type Codec struct {
	deflate         deflate.Codec
	maxDecompressed int
	lenient         bool
	log             Logger
	hooks           Hooks
}

func New(opts Options) *Codec {
	c := &Codec{lenient: opts.Lenient}

	// defaults
	c.deflate = coalesce[deflate.Codec](opts.Deflate, deflate.Zlib{})
	c.maxDecompressed = coalesce(opts.MaxDecompressed, defaultMaxDecompressed)
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return c
}

// EncodeToString encodes b as Base64 text without compression.
func (c *Codec) EncodeToString(b []byte) string {
	return bytesToString(encodeBlocks(b))
}

// Encode encodes b as Base64 text. With compress set, b is first wrapped
// in a compression frame; only that step can fail. Empty input always
// yields empty text.
func (c *Codec) Encode(b []byte, compress bool) (string, error) {
	if !compress || len(b) == 0 {
		return c.EncodeToString(b), nil
	}
	frame, err := wire.EncodeCompressed(c.deflate, b)
	if err != nil {
		reason := "compress"
		if errors.Is(err, wire.ErrTooLarge) {
			reason = "too_large"
		}
		return "", &FrameError{Reason: reason, Err: err}
	}
	return c.EncodeToString(frame), nil
}

// Decode decodes Base64 text. With compress set, the decoded bytes are a
// compression frame and the inflated payload is returned. Empty text always
// yields an empty buffer.
func (c *Codec) Decode(text string, compress bool) ([]byte, error) {
	raw, err := decodeBlocks(text, c.lenient)
	if err != nil {
		c.rejectText(len(text), err)
		return nil, err
	}
	if !compress || len(raw) == 0 {
		return raw, nil
	}
	out, err := wire.DecodeCompressed(c.deflate, raw, c.maxDecompressed)
	if err != nil {
		derr := decompressionError(err)
		c.hooks.FrameRejected(derr.Reason, err)
		c.log.Debug("b64frame.frame_rejected", Fields{
			"reason":   derr.Reason,
			"text_len": len(text),
			"err":      err,
		})
		return nil, derr
	}
	return out, nil
}

// EncodeStrings joins list with NUL terminators and encodes the result.
// The final NUL is written only when appendTrailingNull is set.
func (c *Codec) EncodeStrings(list []string, compress, appendTrailingNull bool) (string, error) {
	return c.Encode(wire.JoinStrings(list, appendTrailingNull), compress)
}

// DecodeStrings decodes text and splits it on NUL. Empty strings do not
// survive the trip.
func (c *Codec) DecodeStrings(text string, compress bool) ([]string, error) {
	raw, err := c.Decode(text, compress)
	if err != nil {
		return nil, err
	}
	return wire.SplitStrings(raw), nil
}

// memoMode tags memo keys with the settings that change what Decode
// returns: "r" or "z.<container>", plus "+l" when lenient.
func (c *Codec) memoMode(compress bool) string {
	mode := "r"
	if compress {
		mode = "z." + c.deflate.Name()
	}
	if c.lenient {
		mode += "+l"
	}
	return mode
}

// checkLimit applies MaxDecompressed to a payload that did not come
// through DecodeCompressed.
func (c *Codec) checkLimit(n int) error {
	if c.maxDecompressed < 0 || n <= c.maxDecompressed {
		return nil
	}
	err := fmt.Errorf("%w: %d > %d", wire.ErrOverLimit, n, c.maxDecompressed)
	c.hooks.FrameRejected("over_limit", err)
	return &DecompressionError{Reason: "over_limit", Err: err}
}

func (c *Codec) rejectText(n int, err error) {
	reason := "alphabet"
	if errors.Is(err, ErrLength) {
		reason = "length"
	}
	c.hooks.TextRejected(n, reason)
	c.log.Debug("b64frame.text_rejected", Fields{
		"reason":   reason,
		"text_len": n,
		"err":      err,
	})
}

func decompressionError(err error) *DecompressionError {
	e := &DecompressionError{Reason: "inflate", Err: err}
	var se *deflate.SizeError
	switch {
	case errors.Is(err, wire.ErrTruncated):
		e.Reason = "truncated"
	case errors.Is(err, wire.ErrOverLimit):
		e.Reason = "over_limit"
	case errors.Is(err, deflate.ErrEmpty):
		e.Reason = "empty"
	case errors.As(err, &se):
		e.Reason, e.Want, e.Got = "size_mismatch", se.Want, se.Got
	}
	return e
}

// bytesToString hands over a buffer that nothing else references.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
