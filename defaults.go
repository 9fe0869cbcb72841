package b64frame

import "time"

const (
	defaultMaxDecompressed = 1 << 30
	defaultMemoTTL         = 10 * time.Minute
	defaultMemoMinTextLen  = 4 << 10
)

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
