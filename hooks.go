package b64frame

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The codec calls them on hot paths.
type Hooks interface {
	// Decode input was rejected before reaching the kernels.
	// reason ∈ {"length", "alphabet"}
	TextRejected(textLen int, reason string)

	// A compression frame failed validation or inflation.
	// reason ∈ {"truncated", "empty", "over_limit", "size_mismatch", "inflate"}
	FrameRejected(reason string, err error)

	// A memo entry was deleted on read.
	// reason ∈ {"corrupt"}
	MemoSelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	MemoSetRejected(storageKey string)

	// Provider errors. op ∈ {"get", "set", "del"}
	MemoProviderError(op string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) TextRejected(int, string)        {}
func (NopHooks) FrameRejected(string, error)     {}
func (NopHooks) MemoSelfHeal(string, string)     {}
func (NopHooks) MemoSetRejected(string)          {}
func (NopHooks) MemoProviderError(string, error) {}
