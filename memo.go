package b64frame

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/unkn0wn-root/b64frame/internal/util"
	"github.com/unkn0wn-root/b64frame/internal/wire"
	pr "github.com/unkn0wn-root/b64frame/provider"
)

// CostFunc returns the provider cost of a stored entry.
type CostFunc func(storageKey string, raw []byte) int64

// MemoOptions tune a Memo. Namespace and Provider are required.
type MemoOptions struct {
	// Required
	Namespace string // e.g. "mzml:run42"
	Provider  pr.Provider

	Codec          *Codec        // nil => Default()
	TTL            time.Duration // 0 => 10m
	MinTextLen     int           // shorter texts bypass the cache; 0 => 4 KiB, <0 => cache everything
	ComputeCost    CostFunc      // default: len(raw)
	StrictProvider bool          // return provider errors instead of falling back to the codec
	Logger         Logger        // if nil, NopLogger is used
	Hooks          Hooks         // if nil, NopHooks is used
	Disabled       bool          // decode straight through the codec
}

// Memo caches decoded buffers keyed by their text, for readers that decode
// the same array elements repeatedly. The cache is best effort: misses,
// corrupt entries and (unless StrictProvider) provider failures fall back to
// the codec.
type Memo struct {
	ns         string
	provider   pr.Provider
	codec      *Codec
	ttl        time.Duration
	minTextLen int
	cost       CostFunc
	strict     bool
	log        Logger
	hooks      Hooks
	enabled    bool
}

func NewMemo(opts MemoOptions) (*Memo, error) {
	if opts.Provider == nil {
		return nil, errors.New("b64frame: memo provider is required")
	}
	if opts.Namespace == "" {
		return nil, errors.New("b64frame: memo namespace is required")
	}

	m := &Memo{
		ns:       opts.Namespace,
		provider: opts.Provider,
		strict:   opts.StrictProvider,
		enabled:  !opts.Disabled,
	}

	// defaults
	m.codec = coalesce(opts.Codec, std)
	m.ttl = coalesce(opts.TTL, defaultMemoTTL)
	m.minTextLen = coalesce(opts.MinTextLen, defaultMemoMinTextLen)
	m.log = coalesce[Logger](opts.Logger, NopLogger{})
	m.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	if opts.ComputeCost != nil {
		m.cost = opts.ComputeCost
	} else {
		m.cost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}
	return m, nil
}

func (m *Memo) Enabled() bool { return m.enabled }

// Codec returns the codec used on misses.
func (m *Memo) Codec() *Codec { return m.codec }

func (m *Memo) Close(ctx context.Context) error {
	if m.provider != nil {
		return m.provider.Close(ctx)
	}
	return nil
}

func (m *Memo) bypass(text string) bool {
	return !m.enabled || len(text) == 0 || len(text) < m.minTextLen
}

// Decode is Codec.Decode with a cache in front of it. The returned buffer
// belongs to the caller.
func (m *Memo) Decode(ctx context.Context, text string, compress bool) ([]byte, error) {
	if m.bypass(text) {
		return m.codec.Decode(text, compress)
	}
	k := util.MemoKey(m.ns, m.codec.memoMode(compress), text)

	raw, ok, err := m.provider.Get(ctx, k)
	switch {
	case err != nil:
		if m.providerError("get", k, err) {
			return nil, err
		}
	case ok:
		payload, derr := wire.DecodeEntry(raw)
		if derr == nil {
			if compress {
				if err := m.codec.checkLimit(len(payload)); err != nil {
					return nil, err
				}
			}
			return bytes.Clone(payload), nil
		}
		m.selfHeal(ctx, k, "corrupt")
	}

	out, err := m.codec.Decode(text, compress)
	if err != nil {
		return nil, err
	}
	if err := m.store(ctx, k, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeStrings is Codec.DecodeStrings with a cache in front of it.
func (m *Memo) DecodeStrings(ctx context.Context, text string, compress bool) ([]string, error) {
	raw, err := m.Decode(ctx, text, compress)
	if err != nil {
		return nil, err
	}
	return wire.SplitStrings(raw), nil
}

// Invalidate drops the cached decode of text, if any.
func (m *Memo) Invalidate(ctx context.Context, text string, compress bool) error {
	if !m.enabled {
		return nil
	}
	k := util.MemoKey(m.ns, m.codec.memoMode(compress), text)
	if err := m.provider.Del(ctx, k); err != nil {
		m.hooks.MemoProviderError("del", err)
		return err
	}
	return nil
}

func (m *Memo) store(ctx context.Context, k string, payload []byte) error {
	raw := wire.EncodeEntry(payload)
	ok, err := m.provider.Set(ctx, k, raw, m.cost(k, raw), m.ttl)
	if err != nil {
		if m.providerError("set", k, err) {
			return err
		}
		return nil
	}
	if !ok {
		m.hooks.MemoSetRejected(k)
	}
	return nil
}

// providerError reports err and tells the caller whether to surface it.
func (m *Memo) providerError(op, k string, err error) bool {
	m.hooks.MemoProviderError(op, err)
	m.log.Warn("b64frame.memo_provider_error", Fields{
		"op":  op,
		"key": k,
		"err": err,
	})
	return m.strict
}

func (m *Memo) selfHeal(ctx context.Context, k, reason string) {
	if err := m.provider.Del(ctx, k); err != nil {
		m.hooks.MemoProviderError("del", err)
	}
	m.hooks.MemoSelfHeal(k, reason)
	m.log.Debug("b64frame.memo_self_heal", Fields{
		"key":    k,
		"reason": reason,
	})
}
