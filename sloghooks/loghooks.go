package sloghooks

import (
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/unkn0wn-root/b64frame"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	TextRejectEvery  uint64
	FrameRejectEvery uint64
	SelfHealEvery    uint64
	// Optional key redactor. Defaults to an xxhash prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	textRejectCtr  atomic.Uint64
	frameRejectCtr atomic.Uint64
	selfHealCtr    atomic.Uint64
}

var _ b64frame.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	var sum [8]byte
	v := xxhash.Sum64String(k)
	for i := range sum {
		sum[i] = byte(v >> (56 - 8*i))
	}
	return hex.EncodeToString(sum[:4])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) TextRejected(textLen int, reason string) {
	if h.l == nil || !sample(h.opts.TextRejectEvery, &h.textRejectCtr) {
		return
	}
	h.l.Info("b64frame.text_rejected",
		"text_len", textLen,
		"reason", reason)
}

func (h *Hooks) FrameRejected(reason string, err error) {
	if h.l == nil || !sample(h.opts.FrameRejectEvery, &h.frameRejectCtr) {
		return
	}
	h.l.Warn("b64frame.frame_rejected",
		"reason", reason,
		"err", err)
}

func (h *Hooks) MemoSelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("b64frame.memo_self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) MemoSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Debug("b64frame.memo_set_rejected",
		"key", h.redact(storageKey))
}

func (h *Hooks) MemoProviderError(op string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("b64frame.memo_provider_error",
		"op", op,
		"err", err)
}
