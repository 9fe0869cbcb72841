// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    TextRejectEvery: 100, // sample: ~every 100th rejected text
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c := b64frame.New(b64frame.Options{Hooks: hooks})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/b64frame"
)

// Hooks forwards events to inner on background workers. Events are dropped
// when the queue is full, so a slow sink never stalls decoding.
type Hooks struct {
	inner b64frame.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once

	mu     sync.RWMutex
	closed bool
}

var _ b64frame.Hooks = (*Hooks)(nil)

func New(inner b64frame.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events fired after
// Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) TextRejected(n int, r string) { h.try(func() { h.inner.TextRejected(n, r) }) }
func (h *Hooks) FrameRejected(r string, err error) {
	h.try(func() { h.inner.FrameRejected(r, err) })
}
func (h *Hooks) MemoSelfHeal(k, r string) { h.try(func() { h.inner.MemoSelfHeal(k, r) }) }
func (h *Hooks) MemoSetRejected(k string) { h.try(func() { h.inner.MemoSetRejected(k) }) }
func (h *Hooks) MemoProviderError(op string, err error) {
	h.try(func() { h.inner.MemoProviderError(op, err) })
}
