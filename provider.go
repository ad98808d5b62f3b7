package sticky

import (
	"sync"
	"sync/atomic"

	"github.com/grindlemire/go-sticky/internal/debug"
)

// Source is what a Header needs from its provider: a read view of the
// registry, a write path for its own frame, eviction on teardown, and
// change notifications. A nil Source means the header has no provider.
type Source interface {
	Registry() Registry
	Report(update Frames)
	Forget(ids ...HeaderID)
	Subscribe(fn func(Registry)) Unsubscribe
}

// Unsubscribe removes a subscription. Calling it more than once is harmless.
type Unsubscribe func()

// globalSubscriptionID gives every subscription a unique id across providers.
var globalSubscriptionID atomic.Uint64

type subscription struct {
	id     uint64
	fn     func(Registry)
	active bool
}

// Provider holds the authoritative frame registry for one scroll view and
// broadcasts every change to its subscribers.
//
// Thread Safety Rules:
//   - Registry() is safe to call from any goroutine
//   - Report, Forget and Batch are expected on the layout loop
//   - Subscriber callbacks run on the goroutine that changed the registry
type Provider struct {
	name    string
	metrics *Metrics

	mu   sync.RWMutex
	reg  Registry
	subs []*subscription

	batchMu sync.Mutex
	depth   int
	pending bool
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithName labels the provider in debug output.
func WithName(name string) ProviderOption {
	return func(p *Provider) {
		p.name = name
	}
}

// WithMetrics records provider activity on m.
func WithMetrics(m *Metrics) ProviderOption {
	return func(p *Provider) {
		p.metrics = m
	}
}

// NewProvider creates a provider with an empty registry.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{name: DefaultSpaceName}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the current snapshot.
func (p *Provider) Registry() Registry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.reg
}

// Report folds update into the registry and broadcasts the result.
// Updates that change nothing are ignored.
func (p *Provider) Report(update Frames) {
	if len(update) == 0 {
		return
	}

	p.mu.Lock()
	changed := false
	for id, f := range update {
		if old, ok := p.reg.frames[id]; !ok || old != f {
			changed = true
			break
		}
	}
	if !changed {
		p.mu.Unlock()
		return
	}
	p.reg = Registry{
		frames:  p.reg.frames.Merge(update),
		version: p.reg.version + 1,
	}
	size := len(p.reg.frames)
	p.mu.Unlock()

	debug.Log("Provider(%s).Report: folded %d frame(s), %d registered", p.name, len(update), size)
	p.metrics.observeReport(len(update), size)
	p.changed()
}

// Forget evicts ids from the registry. Headers call it on teardown so
// stale frames never influence live headers.
func (p *Provider) Forget(ids ...HeaderID) {
	p.mu.Lock()
	removed := 0
	for _, id := range ids {
		if _, ok := p.reg.frames[id]; ok {
			removed++
		}
	}
	if removed == 0 {
		p.mu.Unlock()
		return
	}
	p.reg = Registry{
		frames:  p.reg.frames.Without(ids...),
		version: p.reg.version + 1,
	}
	size := len(p.reg.frames)
	p.mu.Unlock()

	debug.Log("Provider(%s).Forget: evicted %d header(s), %d registered", p.name, removed, size)
	p.metrics.observeEviction(removed, size)
	p.changed()
}

// Subscribe registers fn to receive the registry after every change.
// Subscribers run in subscription order.
func (p *Provider) Subscribe(fn func(Registry)) Unsubscribe {
	s := &subscription{id: globalSubscriptionID.Add(1), fn: fn, active: true}

	p.mu.Lock()
	p.subs = append(p.subs, s)
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		s.active = false
		p.mu.Unlock()
	}
}

// Batch runs fn and holds back broadcasts until the outermost Batch
// returns, so every frame reported during one layout pass is folded in
// before any header reads the registry. Subscribers are notified once, and
// only if the registry changed.
//
// If fn panics, the batch state is cleaned up before the panic propagates.
func (p *Provider) Batch(fn func()) {
	p.batchMu.Lock()
	p.depth++
	p.batchMu.Unlock()

	defer func() {
		p.batchMu.Lock()
		p.depth--
		flush := p.depth == 0 && p.pending
		if flush {
			p.pending = false
		}
		p.batchMu.Unlock()

		if flush {
			p.broadcast()
		}
	}()

	fn()
}

// changed broadcasts now or marks the open batch as pending.
func (p *Provider) changed() {
	p.batchMu.Lock()
	if p.depth > 0 {
		p.pending = true
		p.batchMu.Unlock()
		return
	}
	p.batchMu.Unlock()
	p.broadcast()
}

func (p *Provider) broadcast() {
	p.mu.Lock()
	reg := p.reg
	// Drop unsubscribed entries while copying so they do not accumulate.
	active := make([]*subscription, 0, len(p.subs))
	for _, s := range p.subs {
		if s.active {
			active = append(active, s)
		}
	}
	p.subs = active
	p.mu.Unlock()

	p.metrics.observeBroadcast()
	for _, s := range active {
		s.fn(reg)
	}
}
