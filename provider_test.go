package sticky

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_ReportBroadcasts(t *testing.T) {
	p := NewProvider()
	a, b := NewHeaderID(), NewHeaderID()

	var got []Registry
	p.Subscribe(func(r Registry) { got = append(got, r) })

	p.Report(Frames{a: {Y: 1, Height: 2}})
	p.Report(Frames{b: {Y: 3, Height: 2}})

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Len())
	assert.Equal(t, 2, got[1].Len())
	assert.Less(t, got[0].Version(), got[1].Version())
	assert.Equal(t, got[1], p.Registry())
}

func TestProvider_ReportIgnoresNoops(t *testing.T) {
	p := NewProvider()
	a := NewHeaderID()

	calls := 0
	p.Subscribe(func(Registry) { calls++ })

	p.Report(nil)
	p.Report(Frames{})
	p.Report(Frames{a: {Y: 1}})
	p.Report(Frames{a: {Y: 1}})

	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(1), p.Registry().Version())
}

func TestProvider_SubscribersRunInOrder(t *testing.T) {
	p := NewProvider()
	var order []string
	p.Subscribe(func(Registry) { order = append(order, "first") })
	p.Subscribe(func(Registry) { order = append(order, "second") })
	p.Subscribe(func(Registry) { order = append(order, "third") })

	p.Report(Frames{NewHeaderID(): {}})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestProvider_Unsubscribe(t *testing.T) {
	p := NewProvider()
	calls := 0
	unsub := p.Subscribe(func(Registry) { calls++ })

	p.Report(Frames{NewHeaderID(): {}})
	unsub()
	unsub()
	p.Report(Frames{NewHeaderID(): {}})

	assert.Equal(t, 1, calls)
	assert.Empty(t, p.subs, "inactive subscriptions are pruned on broadcast")
}

func TestProvider_Forget(t *testing.T) {
	p := NewProvider()
	a, b := NewHeaderID(), NewHeaderID()
	p.Report(Frames{a: {Y: 1}, b: {Y: 2}})

	calls := 0
	p.Subscribe(func(Registry) { calls++ })

	p.Forget(a)
	_, ok := p.Registry().Lookup(a)
	assert.False(t, ok)
	_, ok = p.Registry().Lookup(b)
	assert.True(t, ok)

	p.Forget(a, NewHeaderID())
	assert.Equal(t, 1, calls, "forgetting unknown ids does not broadcast")
}

func TestProvider_Batch(t *testing.T) {
	type tc struct {
		run        func(p *Provider)
		broadcasts int
		registered int
	}

	a, b, c := NewHeaderID(), NewHeaderID(), NewHeaderID()

	tests := map[string]tc{
		"reports in a batch broadcast once": {
			run: func(p *Provider) {
				p.Batch(func() {
					p.Report(Frames{a: {Y: 1}})
					p.Report(Frames{b: {Y: 2}})
					p.Report(Frames{c: {Y: 3}})
				})
			},
			broadcasts: 1,
			registered: 3,
		},
		"nested batches broadcast when the outermost returns": {
			run: func(p *Provider) {
				p.Batch(func() {
					p.Report(Frames{a: {Y: 1}})
					p.Batch(func() {
						p.Report(Frames{b: {Y: 2}})
					})
					p.Report(Frames{c: {Y: 3}})
				})
			},
			broadcasts: 1,
			registered: 3,
		},
		"batch without changes is silent": {
			run: func(p *Provider) {
				p.Batch(func() {})
			},
			broadcasts: 0,
			registered: 0,
		},
		"forget inside batch is folded in": {
			run: func(p *Provider) {
				p.Batch(func() {
					p.Report(Frames{a: {Y: 1}, b: {Y: 2}})
					p.Forget(a)
				})
			},
			broadcasts: 1,
			registered: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewProvider()
			var seen []Registry
			p.Subscribe(func(r Registry) { seen = append(seen, r) })

			tt.run(p)

			assert.Len(t, seen, tt.broadcasts)
			assert.Equal(t, tt.registered, p.Registry().Len())
			if tt.broadcasts > 0 {
				assert.Equal(t, tt.registered, seen[len(seen)-1].Len())
			}
		})
	}
}

func TestProvider_BatchSubscribersSeeFullPass(t *testing.T) {
	p := NewProvider()
	ids := []HeaderID{NewHeaderID(), NewHeaderID(), NewHeaderID()}

	var lens []int
	p.Subscribe(func(r Registry) { lens = append(lens, r.Len()) })

	p.Batch(func() {
		for i, id := range ids {
			p.Report(Frames{id: {Y: float64(i)}})
			assert.Empty(t, lens, "no subscriber may read mid-pass")
		}
	})

	assert.Equal(t, []int{3}, lens)
}

func TestProvider_BatchPanicCleansUp(t *testing.T) {
	p := NewProvider()
	calls := 0
	p.Subscribe(func(Registry) { calls++ })

	assert.Panics(t, func() {
		p.Batch(func() {
			p.Report(Frames{NewHeaderID(): {}})
			panic("boom")
		})
	})
	assert.Equal(t, 1, calls, "pending broadcast still fires")

	p.Report(Frames{NewHeaderID(): {}})
	assert.Equal(t, 2, calls, "later reports broadcast immediately")
}

func TestProvider_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	p := NewProvider(WithMetrics(m), WithName("test"))
	a, b := NewHeaderID(), NewHeaderID()

	p.Batch(func() {
		p.Report(Frames{a: {Y: 1}})
		p.Report(Frames{b: {Y: 2}})
	})
	p.Forget(a)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FramesReported))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HeadersEvicted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Broadcasts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RegisteredHeaders))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
