package sticky

import "github.com/google/uuid"

// Option configures a ScrollView.
type Option func(*ScrollView)

// WithStickyHeaders enables sticky header tracking. Without it, headers
// added to the view never stick and report a diagnostic instead.
func WithStickyHeaders() Option {
	return func(v *ScrollView) {
		v.sticky = true
	}
}

// WithSpaceName names the view's coordinate space.
func WithSpaceName(name string) Option {
	return func(v *ScrollView) {
		v.spaceName = name
	}
}

// WithDiagnostics routes header diagnostics to fn instead of the debug log.
func WithDiagnostics(fn func(string)) Option {
	return func(v *ScrollView) {
		v.diagnostics = fn
	}
}

// WithProviderMetrics records registry and diagnostic counts on m.
func WithProviderMetrics(m *Metrics) Option {
	return func(v *ScrollView) {
		v.metrics = m
	}
}

// WithHeaderStyle sets the style headers are painted with.
func WithHeaderStyle(s Style) Option {
	return func(v *ScrollView) {
		v.headerStyle = s
	}
}

// WithTextStyle sets the style text items are painted with.
func WithTextStyle(s Style) Option {
	return func(v *ScrollView) {
		v.textStyle = s
	}
}

// WithIDNamespace fixes the namespace header ids are derived from, making
// ids reproducible across runs.
func WithIDNamespace(space uuid.UUID) Option {
	return func(v *ScrollView) {
		v.namespace = space
	}
}

// ItemOption configures one item of a ScrollView.
type ItemOption func(*Item)

// WithPadding surrounds the item's text with n blank cells on every side.
func WithPadding(n int) ItemOption {
	return func(it *Item) {
		it.padding = max(n, 0)
	}
}

// WithItemStyle overrides the view's style for one item.
func WithItemStyle(s Style) ItemOption {
	return func(it *Item) {
		it.style = &s
	}
}
