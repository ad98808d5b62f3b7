package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sticky "github.com/grindlemire/go-sticky"
)

const loremIpsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
	"Fusce ut turpis tempor, porta diam ut, iaculis leo. Phasellus condimentum " +
	"euismod enim fringilla vulputate. Suspendisse sed quam mattis, suscipit " +
	"ipsum vel, volutpat quam. Donec sagittis felis nec nulla viverra, et " +
	"interdum enim sagittis. Nunc egestas scelerisque enim ac feugiat."

// DemoConfig describes the demo list and viewport.
type DemoConfig struct {
	// Sections is the number of heading + paragraph pairs.
	Sections int `yaml:"sections"`
	// Paragraph is the body text under every heading.
	Paragraph string `yaml:"paragraph"`
	// Padding surrounds each paragraph.
	Padding int `yaml:"padding"`
	// HeaderPadding surrounds each heading; 1 makes three-row headers.
	HeaderPadding int `yaml:"header_padding"`
	// Width and Height size the viewport. Zero means "use the terminal".
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Sticky enables sticky headers.
	Sticky bool `yaml:"sticky"`
	// SpaceName names the scroll view's coordinate space.
	SpaceName string `yaml:"space_name"`
}

// DefaultConfig mirrors the classic demo: fifty headings over lorem ipsum.
func DefaultConfig() DemoConfig {
	return DemoConfig{
		Sections:  50,
		Paragraph: loremIpsum,
		Padding:   1,
		Sticky:    true,
		SpaceName: sticky.DefaultSpaceName,
	}
}

var errInvalidConfig = errors.New("invalid config")

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (DemoConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the config for values the demo cannot render.
func (c DemoConfig) Validate() error {
	switch {
	case c.Sections < 0:
		return fmt.Errorf("%w: sections must not be negative (got %d)", errInvalidConfig, c.Sections)
	case c.Padding < 0 || c.HeaderPadding < 0:
		return fmt.Errorf("%w: padding must not be negative", errInvalidConfig)
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: viewport size must not be negative (got %dx%d)", errInvalidConfig, c.Width, c.Height)
	}
	return nil
}

// BuildView creates the demo scroll view for a viewport of width x height.
func (c DemoConfig) BuildView(width, height int, opts ...sticky.Option) *sticky.ScrollView {
	opts = append([]sticky.Option{sticky.WithSpaceName(c.SpaceName)}, opts...)
	if c.Sticky {
		opts = append(opts, sticky.WithStickyHeaders())
	}

	view := sticky.NewScrollView(width, height, opts...)
	view.AddText("🌐", sticky.WithPadding(1))
	for i := 0; i < c.Sections; i++ {
		view.AddHeader(fmt.Sprintf("Heading %d", i), sticky.WithPadding(c.HeaderPadding))
		view.AddText(c.Paragraph, sticky.WithPadding(c.Padding))
	}
	return view
}
