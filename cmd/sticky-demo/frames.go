package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	sticky "github.com/grindlemire/go-sticky"
)

const tracerName = "github.com/grindlemire/go-sticky/cmd/sticky-demo"

type framesOptions struct {
	configPath string
	from       int
	to         int
	step       int
	width      int
	height     int
	noSticky   bool
	tracePath  string

	// tracerProvider overrides the global provider when set.
	tracerProvider trace.TracerProvider
}

func framesCmd() *cobra.Command {
	var opts framesOptions

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Print rendered frames for a range of scroll offsets",
		Long: `Render the demo list at every scroll offset from --from to --to and
print each frame as plain text. Useful for scripting and snapshot diffs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if opts.noSticky {
				cfg.Sticky = false
			}
			if cfg.Width == 0 {
				cfg.Width = opts.width
			}
			if cfg.Height == 0 {
				cfg.Height = opts.height
			}

			shutdown, err := setupTracing(opts.tracePath)
			if err != nil {
				return err
			}
			err = writeFrames(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
			return errors.Join(err, shutdown(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().IntVar(&opts.from, "from", 0, "first scroll offset")
	cmd.Flags().IntVar(&opts.to, "to", 20, "last scroll offset (inclusive)")
	cmd.Flags().IntVar(&opts.step, "step", 1, "scroll offset increment")
	cmd.Flags().IntVar(&opts.width, "width", 60, "viewport width when the config does not set one")
	cmd.Flags().IntVar(&opts.height, "height", 12, "viewport height when the config does not set one")
	cmd.Flags().BoolVar(&opts.noSticky, "no-sticky", false, "disable sticky headers")
	cmd.Flags().StringVar(&opts.tracePath, "trace", "", "write one render span per frame to this file as JSON")

	return cmd
}

// writeFrames renders every requested offset to w, separated by a ruler
// line naming the offset.
func writeFrames(ctx context.Context, w io.Writer, cfg DemoConfig, opts framesOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.step <= 0 {
		return fmt.Errorf("%w: step must be positive (got %d)", errInvalidConfig, opts.step)
	}

	view := cfg.BuildView(cfg.Width, cfg.Height)
	defer view.Close()
	buf := sticky.NewBuffer(cfg.Width, cfg.Height)
	tp := opts.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(tracerName)

	for y := opts.from; y <= opts.to; y += opts.step {
		view.ScrollTo(y)
		renderFrame(ctx, tracer, view, buf)

		ruler := fmt.Sprintf("-- offset %d ", view.ScrollOffset())
		if pad := cfg.Width - len(ruler); pad > 0 {
			ruler += strings.Repeat("-", pad)
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", ruler, buf.StringTrimmed()); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
		if view.ScrollOffset() >= view.MaxScroll() {
			break
		}
	}
	return nil
}

// renderFrame renders one frame inside a trace span.
func renderFrame(ctx context.Context, tracer trace.Tracer, view *sticky.ScrollView, buf *sticky.Buffer) {
	_, span := tracer.Start(ctx, "sticky.render",
		trace.WithAttributes(attribute.Int("scroll.offset", view.ScrollOffset())))
	defer span.End()

	view.Render(buf)

	pinned := 0
	for _, h := range view.Headers() {
		if h.Placement().Sticking {
			pinned++
		}
	}
	span.SetAttributes(attribute.Int("sticky.pinned", pinned))
}
