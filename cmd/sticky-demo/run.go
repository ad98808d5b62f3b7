package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	sticky "github.com/grindlemire/go-sticky"
	"github.com/grindlemire/go-sticky/internal/debug"
)

// errQuit ends the interactive session normally.
var errQuit = errors.New("quit")

const pollInterval = 100 * time.Millisecond

type runOptions struct {
	configPath  string
	metricsAddr string
	noSticky    bool
	tracePath   string
}

func runCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive demo",
		Long: `Start a full-screen scroll view in the terminal.

Keys:
  j, down, enter     scroll one line down
  k, up              scroll one line up
  space, f, pgdn     scroll one page down
  b, pgup            scroll one page up
  g, home            jump to the top
  G, end             jump to the bottom
  q, esc, ctrl+c     quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if opts.noSticky {
				cfg.Sticky = false
			}

			shutdown, err := setupTracing(opts.tracePath)
			if err != nil {
				return err
			}
			err = runInteractive(cmd.Context(), os.Stdin, os.Stdout, cfg, opts.metricsAddr)
			return errors.Join(err, shutdown(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	cmd.Flags().BoolVar(&opts.noSticky, "no-sticky", false, "disable sticky headers")
	cmd.Flags().StringVar(&opts.tracePath, "trace", "", "write one render span per frame to this file as JSON")

	return cmd
}

// runInteractive owns the terminal for the session: raw input, an
// alternate screen, and the render loop.
func runInteractive(ctx context.Context, in *os.File, out io.Writer, cfg DemoConfig, metricsAddr string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fd := int(in.Fd())

	state, err := enableRawMode(fd)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	defer disableRawMode(state)

	fmt.Fprint(out, "\x1b[?1049h\x1b[?25l")
	defer fmt.Fprint(out, "\x1b[?25h\x1b[?1049l")

	var (
		viewOpts []sticky.Option
		registry *prometheus.Registry
	)
	if metricsAddr != "" {
		registry = prometheus.NewRegistry()
		viewOpts = append(viewOpts, sticky.WithProviderMetrics(sticky.NewMetrics(registry)))
	}

	s := newSession(cfg, fd, viewOpts...)
	defer s.view.Close()

	g, ctx := errgroup.WithContext(ctx)
	actions := make(chan []action, 16)

	g.Go(func() error {
		return readLoop(ctx, fd, actions)
	})
	g.Go(func() error {
		return s.loop(ctx, out, actions)
	})
	if registry != nil {
		g.Go(func() error {
			return serveMetrics(ctx, metricsAddr, registry)
		})
	}

	err = g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// readLoop forwards decoded key presses until ctx is done.
func readLoop(ctx context.Context, fd int, actions chan<- []action) error {
	buf := make([]byte, 256)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ready, err := waitReadable(fd, pollInterval)
		if err != nil {
			return fmt.Errorf("waiting for input: %w", err)
		}
		if !ready {
			continue
		}
		n, err := readInput(fd, buf)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if decoded := parseKeys(buf[:n]); len(decoded) > 0 {
			select {
			case actions <- decoded:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// session is the interactive view plus the terminal-sized buffer it
// renders into. The bottom row is a status line.
type session struct {
	cfg  DemoConfig
	fd   int
	view *sticky.ScrollView
	buf  *sticky.Buffer
}

func newSession(cfg DemoConfig, fd int, opts ...sticky.Option) *session {
	width, height := sessionSize(cfg, fd)
	return &session{
		cfg:  cfg,
		fd:   fd,
		view: cfg.BuildView(width, max(height-1, 1), opts...),
		buf:  sticky.NewBuffer(width, height),
	}
}

func sessionSize(cfg DemoConfig, fd int) (int, int) {
	width, height := terminalSize(fd)
	if cfg.Width > 0 {
		width = min(width, cfg.Width)
	}
	if cfg.Height > 0 {
		height = min(height, cfg.Height)
	}
	return width, height
}

func (s *session) loop(ctx context.Context, out io.Writer, actions <-chan []action) error {
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, resizeSignal)
	defer signal.Stop(winch)

	tracer := otel.Tracer(tracerName)
	for {
		renderFrame(ctx, tracer, s.view, s.buf)
		s.drawStatus()
		if err := sticky.WriteANSI(out, s.buf); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-winch:
			s.resize()
		case batch := <-actions:
			for _, a := range batch {
				if a == actionQuit {
					return errQuit
				}
				s.apply(a)
			}
		}
	}
}

func (s *session) apply(a action) {
	_, page := s.view.Size()
	page = max(page-1, 1)

	switch a {
	case actionLineDown:
		s.view.ScrollBy(1)
	case actionLineUp:
		s.view.ScrollBy(-1)
	case actionPageDown:
		s.view.ScrollBy(page)
	case actionPageUp:
		s.view.ScrollBy(-page)
	case actionTop:
		s.view.ScrollToTop()
	case actionBottom:
		s.view.ScrollToBottom()
	}
}

func (s *session) resize() {
	width, height := sessionSize(s.cfg, s.fd)
	debug.Log("session.resize: %dx%d", width, height)
	s.view.Resize(width, max(height-1, 1))
	s.buf.Resize(width, height)
	s.view.ScrollTo(s.view.ScrollOffset())
}

// drawStatus paints the bottom row with the scroll position and key help.
func (s *session) drawStatus() {
	y := s.buf.Height() - 1
	if y < 1 {
		return
	}
	mode := "sticky"
	if s.view.Provider() == nil {
		mode = "plain"
	}
	if pinned := pinnedHeader(s.view); pinned != "" {
		mode += ": " + pinned
	}
	status := fmt.Sprintf(" %d/%d  %s  j/k scroll  space/b page  g/G ends  q quit",
		s.view.ScrollOffset(), s.view.MaxScroll(), mode)

	style := sticky.NewStyle().Dim()
	s.buf.Fill(sticky.NewRect(0, y, s.buf.Width(), 1), ' ', style)
	s.buf.SetString(0, y, status, style)
}

// pinnedHeader returns the text of the header currently pinned at the top
// of the viewport, or "" when none is.
func pinnedHeader(view *sticky.ScrollView) string {
	pinned := ""
	for _, it := range view.Items() {
		h := it.Header()
		if h == nil || !h.Placement().Sticking {
			continue
		}
		// Later headers stick only after earlier ones were pushed out.
		pinned = it.Text()
	}
	return pinned
}

// serveMetrics exposes reg over HTTP until ctx is done.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	debug.Log("serveMetrics: listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving metrics: %w", err)
	}
	return nil
}
