package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/CodeStranger-Fred/rlmetrics/display"
	"github.com/CodeStranger-Fred/rlmetrics/internal/config"
	"github.com/CodeStranger-Fred/rlmetrics/internal/episode"
	"github.com/CodeStranger-Fred/rlmetrics/plot"
	"github.com/CodeStranger-Fred/rlmetrics/tracker"
)

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Feed recorded episodes into a live chart",
	Long: `Read episodes as JSON Lines from a file, or stdin when the file is "-" or
omitted, and record them one by one:

  {"score": 12.5, "loss": 0.31, "discount_factor": 0.99, "exploration_rate": 0.2}

The chart is redrawn after every episode. With --display live the chart is
served until the command is interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening episodes: %w", err)
			}
			defer func() { _ = f.Close() }()
			in = f
		}
		return runReplay(cmd.Context(), cfg, in, cmd.OutOrStdout())
	},
}

func init() {
	flags := replayCmd.Flags()
	flags.Float64("width", config.DefaultWidth, "chart width in display units")
	flags.Float64("height-per-plot", config.DefaultHeightPerPlot, "height of each metric panel in display units")
	flags.Float64("dpi", config.DefaultDPI, "pixels per display unit")
	flags.String("format", config.DefaultFormat, "render format: html, png, text")
	flags.String("display", config.DefaultDisplay, "where to show the chart: file, terminal, live")
	flags.Bool("wait", config.DefaultWait, "prepare each frame fully before replacing the previous one")
	flags.String("output-dir", config.DefaultOutputDir, "directory for file output")
	flags.StringP("output", "o", "", "output file (default <output-dir>/<run-id>.<ext>)")
	flags.String("listen", config.DefaultListen, "address for the live display")
	flags.Duration("refresh", config.DefaultRefresh, "browser reload interval for the live display")
	flags.Duration("interval", config.DefaultInterval, "pause between replayed episodes")

	for key, name := range map[string]string{
		"width":           "width",
		"height_per_plot": "height-per-plot",
		"dpi":             "dpi",
		"format":          "format",
		"display":         "display",
		"wait":            "wait",
		"output_dir":      "output-dir",
		"output":          "output",
		"listen":          "listen",
		"refresh":         "refresh",
		"interval":        "interval",
	} {
		bindFlag(settings, key, flags.Lookup(name))
	}
}

func runReplay(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	runID := uuid.NewString()
	logger := slog.Default().With("run", runID)

	renderer, err := plot.ByName(cfg.Format)
	if err != nil {
		return err
	}

	var (
		disp display.Display
		live *display.Live
	)
	switch cfg.Display {
	case config.DisplayFile:
		path := cfg.Output
		if path == "" {
			path = filepath.Join(cfg.OutputDir, runID+"."+plot.Ext(cfg.Format))
		}
		logger.Info("writing chart", "path", path)
		disp = display.NewFile(path, cfg.Wait)
	case config.DisplayTerminal:
		disp = display.NewTerminal(out, cfg.Wait)
	case config.DisplayLive:
		live = display.NewLive(cfg.Refresh, logger)
		disp = live
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownDisplay, cfg.Display)
	}

	t := tracker.New(renderer, disp,
		tracker.WithConfig(tracker.Config{
			Width:         cfg.Width,
			HeightPerPlot: cfg.HeightPerPlot,
			DPI:           cfg.DPI,
			Title:         "run " + runID,
		}),
		tracker.WithLogger(logger),
	)

	if live == nil {
		n, err := replay(ctx, t, in, cfg.Interval)
		logger.Info("replay finished", "episodes", n)
		return err
	}

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("live display: %w", err)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- live.Serve(ctx, ln) }()

	n, err := replay(ctx, t, in, cfg.Interval)
	if err != nil {
		cancel()
		<-errc
		return err
	}
	logger.Info("replay finished, serving until interrupted", "episodes", n)
	return <-errc
}

// replay records every episode from in and returns how many were recorded.
func replay(ctx context.Context, t *tracker.Tracker, in io.Reader, interval time.Duration) (int, error) {
	r := episode.NewReader(in)
	n := 0
	for {
		ep, err := r.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("reading episodes: %w", err)
		}

		if err := t.RecordEpisode(ep); err != nil {
			return n, err
		}
		n++

		if interval <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		case <-time.After(interval):
		}
	}
}
