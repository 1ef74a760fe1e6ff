package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/olivier-w/gooey/internal/logger"
	"github.com/olivier-w/gooey/internal/toggle"
	"github.com/olivier-w/gooey/internal/util"
)

type traceOptions struct {
	sim   simFlags
	every int
}

// traceRow is the toggle's state at the start of one frame.
type traceRow struct {
	Frame   int
	Elapsed time.Duration
	On      bool
	Main    float64
	Trails  [3]float64
	ScaleX  float64
	ScaleY  float64
	Settled bool
}

func newTraceCmd(root *rootFlags) *cobra.Command {
	anim := &animFlags{}
	opts := &traceOptions{}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print blob positions frame by frame without a terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, root, anim, opts)
		},
	}

	anim.register(cmd)
	cmd.Flags().IntVarP(&opts.sim.frames, "frames", "n", 60, "Number of frames to simulate")
	cmd.Flags().IntVar(&opts.sim.fps, "fps", 0, "Frame rate (defaults to the configured studio rate)")
	cmd.Flags().IntSliceVar(&opts.sim.presses, "press", []int{0}, "Frames on which the toggle is activated")
	cmd.Flags().IntVar(&opts.every, "every", 1, "Print every nth frame")

	return cmd
}

func runTrace(cmd *cobra.Command, root *rootFlags, anim *animFlags, opts *traceOptions) error {
	if err := opts.sim.validate(); err != nil {
		return err
	}
	if opts.every < 1 {
		return fmt.Errorf("--every must be at least 1, got %d", opts.every)
	}
	cfg, err := resolveConfig(cmd, root, anim)
	if err != nil {
		return err
	}
	log, closeLog, err := logger.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()

	out := cmd.OutOrStdout()
	var events []string
	frame := 0
	tg := newSimToggle(cfg, log, func(on bool) {
		events = append(events, fmt.Sprintf("frame %d: switched %s", frame, onOffWord(on)))
	})
	fmt.Fprintf(out, "# %s %s toggle, %s\n", cfg.Size(), tg.Mode(), cfg.EditorValue())

	dt := opts.sim.interval(cfg)
	var rows []traceRow
	runFrames(tg, opts.sim.frames, dt, opts.sim.presses, func(f int) { frame = f }, func(f int) {
		if f%opts.every == 0 || f == opts.sim.frames {
			rows = append(rows, captureRow(tg, f, dt))
		}
	})

	for _, e := range events {
		fmt.Fprintln(out, "# "+e)
	}
	return writeTrace(out, rows)
}

func captureRow(tg *toggle.Toggle, f int, dt time.Duration) traceRow {
	e := tg.Ensemble()
	sx, sy := e.Scale()
	return traceRow{
		Frame:   f,
		Elapsed: time.Duration(f) * dt,
		On:      tg.On(),
		Main:    e.Position(toggle.Main),
		Trails:  [3]float64{e.Position(toggle.TrailNear), e.Position(toggle.TrailMid), e.Position(toggle.TrailFar)},
		ScaleX:  sx,
		ScaleY:  sy,
		Settled: tg.Settled(),
	}
}

func writeTrace(w io.Writer, rows []traceRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FRAME\tTIME\tSTATE\tMAIN\tNEAR\tMID\tFAR\tSCALE\tSETTLED")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2fx%.2f\t%t\n",
			r.Frame, util.FormatDuration(r.Elapsed), onOffWord(r.On),
			r.Main, r.Trails[0], r.Trails[1], r.Trails[2], r.ScaleX, r.ScaleY, r.Settled)
	}
	return tw.Flush()
}

func onOffWord(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
