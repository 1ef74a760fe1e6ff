package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/olivier-w/gooey/internal/logger"
	"github.com/olivier-w/gooey/internal/render"
)

type snapshotOptions struct {
	sim   simFlags
	out   string
	scale int
}

func newSnapshotCmd(root *rootFlags) *cobra.Command {
	anim := &animFlags{}
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the toggle at a given frame to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, root, anim, opts)
		},
	}

	anim.register(cmd)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output PNG path, - for stdout")
	cmd.Flags().IntVar(&opts.sim.frames, "frame", 0, "Frame to capture")
	cmd.Flags().IntVar(&opts.sim.fps, "fps", 0, "Frame rate (defaults to the configured studio rate)")
	cmd.Flags().IntSliceVar(&opts.sim.presses, "press", nil, "Frames on which the toggle is activated")
	cmd.Flags().IntVar(&opts.scale, "scale", render.DefaultSnapshotScale, "Output pixels per track pixel")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runSnapshot(cmd *cobra.Command, root *rootFlags, anim *animFlags, opts *snapshotOptions) error {
	if err := opts.sim.validate(); err != nil {
		return err
	}
	if opts.scale < 1 {
		return fmt.Errorf("--scale must be at least 1, got %d", opts.scale)
	}
	cfg, err := resolveConfig(cmd, root, anim)
	if err != nil {
		return err
	}
	theme, err := cfg.RenderTheme()
	if err != nil {
		return err
	}
	log, closeLog, err := logger.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()

	tg := newSimToggle(cfg, log, nil)
	runFrames(tg, opts.sim.frames, opts.sim.interval(cfg), opts.sim.presses, nil, nil)
	scene := render.NewScene(tg.Frame(), theme)

	if opts.out == "-" {
		return render.WritePNG(cmd.OutOrStdout(), scene, opts.scale)
	}
	return writeFile(opts.out, func(w io.Writer) error {
		return render.WritePNG(w, scene, opts.scale)
	})
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}
