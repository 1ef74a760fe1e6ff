package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olivier-w/gooey/internal/config"
	"github.com/olivier-w/gooey/internal/easing"
)

// animFlags override the toggle and animation settings of the config file.
type animFlags struct {
	size     string
	on       bool
	tween    bool
	duration float64
	bezier   string
	preset   string
}

func (f *animFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.size, "size", "", "Toggle size: sm, md or lg")
	cmd.Flags().BoolVar(&f.on, "on", false, "Start in the on state")
	cmd.Flags().BoolVar(&f.tween, "tween", false, "Use timed bezier tweens instead of springs")
	cmd.Flags().Float64Var(&f.duration, "duration", 0, "Tween duration in seconds")
	cmd.Flags().StringVar(&f.bezier, "bezier", "", "Tween curve as x1,y1,x2,y2")
	cmd.Flags().StringVar(&f.preset, "preset", "", "Tween curve by preset name (see `gooey presets`)")
	cmd.MarkFlagsMutuallyExclusive("bezier", "preset")
}

// resolveConfig loads the config file, if any, and applies the flags the
// user set on top of it.
func resolveConfig(cmd *cobra.Command, root *rootFlags, anim *animFlags) (config.Config, error) {
	cfg := config.Default()
	if strings.TrimSpace(root.configPath) != "" {
		loaded, err := config.Load(root.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("size") {
		cfg.Studio.Size = anim.size
	}
	if changed("on") {
		cfg.Studio.DefaultOn = anim.on
	}
	if changed("tween") {
		cfg.Animation.Enabled = anim.tween
	}
	if changed("duration") {
		cfg.Animation.Duration = anim.duration
		cfg.Animation.Enabled = true
	}
	if changed("bezier") {
		b, err := easing.ParseBezier(anim.bezier)
		if err != nil {
			return config.Config{}, fmt.Errorf("--bezier: %w", err)
		}
		cfg.Animation.Bezier = b[:]
		cfg.Animation.Preset = ""
		cfg.Animation.Enabled = true
	}
	if changed("preset") {
		cfg.Animation.Preset = anim.preset
		cfg.Animation.Enabled = true
	}
	if root.logFile != "" {
		cfg.Log.File = root.logFile
	}
	if root.logLevel != "" {
		cfg.Log.Level = root.logLevel
	}

	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
