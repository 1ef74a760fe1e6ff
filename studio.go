package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/olivier-w/gooey/internal/logger"
	"github.com/olivier-w/gooey/internal/ui"
)

var errNotTerminal = errors.New("the studio needs an interactive terminal; use `gooey trace` or `gooey snapshot` instead")

func newStudioCmd(root *rootFlags) *cobra.Command {
	anim := &animFlags{}
	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Open the interactive toggle studio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStudio(cmd, root, anim)
		},
	}
	anim.register(cmd)
	return cmd
}

func runStudio(cmd *cobra.Command, root *rootFlags, anim *animFlags) error {
	cfg, err := resolveConfig(cmd, root, anim)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
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
	log.WithFields(map[string]any{
		"size":  cfg.Studio.Size,
		"fps":   cfg.Studio.FPS,
		"tween": cfg.Animation.Enabled,
	}).Info("studio starting")

	m := ui.New(ui.Options{
		Size:      cfg.Size(),
		DefaultOn: cfg.Studio.DefaultOn,
		Value:     cfg.EditorValue(),
		FPS:       cfg.Studio.FPS,
		Theme:     theme,
		Logger:    log,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "studio exited")
		return err
	}
	return nil
}
