package main

import (
	"fmt"
	"time"

	"github.com/olivier-w/gooey/internal/config"
	"github.com/olivier-w/gooey/internal/logger"
	"github.com/olivier-w/gooey/internal/motion"
	"github.com/olivier-w/gooey/internal/toggle"
)

// simFlags drive a headless run: how many frames, at what rate, and on
// which frames the toggle is activated.
type simFlags struct {
	frames  int
	fps     int
	presses []int
}

func (f simFlags) validate() error {
	if f.frames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", f.frames)
	}
	if f.fps < 0 {
		return fmt.Errorf("--fps must not be negative, got %d", f.fps)
	}
	for _, p := range f.presses {
		if p < 0 || p > f.frames {
			return fmt.Errorf("--press frame %d outside 0..%d", p, f.frames)
		}
	}
	return nil
}

func (f simFlags) interval(cfg config.Config) time.Duration {
	fps := f.fps
	if fps == 0 {
		fps = cfg.Studio.FPS
	}
	return motion.FrameInterval(fps)
}

func newSimToggle(cfg config.Config, log *logger.Logger, onChange func(bool)) *toggle.Toggle {
	return toggle.New(toggle.Options{
		DefaultOn: cfg.Studio.DefaultOn,
		Size:      cfg.Size(),
		Anim:      cfg.EditorValue().Anim(),
		Logger:    log,
		OnChange:  onChange,
	})
}

// runFrames calls start, applies the presses due at each frame, calls visit,
// then steps. The last frame is visited but not stepped past.
func runFrames(tg *toggle.Toggle, frames int, dt time.Duration, presses []int, start, visit func(frame int)) {
	for f := 0; f <= frames; f++ {
		if start != nil {
			start(f)
		}
		for _, p := range presses {
			if p == f {
				tg.Activate()
			}
		}
		if visit != nil {
			visit(f)
		}
		if f < frames {
			tg.Step(dt)
		}
	}
}
