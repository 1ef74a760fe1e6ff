// Package config loads the studio configuration: a YAML file whose values
// seed the studio and are overridden by command-line flags. The file is
// only ever read.
package config

import (
	"image/color"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/olivier-w/gooey/internal/easing"
	"github.com/olivier-w/gooey/internal/editor"
	"github.com/olivier-w/gooey/internal/geometry"
	"github.com/olivier-w/gooey/internal/motion"
	"github.com/olivier-w/gooey/internal/render"
)

// Config is the root of the configuration file.
type Config struct {
	Studio    Studio    `yaml:"studio"`
	Animation Animation `yaml:"animation"`
	Theme     Theme     `yaml:"theme"`
	Log       Log       `yaml:"log"`
}

// Studio controls the preview.
type Studio struct {
	FPS       int    `yaml:"fps" validate:"min=1,max=240"`
	Size      string `yaml:"size" validate:"size"`
	DefaultOn bool   `yaml:"default_on"`
}

// Animation seeds the animation editor. Enabled selects tween mode. Preset,
// when set, takes precedence over Bezier.
type Animation struct {
	Enabled  bool      `yaml:"enabled"`
	Duration float64   `yaml:"duration" validate:"gte=0.1,lte=2"`
	Bezier   []float64 `yaml:"bezier" validate:"bezier"`
	Preset   string    `yaml:"preset" validate:"omitempty,preset"`
}

// Theme colours as #rgb or #rrggbb.
type Theme struct {
	TrackOff string `yaml:"track_off" validate:"omitempty,hexcolor"`
	TrackOn  string `yaml:"track_on" validate:"omitempty,hexcolor"`
	Blob     string `yaml:"blob" validate:"omitempty,hexcolor"`
}

// Log selects the studio log file. An empty file discards logs.
type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	th := render.DefaultTheme()
	d := editor.DefaultValue()
	return Config{
		Studio: Studio{
			FPS:  motion.DefaultFPS,
			Size: geometry.Large.String(),
		},
		Animation: Animation{
			Enabled:  d.Enabled,
			Duration: d.Duration,
			Bezier:   d.Bezier[:],
		},
		Theme: Theme{
			TrackOff: render.Hex(th.TrackOff),
			TrackOn:  render.Hex(th.TrackOn),
			Blob:     render.Hex(th.Blob),
		},
		Log: Log{Level: "info"},
	}
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads path over the defaults and validates the result. Keys missing
// from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data as if read from path.
func Parse(path string, data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, NewParseError(path, extractLine(err), err)
	}
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func Validate(cfg *Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	var scratch render.Theme
	for _, f := range cfg.themeFields(&scratch) {
		if f.hex == "" {
			continue
		}
		if _, err := render.ParseHex(f.hex); err != nil {
			return NewValidationError(f.name, "colour must be #rgb or #rrggbb", err)
		}
	}
	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// Size returns the studio size. Validated configs always parse.
func (c Config) Size() geometry.Size {
	s, _ := geometry.ParseSize(c.Studio.Size)
	return s
}

// EditorValue converts the animation section to an editor value.
func (c Config) EditorValue() editor.Value {
	v := editor.DefaultValue()
	v.Enabled = c.Animation.Enabled
	if c.Animation.Duration > 0 {
		v.Duration = c.Animation.Duration
	}
	if len(c.Animation.Bezier) == len(v.Bezier) {
		copy(v.Bezier[:], c.Animation.Bezier)
	}
	if p, ok := easing.PresetByName(c.Animation.Preset); ok {
		v.Bezier = p.Bezier
	}
	return v
}

type themeField struct {
	name string
	hex  string
	dst  *color.RGBA
}

func (c Config) themeFields(th *render.Theme) []themeField {
	return []themeField{
		{"theme.track_off", c.Theme.TrackOff, &th.TrackOff},
		{"theme.track_on", c.Theme.TrackOn, &th.TrackOn},
		{"theme.blob", c.Theme.Blob, &th.Blob},
	}
}

// RenderTheme resolves the theme colours, keeping defaults for unset ones.
func (c Config) RenderTheme() (render.Theme, error) {
	th := render.DefaultTheme()
	for _, f := range c.themeFields(&th) {
		if f.hex == "" {
			continue
		}
		rgba, err := render.ParseHex(f.hex)
		if err != nil {
			return render.Theme{}, NewValidationError(f.name, "colour must be #rgb or #rrggbb", err)
		}
		*f.dst = rgba
	}
	return th, nil
}
