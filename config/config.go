// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of an item view: its
// scroll settings, overshoot indicator, viewport and layouts, read
// from TOML or YAML files over defaults given in `default:` struct tags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/dali/base/errors"
	"cogentcore.org/dali/itemview"
	"cogentcore.org/dali/math32"
	"github.com/mazznoer/csscolorparser"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of an item view.
type Config struct {

	// Viewport is the size of the view.
	Viewport ViewportConfig

	// Items is the number of items.
	Items uint `default:"1000"`

	// Scroll are the scrolling settings.
	Scroll ScrollConfig

	// Overshoot are the overshoot indicator settings.
	Overshoot OvershootConfig

	// Layouts are the layouts of the view, in order. A single grid
	// layout is used if there are none.
	Layouts []LayoutConfig

	// Themes are JSON theme files merged in order.
	Themes []string
}

// ViewportConfig is the size of the view.
type ViewportConfig struct {
	Width  float32 `default:"480"`
	Height float32 `default:"800"`
}

// Size returns the viewport size as a vector.
func (vc *ViewportConfig) Size() math32.Vector2 {
	return math32.Vec2(vc.Width, vc.Height)
}

// ScrollConfig are the scrolling settings of a view.
type ScrollConfig struct {

	// Anchoring is whether scrolling snaps to the closest anchor position.
	Anchoring bool

	// AnchoringDuration is the duration of the anchoring animation in seconds.
	AnchoringDuration float32 `default:"1"`

	// RefreshInterval is the distance in layout positions that scrolling
	// must cover before the items are refreshed.
	RefreshInterval float32 `default:"20"`

	// MinimumSwipeSpeed is the minimum speed for a pan to continue as a flick.
	MinimumSwipeSpeed float32 `default:"1"`

	// MinimumSwipeDistance is the minimum distance in pixels of the last
	// pan update for a pan to continue as a flick.
	MinimumSwipeDistance float32 `default:"3"`

	// WheelStep is the distance in pixels scrolled per wheel step,
	// or 0 for a tenth of the viewport height.
	WheelStep float32
}

// OvershootConfig are the overshoot indicator settings of a view.
type OvershootConfig struct {
	Enabled bool    `default:"true"`
	Speed   float32 `default:"120"`
	Height  float32 `default:"42"`

	// Color is a CSS color.
	Color string `default:"#00a3d940"`
}

// Settings returns the view settings for the overshoot configuration.
func (oc *OvershootConfig) Settings() (itemview.OvershootSettings, error) {
	s := itemview.DefaultOvershootSettings()
	s.Enabled = oc.Enabled
	if oc.Speed > 0 {
		s.AnimationSpeed = oc.Speed
	}
	if oc.Height > 0 {
		s.Size.Y = oc.Height
	}
	if oc.Color != "" {
		c, err := csscolorparser.Parse(oc.Color)
		if err != nil {
			return s, fmt.Errorf("config: overshoot color: %w", err)
		}
		s.Color = math32.Vec4(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	}
	return s, nil
}

// New returns a new config with default values.
func New() *Config {
	cfg := &Config{}
	errors.Log(SetFromDefaults(cfg))
	return cfg
}

// Load returns a new config with default values overlaid with
// the given file, if it is not empty. See [Open].
func Load(filename string) (*Config, error) {
	cfg := New()
	if filename == "" {
		return cfg, nil
	}
	return cfg, Open(cfg, filename)
}

// Open reads the given TOML or YAML file into the given config object,
// chosen by its extension. Only the values present in the file are set.
// A leading ~ is expanded to the home directory.
func Open(cfg any, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(fn)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return fmt.Errorf("config: unsupported file type %q for %q", ext, filename)
	}
	if err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	return nil
}

// Save writes the given config object to the given TOML or YAML file,
// chosen by its extension.
func Save(cfg any, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	var b []byte
	switch ext := strings.ToLower(filepath.Ext(fn)); ext {
	case ".toml":
		b, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("config: unsupported file type %q for %q", ext, filename)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(fn, b, 0666)
}

// NewView returns a new view of the given factory with the settings
// and layouts of the config, sized to the viewport. No layout is active.
func (cfg *Config) NewView(factory itemview.Factory) (*itemview.View, error) {
	v := itemview.New(factory)
	v.SetSize(cfg.Viewport.Size())
	sc := &cfg.Scroll
	v.Anchoring = sc.Anchoring
	v.AnchoringDuration = sc.AnchoringDuration
	v.MinimumSwipeSpeed = sc.MinimumSwipeSpeed
	v.MinimumSwipeDistance = sc.MinimumSwipeDistance
	v.SetRefreshInterval(sc.RefreshInterval)
	if sc.WheelStep > 0 {
		v.WheelScrollDistanceStep = sc.WheelStep
	}
	ov, err := cfg.Overshoot.Settings()
	if err != nil {
		return nil, err
	}
	v.Overshoot = ov

	lcs := cfg.Layouts
	if len(lcs) == 0 {
		lcs = []LayoutConfig{{Kind: "grid"}}
	}
	for i := range lcs {
		l, err := lcs[i].Layout()
		if err != nil {
			return nil, fmt.Errorf("config: layout %d: %w", i, err)
		}
		v.AddLayout(l)
	}
	return v, nil
}
