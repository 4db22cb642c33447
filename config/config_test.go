// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/dali/itemlayout"
	"cogentcore.org/dali/itemview"
	"cogentcore.org/dali/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, uint(1000), cfg.Items)
	assert.Equal(t, float32(480), cfg.Viewport.Width)
	assert.Equal(t, float32(800), cfg.Viewport.Height)
	assert.False(t, cfg.Scroll.Anchoring)
	assert.Equal(t, float32(1), cfg.Scroll.AnchoringDuration)
	assert.Equal(t, float32(20), cfg.Scroll.RefreshInterval)
	assert.True(t, cfg.Overshoot.Enabled)
	assert.Equal(t, "#00a3d940", cfg.Overshoot.Color)
	assert.Empty(t, cfg.Layouts)

	type bad struct {
		X []int `default:"1"`
	}
	assert.Error(t, SetFromDefaults(&bad{}))
	assert.Error(t, SetFromDefaults(bad{}))

	type ints struct {
		I int8   `default:"-3"`
		U uint16 `default:"0x10"`
		F float64
	}
	in := ints{F: 2}
	require.NoError(t, SetFromDefaults(&in))
	assert.Equal(t, ints{I: -3, U: 16, F: 2}, in)
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0666))
	return p
}

func TestOpenTOML(t *testing.T) {
	fn := writeConfig(t, "dali.toml", `
Items = 50

[Viewport]
Width = 720

[Scroll]
Anchoring = true
RefreshInterval = 10

[[Layouts]]
Kind = "depth"
Orientation = "left"
Columns = 5
TiltDegrees = 90

[[Layouts]]
Kind = "spiral"
RevolutionDistance = 95
`)
	cfg, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, uint(50), cfg.Items)
	assert.Equal(t, float32(720), cfg.Viewport.Width)
	assert.Equal(t, float32(800), cfg.Viewport.Height)
	assert.True(t, cfg.Scroll.Anchoring)
	assert.Equal(t, float32(10), cfg.Scroll.RefreshInterval)
	assert.Equal(t, float32(3), cfg.Scroll.MinimumSwipeDistance)
	require.Len(t, cfg.Layouts, 2)

	l, err := cfg.Layouts[0].Layout()
	require.NoError(t, err)
	assert.Equal(t, itemlayout.Depth, l.Kind())
	assert.Equal(t, itemlayout.Left, l.Orientation)
	d := l.Params.(*itemlayout.DepthParams)
	assert.Equal(t, 5, d.Columns)
	assert.Equal(t, 26, d.Rows)
	assert.InDelta(t, math32.Pi/4, d.TiltAngle, 1e-6)

	l, err = cfg.Layouts[1].Layout()
	require.NoError(t, err)
	s := l.Params.(*itemlayout.SpiralParams)
	def := itemlayout.NewSpiralParams()
	assert.Equal(t, float32(95), s.RevolutionDistance)
	assert.Equal(t, def.ItemSpacing, s.ItemSpacing)
	assert.InDelta(t, def.ItemDescent/2, s.ItemDescent, 1e-5)
}

func TestOpenYAML(t *testing.T) {
	fn := writeConfig(t, "dali.yaml", `
items: 20
overshoot:
  enabled: false
  color: red
layouts:
  - kind: Grid
    columns: 2
    topmargin: 10
    itemsize: [100, 50]
`)
	cfg, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, uint(20), cfg.Items)
	assert.False(t, cfg.Overshoot.Enabled)
	require.Len(t, cfg.Layouts, 1)

	l, err := cfg.Layouts[0].Layout()
	require.NoError(t, err)
	g := l.Params.(*itemlayout.GridParams)
	assert.Equal(t, 2, g.Columns)
	assert.Equal(t, float32(10), g.TopMargin)
	assert.Equal(t, float32(20), g.BottomMargin)
	assert.Equal(t, math32.Vec3(100, 50, 50), l.ItemSize)

	ov, err := cfg.Overshoot.Settings()
	require.NoError(t, err)
	assert.False(t, ov.Enabled)
	assert.Equal(t, math32.Vec4(1, 0, 0, 1), ov.Color)
}

func TestOpenErrors(t *testing.T) {
	_, err := Load(writeConfig(t, "dali.json", `{}`))
	assert.ErrorContains(t, err, "unsupported file type")

	_, err = Load(writeConfig(t, "dali.toml", `Items = "many"`))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml"} {
		cfg := New()
		cfg.Items = 7
		cfg.Layouts = []LayoutConfig{{Kind: "spiral", Orientation: "down"}}
		fn := filepath.Join(t.TempDir(), "dali"+ext)
		require.NoError(t, Save(cfg, fn))

		got, err := Load(fn)
		require.NoError(t, err)
		assert.Equal(t, uint(7), got.Items, ext)
		assert.Equal(t, cfg.Viewport, got.Viewport, ext)
		assert.Equal(t, cfg.Scroll, got.Scroll, ext)
		assert.Equal(t, cfg.Overshoot, got.Overshoot, ext)
		require.Len(t, got.Layouts, 1, ext)
		assert.Equal(t, "spiral", got.Layouts[0].Kind, ext)
		assert.Equal(t, "down", got.Layouts[0].Orientation, ext)
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("SPIRAL")
	require.NoError(t, err)
	assert.Equal(t, itemlayout.Spiral, k)

	_, err = ParseKind("grdi")
	assert.EqualError(t, err, `unknown layout kind "grdi"; did you mean "grid"?`)

	_, err = ParseKind("xyz")
	assert.EqualError(t, err, `unknown layout kind "xyz"; must be one of grid, depth, spiral`)

	_, err = ParseOrientation("rigth")
	assert.EqualError(t, err, `unknown orientation "rigth"; did you mean "right"?`)

	lc := LayoutConfig{Kind: "grid", ItemSize: []float32{1}}
	_, err = lc.Layout()
	assert.Error(t, err)
}

func TestNewView(t *testing.T) {
	cfg := New()
	cfg.Scroll.WheelStep = 25
	cfg.Layouts = []LayoutConfig{{Kind: "grid"}, {Kind: "depth"}}
	v, err := cfg.NewView(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, v.LayoutCount())
	assert.Nil(t, v.ActiveLayout())
	assert.Equal(t, float32(25), v.WheelScrollDistanceStep)
	assert.Equal(t, math32.Vec3(480, 800, 480), v.Size())
	def := itemview.DefaultOvershootSettings().Color
	assert.InDelta(t, def.X, v.Overshoot.Color.X, 0.01)
	assert.InDelta(t, def.Y, v.Overshoot.Color.Y, 0.01)
	assert.InDelta(t, def.Z, v.Overshoot.Color.Z, 0.01)
	assert.InDelta(t, def.W, v.Overshoot.Color.W, 0.01)

	cfg.Layouts = nil
	v, err = cfg.NewView(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, v.LayoutCount())
	assert.Equal(t, itemlayout.Grid, v.Layout(0).Kind())

	cfg.Overshoot.Color = "notacolor"
	_, err = cfg.NewView(nil)
	assert.Error(t, err)
}
