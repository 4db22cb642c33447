// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemlayout

import (
	"fmt"
	"testing"

	"cogentcore.org/dali/events"
	"cogentcore.org/dali/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSize = math32.Vec3(480, 800, 480)

var orientations = []Orientation{Up, Left, Down, Right}

func allLayouts() []*Layout {
	var ls []*Layout
	for _, k := range []Kinds{Grid, Depth, Spiral} {
		for _, o := range orientations {
			ls = append(ls, New(k).SetOrientation(o))
		}
	}
	return ls
}

func TestItemPositionMatchesBinding(t *testing.T) {
	for _, l := range allLayouts() {
		t.Run(l.Kind().String()+l.Orientation.String(), func(t *testing.T) {
			for _, id := range []uint{0, 1, 3, 7, 42} {
				b := l.Bind(id, testSize)
				for _, pos := range []float32{0, -0.5, -3, -12.25, 2} {
					tr := b.Evaluate(pos, testSize)
					assert.Equal(t, l.ItemPosition(id, pos, testSize), tr.Position, "id %d pos %g", id, pos)
				}
			}
		})
	}
}

func TestBindingSnapshot(t *testing.T) {
	l := NewGrid()
	b := l.Bind(5, testSize)
	before := b.Evaluate(-1, testSize)
	l.Params.(*GridParams).Columns = 2
	l.Orientation = Down
	assert.Equal(t, before, b.Evaluate(-1, testSize))
	assert.Equal(t, 4, b.Params.(*GridParams).Columns)
	assert.Equal(t, Up, b.Orientation)
}

func TestGridScenario(t *testing.T) {
	l := NewGrid()
	r := l.ItemsWithinArea(0, testSize)
	assert.Equal(t, uint(0), r.Begin)
	assert.Equal(t, uint(36), r.End)

	// item 0 is at the top left
	p0 := l.ItemPosition(0, 0, testSize)
	assert.Less(t, p0.X, float32(0))
	assert.Less(t, p0.Y, float32(0))
	for id := uint(1); id < 4; id++ {
		p := l.ItemPosition(id, 0, testSize)
		assert.Greater(t, p.X, p0.X)
		assert.InDelta(t, p0.Y, p.Y, 1e-3)
	}
	// the next row is below
	assert.Greater(t, l.ItemPosition(4, 0, testSize).Y, p0.Y)

	assert.Equal(t, math32.Vec3(95, 71.25, 71.25), l.DefaultItemSize(0, testSize))
	assert.Equal(t, uint(36), l.ReserveItemCount(testSize))

	tr := l.Bind(0, testSize).Evaluate(0, testSize)
	assert.True(t, tr.Visible)
	assert.Equal(t, math32.Vec4(1, 1, 1, 1), tr.Color)
	assert.False(t, l.Bind(99, testSize).Evaluate(0, testSize).Visible)
}

func TestGridMinimumLayoutPosition(t *testing.T) {
	l := NewGrid()
	minPos := l.MinimumLayoutPosition(100, testSize)
	assert.Less(t, minPos, float32(0))
	assert.Greater(t, minPos, float32(-100))
	// the last item is on screen at the minimum position
	last := l.ItemPosition(99, minPos, testSize)
	assert.Less(t, last.Y, testSize.Y*0.5)
}

func TestRangeMonotonic(t *testing.T) {
	for _, l := range allLayouts() {
		t.Run(l.Kind().String()+l.Orientation.String(), func(t *testing.T) {
			prev := l.ItemsWithinArea(0, testSize)
			for pos := float32(-0.25); pos > -60; pos -= 0.25 {
				r := l.ItemsWithinArea(pos, testSize)
				assert.GreaterOrEqual(t, r.Begin, prev.Begin, "pos %g", pos)
				assert.GreaterOrEqual(t, r.End, prev.End, "pos %g", pos)
				// small scroll deltas never replace the whole range
				assert.False(t, r.Intersection(prev).IsEmpty(), "pos %g", pos)
				prev = r
			}
		})
	}
}

func TestClosestOnScreenIdempotent(t *testing.T) {
	for _, l := range allLayouts() {
		t.Run(l.Kind().String()+l.Orientation.String(), func(t *testing.T) {
			for _, id := range []uint{0, 2, 5} {
				assert.Equal(t, float32(0), l.ClosestOnScreenLayoutPosition(id, 0, testSize))
			}
			for _, id := range []uint{50, 99} {
				target := l.ClosestOnScreenLayoutPosition(id, 0, testSize)
				assert.NotEqual(t, float32(0), target)
				again := l.ClosestOnScreenLayoutPosition(id, target, testSize)
				assert.InDelta(t, target, again, 1e-3)
			}
		})
	}
}

func TestGridClosestOnScreen(t *testing.T) {
	for _, o := range orientations {
		t.Run(o.String(), func(t *testing.T) {
			l := NewGrid().SetOrientation(o)
			// an item below the screen is aligned to the far edge
			want := float32(-20.658)
			if o.IsHorizontal() {
				want = -41.554
			}
			target := l.ClosestOnScreenLayoutPosition(50, 0, testSize)
			assert.InDelta(t, want, target, 1e-2)
			assert.True(t, l.Bind(50, testSize).Evaluate(target, testSize).Visible)

			// an item above the screen is aligned to the start edge
			target = l.ClosestOnScreenLayoutPosition(2, -40, testSize)
			assert.Greater(t, target, float32(-40))
			assert.InDelta(t, target, l.ClosestOnScreenLayoutPosition(2, target, testSize), 1e-3)
		})
	}
}

func TestDepth(t *testing.T) {
	l := NewDepth()
	assert.Equal(t, NewRange(0, 40), l.ItemsWithinArea(0, testSize))
	assert.Equal(t, float32(-97), l.MinimumLayoutPosition(100, testSize))
	assert.Equal(t, math32.Vec3(120, 120, 120), l.DefaultItemSize(0, testSize))

	tr := l.Bind(0, testSize).Evaluate(-1.5, testSize)
	assert.True(t, tr.Visible)
	assert.InDelta(t, 0.5, tr.Color.X, 1e-6)
	assert.InDelta(t, 0.5, tr.Color.W, 1e-6)

	tr = l.Bind(0, testSize).Evaluate(0, testSize)
	assert.Equal(t, math32.Vec4(1, 1, 1, 1), tr.Color)
	assert.False(t, l.Bind(0, testSize).Evaluate(-3, testSize).Visible)
	assert.False(t, l.Bind(39, testSize).Evaluate(0, testSize).Visible)

	// rows recede into the screen
	assert.Less(t, l.ItemPosition(3, 0, testSize).Z, l.ItemPosition(0, 0, testSize).Z)

	d := l.Params.(*DepthParams)
	d.SetTiltAngle(60)
	assert.InDelta(t, math32.Pi/4, d.TiltAngle, 1e-6)
	d.SetTiltAngle(-10)
	assert.InDelta(t, math32.DegToRad(-10), d.TiltAngle, 1e-6)
}

func TestSpiral(t *testing.T) {
	l := NewSpiral()
	s := l.Params.(*SpiralParams)
	assert.InDelta(t, 20, s.ItemDescent, 1e-4)
	s.ItemDescent = 20
	assert.Equal(t, NewRange(0, 27), l.ItemsWithinArea(0, testSize))
	assert.Equal(t, uint(40), l.ReserveItemCount(testSize))
	assert.Equal(t, float32(-99), l.MinimumLayoutPosition(100, testSize))
	assert.Equal(t, math32.Vec3(120, 90, 90), l.DefaultItemSize(0, testSize))

	tr := l.Bind(0, testSize).Evaluate(0, testSize)
	assert.Equal(t, math32.Vec4(1, 1, 1, 1), tr.Color)
	// item 0 faces the viewer at the front of the spiral
	assert.InDelta(t, 0, tr.Position.X, 1e-3)
	assert.InDelta(t, 192, tr.Position.Z, 1e-3)

	// half a turn around, the item is at the back and darkened
	back := l.Bind(0, testSize).Evaluate(4.75, testSize)
	assert.InDelta(t, 0.15, back.Color.X, 1e-6)

	s.SetRevolutionDistance(95)
	assert.InDelta(t, 10, s.ItemDescent, 1e-4)
	s.SetItemSpacing(math32.Pi)
	assert.InDelta(t, 47.5, s.ItemDescent, 1e-4)
}

func TestAnchorAndScrollTo(t *testing.T) {
	g := NewGrid()
	assert.Equal(t, float32(-4), g.ClosestAnchorPosition(-5.9))
	assert.Equal(t, float32(-8), g.ItemScrollToPosition(11))
	d := NewDepth()
	assert.Equal(t, float32(-6), d.ClosestAnchorPosition(-5.9))
	assert.Equal(t, float32(-9), d.ItemScrollToPosition(11))
	s := NewSpiral()
	assert.Equal(t, float32(-3), s.ClosestAnchorPosition(-2.6))
	assert.Equal(t, float32(-11), s.ItemScrollToPosition(11))
}

func TestNextFocusItemID(t *testing.T) {
	g := NewGrid()
	tests := []struct {
		id   int
		dir  events.Directions
		loop bool
		want int
	}{
		{0, events.FocusLeft, false, 0},
		{0, events.FocusLeft, true, 9},
		{9, events.FocusRight, false, 9},
		{9, events.FocusRight, true, 0},
		{1, events.FocusUp, false, 1},
		{1, events.FocusUp, true, 7},
		{5, events.FocusUp, false, 1},
		{8, events.FocusDown, false, 8},
		{8, events.FocusDown, true, 0},
		{2, events.FocusDown, false, 6},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d%v%v", tt.id, tt.dir, tt.loop), func(t *testing.T) {
			assert.Equal(t, tt.want, g.NextFocusItemID(tt.id, 10, tt.dir, tt.loop))
		})
	}

	d := NewDepth()
	assert.Equal(t, 3, d.NextFocusItemID(0, 10, events.FocusUp, false))
	assert.Equal(t, 0, d.NextFocusItemID(3, 10, events.FocusDown, false))
	s := NewSpiral()
	assert.Equal(t, 6, s.NextFocusItemID(5, 10, events.FocusDown, false))
}

func TestScrollDirection(t *testing.T) {
	assert.Equal(t, float32(90), NewGrid().SetOrientation(Left).ScrollDirection())
	assert.Equal(t, float32(180), NewDepth().ScrollDirection())
	assert.Equal(t, float32(-45), NewSpiral().ScrollDirection())
}

func TestClone(t *testing.T) {
	l := NewSpiral().SetItemSize(math32.Vec3(10, 10, 10))
	cl := l.Clone()
	cl.Params.(*SpiralParams).SetItemSpacing(1)
	assert.NotEqual(t, l.Params.(*SpiralParams).ItemSpacing, cl.Params.(*SpiralParams).ItemSpacing)
	assert.Equal(t, l.ItemSize, cl.ItemSize)
	require.Equal(t, math32.Vec3(10, 10, 10), cl.ItemSizeFor(3, testSize))
}

func TestOrientationSetString(t *testing.T) {
	var o Orientation
	assert.NoError(t, o.SetString("right"))
	assert.Equal(t, Right, o)
	assert.True(t, o.IsHorizontal())
	assert.Error(t, o.SetString("sideways"))

	var k Kinds
	assert.NoError(t, k.SetString("Spiral"))
	assert.Equal(t, Spiral, k)
}
