// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemview

import (
	"testing"

	"cogentcore.org/dali/events"
	"cogentcore.org/dali/itemlayout"
	"cogentcore.org/dali/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSize = math32.Vec3(480, 800, 480)

type testActor struct {
	id     uint
	size   math32.Vector2
	origin math32.Vector3
	anchor math32.Vector3
}

func (a *testActor) SetSize(size math32.Vector2)           { a.size = size }
func (a *testActor) SetParentOrigin(origin math32.Vector3) { a.origin = origin }
func (a *testActor) SetAnchorPoint(anchor math32.Vector3)  { a.anchor = anchor }

type testFactory struct {
	n        uint
	created  int
	released []uint
	skip     func(id uint) bool
}

func (f *testFactory) NumItems() uint { return f.n }

func (f *testFactory) NewItem(id uint) Actor {
	if f.skip != nil && f.skip(id) {
		return nil
	}
	f.created++
	return &testActor{id: id}
}

func (f *testFactory) ItemReleased(id uint, actor Actor) {
	f.released = append(f.released, id)
}

// newTestView returns a view of n items with an active grid layout.
func newTestView(t *testing.T, n uint) (*View, *testFactory) {
	f := &testFactory{n: n}
	v := New(f).SetSize(testSize.XY())
	v.AddLayout(itemlayout.NewGrid())
	v.ActivateLayout(0, testSize, 0)
	require.Equal(t, itemlayout.NewRange(0, 72), v.ItemsRange())
	return v, f
}

func actorID(t *testing.T, a Actor) uint {
	require.NotNil(t, a)
	return a.(*testActor).id
}

func transforms(v *View) map[uint]itemlayout.Transform {
	ts := map[uint]itemlayout.Transform{}
	v.Transforms(func(id uint, actor Actor, t itemlayout.Transform) {
		ts[id] = t
	})
	return ts
}

func TestActivateLayout(t *testing.T) {
	f := &testFactory{n: 1000}
	v := New(f).SetSize(testSize.XY())
	activated := 0
	v.OnLayoutActivated(func() { activated++ })
	v.AddLayout(itemlayout.NewGrid())
	assert.Nil(t, v.ActiveLayout())

	v.ActivateLayout(0, testSize, 0)
	assert.Equal(t, 1, activated)
	assert.Equal(t, v.Layout(0), v.ActiveLayout())
	assert.Equal(t, itemlayout.NewRange(0, 72), v.ItemsRange())
	assert.Equal(t, 72, f.created)
	assert.True(t, v.CanScroll())
	assert.Greater(t, v.ScrollContentSize(), float32(0))
	assert.Equal(t, float32(80), v.WheelScrollDistanceStep)

	a := v.Item(3).(*testActor)
	assert.Equal(t, math32.Vec2(95, 71.25), a.size)
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0.5), a.origin)
	id, ok := v.ItemID(a)
	assert.True(t, ok)
	assert.Equal(t, uint(3), id)

	assert.Panics(t, func() { v.ActivateLayout(3, testSize, 0) })
	assert.Panics(t, func() { v.RemoveLayout(-1) })
}

func TestRefreshIdempotent(t *testing.T) {
	v, f := newTestView(t, 1000)
	before := v.ItemIDs()
	v.Refresh()
	v.Refresh()
	assert.Equal(t, before, v.ItemIDs())
	assert.Equal(t, 72, f.created)
	assert.Empty(t, f.released)

	v.Reload()
	assert.Equal(t, before, v.ItemIDs())
	assert.Equal(t, 144, f.created)
	assert.Len(t, f.released, 72)
}

func TestRefreshInterval(t *testing.T) {
	v, f := newTestView(t, 1000)

	// below the refresh interval the pool is kept
	v.ScrollTo(-10, 0)
	assert.Equal(t, float32(-10), v.LayoutPosition())
	assert.Equal(t, itemlayout.NewRange(0, 72), v.ItemsRange())

	v.ScrollTo(-200, 0)
	assert.Equal(t, float32(-200), v.LayoutPosition())
	assert.Equal(t, itemlayout.NewRange(160, 272), v.ItemsRange())
	assert.Len(t, f.released, 72)
	assert.Equal(t, 72+112, f.created)

	// positions past the start are clamped
	v.ScrollTo(50, 0)
	assert.Equal(t, float32(0), v.LayoutPosition())
}

func TestNilItems(t *testing.T) {
	f := &testFactory{n: 1000, skip: func(id uint) bool { return id%2 == 0 }}
	v := New(f).SetSize(testSize.XY())
	v.AddLayout(itemlayout.NewGrid())
	v.ActivateLayout(0, testSize, 0)
	ids := v.ItemIDs()
	assert.Len(t, ids, 36)
	for _, id := range ids {
		assert.Equal(t, uint(1), id%2)
	}
	assert.Nil(t, v.Item(0))
}

func TestScrollToItem(t *testing.T) {
	v, _ := newTestView(t, 1000)
	v.ScrollToItem(5, 0)
	assert.Equal(t, float32(0), v.LayoutPosition())

	v.ScrollToItem(500, 0)
	pos := v.LayoutPosition()
	assert.Less(t, pos, float32(-400))
	v.ScrollToItem(500, 0)
	assert.Equal(t, pos, v.LayoutPosition())
	assert.NotNil(t, v.Item(500))
}

func TestInsertItem(t *testing.T) {
	v, f := newTestView(t, 1000)
	na := &testActor{id: 9999}
	f.n++
	v.InsertItem(Item{ID: 10, Actor: na}, 0)
	assert.Equal(t, itemlayout.NewRange(0, 73), v.ItemsRange())
	assert.Equal(t, na, v.Item(10))
	assert.Equal(t, math32.Vec2(95, 71.25), na.size)
	assert.Equal(t, uint(9), actorID(t, v.Item(9)))
	assert.Equal(t, uint(10), actorID(t, v.Item(11)))
	assert.Equal(t, uint(71), actorID(t, v.Item(72)))
	assert.Len(t, v.Bindings(), 73)
	assert.False(t, v.IsAnimating())

	// after the materialized items nothing changes
	v.InsertItem(Item{ID: 500, Actor: &testActor{}}, 0)
	assert.Equal(t, itemlayout.NewRange(0, 73), v.ItemsRange())

	// before the materialized items only their ids change
	v.ScrollTo(-200, 0)
	require.Equal(t, itemlayout.NewRange(160, 272), v.ItemsRange())
	old := v.Item(160)
	v.InsertItem(Item{ID: 5, Actor: &testActor{}}, 0)
	assert.Equal(t, itemlayout.NewRange(161, 273), v.ItemsRange())
	assert.Equal(t, old, v.Item(161))
}

func TestInsertItemsAnimated(t *testing.T) {
	v, _ := newTestView(t, 1000)
	l := v.ActiveLayout()
	v.InsertItems([]Item{{ID: 12, Actor: &testActor{}}, {ID: 10, Actor: &testActor{}}}, 0.5)
	assert.Equal(t, itemlayout.NewRange(0, 74), v.ItemsRange())
	assert.Equal(t, uint(10), actorID(t, v.Item(11)))
	assert.Equal(t, uint(11), actorID(t, v.Item(13)))
	assert.True(t, v.IsAnimating())

	// moved items start where they were
	ts := transforms(v)
	assert.Equal(t, l.ItemPosition(10, 0, testSize), ts[11].Position)
	assert.Equal(t, l.ItemPosition(11, 0, testSize), ts[13].Position)
	assert.Equal(t, l.ItemPosition(5, 0, testSize), ts[5].Position)

	v.Advance(0.6)
	assert.False(t, v.IsAnimating())
	ts = transforms(v)
	assert.Equal(t, l.ItemPosition(11, 0, testSize), ts[11].Position)
	assert.Equal(t, l.ItemPosition(13, 0, testSize), ts[13].Position)
}

func TestRemoveItem(t *testing.T) {
	v, f := newTestView(t, 1000)
	v.RemoveItem(10, 0)
	assert.Equal(t, []uint{10}, f.released)
	assert.Equal(t, itemlayout.NewRange(0, 71), v.ItemsRange())
	assert.Equal(t, uint(11), actorID(t, v.Item(10)))
	assert.Equal(t, uint(71), actorID(t, v.Item(70)))
	assert.Nil(t, v.Item(71))

	// after the materialized items nothing changes
	v.RemoveItem(500, 0)
	assert.Equal(t, []uint{10}, f.released)
	assert.Equal(t, itemlayout.NewRange(0, 71), v.ItemsRange())

	v.RemoveItems([]uint{0, 2, 2}, 0)
	assert.Equal(t, []uint{10, 2, 0}, f.released)
	assert.Equal(t, uint(1), actorID(t, v.Item(0)))
	assert.Equal(t, uint(3), actorID(t, v.Item(1)))
	assert.Equal(t, itemlayout.NewRange(0, 69), v.ItemsRange())
}

func TestRemoveItemBefore(t *testing.T) {
	v, _ := newTestView(t, 1000)
	v.ScrollTo(-200, 0)
	require.Equal(t, itemlayout.NewRange(160, 272), v.ItemsRange())
	old := v.Item(160)
	v.RemoveItem(5, 0)
	assert.Equal(t, itemlayout.NewRange(159, 271), v.ItemsRange())
	assert.Equal(t, old, v.Item(159))
}

// newGapView returns a view of 1000 items with an active grid layout
// whose factory has no actor for item 2.
func newGapView(t *testing.T) (*View, *testFactory) {
	f := &testFactory{n: 1000, skip: func(id uint) bool { return id == 2 }}
	v := New(f).SetSize(testSize.XY())
	v.AddLayout(itemlayout.NewGrid())
	v.ActivateLayout(0, testSize, 0)
	require.Equal(t, itemlayout.NewRange(0, 72), v.ItemsRange())
	require.Nil(t, v.Item(2))
	return v, f
}

func TestInsertItemGap(t *testing.T) {
	v, _ := newGapView(t)
	na := &testActor{id: 9999}
	v.InsertItem(Item{ID: 1, Actor: na}, 0)
	assert.Equal(t, na, v.Item(1))
	assert.Equal(t, uint(1), actorID(t, v.Item(2)))
	assert.Nil(t, v.Item(3))
	assert.Equal(t, uint(3), actorID(t, v.Item(4)))
	assert.Equal(t, uint(71), actorID(t, v.Item(72)))
	assert.Len(t, v.ItemIDs(), 72)

	// an id without an actor still shifts the items after it
	v, _ = newGapView(t)
	nb := &testActor{id: 8888}
	v.InsertItem(Item{ID: 2, Actor: nb}, 0)
	assert.Equal(t, nb, v.Item(2))
	assert.Equal(t, math32.Vec2(95, 71.25), nb.size)
	assert.Equal(t, uint(1), actorID(t, v.Item(1)))
	assert.Equal(t, uint(3), actorID(t, v.Item(4)))
	assert.Nil(t, v.Item(3))
	assert.Equal(t, itemlayout.NewRange(0, 73), v.ItemsRange())
	assert.Len(t, v.Bindings(), 72)
}

func TestRemoveItemGap(t *testing.T) {
	v, f := newGapView(t)
	v.RemoveItem(2, 0)
	assert.Empty(t, f.released)
	assert.Equal(t, uint(1), actorID(t, v.Item(1)))
	assert.Equal(t, uint(3), actorID(t, v.Item(2)))
	assert.Equal(t, uint(71), actorID(t, v.Item(70)))
	assert.Equal(t, itemlayout.NewRange(0, 71), v.ItemsRange())

	v, f = newGapView(t)
	v.RemoveItem(1, 0)
	assert.Equal(t, []uint{1}, f.released)
	assert.Equal(t, uint(0), actorID(t, v.Item(0)))
	assert.Nil(t, v.Item(1))
	assert.Equal(t, uint(3), actorID(t, v.Item(2)))
	assert.Equal(t, itemlayout.NewRange(0, 71), v.ItemsRange())
}

func TestReplaceItem(t *testing.T) {
	v, f := newTestView(t, 1000)
	na := &testActor{id: 9999}
	v.ReplaceItem(Item{ID: 4, Actor: na})
	assert.Equal(t, na, v.Item(4))
	assert.Equal(t, []uint{4}, f.released)
	assert.Equal(t, math32.Vec2(95, 71.25), na.size)
	assert.Equal(t, itemlayout.NewRange(0, 72), v.ItemsRange())
}

func TestPanFlick(t *testing.T) {
	v, _ := newTestView(t, 1000)
	v.Anchoring = true
	started, completed := 0, 0
	v.OnScrollStarted(func(pos math32.Vector2) { started++ })
	v.OnScrollCompleted(func(pos math32.Vector2) { completed++ })

	disp, vel := math32.Vec2(0, -100), math32.Vec2(0, -1)
	v.HandleEvent(events.NewPan(events.Started, disp, vel))
	assert.InDelta(t, -3, v.LayoutPosition(), 1e-4)
	v.HandleEvent(events.NewPan(events.Continuing, disp, vel))
	assert.InDelta(t, -6, v.LayoutPosition(), 1e-4)
	assert.InDelta(t, 30, v.ScrollSpeed(), 1e-3)
	v.HandleEvent(events.NewPan(events.Finished, math32.Vector2{}, math32.Vector2{}))
	assert.True(t, v.IsAnimating())

	v.Advance(0.5)
	assert.InDelta(t, -36, v.LayoutPosition(), 1e-4)
	assert.InDelta(t, 0, v.ScrollSpeed(), 1e-4)
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, completed)
	assert.NotNil(t, v.Item(36))
}

func TestPanAnchoring(t *testing.T) {
	v, _ := newTestView(t, 1000)
	v.Anchoring = true
	v.HandleEvent(events.NewPan(events.Started, math32.Vec2(0, -50), math32.Vector2{}))
	assert.InDelta(t, -1.5, v.LayoutPosition(), 1e-4)
	v.HandleEvent(events.NewPan(events.Cancelled, math32.Vector2{}, math32.Vector2{}))
	v.Advance(1.1)
	assert.InDelta(t, 0, v.LayoutPosition(), 1e-4)
	assert.False(t, v.IsAnimating())
}

func TestPanOvershoot(t *testing.T) {
	v, _ := newTestView(t, 1000)
	v.HandleEvent(events.NewPan(events.Started, math32.Vec2(0, 100), math32.Vector2{}))
	assert.Equal(t, float32(0), v.LayoutPosition())
	v.Advance(1)
	assert.Greater(t, v.OvershootAmount(), float32(0))
	ov, ok := v.OvershootOverlay()
	assert.True(t, ok)
	assert.Equal(t, v.OvershootAmount(), ov.Overshoot)
	assert.Equal(t, math32.Vec3(0, 0, 0), ov.Position)

	v.HandleEvent(events.NewPan(events.Finished, math32.Vector2{}, math32.Vector2{}))
	v.Advance(1)
	assert.InDelta(t, 0, v.OvershootAmount(), 1e-6)
}

func TestWheel(t *testing.T) {
	v, _ := newTestView(t, 1000)
	completed := 0
	v.OnScrollCompleted(func(pos math32.Vector2) { completed++ })

	v.HandleEvent(events.NewWheel(1))
	assert.InDelta(t, -2.4, v.LayoutPosition(), 1e-4)
	v.Advance(0.4)
	v.HandleEvent(events.NewWheel(1))
	assert.InDelta(t, -4.8, v.LayoutPosition(), 1e-4)
	v.Advance(0.4)
	assert.Equal(t, 0, completed)
	v.Advance(0.2)
	assert.Equal(t, 1, completed)
	assert.False(t, v.IsAnimating())
}

func TestTouchDownStopsScroll(t *testing.T) {
	v, _ := newTestView(t, 1000)
	completed := 0
	v.OnScrollCompleted(func(pos math32.Vector2) { completed++ })
	v.ScrollTo(-100, 1)
	v.Advance(0.5)
	pos := v.LayoutPosition()
	assert.Less(t, pos, float32(0))

	e := events.NewTouchDown()
	v.HandleEvent(e)
	assert.True(t, e.IsHandled())
	assert.Equal(t, 1, completed)
	v.Advance(1)
	assert.Equal(t, pos, v.LayoutPosition())
}

func TestLayoutTransition(t *testing.T) {
	v, _ := newTestView(t, 1000)
	grid := v.ActiveLayout()
	v.AddLayout(itemlayout.NewDepth())
	v.ActivateLayout(1, testSize, 1)
	depth := v.ActiveLayout()
	assert.Equal(t, itemlayout.Depth, depth.Kind())
	assert.True(t, v.IsAnimating())

	ts := transforms(v)
	assert.Equal(t, grid.ItemPosition(0, 0, testSize), ts[0].Position)

	v.Advance(1.1)
	assert.False(t, v.IsAnimating())
	ts = transforms(v)
	assert.Equal(t, depth.ItemPosition(0, 0, testSize), ts[0].Position)

	v.DeactivateCurrentLayout()
	assert.Nil(t, v.ActiveLayout())
	assert.Empty(t, v.Bindings())
	assert.Empty(t, transforms(v))
}

func TestNextFocusItem(t *testing.T) {
	v, _ := newTestView(t, 1000)
	tests := []struct {
		id   int
		dir  events.Directions
		want int
		ok   bool
	}{
		{-1, events.FocusRight, 0, true},
		{0, events.FocusRight, 1, true},
		{0, events.FocusLeft, 0, false},
		{5, events.FocusDown, 9, true},
		{5, events.FocusUp, 1, true},
	}
	for _, tt := range tests {
		got, ok := v.NextFocusItem(tt.id, tt.dir, false)
		assert.Equal(t, tt.want, got, "%d %v", tt.id, tt.dir)
		assert.Equal(t, tt.ok, ok, "%d %v", tt.id, tt.dir)
	}

	// focus on an item that is not materialized goes to the first item on screen
	got, ok := v.NextFocusItem(500, events.FocusRight, false)
	assert.True(t, ok)
	assert.Equal(t, 0, got)
}

func TestFocusCommitted(t *testing.T) {
	v, _ := newTestView(t, 1000)
	want := v.ActiveLayout().ClosestOnScreenLayoutPosition(500, 0, testSize)
	v.HandleEvent(events.NewFocus(500))
	assert.True(t, v.IsAnimating())
	v.Advance(0.3)
	assert.InDelta(t, want, v.LayoutPosition(), 1e-3)
}

func TestOvershootOverlay(t *testing.T) {
	v, _ := newTestView(t, 1000)
	ov, ok := v.OvershootOverlay()
	require.True(t, ok)
	assert.True(t, ov.Visible)
	assert.Equal(t, math32.Vec2(480, 42), ov.Size)
	assert.Equal(t, math32.Vec3(480, 800, 0), ov.Position)

	v.Overshoot.Enabled = false
	_, ok = v.OvershootOverlay()
	assert.False(t, ok)
}
