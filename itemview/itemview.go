// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package itemview provides a scrolling item view that materializes
// only the items of a large logical item space that an
// [itemlayout.Layout] reports as visible, reconciling its pool of
// actors as the layout position changes.
//
// The view is driven entirely by its host: input arrives through
// [View.HandleEvent] (or the On methods directly), and all
// animations and timers advance only in [View.Advance]. The host
// renders items by evaluating [View.Transforms] every frame.
package itemview

import (
	"fmt"
	"log/slog"

	"cogentcore.org/dali/base/plan"
	"cogentcore.org/dali/events"
	"cogentcore.org/dali/itemlayout"
	"cogentcore.org/dali/math32"
)

// Actor is the display object of one item, created by a [Factory].
type Actor interface {

	// SetSize sets the size of the actor, as determined by the active layout.
	SetSize(size math32.Vector2)
}

// Anchored is an optional interface for actors that take the
// items parent origin and anchor point of the view.
type Anchored interface {
	SetParentOrigin(origin math32.Vector3)
	SetAnchorPoint(anchor math32.Vector3)
}

// Factory supplies the items of a [View].
type Factory interface {

	// NumItems returns the total number of items.
	NumItems() uint

	// NewItem returns a new actor for the given item.
	// It may return nil if there is no actor for the item.
	NewItem(id uint) Actor
}

// Releaser is an optional interface for a [Factory] that is told when
// the view no longer uses an actor.
type Releaser interface {
	ItemReleased(id uint, actor Actor)
}

// Item is an item id together with its actor.
type Item struct {
	ID    uint
	Actor Actor
}

// Default settings.
const (
	DefaultMinimumSwipeSpeed    = 1
	DefaultMinimumSwipeDistance = 3
	DefaultAnchoringDuration    = 1
	DefaultRefreshInterval      = 20

	// DefaultWheelScrollProportion is the wheel scroll step
	// as a proportion of the viewport height.
	DefaultWheelScrollProportion = 0.1

	// wheelFinishedTimeout is the time after the last wheel event
	// at which wheel scrolling is considered finished.
	wheelFinishedTimeout = 0.5

	minimumFlickDuration = 0.45
	maximumFlickDuration = 2.6

	// keyboardFocusScrollDuration is the duration of the scroll
	// that brings a newly focused item on screen.
	keyboardFocusScrollDuration = 0.2
)

// View is a scrolling view of the items of a [Factory], arranged by
// the active one of a list of layouts.
type View struct {

	// MinimumSwipeSpeed is the minimum scroll speed, in layout positions,
	// at which a finished pan continues as a flick.
	MinimumSwipeSpeed float32

	// MinimumSwipeDistance is the minimum distance, in pixels, of the
	// last pan update for a finished pan to continue as a flick.
	MinimumSwipeDistance float32

	// WheelScrollDistanceStep is the distance in pixels scrolled per wheel
	// step. It defaults to [DefaultWheelScrollProportion] of the viewport
	// height when the size is first set.
	WheelScrollDistanceStep float32

	// Anchoring is whether the layout position snaps to the closest
	// anchor position after scrolling.
	Anchoring bool

	// AnchoringDuration is the duration of the anchoring animation in seconds.
	AnchoringDuration float32

	// RefreshInterval is the distance in layout positions the layout
	// position must move before the item pool is automatically refreshed.
	RefreshInterval float32

	// ItemsParentOrigin is the parent origin given to [Anchored] actors.
	ItemsParentOrigin math32.Vector3

	// ItemsAnchorPoint is the anchor point given to [Anchored] actors.
	ItemsAnchorPoint math32.Vector3

	// Overshoot are the overshoot indicator settings.
	Overshoot OvershootSettings

	factory   Factory
	layouts   []*itemlayout.Layout
	active    *itemlayout.Layout
	listeners events.Listeners

	// size is the viewport size the active layout was activated with.
	size math32.Vector3

	pool     map[uint]Actor
	bindings map[uint]*itemlayout.Binding

	// position is the current layout position.
	position            float32
	lastRefreshPosition float32
	refreshEnabled      bool
	refreshOrderHint    bool

	scroll scrollState

	scrollAnim     *animation
	overshootAnim  *animation
	transitionAnim *animation
	transition     *transition
	wheelTimer     timer

	scrollContentSize float32
	scrollPositionMax float32
	canScroll         bool

	layoutActivated []func()
	scrollStarted   []func(pos math32.Vector2)
	scrollUpdated   []func(pos math32.Vector2)
	scrollCompleted []func(pos math32.Vector2)
}

// New returns a new view of the items of the given factory.
func New(factory Factory) *View {
	v := &View{
		MinimumSwipeSpeed:    DefaultMinimumSwipeSpeed,
		MinimumSwipeDistance: DefaultMinimumSwipeDistance,
		AnchoringDuration:    DefaultAnchoringDuration,
		RefreshInterval:      DefaultRefreshInterval,
		ItemsParentOrigin:    math32.Vec3(0.5, 0.5, 0.5),
		ItemsAnchorPoint:     math32.Vec3(0.5, 0.5, 0.5),
		Overshoot:            DefaultOvershootSettings(),
		factory:              factory,
		pool:                 map[uint]Actor{},
		bindings:             map[uint]*itemlayout.Binding{},
		refreshOrderHint:     true,
	}
	v.listeners.Add(events.Pan, func(e events.Event) { v.OnPan(e.(*events.PanEvent)) })
	v.listeners.Add(events.Wheel, func(e events.Event) { v.OnWheel(e.(*events.WheelEvent)) })
	v.listeners.Add(events.TouchDown, func(e events.Event) { v.OnTouchDown(e.(*events.TouchEvent)) })
	v.listeners.Add(events.FocusChange, func(e events.Event) { v.FocusCommitted(e.(*events.FocusEvent).Item) })
	return v
}

// Factory returns the item factory of the view.
func (v *View) Factory() Factory {
	return v.factory
}

// SetSize sets the viewport size, with a depth equal to the smaller
// of the width and height, and returns the view.
// Use [View.ActivateLayout] to change the size of an active layout.
func (v *View) SetSize(size math32.Vector2) *View {
	v.size = math32.Vec3(size.X, size.Y, math32.Min(size.X, size.Y))
	if v.WheelScrollDistanceStep == 0 {
		v.WheelScrollDistanceStep = size.Y * DefaultWheelScrollProportion
	}
	return v
}

// Size returns the viewport size.
func (v *View) Size() math32.Vector3 {
	return v.size
}

// On adds an event listener for the given event type. Listeners added
// later are called first, and a listener can mark the event as handled
// to stop the view from processing it.
func (v *View) On(typ events.Types, fun func(e events.Event)) *View {
	v.listeners.Add(typ, fun)
	return v
}

// HandleEvent delivers an input event to the view.
func (v *View) HandleEvent(e events.Event) {
	v.listeners.Call(e)
}

// AddLayout adds a layout to the list of layouts that can be activated.
func (v *View) AddLayout(l *itemlayout.Layout) *View {
	v.layouts = append(v.layouts, l)
	return v
}

// RemoveLayout removes the layout at the given index. If it is the
// active layout, it is deactivated first.
func (v *View) RemoveLayout(index int) {
	if index < 0 || index >= len(v.layouts) {
		panic(fmt.Sprintf("itemview: layout index %d out of range [0, %d)", index, len(v.layouts)))
	}
	if v.layouts[index] == v.active {
		v.DeactivateCurrentLayout()
	}
	v.layouts = append(v.layouts[:index], v.layouts[index+1:]...)
}

// LayoutCount returns the number of layouts.
func (v *View) LayoutCount() int {
	return len(v.layouts)
}

// Layout returns the layout at the given index.
func (v *View) Layout(index int) *itemlayout.Layout {
	return v.layouts[index]
}

// ActiveLayout returns the active layout, or nil if none is active.
func (v *View) ActiveLayout() *itemlayout.Layout {
	return v.active
}

// ActivateLayout activates the layout at the given index for the given
// viewport size. Items already materialized move to their places in the
// new layout over the given duration in seconds, or immediately if it
// is not positive. The layout position is then scrolled into the
// valid range of the new layout, or to its closest anchor position if
// anchoring is enabled. It panics if the index is out of range.
func (v *View) ActivateLayout(index int, targetSize math32.Vector3, duration float32) {
	if index < 0 || index >= len(v.layouts) {
		panic(fmt.Sprintf("itemview: layout index %d out of range [0, %d)", index, len(v.layouts)))
	}
	v.refreshEnabled = false
	v.size = targetSize
	if v.WheelScrollDistanceStep == 0 {
		v.WheelScrollDistanceStep = targetSize.Y * DefaultWheelScrollProportion
	}
	prev := v.bindings
	v.active = v.layouts[index]
	v.bindings = make(map[uint]*itemlayout.Binding, len(v.pool))
	for id, a := range v.pool {
		v.setupActor(id, a)
	}
	if duration > 0 && len(prev) > 0 {
		from := make(map[uint]*itemlayout.Binding, len(prev))
		for id, b := range prev {
			if _, ok := v.pool[id]; ok {
				from[id] = b
			}
		}
		v.startTransition(from, duration)
	} else {
		v.stopTransition()
	}
	slog.Debug("itemview: activate layout", "index", index, "layout", v.active, "size", targetSize)

	v.addActorsWithinRange(v.itemRange(v.position, false))

	current := v.position
	target := v.clampFirstItemPosition(current)
	needScroll := false
	switch {
	case current < target:
		needScroll = true
	case v.Anchoring:
		needScroll = true
		target = v.active.ClosestAnchorPosition(current)
	}
	if needScroll {
		v.removeAnimation(&v.scrollAnim)
		a := newAnimation(duration, v.onLayoutActivationScrollFinished)
		a.animateTo(v.position, target, easeOut, v.setLayoutPosition)
		v.play(&v.scrollAnim, a)
	} else {
		v.onLayoutActivationScrollFinished()
	}

	v.animateScrollOvershoot(0, false)
	v.scroll.overshoot = 0
	v.calculateDomainSize()
}

// DeactivateCurrentLayout deactivates the active layout, clearing the
// bindings of all items so they return to their default state.
func (v *View) DeactivateCurrentLayout() {
	if v.active == nil {
		return
	}
	v.active = nil
	v.bindings = map[uint]*itemlayout.Binding{}
	v.stopTransition()
}

func (v *View) onLayoutActivationScrollFinished() {
	v.refreshEnabled = true
	v.doRefresh(v.position, true)
	for _, f := range v.layoutActivated {
		f()
	}
}

// SetRefreshInterval sets the [View.RefreshInterval] and restarts
// the refresh interval from the current layout position.
func (v *View) SetRefreshInterval(interval float32) *View {
	v.RefreshInterval = interval
	v.lastRefreshPosition = v.position
	return v
}

// SetRefreshEnabled sets whether the automatic refresh caches extra
// items. A host driving fast scrolling directly (such as a scroll bar)
// disables it to keep the pool small; panning and scrolling enable it.
func (v *View) SetRefreshEnabled(enabled bool) *View {
	v.refreshEnabled = enabled
	return v
}

// SetItemsParentOrigin sets the [View.ItemsParentOrigin] and applies it
// to all [Anchored] actors.
func (v *View) SetItemsParentOrigin(origin math32.Vector3) *View {
	v.ItemsParentOrigin = origin
	for _, a := range v.pool {
		if an, ok := a.(Anchored); ok {
			an.SetParentOrigin(origin)
		}
	}
	return v
}

// SetItemsAnchorPoint sets the [View.ItemsAnchorPoint] and applies it
// to all [Anchored] actors.
func (v *View) SetItemsAnchorPoint(anchor math32.Vector3) *View {
	v.ItemsAnchorPoint = anchor
	for _, a := range v.pool {
		if an, ok := a.(Anchored); ok {
			an.SetAnchorPoint(anchor)
		}
	}
	return v
}

// OnLayoutActivated adds a function called when a layout activation
// has finished.
func (v *View) OnLayoutActivated(fun func()) *View {
	v.layoutActivated = append(v.layoutActivated, fun)
	return v
}

// OnScrollStarted adds a function called with the scroll position
// when scrolling starts.
func (v *View) OnScrollStarted(fun func(pos math32.Vector2)) *View {
	v.scrollStarted = append(v.scrollStarted, fun)
	return v
}

// OnScrollUpdated adds a function called with the scroll position
// whenever the item pool is refreshed.
func (v *View) OnScrollUpdated(fun func(pos math32.Vector2)) *View {
	v.scrollUpdated = append(v.scrollUpdated, fun)
	return v
}

// OnScrollCompleted adds a function called with the scroll position
// when scrolling completes.
func (v *View) OnScrollCompleted(fun func(pos math32.Vector2)) *View {
	v.scrollCompleted = append(v.scrollCompleted, fun)
	return v
}

func (v *View) emit(funs []func(pos math32.Vector2), pos math32.Vector2) {
	for _, f := range funs {
		f(pos)
	}
}

// Item returns the actor of the given item, or nil if it is not materialized.
func (v *View) Item(id uint) Actor {
	return v.pool[id]
}

// ItemID returns the id of the given actor, and whether it is in the view.
// Actors must be of comparable types.
func (v *View) ItemID(actor Actor) (uint, bool) {
	for id, a := range v.pool {
		if a == actor {
			return id, true
		}
	}
	return 0, false
}

// ItemsRange returns the range from the lowest to the highest
// materialized item id, or an empty range if there are none.
func (v *View) ItemsRange() itemlayout.Range {
	ids := plan.Keys(v.pool)
	if len(ids) == 0 {
		return itemlayout.Range{}
	}
	return itemlayout.NewRange(ids[0], ids[len(ids)-1]+1)
}

// ItemIDs returns the ids of the materialized items in ascending order.
func (v *View) ItemIDs() []uint {
	return plan.Keys(v.pool)
}

// CurrentLayoutPosition returns the current layout position of the
// given item, which is the layout position plus the item id.
func (v *View) CurrentLayoutPosition(id uint) float32 {
	return v.position + float32(id)
}

// LayoutPosition returns the current layout position.
func (v *View) LayoutPosition() float32 {
	return v.position
}

// ScrollSpeed returns the current scroll speed in layout positions.
func (v *View) ScrollSpeed() float32 {
	return v.scroll.speed
}

// OvershootAmount returns the current overshoot in [-1, 1].
func (v *View) OvershootAmount() float32 {
	return v.scroll.overshootValue
}

// ScrollContentSize returns the distance in pixels along the scroll
// axis between the first item at the start and the last item at the end.
func (v *View) ScrollContentSize() float32 {
	return v.scrollContentSize
}

// CanScroll returns whether the active layout can be scrolled
// with the current number of items.
func (v *View) CanScroll() bool {
	return v.canScroll
}

// DomainSize returns the scrollable domain size in pixels, along Y.
func (v *View) DomainSize() math32.Vector2 {
	if v.active == nil {
		return math32.Vector2{}
	}
	d := v.scrollPosition(0) - v.scrollPosition(-v.scrollPositionMax)
	return math32.Vec2(0, math32.Abs(d))
}

// ScrollPosition returns the current scroll position in pixels, along Y:
// the position of the first item along the scroll axis.
func (v *View) ScrollPosition() math32.Vector2 {
	if v.active == nil {
		return math32.Vector2{}
	}
	return math32.Vec2(0, v.scrollPosition(v.position))
}

func (v *View) scrollPosition(layoutPosition float32) float32 {
	first := v.active.ItemPosition(0, layoutPosition, v.size)
	if v.active.Orientation.IsHorizontal() {
		return first.X
	}
	return first.Y
}

// Bindings returns the bindings of the materialized items in
// ascending item id order.
func (v *View) Bindings() []*itemlayout.Binding {
	bs := make([]*itemlayout.Binding, 0, len(v.bindings))
	for _, id := range plan.Keys(v.bindings) {
		bs = append(bs, v.bindings[id])
	}
	return bs
}

// Transforms calls the given function with the transform of every
// materialized item at the current layout position, in ascending item
// id order. It is the per frame evaluation pass of the host renderer.
func (v *View) Transforms(fun func(id uint, actor Actor, t itemlayout.Transform)) {
	for _, id := range plan.Keys(v.pool) {
		b := v.bindings[id]
		if b == nil {
			continue
		}
		t := b.Evaluate(v.position, v.size)
		if v.transition != nil {
			if from := v.transition.from[id]; from != nil {
				t = blend(from.Evaluate(v.position, v.size), t, v.transition.progress)
			}
		}
		fun(id, v.pool[id], t)
	}
}

// calculateDomainSize updates the scroll content size and whether
// the layout can scroll.
func (v *View) calculateDomainSize() {
	if v.active == nil {
		return
	}
	first := v.active.ItemPosition(0, 0, v.size)
	minPos := v.minimumLayoutPosition()
	last := v.active.ItemPosition(uint(math32.Abs(minPos)), math32.Abs(minPos), v.size)
	if v.active.Orientation.IsHorizontal() {
		v.scrollContentSize = math32.Abs(first.X - last.X)
	} else {
		v.scrollContentSize = math32.Abs(first.Y - last.Y)
	}
	v.scrollPositionMax = -minPos
	v.canScroll = v.isLayoutScrollable()
}

func (v *View) isLayoutScrollable() bool {
	current := v.clampPosition(v.position)
	forward := v.clampPosition(current + 1)
	backward := v.clampPosition(current - 1)
	return math32.Abs(forward-backward) > math32.MachineEpsilon0
}

func (v *View) minimumLayoutPosition() float32 {
	return v.active.MinimumLayoutPosition(v.factory.NumItems(), v.size)
}

// clampPosition clamps the given layout position to the valid range.
func (v *View) clampPosition(target float32) float32 {
	return math32.Min(0, math32.Max(v.minimumLayoutPosition(), target))
}

// clampFirstItemPosition clamps the given layout position to the
// valid range, recording the excess as the scroll overshoot.
func (v *View) clampFirstItemPosition(target float32) float32 {
	minPos := v.minimumLayoutPosition()
	clamped := math32.Min(0, math32.Max(minPos, target))
	v.scroll.overshoot = target - clamped
	v.scrollPositionMax = -minPos
	return clamped
}
