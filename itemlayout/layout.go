// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package itemlayout provides the grid, depth and spiral item layouts
// used by an item view. A layout is a set of pure functions of the
// scroll position (in item units) and the viewport size: which item
// ids are visible, where each item is placed, and the scroll physics
// limits that apply.
//
// The layout position is the continuous scroll offset: item i is at
// layout position LayoutPosition + i, so scrolling toward the end of
// the content makes the layout position more negative.
package itemlayout

import (
	"fmt"

	"cogentcore.org/dali/events"
	"cogentcore.org/dali/math32"
)

// Params are the kind specific parameters of a [Layout].
// The only implementations are [*GridParams], [*DepthParams]
// and [*SpiralParams].
type Params interface {
	fmt.Stringer

	// Kind returns the kind of layout the parameters are for.
	Kind() Kinds

	isParams()
}

func (*GridParams) isParams()   {}
func (*DepthParams) isParams()  {}
func (*SpiralParams) isParams() {}

// Layout is an item layout: one of the layout kinds, selected by
// the type of [Layout.Params], drawn in one of four orientations.
type Layout struct {

	// Orientation is the screen orientation of the layout.
	Orientation Orientation

	// ItemSize overrides the default item size of the layout if it is non-zero.
	ItemSize math32.Vector3

	// Params are the kind specific parameters.
	Params Params
}

// NewGrid returns a new grid layout with default parameters.
func NewGrid() *Layout {
	return &Layout{Params: NewGridParams()}
}

// NewDepth returns a new depth layout with default parameters.
func NewDepth() *Layout {
	return &Layout{Params: NewDepthParams()}
}

// NewSpiral returns a new spiral layout with default parameters.
func NewSpiral() *Layout {
	return &Layout{Params: NewSpiralParams()}
}

// New returns a new layout of the given kind with default parameters.
func New(kind Kinds) *Layout {
	switch kind {
	case Depth:
		return NewDepth()
	case Spiral:
		return NewSpiral()
	default:
		return NewGrid()
	}
}

// SetOrientation sets the [Layout.Orientation] and returns the layout.
func (l *Layout) SetOrientation(o Orientation) *Layout {
	l.Orientation = o
	return l
}

// SetItemSize sets the [Layout.ItemSize] and returns the layout.
func (l *Layout) SetItemSize(size math32.Vector3) *Layout {
	l.ItemSize = size
	return l
}

// Kind returns the kind of the layout.
func (l *Layout) Kind() Kinds {
	return l.Params.Kind()
}

func (l *Layout) String() string {
	return fmt.Sprintf("%v %v %v", l.Kind(), l.Orientation, l.Params)
}

// Clone returns a copy of the layout with its own copy of the parameters.
func (l *Layout) Clone() *Layout {
	cl := *l
	switch p := l.Params.(type) {
	case *GridParams:
		cp := *p
		cl.Params = &cp
	case *DepthParams:
		cp := *p
		cl.Params = &cp
	case *SpiralParams:
		cp := *p
		cl.Params = &cp
	}
	return &cl
}

// layoutHeight returns the extent of the viewport along the scroll axis.
func (l *Layout) layoutHeight(size math32.Vector3) float32 {
	if l.Orientation.IsHorizontal() {
		return size.X
	}
	return size.Y
}

// DefaultItemSize returns the item size the layout uses when
// [Layout.ItemSize] is not set.
func (l *Layout) DefaultItemSize(id uint, size math32.Vector3) math32.Vector3 {
	switch p := l.Params.(type) {
	case *GridParams:
		return p.defaultItemSize(l.Orientation, size)
	case *DepthParams:
		return p.defaultItemSize(l.Orientation, size)
	case *SpiralParams:
		return p.defaultItemSize(size)
	}
	return math32.Vector3{}
}

// ItemSizeFor returns the size of the given item: the override
// [Layout.ItemSize] if set, otherwise [Layout.DefaultItemSize].
func (l *Layout) ItemSizeFor(id uint, size math32.Vector3) math32.Vector3 {
	if !l.ItemSize.IsZero() {
		return l.ItemSize
	}
	return l.DefaultItemSize(id, size)
}

// ItemsWithinArea returns the range of item ids that are visible at the
// given layout position, including a layout specific margin. Moving the
// layout position toward more negative values moves the range toward
// higher ids.
func (l *Layout) ItemsWithinArea(layoutPosition float32, size math32.Vector3) Range {
	switch p := l.Params.(type) {
	case *GridParams:
		return p.itemsWithinArea(layoutPosition, l.layoutHeight(size), l.ItemSizeFor(0, size))
	case *DepthParams:
		return p.itemsWithinArea(layoutPosition)
	case *SpiralParams:
		return p.itemsWithinArea(layoutPosition, l.layoutHeight(size))
	}
	return Range{}
}

// ReserveItemCount returns the number of extra items to materialize
// on each side of the visible range while scrolling fast.
func (l *Layout) ReserveItemCount(size math32.Vector3) uint {
	switch p := l.Params.(type) {
	case *GridParams:
		return p.itemsPerPage(l.layoutHeight(size), l.ItemSizeFor(0, size))
	case *DepthParams:
		return p.reserveItemCount(size)
	case *SpiralParams:
		return p.reserveItemCount(l.layoutHeight(size))
	}
	return 0
}

// MinimumLayoutPosition returns the most negative layout position,
// at which the end of the content is reached.
func (l *Layout) MinimumLayoutPosition(numItems uint, size math32.Vector3) float32 {
	switch p := l.Params.(type) {
	case *GridParams:
		return p.minimumLayoutPosition(numItems, l.layoutHeight(size), l.ItemSizeFor(0, size))
	case *DepthParams:
		return float32(p.columns()) - float32(numItems)
	case *SpiralParams:
		return 1 - float32(numItems)
	}
	return 0
}

// ClosestAnchorPosition returns the item aligned layout position
// closest to the given one: the nearest multiple of the column
// count for grid and depth layouts, and the nearest integer for
// spiral layouts.
func (l *Layout) ClosestAnchorPosition(layoutPosition float32) float32 {
	switch p := l.Params.(type) {
	case *GridParams:
		cols := float32(p.columns())
		return math32.Round(layoutPosition/cols) * cols
	case *DepthParams:
		cols := float32(p.columns())
		return math32.Round(layoutPosition/cols) * cols
	}
	return math32.Round(layoutPosition)
}

// ItemScrollToPosition returns the layout position at which the given
// item is at the start of the layout.
func (l *Layout) ItemScrollToPosition(id uint) float32 {
	switch p := l.Params.(type) {
	case *GridParams:
		cols := uint(p.columns())
		return -float32((id / cols) * cols)
	case *DepthParams:
		cols := uint(p.columns())
		return -float32((id / cols) * cols)
	}
	return -float32(id)
}

// ClosestOnScreenLayoutPosition returns the layout position closest to
// the current one at which the given item is on screen. If the item is
// already on screen, the current position is returned unchanged.
func (l *Layout) ClosestOnScreenLayoutPosition(id uint, layoutPosition float32, size math32.Vector3) float32 {
	switch p := l.Params.(type) {
	case *GridParams:
		return l.gridClosestOnScreen(p, id, layoutPosition, size)
	case *DepthParams:
		return l.depthClosestOnScreen(p, id, layoutPosition)
	case *SpiralParams:
		if p.visible(l.Orientation, layoutPosition+float32(id), size) {
			return layoutPosition
		}
	}
	return l.ItemScrollToPosition(id)
}

// ScrollDirection returns the scroll direction in degrees, onto which
// pan displacements are projected to get the scroll distance.
func (l *Layout) ScrollDirection() float32 {
	var dirs [4]float32
	switch l.Params.(type) {
	case *GridParams:
		dirs = [4]float32{0, 90, 180, 270}
	case *DepthParams:
		dirs = [4]float32{180, 270, 0, 90}
	case *SpiralParams:
		// swiping works both horizontally and vertically
		dirs = [4]float32{-45, 45, 135, 225}
	}
	return dirs[l.Orientation&3]
}

// ScrollSpeedFactor returns the factor converting pan distance in
// pixels to layout position units.
func (l *Layout) ScrollSpeedFactor() float32 {
	switch p := l.Params.(type) {
	case *GridParams:
		return p.ScrollSpeedFactor
	case *DepthParams:
		return p.ScrollSpeedFactor
	case *SpiralParams:
		return p.ScrollSpeedFactor
	}
	return 0
}

// FlickSpeedFactor returns the factor converting the squared pan
// speed into a flick distance. It is the [Layout.ScrollSpeedFactor].
func (l *Layout) FlickSpeedFactor() float32 {
	return l.ScrollSpeedFactor()
}

// MaximumSwipeSpeed returns the maximum flick distance in layout positions.
func (l *Layout) MaximumSwipeSpeed() float32 {
	switch p := l.Params.(type) {
	case *GridParams:
		return p.MaximumSwipeSpeed
	case *DepthParams:
		return p.MaximumSwipeSpeed
	case *SpiralParams:
		return p.MaximumSwipeSpeed
	}
	return 0
}

// ItemFlickAnimationDuration returns the duration in seconds of the
// flick animation per layout position travelled.
func (l *Layout) ItemFlickAnimationDuration() float32 {
	switch p := l.Params.(type) {
	case *GridParams:
		return p.ItemFlickAnimationDuration
	case *DepthParams:
		return p.ItemFlickAnimationDuration
	case *SpiralParams:
		return p.ItemFlickAnimationDuration
	}
	return 0
}

// NextFocusItemID returns the item that keyboard focus moves to from the
// given item in the given direction, among numItems items. If loop is
// false, moving past an edge leaves focus at the edge.
func (l *Layout) NextFocusItemID(id, numItems int, dir events.Directions, loop bool) int {
	cols, upIsBack := 1, true
	switch p := l.Params.(type) {
	case *GridParams:
		cols = p.columns()
	case *DepthParams:
		// rows recede upward
		cols, upIsBack = p.columns(), false
	}
	switch dir {
	case events.FocusLeft:
		return itemBack(id, numItems, loop)
	case events.FocusRight:
		return itemForward(id, numItems, loop)
	case events.FocusUp:
		if upIsBack {
			return rowBack(id, cols, numItems, loop)
		}
		return rowForward(id, cols, numItems, loop)
	default:
		if upIsBack {
			return rowForward(id, cols, numItems, loop)
		}
		return rowBack(id, cols, numItems, loop)
	}
}

func itemBack(id, numItems int, loop bool) int {
	id--
	if id < 0 {
		if loop {
			return numItems - 1
		}
		return 0
	}
	return id
}

func itemForward(id, numItems int, loop bool) int {
	id++
	if id >= numItems {
		if loop {
			return 0
		}
		return numItems - 1
	}
	return id
}

// rowBack moves one row back, wrapping around the end if loop,
// or staying in place otherwise.
func rowBack(id, cols, numItems int, loop bool) int {
	id -= cols
	if id < 0 {
		if loop {
			return id + numItems
		}
		return id + cols
	}
	return id
}

// rowForward moves one row forward, wrapping to the first item if loop,
// or staying in place otherwise.
func rowForward(id, cols, numItems int, loop bool) int {
	id += cols
	if id >= numItems {
		if loop {
			return 0
		}
		return id - cols
	}
	return id
}

// ItemPosition returns the position of the given item at the given
// layout position and viewport size. It is the same function that
// [Binding.Evaluate] uses for the item.
func (l *Layout) ItemPosition(id uint, layoutPosition float32, size math32.Vector3) math32.Vector3 {
	fs := l.resolve(id, l.ItemSizeFor(id, size))
	return fs.position(layoutPosition+float32(id), size)
}

// resolve returns the functions computing the transform of the given
// item, selected once by kind and orientation.
func (l *Layout) resolve(id uint, itemSize math32.Vector3) funcs {
	switch p := l.Params.(type) {
	case *GridParams:
		return p.resolve(l.Orientation, id, itemSize)
	case *DepthParams:
		return p.resolve(l.Orientation, id, itemSize)
	case *SpiralParams:
		return p.resolve(l.Orientation)
	}
	panic(fmt.Sprintf("itemlayout: unknown layout parameters %T", l.Params))
}
