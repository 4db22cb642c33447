// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemview

import (
	"cogentcore.org/dali/events"
)

// NextFocusItem returns the item that keyboard focus moves to from the
// given item in the given direction, and whether focus moves at all.
// A negative id means no item has focus, and focus starts at the first
// item. If the next item is not materialized, focus moves to the first
// item within the area at the closest anchor position instead.
func (v *View) NextFocusItem(id int, dir events.Directions, loop bool) (int, bool) {
	if v.active == nil {
		return id, false
	}
	n := int(v.factory.NumItems())
	if n == 0 {
		return id, false
	}
	next := 0
	if id >= 0 {
		next = v.active.NextFocusItemID(id, n, dir, loop)
	}
	if next == id {
		return id, false
	}
	if _, ok := v.pool[uint(next)]; !ok {
		anchor := v.active.ClosestAnchorPosition(v.position)
		r := v.active.ItemsWithinArea(anchor, v.size)
		if r.Len() > 0 {
			next = int(r.Begin)
		}
	}
	return next, next != id
}

// FocusCommitted scrolls the newly focused item on screen.
func (v *View) FocusCommitted(id uint) {
	if v.active == nil {
		return
	}
	v.ScrollTo(v.active.ClosestOnScreenLayoutPosition(id, v.position, v.size), keyboardFocusScrollDuration)
}
