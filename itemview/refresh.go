// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemview

import (
	"log/slog"

	"cogentcore.org/dali/base/plan"
	"cogentcore.org/dali/itemlayout"
	"cogentcore.org/dali/math32"
)

// setLayoutPosition sets the layout position, refreshing the item pool
// once it has moved by the refresh interval since the last refresh.
func (v *View) setLayoutPosition(pos float32) {
	v.position = pos
	if math32.Abs(pos-v.lastRefreshPosition) >= v.RefreshInterval {
		v.onRefreshNotification()
	}
}

func (v *View) onRefreshNotification() {
	if !v.refreshEnabled {
		// fast panning only refreshes at the end of the gesture
		if v.scroll.isPanning() {
			return
		}
		v.removeAnimation(&v.scrollAnim)
	}
	// only cache extra items when it is not a fast scroll
	v.doRefresh(v.position, v.refreshEnabled || v.scrollAnim != nil)
}

// Refresh reconciles the item pool with the items required at the
// current layout position, including the reserve items for scrolling.
// Items that stay in range are kept untouched.
func (v *View) Refresh() {
	v.doRefresh(v.position, true)
}

// Reload releases all items and creates them again from the factory,
// for when the factory content has changed.
func (v *View) Reload() {
	for _, id := range plan.Keys(v.pool) {
		v.releaseActor(id, v.pool[id])
		delete(v.pool, id)
	}
	v.doRefresh(v.position, true)
}

// doRefresh reconciles the item pool with the range of items required
// at the given layout position.
func (v *View) doRefresh(pos float32, cacheExtra bool) {
	if v.active == nil {
		return
	}
	v.lastRefreshPosition = pos
	r := v.itemRange(pos, cacheExtra)
	created, released := plan.Update(v.pool, int(r.Len()), v.rangeKey(r), v.newActor, v.releaseActor)
	v.calculateDomainSize()
	if created > 0 || released > 0 {
		slog.Debug("itemview: refresh", "position", pos, "range", r, "created", created, "released", released)
	}
	v.emit(v.scrollUpdated, math32.Vec2(0, pos))
}

// itemRange returns the range of existing items required at the given
// layout position, optionally extended by the reserve item count.
func (v *View) itemRange(pos float32, reserveExtra bool) itemlayout.Range {
	available := itemlayout.NewRange(0, v.factory.NumItems())
	r := v.active.ItemsWithinArea(pos, v.size)
	if reserveExtra {
		r = r.Extend(v.active.ReserveItemCount(v.size))
	}
	return r.Intersection(available)
}

// rangeKey returns the item ids of the range in the order they are
// created, which follows the scroll direction.
func (v *View) rangeKey(r itemlayout.Range) func(i int) uint {
	if v.refreshOrderHint {
		return func(i int) uint { return r.Begin + uint(i) }
	}
	return func(i int) uint { return r.End - 1 - uint(i) }
}

// addActorsWithinRange creates the missing items of the range.
func (v *View) addActorsWithinRange(r itemlayout.Range) {
	r = r.Intersection(itemlayout.NewRange(0, v.factory.NumItems()))
	key := v.rangeKey(r)
	for i := range int(r.Len()) {
		id := key(i)
		if _, ok := v.pool[id]; ok {
			continue
		}
		if a, ok := v.newActor(id); ok {
			v.pool[id] = a
		}
	}
	v.calculateDomainSize()
}

// newActor creates and sets up the actor for the given item.
func (v *View) newActor(id uint) (Actor, bool) {
	a := v.factory.NewItem(id)
	if a == nil {
		slog.Debug("itemview: no actor for item", "id", id)
		return nil, false
	}
	v.setupActor(id, a)
	return a, true
}

// setupActor applies the item settings and the active layout to the actor.
func (v *View) setupActor(id uint, a Actor) {
	if an, ok := a.(Anchored); ok {
		an.SetParentOrigin(v.ItemsParentOrigin)
		an.SetAnchorPoint(v.ItemsAnchorPoint)
	}
	if v.active == nil {
		return
	}
	a.SetSize(v.active.ItemSizeFor(id, v.size).XY())
	v.bindings[id] = v.active.Bind(id, v.size)
}

// releaseActor removes the binding of the item and tells the factory.
func (v *View) releaseActor(id uint, a Actor) {
	delete(v.bindings, id)
	if r, ok := v.factory.(Releaser); ok {
		r.ItemReleased(id, a)
	}
}

// rebind binds all items again to the active layout. If duration is
// positive, the actors that moved to a new id blend from their previous
// binding, given by the moved map from new to previous ids.
func (v *View) rebind(moved map[uint]uint, duration float32) {
	prev := v.bindings
	v.bindings = make(map[uint]*itemlayout.Binding, len(v.pool))
	if v.active == nil {
		return
	}
	for id := range v.pool {
		v.bindings[id] = v.active.Bind(id, v.size)
	}
	from := map[uint]*itemlayout.Binding{}
	for to, fr := range moved {
		if b := prev[fr]; b != nil && to != fr {
			if _, ok := v.pool[to]; ok {
				from[to] = b
			}
		}
	}
	v.startTransition(from, duration)
}
