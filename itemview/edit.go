// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemview

import (
	"cmp"
	"slices"

	"cogentcore.org/dali/base/plan"
)

// edit tracks the actors moved to new item ids by a batch of
// insertions or removals, mapping each new id to the id the actor
// had before the batch.
type edit struct {
	v     *View
	moved map[uint]uint
}

func (v *View) newEdit() *edit {
	return &edit{v: v, moved: map[uint]uint{}}
}

// origin returns the id the actor at the given id had before the batch.
func (ed *edit) origin(id uint) uint {
	if o, ok := ed.moved[id]; ok {
		return o
	}
	return id
}

// move moves the actors at the given ids to the target ids.
func (ed *edit) move(ids, targets []uint) {
	pool := ed.v.pool
	actors := make([]Actor, len(ids))
	origins := make([]uint, len(ids))
	for i, id := range ids {
		actors[i] = pool[id]
		origins[i] = ed.origin(id)
		delete(pool, id)
		delete(ed.moved, id)
	}
	for i, to := range targets {
		pool[to] = actors[i]
		ed.moved[to] = origins[i]
	}
}

// insert inserts the item, moving every materialized item at or after
// its id to the next id. It returns whether the pool changed.
func (ed *edit) insert(item Item) bool {
	v := ed.v
	ids := plan.Keys(v.pool)
	if len(ids) == 0 || item.ID > ids[len(ids)-1] {
		return false
	}
	s, _ := slices.BinarySearch(ids, item.ID)
	moving := ids[s:]
	targets := make([]uint, len(moving))
	for i, id := range moving {
		targets[i] = id + 1
	}
	ed.move(moving, targets)
	// before the materialized items there is no slot for the actor
	if item.ID >= ids[0] && item.Actor != nil {
		v.pool[item.ID] = item.Actor
		delete(ed.moved, item.ID)
		v.setupActor(item.ID, item.Actor)
	}
	return true
}

// remove removes the item, moving every materialized item after its id
// to the previous id. It returns whether the pool changed.
func (ed *edit) remove(id uint) bool {
	v := ed.v
	ids := plan.Keys(v.pool)
	if len(ids) == 0 || id > ids[len(ids)-1] {
		return false
	}
	s, found := slices.BinarySearch(ids, id)
	if found {
		v.releaseActor(id, v.pool[id])
		delete(v.pool, id)
		delete(ed.moved, id)
		s++
	}
	moving := ids[s:]
	targets := make([]uint, len(moving))
	for i, mid := range moving {
		targets[i] = mid - 1
	}
	ed.move(moving, targets)
	return true
}

// InsertItem inserts an item at its id, animating the items after it
// to their new places over the given duration in seconds. Every
// materialized item at or after the id then has its id increased by one,
// whether or not the id itself is materialized. If the id is before the
// materialized items, only their ids increase and the given actor is not
// used; if it is after them, nothing changes.
func (v *View) InsertItem(item Item, duration float32) {
	ed := v.newEdit()
	if ed.insert(item) {
		v.rebind(ed.moved, duration)
	}
	v.calculateDomainSize()
}

// InsertItems inserts the given items as by [View.InsertItem], in
// ascending id order.
func (v *View) InsertItems(items []Item, duration float32) {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Item) int { return cmp.Compare(a.ID, b.ID) })
	ed := v.newEdit()
	changed := false
	for _, it := range sorted {
		if ed.insert(it) {
			changed = true
		}
	}
	if changed {
		v.rebind(ed.moved, duration)
	}
	v.calculateDomainSize()
}

// RemoveItem removes an item, animating the items after it to their new
// places over the given duration in seconds. Every materialized item
// after the id then has its id decreased by one. Removing an item after
// the materialized items does nothing.
func (v *View) RemoveItem(id uint, duration float32) {
	v.RemoveItems([]uint{id}, duration)
}

// RemoveItems removes the given items as by [View.RemoveItem], in
// descending id order.
func (v *View) RemoveItems(ids []uint, duration float32) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	ed := v.newEdit()
	changed := false
	for i := len(sorted) - 1; i >= 0; i-- {
		if ed.remove(sorted[i]) {
			changed = true
		}
	}
	if !changed {
		return
	}
	v.rebind(ed.moved, duration)
	v.onItemsRemoved()
}

// onItemsRemoved keeps the layout position in range after items are removed.
func (v *View) onItemsRemoved() {
	v.calculateDomainSize()
	if v.active != nil {
		v.setLayoutPosition(v.clampFirstItemPosition(v.position))
	}
}

// ReplaceItem replaces the actor of an item in place, keeping its id
// and layout slot. If the item is not materialized, it is added.
func (v *View) ReplaceItem(item Item) {
	if old, ok := v.pool[item.ID]; ok {
		v.releaseActor(item.ID, old)
	}
	v.pool[item.ID] = item.Actor
	v.setupActor(item.ID, item.Actor)
	v.calculateDomainSize()
}

// ReplaceItems replaces the actors of the given items as by [View.ReplaceItem].
func (v *View) ReplaceItems(items []Item) {
	for _, it := range items {
		v.ReplaceItem(it)
	}
}
