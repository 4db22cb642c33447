// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemlayout

import "cogentcore.org/dali/math32"

// funcs are the transform functions of one item, of its item
// position (layout position plus item id).
type funcs struct {
	position func(pos float32, size math32.Vector3) math32.Vector3
	rotation func(pos float32) math32.Quat
	color    func(pos float32, current math32.Vector4) math32.Vector4
	visible  func(pos float32, size math32.Vector3) bool
}

// Transform is the placement of an item at a layout position.
type Transform struct {
	Position    math32.Vector3
	Orientation math32.Quat
	Color       math32.Vector4
	Visible     bool
}

// Binding binds an item to a snapshot of a layout, so that later
// changes to the layout do not affect the item until it is bound again.
type Binding struct {

	// ID is the item id.
	ID uint

	// Kind is the kind of the layout at bind time.
	Kind Kinds

	// Orientation is the orientation of the layout at bind time.
	Orientation Orientation

	// ItemSize is the item size at bind time.
	ItemSize math32.Vector3

	// Params is a copy of the layout parameters at bind time.
	Params Params

	fs funcs
}

// Bind returns a binding of the given item to a snapshot of the layout
// for the given viewport size.
func (l *Layout) Bind(id uint, size math32.Vector3) *Binding {
	cl := l.Clone()
	itemSize := cl.ItemSizeFor(id, size)
	return &Binding{
		ID:          id,
		Kind:        cl.Kind(),
		Orientation: cl.Orientation,
		ItemSize:    itemSize,
		Params:      cl.Params,
		fs:          cl.resolve(id, itemSize),
	}
}

// Evaluate returns the transform of the bound item at the given
// layout position and viewport size. The color starts from opaque white.
func (b *Binding) Evaluate(layoutPosition float32, size math32.Vector3) Transform {
	pos := layoutPosition + float32(b.ID)
	return Transform{
		Position:    b.fs.position(pos, size),
		Orientation: b.fs.rotation(pos),
		Color:       b.fs.color(pos, math32.Vec4(1, 1, 1, 1)),
		Visible:     b.fs.visible(pos, size),
	}
}
