// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemview

import (
	"cogentcore.org/dali/itemlayout"
	"cogentcore.org/dali/math32"
)

// OvershootSettings are the settings of the overshoot indicator, which
// shows how far scrolling has gone past either end of the content.
type OvershootSettings struct {

	// Enabled is whether the overshoot indicator is shown.
	Enabled bool

	// AnimationSpeed is the speed in pixels per second at which
	// the indicator animates on and off.
	AnimationSpeed float32

	// Size is the nominal size of the indicator. Only the height is used:
	// the width follows the viewport.
	Size math32.Vector2

	// Color is the RGBA color of the indicator.
	Color math32.Vector4
}

// overlayResizeThreshold is the indicator width below which it is
// drawn at half height.
const overlayResizeThreshold = 180

// DefaultOvershootSettings returns the default overshoot settings.
func DefaultOvershootSettings() OvershootSettings {
	return OvershootSettings{
		Enabled:        true,
		AnimationSpeed: 120,
		Size:           math32.Vec2(720, 42),
		Color:          math32.Vec4(0, 0.64, 0.85, 0.25),
	}
}

// Overlay is the placement of the overshoot indicator.
type Overlay struct {

	// Size is the size of the indicator.
	Size math32.Vector2

	// Orientation is the rotation of the indicator about the Z axis.
	Orientation math32.Quat

	// Position is the position of the top left of the indicator
	// relative to the top left of the view.
	Position math32.Vector3

	// Visible is whether the indicator is visible.
	Visible bool

	// Color is the color of the indicator.
	Color math32.Vector4

	// Overshoot is the amount of overshoot the indicator shows, in [-1, 1].
	Overshoot float32
}

// OvershootOverlay returns the current placement of the overshoot
// indicator, and false if it is disabled or no layout is active.
func (v *View) OvershootOverlay() (Overlay, bool) {
	if !v.Overshoot.Enabled || v.active == nil {
		return Overlay{}, false
	}
	mult, rel := v.overlayPlacement()
	return Overlay{
		Size:        v.overlaySize(),
		Orientation: math32.NewQuatAxisAngle(math32.ZAxis, mult*math32.Pi),
		Position:    rel.Mul(v.size),
		Visible:     v.canScroll,
		Color:       v.Overshoot.Color,
		Overshoot:   v.scroll.overshootValue,
	}, true
}

// scrollDirectionVector returns the sine and cosine of the
// scroll direction of the active layout.
func (v *View) scrollDirectionVector() math32.Vector2 {
	dir := math32.DegToRad(v.active.ScrollDirection())
	return math32.Vec2(math32.Sin(dir), math32.Cos(dir))
}

func (v *View) overlaySize() math32.Vector2 {
	if v.active == nil {
		return v.Overshoot.Size
	}
	dir := v.scrollDirectionVector()
	var width float32
	if v.active.Orientation.IsVertical() {
		width = v.size.Y
		if math32.Abs(dir.Y) > math32.MachineEpsilon1 {
			width = v.size.X
		}
	} else {
		width = v.size.X
		if math32.Abs(dir.X) > math32.MachineEpsilon1 {
			width = v.size.Y
		}
	}
	height := v.Overshoot.Size.Y
	if width <= overlayResizeThreshold {
		height *= 0.5
	}
	return math32.Vec2(width, height)
}

// overlayPlacement returns the rotation of the indicator in half turns
// and its position relative to the view size, which put it on the edge
// the overshoot is toward.
func (v *View) overlayPlacement() (float32, math32.Vector3) {
	dir := v.scrollDirectionVector()
	o := v.active.Orientation
	over := v.scroll.overshootValue
	const eps0, eps1 = math32.MachineEpsilon0, math32.MachineEpsilon1

	if o.IsVertical() {
		if math32.Abs(dir.Y) <= eps1 {
			if (o == itemlayout.Up && over < eps0) || (o == itemlayout.Down && over > eps0) {
				return 0.5, math32.Vec3(1, 0, 0)
			}
			return 1.5, math32.Vec3(0, 1, 0)
		}
		if (over > eps0 && dir.Y > eps0) || (over < eps0 && dir.Y < eps0) {
			return 0, math32.Vec3(0, 0, 0)
		}
		return 1, math32.Vec3(1, 1, 0)
	}
	if math32.Abs(dir.X) <= eps1 {
		var mult float32
		if (o == itemlayout.Left && over > eps0) || (o == itemlayout.Right && over < eps0) {
			mult = 1
		}
		if (o == itemlayout.Left && over < eps0) || (o == itemlayout.Right && over > eps0) {
			return mult, math32.Vec3(0, 0, 0)
		}
		return mult, math32.Vec3(1, 1, 0)
	}
	if (over > eps0 && dir.X > eps0) || (over < eps0 && dir.X < eps0) {
		return 1.5, math32.Vec3(0, 1, 0)
	}
	return 0.5, math32.Vec3(1, 0, 0)
}
