// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemlayout

import (
	"fmt"

	"cogentcore.org/dali/math32"
)

// DepthParams are the parameters of a depth layout, which arranges
// items in rows that recede into the screen on a tilted plane.
type DepthParams struct {

	// Columns is the number of columns.
	Columns int

	// Rows is the number of rows visible at once.
	Rows int

	// RowSpacing is the distance between rows along the tilted plane.
	RowSpacing float32

	// TiltAngle is the tilt of the plane in radians.
	// Use [DepthParams.SetTiltAngle] to set it from degrees.
	TiltAngle float32

	// ItemTiltAngle is the tilt of each item about the X axis in radians.
	ItemTiltAngle float32

	// ScrollSpeedFactor converts pan pixels into layout positions.
	ScrollSpeedFactor float32

	// MaximumSwipeSpeed is the maximum flick distance in layout positions.
	MaximumSwipeSpeed float32

	// ItemFlickAnimationDuration is the flick animation duration in
	// seconds per layout position travelled.
	ItemFlickAnimationDuration float32
}

// NewDepthParams returns depth parameters with default values.
func NewDepthParams() *DepthParams {
	return &DepthParams{
		Columns:                    3,
		Rows:                       26,
		RowSpacing:                 55,
		TiltAngle:                  0.15 * math32.Pi,
		ItemTiltAngle:              -0.025 * math32.Pi,
		ScrollSpeedFactor:          0.02,
		MaximumSwipeSpeed:          50,
		ItemFlickAnimationDuration: 0.03,
	}
}

// SetTiltAngle sets the [DepthParams.TiltAngle] from degrees,
// clamped to [-45, 45].
func (d *DepthParams) SetTiltAngle(degrees float32) *DepthParams {
	d.TiltAngle = math32.DegToRad(math32.Clamp(degrees, -45, 45))
	return d
}

func (d *DepthParams) Kind() Kinds { return Depth }

func (d *DepthParams) String() string {
	return fmt.Sprintf("{Columns: %d, Rows: %d, RowSpacing: %g, Tilt: %g, ItemTilt: %g}",
		d.Columns, d.Rows, d.RowSpacing, d.TiltAngle, d.ItemTiltAngle)
}

func (d *DepthParams) columns() int {
	return max(1, d.Columns)
}

func (d *DepthParams) defaultItemSize(o Orientation, size math32.Vector3) math32.Vector3 {
	w := size.X
	if o.IsHorizontal() {
		w = size.Y
	}
	w /= float32(d.columns() + 1)
	return math32.Vec3(w, w, w)
}

func (d *DepthParams) itemsWithinArea(layoutPosition float32) Range {
	cols := float32(d.columns())
	firstRow := -(layoutPosition / cols)
	lastRow := firstRow + float32(d.Rows)*0.5
	first := uint(math32.Max(0, firstRow*cols))
	last := uint(math32.Max(0, lastRow*cols))
	return NewRange(first, last+1)
}

func (d *DepthParams) reserveItemCount(size math32.Vector3) uint {
	rowDepth := math32.Cos(d.TiltAngle) * d.RowSpacing
	if rowDepth <= 0 {
		return 0
	}
	return uint(math32.Max(0, size.Z*float32(d.columns())/rowDepth))
}

func (l *Layout) depthClosestOnScreen(d *DepthParams, id uint, layoutPosition float32) float32 {
	cols := uint(d.columns())
	row := (layoutPosition + float32(id) - float32(id%cols)) / float32(cols)
	switch {
	case row <= -1:
		return l.ItemScrollToPosition(id)
	case row > float32(d.Rows)*0.5-1:
		return l.ItemScrollToPosition(id) + (float32(d.Rows)-1)*0.5*float32(cols)
	}
	return layoutPosition
}

func (d *DepthParams) resolve(o Orientation, id uint, itemSize math32.Vector3) funcs {
	cols := float32(d.columns())
	col := float32(id % uint(d.columns()))
	w, h := itemSize.X, itemSize.Y
	heightStep := -math32.Sin(d.TiltAngle) * d.RowSpacing
	depthStep := math32.Cos(d.TiltAngle) * d.RowSpacing

	// columnPosition centers the columns across the given width
	columnPosition := func(width float32) float32 {
		avail := math32.Max(0, width-w*cols)
		return avail/cols*0.5 + w*0.5 + col*(w+avail/cols) - width*0.5
	}

	var fs funcs
	switch o {
	case Up:
		fs.position = func(pos float32, size math32.Vector3) math32.Vector3 {
			row := pos - col
			return math32.Vec3(columnPosition(size.X), row*heightStep+0.3*size.Y-h*0.5, -row*depthStep)
		}
	case Left:
		fs.position = func(pos float32, size math32.Vector3) math32.Vector3 {
			row := pos - col + cols*0.5
			return math32.Vec3(row*heightStep+0.3*size.X-h*0.5, -columnPosition(size.Y), -row*depthStep)
		}
	case Down:
		fs.position = func(pos float32, size math32.Vector3) math32.Vector3 {
			row := pos - col
			return math32.Vec3(-columnPosition(size.X), -(row*heightStep + 0.3*size.Y - h*0.5), -row*depthStep)
		}
	default:
		fs.position = func(pos float32, size math32.Vector3) math32.Vector3 {
			row := pos - col + cols*0.5
			return math32.Vec3(-(row*heightStep + 0.3*size.X - h*0.5), columnPosition(size.Y), -row*depthStep)
		}
	}

	rot := math32.NewQuatAxisAngle(math32.ZAxis, [4]float32{0, 1.5, -1, 0.5}[o&3]*math32.Pi).
		Mul(math32.NewQuatAxisAngle(math32.XAxis, d.ItemTiltAngle))
	fs.rotation = func(pos float32) math32.Quat { return rot }

	visibleRows := float32(d.Rows) * 0.5
	fs.color = func(pos float32, current math32.Vector4) math32.Vector4 {
		row := (pos - col) / cols
		darkness, alpha := float32(1), float32(1)
		if row < 0 {
			darkness = math32.Max(0, 1+row)
			alpha = darkness
		} else {
			if row > visibleRows {
				darkness = 0
			} else {
				darkness = 1 - row/visibleRows
			}
			if row > visibleRows-1 {
				alpha = math32.Max(0, 1-(row-(visibleRows-1)))
			}
		}
		return math32.Vec4(darkness, darkness, darkness, current.W*alpha)
	}

	fs.visible = func(pos float32, size math32.Vector3) bool {
		row := (pos - col) / cols
		return row > -1 && row < visibleRows
	}
	return fs
}
