// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemlayout

import (
	"fmt"

	"cogentcore.org/dali/math32"
)

// GridParams are the parameters of a grid layout, which arranges
// items in a fixed number of columns, filling rows left to right.
type GridParams struct {

	// Columns is the number of columns.
	Columns int

	// TopMargin is the space before the first row.
	TopMargin float32

	// BottomMargin is the space after the last row.
	BottomMargin float32

	// SideMargin is the space at each side of the rows.
	SideMargin float32

	// ColumnSpacing is the space between columns.
	ColumnSpacing float32

	// RowSpacing is the space between rows.
	RowSpacing float32

	// ZGap is the depth offset applied per column, for a receding
	// stack effect.
	ZGap float32

	// ScrollSpeedFactor converts pan pixels into layout positions.
	ScrollSpeedFactor float32

	// MaximumSwipeSpeed is the maximum flick distance in layout positions.
	MaximumSwipeSpeed float32

	// ItemFlickAnimationDuration is the flick animation duration in
	// seconds per layout position travelled.
	ItemFlickAnimationDuration float32
}

// NewGridParams returns grid parameters with default values.
func NewGridParams() *GridParams {
	return &GridParams{
		Columns:                    4,
		TopMargin:                  95,
		BottomMargin:               20,
		SideMargin:                 20,
		ColumnSpacing:              20,
		RowSpacing:                 20,
		ScrollSpeedFactor:          0.03,
		MaximumSwipeSpeed:          100,
		ItemFlickAnimationDuration: 0.015,
	}
}

func (g *GridParams) Kind() Kinds { return Grid }

func (g *GridParams) String() string {
	return fmt.Sprintf("{Columns: %d, Margins: %g/%g/%g, Spacing: %g/%g, ZGap: %g}",
		g.Columns, g.TopMargin, g.BottomMargin, g.SideMargin, g.ColumnSpacing, g.RowSpacing, g.ZGap)
}

func (g *GridParams) columns() int {
	return max(1, g.Columns)
}

func (g *GridParams) defaultItemSize(o Orientation, size math32.Vector3) math32.Vector3 {
	layoutWidth := size.X
	if o.IsHorizontal() {
		layoutWidth = size.Y
	}
	cols := float32(g.columns())
	w := (layoutWidth - g.SideMargin*2 - g.ColumnSpacing*(cols-1)) / cols
	// 4x3 aspect ratio
	return math32.Vec3(w, w*0.75, w*0.75)
}

func (g *GridParams) itemsPerPage(layoutHeight float32, itemSize math32.Vector3) uint {
	rows := math32.Ceil(layoutHeight / (itemSize.Y + g.RowSpacing))
	return uint(g.columns()) * uint(max(0, rows))
}

func (g *GridParams) itemsWithinArea(layoutPosition, layoutHeight float32, itemSize math32.Vector3) Range {
	cols := g.columns()
	perPage := int(g.itemsPerPage(layoutHeight, itemSize))
	firstVisible := -int(layoutPosition/float32(cols)) * cols
	first := max(0, firstVisible-cols)
	last := max(0, firstVisible+perPage)
	return NewRange(uint(first), uint(last))
}

func (g *GridParams) minimumLayoutPosition(numItems uint, layoutHeight float32, itemSize math32.Vector3) float32 {
	cols := uint(g.columns())
	itemsLastRow := numItems % cols
	if itemsLastRow == 0 {
		itemsLastRow = cols
	}
	rowsLastPage := (layoutHeight - g.BottomMargin - g.TopMargin + g.RowSpacing) / (itemSize.Y + g.RowSpacing)
	itemsLastPage := (rowsLastPage-1)*float32(cols) + float32(itemsLastRow)
	return itemsLastPage - float32(numItems)
}

func (l *Layout) gridClosestOnScreen(g *GridParams, id uint, layoutPosition float32, size math32.Vector3) float32 {
	pos := l.ItemPosition(id, layoutPosition, size)
	itemSize := l.ItemSizeFor(id, size)
	screenSize := itemSize
	if l.Orientation.IsHorizontal() {
		screenSize = math32.Vec3(itemSize.Y, itemSize.X, itemSize.Z)
	}
	onScreen := size.Sub(screenSize).MulScalar(0.5)
	if pos.X >= -onScreen.X && pos.X <= onScreen.X && pos.Y >= -onScreen.Y && pos.Y <= onScreen.Y {
		return layoutPosition
	}
	rowHeight := itemSize.Y + g.RowSpacing
	// position of the item when its row is scrolled to the start
	first := l.ItemPosition(id, l.ItemScrollToPosition(id), size)
	// along is the coordinate that grows toward higher rows
	along := func(v math32.Vector3) float32 {
		switch l.Orientation {
		case Left:
			return v.X
		case Down:
			return -v.Y
		case Right:
			return -v.X
		}
		return v.Y
	}
	extent := l.layoutHeight(size)
	var offset float32
	if along(pos) > 0 {
		offset = (extent-rowHeight)*0.5 - along(first)
	} else {
		offset = (-extent+rowHeight)*0.5 - along(first)
	}
	// rows between the start and an item aligned to the nearest edge
	rowDiff := offset / rowHeight
	return l.ItemScrollToPosition(id) + rowDiff*float32(g.columns())
}

func (g *GridParams) resolve(o Orientation, id uint, itemSize math32.Vector3) funcs {
	cols := float32(g.columns())
	col := float32(id % uint(g.columns()))
	w, h := itemSize.X, itemSize.Y
	// across is the offset of the column center from the leading side
	across := g.SideMargin + col*(w+g.ColumnSpacing) + w*0.5
	along := func(pos float32) float32 {
		return ((h+g.RowSpacing)*(pos-col))/cols + h*0.5 + g.TopMargin
	}
	z := col * g.ZGap

	var fs funcs
	switch o {
	case Up:
		fs.position = func(pos float32, size math32.Vector3) math32.Vector3 {
			return math32.Vec3(across-size.X*0.5, along(pos)-size.Y*0.5, z)
		}
	case Left:
		fs.position = func(pos float32, size math32.Vector3) math32.Vector3 {
			return math32.Vec3(along(pos)-size.X*0.5, -(across - size.Y*0.5), z)
		}
	case Down:
		fs.position = func(pos float32, size math32.Vector3) math32.Vector3 {
			return math32.Vec3(-(across - size.X*0.5), -(along(pos) - size.Y*0.5), z)
		}
	default:
		fs.position = func(pos float32, size math32.Vector3) math32.Vector3 {
			return math32.Vec3(-(along(pos) - size.X*0.5), across-size.Y*0.5, z)
		}
	}

	rot := math32.NewQuatAxisAngle(math32.ZAxis, [4]float32{0, 1.5, 1, 0.5}[o&3]*math32.Pi)
	fs.rotation = func(pos float32) math32.Quat { return rot }

	fs.color = func(pos float32, current math32.Vector4) math32.Vector4 {
		return math32.Vec4(1, 1, 1, current.W)
	}

	fs.visible = func(pos float32, size math32.Vector3) bool {
		extent := size.Y
		if o.IsHorizontal() {
			extent = size.X
		}
		row := (pos - col) / cols
		rowsPerPage := math32.Ceil(extent / (h + g.RowSpacing))
		return row > -2 && row < rowsPerPage
	}
	return fs
}
