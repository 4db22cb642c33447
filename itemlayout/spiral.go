// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemlayout

import (
	"fmt"

	"cogentcore.org/dali/math32"
)

// SpiralParams are the parameters of a spiral layout, which arranges
// items on a descending helix around the center of the viewport.
type SpiralParams struct {

	// ItemSpacing is the angle in radians between consecutive items.
	// Use [SpiralParams.SetItemSpacing] to keep [SpiralParams.ItemDescent]
	// consistent.
	ItemSpacing float32

	// RevolutionDistance is the distance the spiral descends per revolution.
	RevolutionDistance float32

	// ItemDescent is the distance the spiral descends per item.
	// It is derived from the spacing and the revolution distance.
	ItemDescent float32

	// TopItemAlignment is the position of the first item as a
	// fraction of the layout height from the center.
	TopItemAlignment float32

	// ScrollSpeedFactor converts pan pixels into layout positions.
	ScrollSpeedFactor float32

	// MaximumSwipeSpeed is the maximum flick distance in layout positions.
	MaximumSwipeSpeed float32

	// ItemFlickAnimationDuration is the flick animation duration in
	// seconds per layout position travelled.
	ItemFlickAnimationDuration float32
}

// NewSpiralParams returns spiral parameters with default values.
func NewSpiralParams() *SpiralParams {
	s := &SpiralParams{
		ItemSpacing:                2 * math32.Pi / 9.5,
		RevolutionDistance:         190,
		TopItemAlignment:           -0.125,
		ScrollSpeedFactor:          0.01,
		MaximumSwipeSpeed:          30,
		ItemFlickAnimationDuration: 0.1,
	}
	s.updateDescent()
	return s
}

// SetItemSpacing sets the [SpiralParams.ItemSpacing] in radians and
// updates the item descent.
func (s *SpiralParams) SetItemSpacing(radians float32) *SpiralParams {
	s.ItemSpacing = radians
	s.updateDescent()
	return s
}

// SetRevolutionDistance sets the [SpiralParams.RevolutionDistance] and
// updates the item descent.
func (s *SpiralParams) SetRevolutionDistance(dist float32) *SpiralParams {
	s.RevolutionDistance = dist
	s.updateDescent()
	return s
}

func (s *SpiralParams) updateDescent() {
	itemsPerSpiral := float32(1)
	if s.ItemSpacing > 0 {
		itemsPerSpiral = math32.Max(1, 2*math32.Pi/s.ItemSpacing)
	}
	s.ItemDescent = s.RevolutionDistance / itemsPerSpiral
}

func (s *SpiralParams) Kind() Kinds { return Spiral }

func (s *SpiralParams) String() string {
	return fmt.Sprintf("{Spacing: %g, Revolution: %g, Descent: %g, TopAlignment: %g}",
		s.ItemSpacing, s.RevolutionDistance, s.ItemDescent, s.TopItemAlignment)
}

func (s *SpiralParams) descent() float32 {
	if s.ItemDescent <= 0 {
		return 1
	}
	return s.ItemDescent
}

func (s *SpiralParams) defaultItemSize(size math32.Vector3) math32.Vector3 {
	w := size.X * 0.25
	// 4x3 aspect ratio
	return math32.Vec3(w, w*0.75, w*0.75)
}

// cachedItems returns the number of items kept above the top item.
func (s *SpiralParams) cachedItems(layoutHeight float32) float32 {
	return layoutHeight * (s.TopItemAlignment + 0.5) / s.descent()
}

func (s *SpiralParams) itemsWithinArea(layoutPosition, layoutHeight float32) Range {
	perSpiral := layoutHeight / s.descent()
	cached := s.cachedItems(layoutHeight)
	viewable := math32.Min(perSpiral, perSpiral-cached-layoutPosition+1)
	first := uint(math32.Max(0, -layoutPosition-cached-1))
	last := uint(math32.Max(0, float32(first)+viewable))
	return NewRange(first, last+1)
}

func (s *SpiralParams) reserveItemCount(layoutHeight float32) uint {
	return uint(math32.Max(0, layoutHeight/s.descent()))
}

func (s *SpiralParams) visible(o Orientation, pos float32, size math32.Vector3) bool {
	lh := size.Y
	if o.IsHorizontal() {
		lh = size.X
	}
	cached := s.cachedItems(lh)
	return pos >= -cached-1 && pos <= lh/s.descent()+1
}

func (s *SpiralParams) resolve(o Orientation) funcs {
	sp, descent, top := s.ItemSpacing, s.ItemDescent, s.TopItemAlignment

	var fs funcs
	switch o {
	case Up:
		fs.position = func(pos float32, size math32.Vector3) math32.Vector3 {
			r, a := size.X*0.4, -0.5*math32.Pi+sp*pos
			return math32.Vec3(-r*math32.Cos(a), descent*pos+size.Y*top, -r*math32.Sin(a))
		}
	case Left:
		fs.position = func(pos float32, size math32.Vector3) math32.Vector3 {
			r, a := size.X*0.4, 0.5*math32.Pi+sp*pos
			return math32.Vec3(descent*pos+size.X*top, -r*math32.Cos(a), r*math32.Sin(a))
		}
	case Down:
		fs.position = func(pos float32, size math32.Vector3) math32.Vector3 {
			r, a := size.X*0.4, 0.5*math32.Pi+sp*pos
			return math32.Vec3(-r*math32.Cos(a), -descent*pos-size.Y*top, r*math32.Sin(a))
		}
	default:
		fs.position = func(pos float32, size math32.Vector3) math32.Vector3 {
			r, a := size.X*0.4, -0.5*math32.Pi+sp*pos
			return math32.Vec3(-descent*pos-size.X*top, -r*math32.Cos(a), -r*math32.Sin(a))
		}
	}

	base := math32.NewQuatAxisAngle(math32.ZAxis, [4]float32{0, -0.5, -1, -1.5}[o&3]*math32.Pi)
	fs.rotation = func(pos float32) math32.Quat {
		return base.Mul(math32.NewQuatAxisAngle(math32.YAxis, -sp*pos))
	}

	fs.color = func(pos float32, current math32.Vector4) math32.Vector4 {
		progress := math32.Fract(sp * math32.Abs(pos) / (2 * math32.Pi))
		if progress > 0.5 {
			progress = 2 * (1 - progress)
		} else {
			progress *= 2
		}
		var darkness float32
		switch {
		case progress <= 0.1:
			darkness = 1
		case progress > 0.35:
			darkness = 0.15
		default:
			darkness = 1 - 0.85*(progress-0.1)/0.25
		}
		return math32.Vec4(darkness, darkness, darkness, current.W)
	}

	fs.visible = func(pos float32, size math32.Vector3) bool {
		return s.visible(o, pos, size)
	}
	return fs
}
