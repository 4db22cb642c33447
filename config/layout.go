// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/dali/itemlayout"
	"cogentcore.org/dali/math32"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/jinzhu/copier"
)

// LayoutConfig is the configuration of one layout. Parameters that
// are zero keep the default value of the layout kind, and parameters
// that do not apply to the kind are ignored.
type LayoutConfig struct {

	// Kind is the layout kind: grid, depth or spiral.
	Kind string

	// Orientation is the layout orientation: up, left, down or right.
	Orientation string

	// ItemSize is the item size as 2 or 3 values, overriding the default
	// item size of the layout.
	ItemSize []float32

	// grid and depth parameters

	Columns                    int
	Rows                       int
	TopMargin                  float32
	BottomMargin               float32
	SideMargin                 float32
	ColumnSpacing              float32
	RowSpacing                 float32
	ZGap                       float32
	ScrollSpeedFactor          float32
	MaximumSwipeSpeed          float32
	ItemFlickAnimationDuration float32

	// TiltDegrees is the tilt of the depth plane in degrees.
	TiltDegrees float32

	// ItemTiltDegrees is the tilt of each depth item in degrees.
	ItemTiltDegrees float32

	// spiral parameters

	// ItemSpacingDegrees is the angle between consecutive spiral items in degrees.
	ItemSpacingDegrees float32
	RevolutionDistance float32
	TopItemAlignment   float32
}

// Layout returns the layout for the configuration, starting from the
// defaults of its kind.
func (lc *LayoutConfig) Layout() (*itemlayout.Layout, error) {
	kind, err := ParseKind(lc.Kind)
	if err != nil {
		return nil, err
	}
	l := itemlayout.New(kind)
	if lc.Orientation != "" {
		o, err := ParseOrientation(lc.Orientation)
		if err != nil {
			return nil, err
		}
		l.SetOrientation(o)
	}
	switch len(lc.ItemSize) {
	case 0:
	case 2:
		l.SetItemSize(math32.Vec3(lc.ItemSize[0], lc.ItemSize[1], math32.Min(lc.ItemSize[0], lc.ItemSize[1])))
	case 3:
		l.SetItemSize(math32.Vec3(lc.ItemSize[0], lc.ItemSize[1], lc.ItemSize[2]))
	default:
		return nil, fmt.Errorf("item size must have 2 or 3 values, not %d", len(lc.ItemSize))
	}

	if err := copier.CopyWithOption(l.Params, lc, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	switch p := l.Params.(type) {
	case *itemlayout.DepthParams:
		if lc.TiltDegrees != 0 {
			p.SetTiltAngle(lc.TiltDegrees)
		}
		if lc.ItemTiltDegrees != 0 {
			p.ItemTiltAngle = math32.DegToRad(lc.ItemTiltDegrees)
		}
	case *itemlayout.SpiralParams:
		if lc.ItemSpacingDegrees != 0 {
			p.SetItemSpacing(math32.DegToRad(lc.ItemSpacingDegrees))
		}
		p.SetRevolutionDistance(p.RevolutionDistance)
	}
	return l, nil
}

// ParseKind returns the layout kind with the given case-insensitive
// name, or an error suggesting the closest name.
func ParseKind(s string) (itemlayout.Kinds, error) {
	var k itemlayout.Kinds
	if err := k.SetString(s); err != nil {
		return k, unknown("layout kind", s, itemlayout.KindsNames())
	}
	return k, nil
}

// ParseOrientation returns the orientation with the given
// case-insensitive name, or an error suggesting the closest name.
func ParseOrientation(s string) (itemlayout.Orientation, error) {
	var o itemlayout.Orientation
	if err := o.SetString(s); err != nil {
		names := make([]string, 4)
		for i := range names {
			names[i] = itemlayout.Orientation(i).String()
		}
		return o, unknown("orientation", s, names)
	}
	return o, nil
}

// unknown returns an error for an unknown name, suggesting the most
// similar of the valid names if any is similar enough.
func unknown(what, s string, names []string) error {
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	best, bestScore := "", 0.0
	for _, nm := range names {
		if sc := strutil.Similarity(s, nm, jw); sc > bestScore {
			best, bestScore = nm, sc
		}
	}
	if bestScore >= 0.7 {
		return fmt.Errorf("unknown %s %q; did you mean %q?", what, s, strings.ToLower(best))
	}
	lower := slices.Clone(names)
	for i, nm := range lower {
		lower[i] = strings.ToLower(nm)
	}
	return fmt.Errorf("unknown %s %q; must be one of %s", what, s, strings.Join(lower, ", "))
}
