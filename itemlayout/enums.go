// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemlayout

import (
	"fmt"
	"strconv"
	"strings"
)

// Orientation is the screen orientation a layout is drawn for.
// Each orientation rotates the layout by a further 90 degrees.
type Orientation int32

const (
	// Up scrolls along the vertical axis with the first item at the top.
	Up Orientation = iota

	// Left scrolls along the horizontal axis with the first item at the left.
	Left

	// Down scrolls along the vertical axis with the first item at the bottom.
	Down

	// Right scrolls along the horizontal axis with the first item at the right.
	Right
)

var orientationNames = [...]string{"Up", "Left", "Down", "Right"}

// String returns the name of the orientation.
func (o Orientation) String() string {
	if o < 0 || int(o) >= len(orientationNames) {
		return "Orientation(" + strconv.Itoa(int(o)) + ")"
	}
	return orientationNames[o]
}

// SetString sets the orientation from its case-insensitive name.
func (o *Orientation) SetString(s string) error {
	for i, nm := range orientationNames {
		if strings.EqualFold(nm, s) {
			*o = Orientation(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Orientation", s)
}

// IsVertical returns whether the orientation scrolls vertically.
func (o Orientation) IsVertical() bool {
	return o == Up || o == Down
}

// IsHorizontal returns whether the orientation scrolls horizontally.
func (o Orientation) IsHorizontal() bool {
	return o == Left || o == Right
}

// Kinds are the kinds of item layout.
type Kinds int32

const (
	// Grid arranges items in fixed columns of rows.
	Grid Kinds = iota

	// Depth arranges items in rows receding into the distance.
	Depth

	// Spiral winds items around a cylindrical spiral.
	Spiral
)

var kindsNames = [...]string{"Grid", "Depth", "Spiral"}

// KindsNames returns the names of all layout kinds.
func KindsNames() []string {
	return kindsNames[:]
}

// String returns the name of the layout kind.
func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindsNames) {
		return "Kinds(" + strconv.Itoa(int(k)) + ")"
	}
	return kindsNames[k]
}

// SetString sets the kind from its case-insensitive name.
func (k *Kinds) SetString(s string) error {
	for i, nm := range kindsNames {
		if strings.EqualFold(nm, s) {
			*k = Kinds(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Kinds", s)
}
