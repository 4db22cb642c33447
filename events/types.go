// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of input event delivered to a
// scrollable item view by the host event loop.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Pan is a pan gesture update. See [GestureStates] for the phase.
	Pan

	// Wheel is a mouse wheel step.
	Wheel

	// TouchDown is a single touch point going down. It cancels
	// any ongoing scrolling.
	TouchDown

	// FocusChange is a committed keyboard focus change to an item.
	FocusChange
)

var typesNames = [...]string{"UnknownType", "Pan", "Wheel", "TouchDown", "FocusChange"}

// String returns the name of the event type.
func (i Types) String() string {
	if i < 0 || int(i) >= len(typesNames) {
		return "Types(" + itoa(int(i)) + ")"
	}
	return typesNames[i]
}

// GestureStates are the phases of a continuous gesture.
type GestureStates int32

const (
	// Clear is the state when there is no gesture in progress.
	Clear GestureStates = iota

	// Started is the first update of a gesture.
	Started

	// Continuing is any update after Started and before the end.
	Continuing

	// Finished is the final update of a gesture that completed normally.
	Finished

	// Cancelled is the final update of a gesture that was interrupted.
	Cancelled
)

var gestureStatesNames = [...]string{"Clear", "Started", "Continuing", "Finished", "Cancelled"}

// String returns the name of the gesture state.
func (i GestureStates) String() string {
	if i < 0 || int(i) >= len(gestureStatesNames) {
		return "GestureStates(" + itoa(int(i)) + ")"
	}
	return gestureStatesNames[i]
}

// Directions are keyboard focus movement directions.
type Directions int32

const (
	FocusLeft Directions = iota
	FocusRight
	FocusUp
	FocusDown
)

var directionsNames = [...]string{"FocusLeft", "FocusRight", "FocusUp", "FocusDown"}

// String returns the name of the direction.
func (i Directions) String() string {
	if i < 0 || int(i) >= len(directionsNames) {
		return "Directions(" + itoa(int(i)) + ")"
	}
	return directionsNames[i]
}
