// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events that a host event loop
// delivers to an item view, and listener registries for them.
package events

import (
	"fmt"
	"strconv"

	"cogentcore.org/dali/math32"
)

// Event is the interface for all input events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// so no further listeners are called.
	SetHandled()
}

// Base is the base type for events, implementing the common
// parts of the [Event] interface.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// Handled is whether the event has been handled.
	Handled bool
}

func (ev *Base) Type() Types { return ev.Typ }

func (ev *Base) IsHandled() bool { return ev.Handled }

func (ev *Base) SetHandled() { ev.Handled = true }

func (ev *Base) String() string { return ev.Typ.String() }

// PanEvent is a pan gesture update.
type PanEvent struct {
	Base

	// State is the phase of the gesture.
	State GestureStates

	// Displacement is the movement in pixels since the last update.
	Displacement math32.Vector2

	// Velocity is the current velocity in pixels per millisecond.
	Velocity math32.Vector2
}

// NewPan returns a new pan event.
func NewPan(state GestureStates, displacement, velocity math32.Vector2) *PanEvent {
	ev := &PanEvent{State: state, Displacement: displacement, Velocity: velocity}
	ev.Typ = Pan
	return ev
}

// Speed returns the magnitude of the velocity, in pixels per millisecond.
func (ev *PanEvent) Speed() float32 {
	return math32.Sqrt(ev.Velocity.X*ev.Velocity.X + ev.Velocity.Y*ev.Velocity.Y)
}

func (ev *PanEvent) String() string {
	return fmt.Sprintf("%v{State: %v, Displacement: %v, Velocity: %v}", ev.Type(), ev.State, ev.Displacement, ev.Velocity)
}

// WheelEvent is a mouse wheel step.
type WheelEvent struct {
	Base

	// Z is the number of wheel steps, positive away from the user.
	Z float32
}

// NewWheel returns a new wheel event.
func NewWheel(z float32) *WheelEvent {
	ev := &WheelEvent{Z: z}
	ev.Typ = Wheel
	return ev
}

func (ev *WheelEvent) String() string {
	return fmt.Sprintf("%v{Z: %g}", ev.Type(), ev.Z)
}

// TouchEvent is a touch point change. Only single touch points
// going down are delivered.
type TouchEvent struct {
	Base

	// Points is the number of touch points involved.
	Points int
}

// NewTouchDown returns a new touch down event for one point.
func NewTouchDown() *TouchEvent {
	ev := &TouchEvent{Points: 1}
	ev.Typ = TouchDown
	return ev
}

// FocusEvent reports that keyboard focus moved to the given item.
type FocusEvent struct {
	Base

	// Item is the id of the newly focused item.
	Item uint
}

// NewFocus returns a new focus change event for the given item.
func NewFocus(item uint) *FocusEvent {
	ev := &FocusEvent{Item: item}
	ev.Typ = FocusChange
	return ev
}

func (ev *FocusEvent) String() string {
	return fmt.Sprintf("%v{Item: %d}", ev.Type(), ev.Item)
}

func itoa(i int) string { return strconv.Itoa(i) }
