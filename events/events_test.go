// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"cogentcore.org/dali/math32"
	"github.com/stretchr/testify/assert"
)

func TestListenersOrder(t *testing.T) {
	var ls Listeners
	var calls []string
	ls.Add(Wheel, func(ev Event) { calls = append(calls, "first") })
	ls.Add(Wheel, func(ev Event) {
		calls = append(calls, "second")
		ev.SetHandled()
	})

	assert.True(t, ls.Call(NewWheel(1)))
	assert.Equal(t, []string{"second"}, calls)

	assert.False(t, ls.Call(NewPan(Started, math32.Vector2{}, math32.Vector2{})))
}

func TestPanSpeed(t *testing.T) {
	ev := NewPan(Continuing, math32.Vec2(0, 10), math32.Vec2(3, 4))
	assert.Equal(t, Pan, ev.Type())
	assert.InDelta(t, 5, ev.Speed(), 1e-6)
	assert.Equal(t, "Pan{State: Continuing, Displacement: (0, 10), Velocity: (3, 4)}", ev.String())
}

func TestTypeStrings(t *testing.T) {
	assert.Equal(t, "FocusChange", FocusChange.String())
	assert.Equal(t, "Cancelled", Cancelled.String())
	assert.Equal(t, "FocusDown", FocusDown.String())
	assert.Equal(t, "Types(42)", Types(42).String())
}
