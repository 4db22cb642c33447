// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemview

import (
	"cogentcore.org/dali/itemlayout"
	"cogentcore.org/dali/math32"
)

// animation animates a set of values over a duration in seconds.
// It only advances when [View.Advance] is called by the host.
type animation struct {

	// duration is the total duration in seconds.
	duration float32

	// elapsed is the time that has passed since the animation started.
	elapsed float32

	tracks []track

	// finished is called when the animation reaches its end,
	// but not when it is removed before that.
	finished func()
}

// track animates one value from a start value to a target value.
type track struct {
	from, to float32
	ease     func(t float32) float32
	set      func(v float32)
}

func newAnimation(duration float32, finished func()) *animation {
	return &animation{duration: duration, finished: finished}
}

// animateTo adds a track animating from the given current value to the target.
func (a *animation) animateTo(from, to float32, ease func(t float32) float32, set func(v float32)) *animation {
	a.tracks = append(a.tracks, track{from: from, to: to, ease: ease, set: set})
	return a
}

// advance advances the animation by dt seconds, setting all of its
// values, and returns whether it has reached its end.
func (a *animation) advance(dt float32) bool {
	a.elapsed += dt
	t := float32(1)
	if a.duration > 0 {
		t = math32.Min(1, a.elapsed/a.duration)
	}
	for _, tr := range a.tracks {
		tr.set(tr.from + (tr.to-tr.from)*tr.ease(t))
	}
	return t >= 1
}

// linear is the identity easing function.
func linear(t float32) float32 { return t }

// easeOut decelerates to the end with a cubic curve.
func easeOut(t float32) float32 {
	t--
	return t*t*t + 1
}

// play starts the animation in the given slot. An animation with no
// duration finishes immediately.
func (v *View) play(slot **animation, a *animation) {
	*slot = a
	if a.duration > 0 {
		return
	}
	a.advance(0)
	*slot = nil
	if a.finished != nil {
		a.finished()
	}
}

// removeAnimation stops the animation in the given slot without
// finishing it.
func (v *View) removeAnimation(slot **animation) {
	*slot = nil
}

// step advances the animation in the given slot, finishing it
// when it reaches its end.
func (v *View) step(slot **animation, dt float32) {
	a := *slot
	if a == nil || !a.advance(dt) {
		return
	}
	if *slot == a {
		*slot = nil
	}
	if a.finished != nil {
		a.finished()
	}
}

// timer calls a function after a timeout in seconds of host time.
type timer struct {
	remaining float32
	running   bool
	fire      func()
}

func (t *timer) start(timeout float32, fire func()) {
	t.remaining = timeout
	t.running = true
	t.fire = fire
}

func (t *timer) stop() {
	t.running = false
}

func (t *timer) advance(dt float32) {
	if !t.running {
		return
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.running = false
		t.fire()
	}
}

// transition blends items from the bindings they had before a change
// of layout or item ids to their current bindings.
type transition struct {

	// from are the previous bindings of the actors, by current item id.
	from map[uint]*itemlayout.Binding

	// progress is the blend factor from 0 (previous) to 1 (current).
	progress float32
}

func (v *View) startTransition(from map[uint]*itemlayout.Binding, duration float32) {
	v.removeAnimation(&v.transitionAnim)
	if len(from) == 0 || duration <= 0 {
		v.transition = nil
		return
	}
	tr := &transition{from: from}
	v.transition = tr
	a := newAnimation(duration, v.stopTransition)
	a.animateTo(0, 1, easeOut, func(p float32) { tr.progress = p })
	v.play(&v.transitionAnim, a)
}

func (v *View) stopTransition() {
	v.removeAnimation(&v.transitionAnim)
	v.transition = nil
}

// blend returns the transform between a and b at the given progress.
func blend(a, b itemlayout.Transform, progress float32) itemlayout.Transform {
	return itemlayout.Transform{
		Position:    a.Position.Lerp(b.Position, progress),
		Orientation: a.Orientation.Slerp(b.Orientation, progress),
		Color:       a.Color.Lerp(b.Color, progress),
		Visible:     a.Visible || b.Visible,
	}
}

// Advance advances all animations and timers of the view by dt seconds
// of host time. The host calls it once per frame before evaluating
// [View.Transforms].
func (v *View) Advance(dt float32) {
	v.step(&v.scrollAnim, dt)
	v.step(&v.overshootAnim, dt)
	v.step(&v.transitionAnim, dt)
	v.wheelTimer.advance(dt)
}

// IsAnimating returns whether any animation or timer of the view is running.
func (v *View) IsAnimating() bool {
	return v.scrollAnim != nil || v.overshootAnim != nil || v.transitionAnim != nil || v.wheelTimer.running
}
