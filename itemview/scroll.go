// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemview

import (
	"cogentcore.org/dali/events"
	"cogentcore.org/dali/itemlayout"
	"cogentcore.org/dali/math32"
)

// millisecondsPerSecond converts pan speeds in pixels per millisecond.
const millisecondsPerSecond = 1000

// scrollState is the state of pan and wheel scrolling.
type scrollState struct {
	gesture events.GestureStates

	// distance is the scroll distance of the last pan update, in pixels.
	distance float32

	// speed is the flick speed in layout positions.
	speed float32

	// totalPan is the pan displacement accumulated while overshooting.
	totalPan math32.Vector2

	// overshoot is the amount by which the last clamped layout position
	// exceeded the valid range.
	overshoot float32

	// overshootValue is the overshoot shown by the indicator, in [-1, 1].
	overshootValue float32

	isFlicking           bool
	inAnimation          bool
	animatingOvershootOn bool
	animateOvershootOff  bool
}

func (s *scrollState) isPanning() bool {
	return s.gesture == events.Started || s.gesture == events.Continuing
}

// calculateScrollDistance projects a pan displacement onto the scroll
// direction of the layout.
func calculateScrollDistance(displacement math32.Vector2, l *itemlayout.Layout) float32 {
	dir := math32.DegToRad(l.ScrollDirection())
	return displacement.X*math32.Sin(dir) + displacement.Y*math32.Cos(dir)
}

// OnPan handles a pan gesture update.
func (v *View) OnPan(e *events.PanEvent) {
	v.removeAnimation(&v.scrollAnim)
	if v.active == nil {
		v.scroll.gesture = events.Clear
		return
	}
	v.scroll.gesture = e.State

	var anim *animation
	switch e.State {
	case events.Finished, events.Cancelled:
		anim = v.panFinished()
	case events.Started:
		v.scroll.totalPan = math32.Vector2{}
		v.emit(v.scrollStarted, v.ScrollPosition())
		v.refreshEnabled = true
		v.panContinuing(e)
	case events.Continuing:
		v.panContinuing(e)
	}
	if anim != nil {
		anim.finished = v.onScrollFinished
		v.play(&v.scrollAnim, anim)
	}
}

// panFinished flicks or anchors at the end of a pan and returns
// the scroll animation to play, if any.
func (v *View) panFinished() *animation {
	var anim *animation
	s := &v.scroll
	if math32.Abs(s.distance) > v.MinimumSwipeDistance && s.speed > v.MinimumSwipeSpeed {
		direction := float32(1)
		if s.distance < 0 {
			direction = -1
		}
		v.refreshOrderHint = true
		current := v.position
		target := v.clampFirstItemPosition(current + s.speed*direction)
		if v.Anchoring {
			target = v.active.ClosestAnchorPosition(target)
		}
		duration := math32.Clamp(v.active.ItemFlickAnimationDuration()*math32.Max(1, math32.Abs(target-current)),
			minimumFlickDuration, maximumFlickDuration)
		anim = newAnimation(duration, nil)
		anim.animateTo(current, target, easeOut, v.setLayoutPosition)
		anim.animateTo(s.speed, 0, easeOut, func(sp float32) { s.speed = sp })
		s.isFlicking = true
		// check whether it has already scrolled to the end
		if math32.Abs(current-target) > math32.MachineEpsilon0 {
			v.animateScrollOvershoot(0, false)
		}
	}
	if anim == nil {
		// anchoring may be needed when there was no swipe
		anim = v.doAnchoring()
	}
	if anim == nil {
		v.emit(v.scrollCompleted, v.ScrollPosition())
		v.animateScrollOvershoot(0, false)
	}
	v.doRefresh(v.position, true)
	return anim
}

// panContinuing scrolls by a pan update and tracks the overshoot.
func (v *View) panContinuing(e *events.PanEvent) {
	s := &v.scroll
	s.distance = calculateScrollDistance(e.Displacement, v.active)
	speed := e.Speed()
	s.speed = math32.Clamp(speed*speed*v.active.FlickSpeedFactor()*millisecondsPerSecond, 0, v.active.MaximumSwipeSpeed())

	// negative is toward the last item
	v.refreshOrderHint = s.distance < 0

	target := v.clampFirstItemPosition(v.position + s.distance*v.active.ScrollSpeedFactor())
	current := s.overshootValue
	v.setLayoutPosition(target)

	if (target >= 0 && current < 1) || (target <= v.minimumLayoutPosition() && current > -1) {
		s.totalPan = s.totalPan.Add(e.Displacement)
	}
	s.overshoot = v.calculateScrollOvershoot()

	// an overshoot animation in progress is not overwritten
	if s.inAnimation {
		return
	}
	if (s.overshoot > math32.MachineEpsilon0 && s.distance < -math32.MachineEpsilon0) ||
		(s.overshoot < -math32.MachineEpsilon0 && s.distance > math32.MachineEpsilon0) {
		// moving against the indicator hides it, and it reappears
		// when moving toward it again
		s.totalPan = math32.Vector2{}
		v.animateScrollOvershoot(0, false)
		return
	}
	s.overshootValue = s.overshoot
}

// OnWheel scrolls by a mouse wheel step, anchoring once no more
// wheel events arrive within the wheel timeout.
func (v *View) OnWheel(e *events.WheelEvent) {
	if v.active != nil {
		delta := v.position - e.Z*v.WheelScrollDistanceStep*v.active.ScrollSpeedFactor()
		v.setLayoutPosition(v.clampFirstItemPosition(delta))
		v.emit(v.scrollStarted, v.ScrollPosition())
		v.refreshEnabled = true
	}
	v.wheelTimer.stop()
	v.wheelTimer.start(wheelFinishedTimeout, v.onWheelFinished)
}

func (v *View) onWheelFinished() {
	if v.active == nil {
		return
	}
	v.removeAnimation(&v.scrollAnim)
	anim := v.doAnchoring()
	if anim != nil {
		anim.finished = v.onScrollFinished
		v.play(&v.scrollAnim, anim)
		return
	}
	v.scroll.overshoot = 0
	v.animateScrollOvershoot(0, false)
	v.emit(v.scrollCompleted, v.ScrollPosition())
}

// OnTouchDown cancels any ongoing scrolling. Only single touch
// points are handled.
func (v *View) OnTouchDown(e *events.TouchEvent) {
	if e.Points != 1 {
		return
	}
	s := &v.scroll
	s.gesture = events.Clear
	s.distance = 0
	s.speed = 0
	s.overshoot = 0
	v.animateScrollOvershoot(0, false)
	if v.scrollAnim != nil {
		v.emit(v.scrollCompleted, v.ScrollPosition())
	}
	v.removeAnimation(&v.scrollAnim)
	e.SetHandled()
}

// ScrollTo scrolls to the given layout position, clamped to the valid
// range, over the given duration in seconds, or immediately if it is
// not positive.
func (v *View) ScrollTo(position, duration float32) {
	if v.active == nil {
		return
	}
	target := v.clampFirstItemPosition(position)
	if duration > 0 {
		v.removeAnimation(&v.scrollAnim)
		a := newAnimation(duration, v.onScrollFinished)
		a.animateTo(v.position, target, easeOut, v.setLayoutPosition)
		v.play(&v.scrollAnim, a)
	} else {
		v.setLayoutPosition(target)
		v.animateScrollOvershoot(0, false)
	}
	v.emit(v.scrollStarted, v.ScrollPosition())
	v.refreshEnabled = true
}

// ScrollToItem scrolls so that the given item is on screen, over the
// given duration in seconds. If the item is already on screen, the
// layout position does not change.
func (v *View) ScrollToItem(id uint, duration float32) {
	if v.active == nil {
		return
	}
	v.ScrollTo(v.active.ClosestOnScreenLayoutPosition(id, v.position, v.size), duration)
}

// doAnchoring returns an animation to the closest anchor position,
// or nil if anchoring is disabled.
func (v *View) doAnchoring() *animation {
	if v.active == nil || !v.Anchoring {
		return nil
	}
	anchor := v.active.ClosestAnchorPosition(v.position)
	a := newAnimation(v.AnchoringDuration, nil)
	a.animateTo(v.position, anchor, easeOut, v.setLayoutPosition)
	a.animateTo(v.scroll.speed, 0, easeOut, func(sp float32) { v.scroll.speed = sp })
	if !v.scroll.isFlicking {
		v.animateScrollOvershoot(0, false)
	}
	return a
}

func (v *View) onScrollFinished() {
	v.removeAnimation(&v.scrollAnim)
	v.emit(v.scrollCompleted, v.ScrollPosition())
	s := &v.scroll
	if s.isFlicking && math32.Abs(s.overshoot) > math32.MachineEpsilon1 {
		// bounce the indicator at the end of a flick past the end
		v.animateScrollOvershoot(math32.Sign(s.overshoot), true)
	} else {
		v.animateScrollOvershoot(0, false)
	}
	s.isFlicking = false
	s.overshoot = 0
}

// calculateScrollOvershoot returns the overshoot in [-1, 1] from the
// pan displacement accumulated since the pan started.
func (v *View) calculateScrollOvershoot() float32 {
	if v.active == nil {
		return 0
	}
	dist := calculateScrollDistance(v.scroll.totalPan, v.active) * v.active.ScrollSpeedFactor()
	delta := v.position + dist
	minPos := v.minimumLayoutPosition()
	v.scrollPositionMax = -minPos
	overshoot := delta - math32.Min(0, math32.Max(minPos, delta))
	return math32.Clamp(overshoot, -1, 1)
}

// animateScrollOvershoot animates the overshoot indicator to the given
// amount. If animateBack is set, it animates back to zero afterwards.
func (v *View) animateScrollOvershoot(amount float32, animateBack bool) {
	s := &v.scroll
	on := math32.Abs(amount) > math32.MachineEpsilon1
	// make sure we animate back if needed
	s.animateOvershootOff = animateBack || (!on && s.animatingOvershootOn)
	if s.animatingOvershootOn {
		// animating on does not allow animating off
		return
	}
	if v.Overshoot.AnimationSpeed <= math32.MachineEpsilon0 {
		s.overshootValue = amount
		return
	}
	var duration float32
	if v.Overshoot.Enabled {
		height := v.overlaySize().Y
		if on {
			duration = height * (1 - math32.Abs(s.overshootValue)) / v.Overshoot.AnimationSpeed
		} else {
			duration = height * math32.Abs(s.overshootValue) / v.Overshoot.AnimationSpeed
		}
	}
	s.inAnimation = true
	s.animatingOvershootOn = on
	v.removeAnimation(&v.overshootAnim)
	a := newAnimation(duration, v.onOvershootFinished)
	a.animateTo(s.overshootValue, amount, linear, func(o float32) { s.overshootValue = o })
	v.play(&v.overshootAnim, a)
}

func (v *View) onOvershootFinished() {
	s := &v.scroll
	s.animatingOvershootOn = false
	v.removeAnimation(&v.overshootAnim)
	if s.animateOvershootOff {
		v.animateScrollOvershoot(0, false)
	}
	s.inAnimation = false
}
