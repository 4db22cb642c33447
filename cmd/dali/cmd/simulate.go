// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"cogentcore.org/dali/config"
	"cogentcore.org/dali/events"
	"cogentcore.org/dali/itemview"
	"cogentcore.org/dali/math32"
)

// SimulateOptions are the options of a simulated pan session.
type SimulateOptions struct {

	// Layout is the index of the configured layout to activate.
	Layout int

	// Steps is the number of pan updates.
	Steps int

	// Pan is the displacement in pixels of each pan update along the
	// scroll axis. Negative values scroll toward the end of the items.
	Pan float32

	// Frame is the duration of a frame in seconds.
	Frame float32

	// MaxFrames is the maximum number of frames to run after the pan.
	MaxFrames int
}

// DefaultSimulateOptions returns the default simulation options.
func DefaultSimulateOptions() SimulateOptions {
	return SimulateOptions{Steps: 5, Pan: -60, Frame: 1.0 / 60, MaxFrames: 600}
}

type simActor struct {
	size math32.Vector2
}

func (a *simActor) SetSize(size math32.Vector2) {
	a.size = size
}

// simFactory counts the actors it creates and releases.
type simFactory struct {
	n                 uint
	created, released int
}

func (f *simFactory) NumItems() uint { return f.n }

func (f *simFactory) NewItem(id uint) itemview.Actor {
	f.created++
	return &simActor{}
}

func (f *simFactory) ItemReleased(id uint, actor itemview.Actor) {
	f.released++
}

// Simulate runs a scripted pan session on a view made from the config,
// writing the scroll notifications and every change of the materialized
// item range.
func Simulate(w io.Writer, cfg *config.Config, opts SimulateOptions) error {
	f := &simFactory{n: cfg.Items}
	v, err := cfg.NewView(f)
	if err != nil {
		return err
	}
	if opts.Layout < 0 || opts.Layout >= v.LayoutCount() {
		return fmt.Errorf("layout index %d out of range with %d layouts", opts.Layout, v.LayoutCount())
	}
	if opts.Frame <= 0 {
		opts.Frame = DefaultSimulateOptions().Frame
	}
	v.OnScrollStarted(func(pos math32.Vector2) {
		fmt.Fprintf(w, "scroll started at %.2f\n", v.LayoutPosition())
	})
	v.OnScrollCompleted(func(pos math32.Vector2) {
		fmt.Fprintf(w, "scroll completed at %.2f\n", v.LayoutPosition())
	})

	v.ActivateLayout(opts.Layout, v.Size(), 0)
	last := v.ItemsRange()
	fmt.Fprintf(w, "activated %v: items %v\n", v.ActiveLayout(), last)
	report := func(label string) {
		r := v.ItemsRange()
		if r == last {
			return
		}
		last = r
		fmt.Fprintf(w, "%s: position %.2f items %v created %d released %d\n", label, v.LayoutPosition(), r, f.created, f.released)
	}

	disp := math32.Vec2(0, opts.Pan)
	if v.ActiveLayout().Orientation.IsHorizontal() {
		disp = math32.Vec2(opts.Pan, 0)
	}
	// velocity in pixels per millisecond
	vel := disp.MulScalar(1 / (opts.Frame * 1000))
	for i := range opts.Steps {
		state := events.Continuing
		if i == 0 {
			state = events.Started
		}
		v.HandleEvent(events.NewPan(state, disp, vel))
		report(fmt.Sprintf("pan %d", i+1))
	}
	if opts.Steps > 0 {
		v.HandleEvent(events.NewPan(events.Finished, math32.Vector2{}, vel))
	}
	frame := 0
	for ; v.IsAnimating() && frame < opts.MaxFrames; frame++ {
		v.Advance(opts.Frame)
		report(fmt.Sprintf("frame %d", frame+1))
	}
	fmt.Fprintf(w, "done after %d frames: position %.2f items %v created %d released %d\n",
		frame, v.LayoutPosition(), v.ItemsRange(), f.created, f.released)
	return nil
}

var _ itemview.Releaser = (*simFactory)(nil)
