// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package itemlayout

import "fmt"

// Range is a half-open interval [Begin, End) of item ids.
// Begin is never greater than End.
type Range struct {
	Begin uint
	End   uint
}

// NewRange returns a new [Range]. If end is less than begin,
// the range is empty at begin.
func NewRange(begin, end uint) Range {
	if end < begin {
		end = begin
	}
	return Range{Begin: begin, End: end}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Begin, r.End)
}

// Within returns whether the given id is within the range.
func (r Range) Within(id uint) bool {
	return id >= r.Begin && id < r.End
}

// Len returns the number of ids in the range.
func (r Range) Len() uint {
	return r.End - r.Begin
}

// IsEmpty returns whether the range has no ids.
func (r Range) IsEmpty() bool {
	return r.End <= r.Begin
}

// Intersection returns the overlap of the two ranges, or an empty
// range at 0 if they do not overlap.
func (r Range) Intersection(other Range) Range {
	begin := max(r.Begin, other.Begin)
	end := min(r.End, other.End)
	if begin >= end {
		return Range{}
	}
	return Range{Begin: begin, End: end}
}

// Extend returns the range grown by extra ids on both sides,
// without going below zero.
func (r Range) Extend(extra uint) Range {
	if r.Begin >= extra {
		r.Begin -= extra
	} else {
		r.Begin = 0
	}
	r.End += extra
	return r
}
