// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"cogentcore.org/dali/config"
	"cogentcore.org/dali/itemlayout"
	"cogentcore.org/dali/math32"
)

// Layout writes the transforms of the items that the configured layout
// with the given index shows at the given layout position.
func Layout(w io.Writer, cfg *config.Config, index int, position float32) error {
	l, err := configLayout(cfg, index)
	if err != nil {
		return err
	}
	vs := cfg.Viewport.Size()
	size := math32.Vec3(vs.X, vs.Y, math32.Min(vs.X, vs.Y))
	r := l.ItemsWithinArea(position, size).Intersection(itemlayout.NewRange(0, cfg.Items))
	fmt.Fprintf(w, "%v at %g: items %v\n", l, position, r)

	var t table
	t.add("ID", "X", "Y", "Z", "ALPHA", "VISIBLE")
	for id := r.Begin; id < r.End; id++ {
		tr := l.Bind(id, size).Evaluate(position, size)
		t.add(strconv.FormatUint(uint64(id), 10), format(tr.Position.X), format(tr.Position.Y), format(tr.Position.Z),
			format(tr.Color.W), strconv.FormatBool(tr.Visible))
	}
	return t.write(w)
}

func configLayout(cfg *config.Config, index int) (*itemlayout.Layout, error) {
	lcs := cfg.Layouts
	if len(lcs) == 0 {
		lcs = []config.LayoutConfig{{Kind: "grid"}}
	}
	if index < 0 || index >= len(lcs) {
		return nil, fmt.Errorf("layout index %d out of range with %d layouts", index, len(lcs))
	}
	return lcs[index].Layout()
}

func format(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', 2, 32)
}
