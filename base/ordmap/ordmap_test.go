// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("b", 1)
	om.Add("a", 2)
	om.Add("c", 3)
	om.Add("b", 4)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"b", "a", "c"}, om.Keys())
	assert.Equal(t, []int{4, 2, 3}, om.Values())
	assert.Equal(t, 1, om.IndexByKey("a"))
	assert.Equal(t, -1, om.IndexByKey("z"))
	assert.Equal(t, "c", om.KeyByIndex(2))
	assert.Equal(t, 2, om.ValueByIndex(1))

	_, ok := om.ValueByKeyTry("z")
	assert.False(t, ok)

	assert.True(t, om.DeleteKey("b"))
	assert.False(t, om.DeleteKey("b"))
	assert.Equal(t, []string{"a", "c"}, om.Keys())
	assert.Equal(t, 3, om.ValueByKey("c"))
	assert.Equal(t, 0, om.IndexByKey("a"))

	var zero Map[string, int]
	zero.Add("x", 1)
	assert.Equal(t, 1, zero.Len())
}
