// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "\t\t", String(Tab, 2, 4))
	assert.Equal(t, "      ", String(Space, 3, 2))
	assert.Equal(t, "", Spaces(0, 4))
}

func TestLines(t *testing.T) {
	assert.Equal(t, "  a\n\n  b\n", Lines("a\n\nb\n", Space, 1, 2))
	assert.Equal(t, "\ta", Lines("a", Tab, 1, 0))
	assert.Equal(t, "a\nb", Lines("a\nb", Tab, 0, 0))
}
