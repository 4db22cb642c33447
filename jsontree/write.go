// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"io"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/dali/base/indent"
)

// Write writes the node as standard JSON, indented by the given number
// of spaces per level, or compact if it is 0. Comments are not kept.
func (n *Node) Write(w io.Writer, width int) error {
	var b strings.Builder
	n.write(&b, 0, width)
	if width > 0 {
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (n *Node) write(b *strings.Builder, level, width int) {
	switch n.typ {
	case Object, Array:
		opening, closing := byte('{'), byte('}')
		if n.typ == Array {
			opening, closing = '[', ']'
		}
		b.WriteByte(opening)
		for i, c := range n.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if width > 0 {
				b.WriteByte('\n')
				b.WriteString(indent.Spaces(level+1, width))
			}
			if n.typ == Object {
				writeString(b, c.name)
				b.WriteByte(':')
				if width > 0 {
					b.WriteByte(' ')
				}
			}
			c.write(b, level+1, width)
		}
		if width > 0 && len(n.children) > 0 {
			b.WriteByte('\n')
			b.WriteString(indent.Spaces(level, width))
		}
		b.WriteByte(closing)
	case String:
		writeString(b, n.str)
	case Integer:
		b.WriteString(strconv.FormatInt(n.num, 10))
	case Float:
		b.WriteString(formatFloat(n.float))
	case Boolean:
		b.WriteString(strconv.FormatBool(n.num != 0))
	default:
		b.WriteString("null")
	}
}

// formatFloat formats a float so that it parses back as a [Float].
func formatFloat(f float32) string {
	switch {
	case math.IsInf(float64(f), 1):
		return "1e999"
	case math.IsInf(float64(f), -1):
		return "-1e999"
	}
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

const hex = "0123456789abcdef"

// writeString writes a quoted JSON string.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\b':
			b.WriteString(`\b`)
		case c == '\f':
			b.WriteString(`\f`)
		case c < 0x20:
			b.WriteString(`\u00`)
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xF])
		default:
			// UTF-8 sequences are kept as they are
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}
