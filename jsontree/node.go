// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the type of a JSON tree [Node].
type Type int32

const (
	// Null is the JSON null value.
	Null Type = iota

	// Object has named children, with unique names.
	Object

	// Array has unnamed children in order.
	Array

	String

	Integer

	Float

	Boolean
)

var typeNames = [...]string{"Null", "Object", "Array", "String", "Integer", "Float", "Boolean"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// IsContainer returns whether the type has children.
func (t Type) IsContainer() bool {
	return t == Object || t == Array
}

// Node is a node of a JSON tree: an object, an array or a value.
// Nodes are owned by the [Parser] that created them and must not be
// modified while it parses.
type Node struct {
	name  string
	named bool
	typ   Type

	str   string
	num   int64
	float float32

	// substitution is whether a string value contains a
	// {name} substitution marker.
	substitution bool

	parent   *Node
	children []*Node
}

// Name returns the name of the node within its parent object,
// or "" for the root and for array elements.
func (n *Node) Name() string {
	return n.name
}

// HasName returns whether the node has a name, which is the case
// for the children of objects, including those named "".
func (n *Node) HasName() bool {
	return n.named
}

// Type returns the type of the node.
func (n *Node) Type() Type {
	return n.typ
}

// Str returns the value of a [String] node, and "" for other types.
func (n *Node) Str() string {
	if n.typ != String {
		return ""
	}
	return n.str
}

// Int returns the value of an [Integer] node, and 0 for other types.
func (n *Node) Int() int64 {
	if n.typ != Integer {
		return 0
	}
	return n.num
}

// Float returns the value of a [Float] node, the value of an
// [Integer] node converted to float32, and 0 for other types.
func (n *Node) Float() float32 {
	switch n.typ {
	case Float:
		return n.float
	case Integer:
		return float32(n.num)
	}
	return 0
}

// Bool returns the value of a [Boolean] node, and false for other types.
func (n *Node) Bool() bool {
	return n.typ == Boolean && n.num != 0
}

// HasSubstitution returns whether the value of a [String] node
// contains at least one {name} substitution marker.
func (n *Node) HasSubstitution() bool {
	return n.substitution
}

// Parent returns the parent of the node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children of the node in order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Size returns the number of children of the node.
func (n *Node) Size() int {
	return len(n.children)
}

// ChildAt returns the child at the given index, or nil if it is out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.named && c.name == name {
			return c
		}
	}
	return nil
}

// Count returns the number of children of the direct child with the
// given name, or 0 if there is no such child.
func (n *Node) Count(name string) int {
	if c := n.Child(name); c != nil {
		return c.Size()
	}
	return 0
}

// Find returns the first node with the given name in a depth-first
// search of the node and its descendants, or nil.
func (n *Node) Find(name string) *Node {
	if n.named && n.name == name {
		return n
	}
	for _, c := range n.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// FindByPath returns the descendant at the given slash separated path
// of child names, where array elements are addressed by their index,
// or nil if there is none. An empty path returns the node itself.
func (n *Node) FindByPath(path string) *Node {
	cur := n
	for _, el := range strings.Split(path, "/") {
		if el == "" {
			continue
		}
		if cur.typ == Array {
			i, err := strconv.Atoi(el)
			if err != nil {
				return nil
			}
			cur = cur.ChildAt(i)
		} else {
			cur = cur.Child(el)
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Path returns the slash separated path of the node from the root.
func (n *Node) Path() string {
	if n.parent == nil {
		return ""
	}
	el := n.name
	if !n.named {
		el = strconv.Itoa(n.parent.indexOf(n))
	}
	if n.parent.parent == nil {
		return el
	}
	return n.parent.Path() + "/" + el
}

func (n *Node) indexOf(c *Node) int {
	for i, ch := range n.children {
		if ch == c {
			return i
		}
	}
	return -1
}

// Value returns the value of the node as a Go value: map[string]any
// for objects, []any for arrays, and string, int64, float32, bool or
// nil for values.
func (n *Node) Value() any {
	switch n.typ {
	case Object:
		m := make(map[string]any, len(n.children))
		for _, c := range n.children {
			m[c.name] = c.Value()
		}
		return m
	case Array:
		s := make([]any, len(n.children))
		for i, c := range n.children {
			s[i] = c.Value()
		}
		return s
	case String:
		return n.str
	case Integer:
		return n.num
	case Float:
		return n.float
	case Boolean:
		return n.num != 0
	}
	return nil
}

// Equal returns whether the two trees have the same shape,
// names, types, substitution flags and values.
func (n *Node) Equal(o *Node) bool {
	if n.typ != o.typ || n.named != o.named || n.name != o.name ||
		n.substitution != o.substitution || len(n.children) != len(o.children) {
		return false
	}
	switch n.typ {
	case String:
		if n.str != o.str {
			return false
		}
	case Integer, Boolean:
		if n.num != o.num {
			return false
		}
	case Float:
		if n.float != o.float {
			return false
		}
	}
	for i, c := range n.children {
		if !c.Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// String returns the node as compact JSON.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0, 0)
	return b.String()
}

// GoString returns a short description of the node for debugging.
func (n *Node) GoString() string {
	return fmt.Sprintf("jsontree.Node{Name: %q, Type: %v, Size: %d}", n.name, n.typ, len(n.children))
}

// setType sets the type of the node. Changing the type removes the
// children unless the node was and stays the same container type.
func (n *Node) setType(t Type) {
	if n.typ == t {
		return
	}
	n.typ = t
	n.removeChildren()
}

func (n *Node) removeChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

func (n *Node) addChild(c *Node) {
	c.parent = n
	n.children = append(n.children, c)
}

// clone returns a deep copy of the node without a parent.
func (n *Node) clone() *Node {
	cp := *n
	cp.parent = nil
	cp.children = nil
	for _, c := range n.children {
		cp.addChild(c.clone())
	}
	return &cp
}
