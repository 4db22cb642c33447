// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsontree provides a JSON parser that builds a tree of
// [Node] values, with comments, error locations and merging of
// successive parses into the same tree.
//
// Beyond standard JSON, the parser skips // line comments and
// /* block */ comments, and flags strings containing {name}
// substitution markers. Parsing into a parser that already has a
// tree merges the new document into it: named children are updated
// in place instead of being duplicated.
package jsontree

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"
)

// Error is a parse error with the location it occurred at.
type Error struct {

	// Description describes the error.
	Description string

	// Line is the 0-based line of the error.
	Line int

	// Column is the 1-based column of the error, in bytes.
	Column int

	// Offset is the 0-based byte offset of the error.
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line+1, e.Column, e.Description)
}

// Parser parses JSON documents into a tree. Each parse after the
// first merges into the existing tree.
type Parser struct {
	root *Node
	err  *Error
}

// New returns a new parser with no tree.
func New() *Parser {
	return &Parser{}
}

// NewFrom returns a new parser with a deep copy of the given tree,
// into which subsequent parses merge.
func NewFrom(root *Node) *Parser {
	p := &Parser{}
	if root != nil {
		p.root = root.clone()
	}
	return p
}

// Root returns the root of the tree, or nil if nothing has been parsed.
func (p *Parser) Root() *Node {
	return p.root
}

// Err returns the error of the last parse, or nil if it succeeded.
func (p *Parser) Err() *Error {
	return p.err
}

// ParseString parses the given JSON text. See [Parser.Parse].
func (p *Parser) ParseString(src string) error {
	return p.Parse([]byte(src))
}

// ParseFile parses the JSON file at the given path. See [Parser.Parse].
func (p *Parser) ParseFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return p.Parse(b)
}

// Parse parses the given JSON text into the tree of the parser,
// merging it into any existing tree. It stops at the first error,
// which it returns as an [*Error] that is also available from
// [Parser.Err]; the tree then holds whatever was built before it.
// The source is not modified.
func (p *Parser) Parse(src []byte) error {
	p.err = nil
	s := &parseState{src: src, root: p.root}
	if err := s.parse(); err != nil {
		p.root = s.root
		p.err = err
		return err
	}
	p.root = s.root
	return nil
}

// Write writes the tree as JSON, indented by the given number of
// spaces per level, or compact if it is 0.
func (p *Parser) Write(w io.Writer, indent int) error {
	if p.root == nil {
		return nil
	}
	return p.root.Write(w, indent)
}

// states of the parser
type state int

const (
	stateStart state = iota

	// stateObject expects a key or the end of an object.
	stateObject

	// stateKey reads a key and its colon.
	stateKey

	// stateValue expects a value, a comma or the end of a container.
	stateValue

	stateEnd
)

// parseState is the state of one parse. The location fields track
// the cursor: line and lineStart advance on every '\n' passed,
// including those within comments.
type parseState struct {
	src       []byte
	pos       int
	line      int
	lineStart int

	state   state
	root    *Node
	current *Node

	// name is the key of the next value in an object.
	name  string
	named bool

	// afterValue is whether a value has just been completed,
	// so that a comma or the end of the container must follow.
	afterValue bool

	// afterComma is whether the last token was a comma.
	afterComma bool

	// buf is the scratch buffer strings are unescaped into.
	buf []byte

	// err is set by skipSpace on an unterminated comment.
	err *Error
}

func (s *parseState) errorf(format string, a ...any) *Error {
	return &Error{
		Description: fmt.Sprintf(format, a...),
		Line:        s.line,
		Column:      s.pos - s.lineStart + 1,
		Offset:      s.pos,
	}
}

func (s *parseState) atEnd() bool {
	return s.pos >= len(s.src)
}

// peek returns the byte at the given offset from the cursor, or 0.
func (s *parseState) peek(off int) byte {
	if s.pos+off < len(s.src) {
		return s.src[s.pos+off]
	}
	return 0
}

func (s *parseState) advance(n int) {
	for ; n > 0 && s.pos < len(s.src); n-- {
		if s.src[s.pos] == '\n' {
			s.line++
			s.lineStart = s.pos + 1
		}
		s.pos++
	}
}

// skipSpace skips white space and comments.
func (s *parseState) skipSpace() {
	for !s.atEnd() {
		c := s.src[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance(1)
		case c == '/' && s.peek(1) == '/':
			for !s.atEnd() && s.src[s.pos] != '\n' {
				s.advance(1)
			}
		case c == '/' && s.peek(1) == '*':
			start := s.errorf("Unterminated comment")
			s.advance(2)
			for !s.atEnd() && !(s.src[s.pos] == '*' && s.peek(1) == '/') {
				s.advance(1)
			}
			if s.atEnd() {
				s.err = start
				return
			}
			s.advance(2)
		default:
			return
		}
	}
}

func (s *parseState) parse() *Error {
	if len(s.src) == 0 {
		return s.errorf("Empty source to parse")
	}
	s.skipSpace()
	for s.err == nil && !s.atEnd() {
		if err := s.step(s.src[s.pos]); err != nil {
			return err
		}
	}
	if s.err != nil {
		return s.err
	}
	if s.state != stateEnd {
		return s.errorf("Unexpected end of input")
	}
	return nil
}

// step handles the token starting with the given byte at the cursor.
func (s *parseState) step(c byte) *Error {
	switch s.state {
	case stateStart:
		switch c {
		case '{':
			s.newNode(Object)
			s.state = stateObject
		case '[':
			s.newNode(Array)
			s.state = stateValue
		default:
			return s.errorf("JSON must start with an object {} or array []")
		}
		s.advance(1)
		s.skipSpace()

	case stateObject:
		switch c {
		case '}':
			if s.afterComma {
				return s.errorf("Unexpected comma")
			}
			s.closeContainer()
		case '"':
			// the key is read from after the quote
			s.state = stateKey
			s.advance(1)
			return nil
		default:
			return s.errorf("Unexpected character %q; expected a key", c)
		}
		s.advance(1)
		s.skipSpace()

	case stateKey:
		key, _, err := s.readString()
		if err != nil {
			return err
		}
		s.skipSpace()
		if s.peek(0) != ':' || s.atEnd() {
			return s.errorf("Expected ':'")
		}
		s.name, s.named = key, true
		s.afterComma = false
		s.state = stateValue
		s.advance(1)
		s.skipSpace()

	case stateValue:
		return s.value(c)

	case stateEnd:
		return s.errorf("Unexpected character %q; JSON must have one object or array at its root", c)
	}
	return nil
}

// value handles a token in the value state.
func (s *parseState) value(c byte) *Error {
	isValue := c == '"' || c == '{' || c == '[' || c == '-' || isDigit(c) || c == 't' || c == 'f' || c == 'n'
	if isValue && s.afterValue {
		return s.errorf("Expected a comma")
	}
	switch {
	case c == '"':
		s.advance(1)
		n := s.newNode(String)
		str, subst, err := s.readString()
		if err != nil {
			return err
		}
		n.str, n.substitution = str, subst
		s.endValue()

	case c == '-' || isDigit(c):
		if err := s.number(s.newNode(Null)); err != nil {
			return err
		}
		s.endValue()

	case c == 't' || c == 'f' || c == 'n':
		if err := s.literal(); err != nil {
			return err
		}
		s.endValue()

	case c == '{':
		s.newNode(Object)
		s.state = stateObject
		s.afterComma = false
		s.advance(1)
		s.skipSpace()

	case c == '[':
		s.newNode(Array)
		s.afterComma = false
		s.advance(1)
		s.skipSpace()

	case c == '}' || c == ']':
		if s.afterComma {
			return s.errorf("Expected another value")
		}
		if s.named {
			return s.errorf("Missing value")
		}
		if c == '}' && s.current.typ != Object {
			return s.errorf("Mismatched braces in array definition")
		}
		if c == ']' && s.current.typ != Array {
			return s.errorf("Mismatched brackets in object definition")
		}
		s.closeContainer()
		s.advance(1)
		s.skipSpace()

	case c == ',':
		if !s.afterValue {
			return s.errorf("Missing value")
		}
		if s.current.typ == Object {
			s.state = stateObject
		}
		s.afterValue = false
		s.afterComma = true
		s.advance(1)
		s.skipSpace()

	default:
		return s.errorf("Unexpected character %q", c)
	}
	return nil
}

// endValue finishes a value node, returning to its container.
func (s *parseState) endValue() {
	s.current = s.current.parent
	s.afterValue = true
	s.afterComma = false
	s.skipSpace()
}

// closeContainer finishes the current container at its closing
// character, ending the parse if it is the root.
func (s *parseState) closeContainer() {
	s.afterComma = false
	if s.current.parent == nil {
		s.state = stateEnd
		return
	}
	s.current = s.current.parent
	s.state = stateValue
	s.afterValue = true
}

// newNode makes the current node a node of the given type for the next
// value. The root is reused if it exists, and a named child replaces
// any existing child with the same name in place. Reused arrays are
// emptied, since their elements have no names to merge by.
func (s *parseState) newNode(t Type) *Node {
	var n *Node
	switch {
	case s.current == nil:
		n = s.root
	case s.named:
		n = s.current.Child(s.name)
	}
	if n == nil {
		n = &Node{typ: t, name: s.name, named: s.named}
		if s.current == nil {
			s.root = n
		} else {
			s.current.addChild(n)
		}
	} else {
		n.name, n.named = s.name, s.named
		n.setType(t)
		n.substitution = false
		if t == Array {
			n.removeChildren()
		}
	}
	s.name, s.named = "", false
	s.current = n
	return n
}

// readString reads a string with the cursor after its opening quote,
// leaving the cursor after its closing quote. It returns the
// unescaped string and whether it contains a substitution marker.
func (s *parseState) readString() (string, bool, *Error) {
	s.buf = s.buf[:0]
	// subst counts an opening brace and the closing braces after it
	subst := 0
	for {
		if s.atEnd() {
			return "", false, s.errorf("Unterminated string")
		}
		c := s.src[s.pos]
		switch {
		case c < 0x20:
			return "", false, s.errorf("Control characters not allowed in strings")
		case c == '"':
			s.advance(1)
			return string(s.buf), subst > 1, nil
		case c == '\\':
			if err := s.escape(); err != nil {
				return "", false, err
			}
			continue
		case c == '{':
			if subst == 0 && (len(s.buf) == 0 || s.buf[len(s.buf)-1] != '\\') {
				subst = 1
			}
		case c == '}':
			if subst > 0 {
				subst++
			}
		}
		s.buf = append(s.buf, c)
		s.advance(1)
	}
}

// escape unescapes the escape sequence at the cursor into the buffer.
func (s *parseState) escape() *Error {
	var r byte
	switch s.peek(1) {
	case '"':
		r = '"'
	case '\\':
		r = '\\'
	case '/':
		r = '/'
	case 'b':
		r = '\b'
	case 'f':
		r = '\f'
	case 'n':
		r = '\n'
	case 'r':
		r = '\r'
	case 't':
		r = '\t'
	case 'u':
		if s.pos+6 > len(s.src) {
			return s.errorf("Bad unicode codepoint; not enough characters")
		}
		cp, err := strconv.ParseUint(string(s.src[s.pos+2:s.pos+6]), 16, 32)
		if err != nil {
			return s.errorf("Bad unicode codepoint")
		}
		s.buf = appendCodepoint(s.buf, rune(cp))
		s.advance(6)
		return nil
	default:
		return s.errorf("Unrecognized escape sequence")
	}
	s.buf = append(s.buf, r)
	s.advance(2)
	return nil
}

// appendCodepoint appends the UTF-8 encoding of a single \u codepoint.
// Surrogate pairs are not combined: each half is kept as its own
// 3 byte sequence.
func appendCodepoint(b []byte, cp rune) []byte {
	if cp >= 0xD800 && cp <= 0xDFFF {
		return append(b, byte(0xE0|cp>>12), byte(0x80|(cp>>6)&0x3F), byte(0x80|cp&0x3F))
	}
	return utf8.AppendRune(b, cp)
}

// literal reads true, false or null into a new node.
func (s *parseState) literal() *Error {
	rest := s.src[s.pos:]
	switch {
	case bytes.HasPrefix(rest, []byte("true")):
		s.newNode(Boolean).num = 1
		s.advance(4)
	case bytes.HasPrefix(rest, []byte("false")):
		s.newNode(Boolean).num = 0
		s.advance(5)
	case bytes.HasPrefix(rest, []byte("null")):
		s.newNode(Null)
		s.advance(4)
	default:
		return s.errorf("Unexpected character; expected true, false or null")
	}
	return nil
}

// number reads a number into the given node. It is a [Float] if it
// has a fraction or an exponent, and an [Integer] otherwise.
func (s *parseState) number(n *Node) *Error {
	start := s.pos
	isFloat := false
	for !s.atEnd() {
		c := s.src[s.pos]
		if c == '.' || c == 'e' || c == 'E' {
			isFloat = true
		} else if !isDigit(c) && c != '+' && c != '-' {
			break
		}
		s.pos++
	}
	text := string(s.src[start:s.pos])
	digits := text
	if digits[0] == '-' {
		digits = digits[1:]
	}
	leadingZero := len(digits) > 1 && digits[0] == '0' && isDigit(digits[1])

	if !isFloat {
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil || leadingZero {
			s.pos = start
			return s.errorf("Bad integer number %q", text)
		}
		n.setType(Integer)
		n.num = i
		return nil
	}
	f, err := strconv.ParseFloat(text, 32)
	if leadingZero || (err != nil && !isRangeError(err)) {
		s.pos = start
		return s.errorf("Bad float number %q", text)
	}
	// out of range values are kept as infinities
	n.setType(Float)
	n.float = float32(f)
	return nil
}

func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
