// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error is an error with a base error and the call sites
// that it was wrapped at.
type Error struct {
	Base  error
	Stack []string
}

// Wrap wraps the given error into an [*Error] annotated with
// the caller location. It returns nil if the given error is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	e := &Error{Base: err}
	if ci := CallerInfo(); ci != "" {
		e.Stack = append(e.Stack, ci)
	}
	return e
}

// Error returns the error as a string, followed by the locations
// it was wrapped at.
func (e *Error) Error() string {
	res := e.Base.Error()
	if len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, ": ") + ")"
	}
	return res
}

// Unwrap returns the underlying base error of the Error.
func (e *Error) Unwrap() error {
	return e.Base
}

// New is a wrapper for [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Errorf is a wrapper for [fmt.Errorf].
func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// Is is a wrapper for [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a wrapper for [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is a wrapper for [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
