// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to color the level names of log messages
// when the output supports it.
var UseColor = true

// userLeveler is a [slog.Leveler] that always reports the current [UserLevel].
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// SetDefaultLogger sets the default logger to a text handler writing
// to [os.Stderr] that filters by [UserLevel] and colors level names.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a text [slog.Handler] writing to w that
// filters by [UserLevel], omits times, and colors level names
// if [UseColor] is set and w is a color terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	colored := UseColor && out.Profile != termenv.Ascii
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				if !colored {
					return a
				}
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				a.Value = slog.StringValue(LevelColor(out, lvl, lvl.String()))
			}
			return a
		},
	})
}

// LevelColor returns the given string styled with the color
// associated with the given level on the given output.
func LevelColor(out *termenv.Output, level slog.Level, str string) string {
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = termenv.ANSIRed
	case level >= slog.LevelWarn:
		c = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		c = termenv.ANSICyan
	default:
		c = termenv.ANSIBrightBlack
	}
	return out.String(str).Foreground(c).String()
}
