// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package themes merges an ordered set of JSON theme files into one
// tree, where later files override the named values of earlier ones,
// and reloads it when the files change.
package themes

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"cogentcore.org/dali/base/errors"
	"cogentcore.org/dali/base/ordmap"
	"cogentcore.org/dali/jsontree"
	"github.com/fsnotify/fsnotify"
	"github.com/mazznoer/csscolorparser"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/sync/errgroup"
)

// FileError is an error loading one theme file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if je, ok := e.Err.(*jsontree.Error); ok {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, je.Line+1, je.Column, je.Description)
	}
	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Set is an ordered set of theme files and their merged tree.
// It must be made with [NewSet], and is safe for concurrent use.
type Set struct {

	// Delay is how long Watch waits after a change before reloading,
	// so that a burst of writes results in a single reload.
	Delay time.Duration

	mu     sync.Mutex
	files  *ordmap.Map[string, []byte]
	merged *jsontree.Parser
}

// NewSet returns a new set with the given files. See [Set.AddFile].
func NewSet(files ...string) (*Set, error) {
	s := &Set{Delay: 100 * time.Millisecond, files: ordmap.New[string, []byte]()}
	for _, f := range files {
		if err := s.AddFile(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddFile adds the given file to the end of the set. A leading ~ is
// expanded to the home directory. Adding a file already in the set
// keeps its position.
func (s *Set) AddFile(path string) error {
	p, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	p, err = filepath.Abs(p)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, has := s.files.ValueByKeyTry(p); !has {
		s.files.Add(p, nil)
	}
	return nil
}

// Files returns the absolute paths of the files in merge order.
func (s *Set) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files.Keys()
}

// Load reads and parses all files concurrently, and then merges them
// in order. If any file fails, the previously loaded tree is kept and
// the error of the first failing file is returned as a [*FileError].
func (s *Set) Load(ctx context.Context) error {
	files := s.Files()
	srcs := make([][]byte, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := os.ReadFile(f)
			if err != nil {
				return &FileError{Path: f, Err: err}
			}
			if err := jsontree.New().Parse(b); err != nil {
				return &FileError{Path: f, Err: err}
			}
			srcs[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	merged := jsontree.New()
	for i, b := range srcs {
		if err := merged.Parse(b); err != nil {
			return &FileError{Path: files[i], Err: err}
		}
		slog.Debug("themes: merged file", "path", files[i])
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range files {
		s.files.Add(f, srcs[i])
	}
	s.merged = merged
	return nil
}

// Root returns the root of the merged tree, or nil if nothing is loaded.
func (s *Set) Root() *jsontree.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.merged == nil {
		return nil
	}
	return s.merged.Root()
}

// Node returns the merged node at the given slash separated path,
// or nil. See [jsontree.Node.FindByPath].
func (s *Set) Node(path string) *jsontree.Node {
	root := s.Root()
	if root == nil {
		return nil
	}
	return root.FindByPath(path)
}

// Color returns the color at the given path, which is either a CSS
// color string or an array of 3 or 4 numbers from 0 to 1.
func (s *Set) Color(path string) (color.RGBA, error) {
	n := s.Node(path)
	if n == nil {
		return color.RGBA{}, fmt.Errorf("themes: no value at %q", path)
	}
	return NodeColor(n)
}

// NodeColor returns the color value of the given node.
// See [Set.Color].
func NodeColor(n *jsontree.Node) (color.RGBA, error) {
	switch n.Type() {
	case jsontree.String:
		c, err := csscolorparser.Parse(n.Str())
		if err != nil {
			return color.RGBA{}, errors.Wrap(err)
		}
		r, g, b, a := c.RGBA255()
		return color.RGBA{r, g, b, a}, nil
	case jsontree.Array:
		if n.Size() != 3 && n.Size() != 4 {
			return color.RGBA{}, fmt.Errorf("themes: color %q must have 3 or 4 components, not %d", n.Path(), n.Size())
		}
		v := [4]float64{1, 1, 1, 1}
		for i, c := range n.Children() {
			if c.Type() != jsontree.Float && c.Type() != jsontree.Integer {
				return color.RGBA{}, fmt.Errorf("themes: color %q has a %v component", n.Path(), c.Type())
			}
			v[i] = min(max(float64(c.Float()), 0), 1)
		}
		c := csscolorparser.Color{R: v[0], G: v[1], B: v[2], A: v[3]}
		r, g, b, a := c.RGBA255()
		return color.RGBA{r, g, b, a}, nil
	}
	return color.RGBA{}, fmt.Errorf("themes: %q is a %v, not a color", n.Path(), n.Type())
}

// Watch reloads the set whenever one of its files changes, calling
// onReload with the result of each reload, until the context is done.
// It watches the directories of the files, so that files replaced by
// editors are also seen.
func (s *Set) Watch(ctx context.Context, onReload func(err error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range s.Files() {
		watched[f] = true
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			slog.Debug("themes: file changed", "path", ev.Name, "op", ev.Op)
			if reload == nil {
				reload = time.After(s.Delay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("themes: watch error", "err", err)
		case <-reload:
			reload = nil
			err := s.Load(ctx)
			if err != nil {
				slog.Error("themes: reload failed", "err", err)
			} else {
				slog.Info("themes: reloaded", "files", len(s.Files()))
			}
			if onReload != nil {
				onReload(err)
			}
		}
	}
}
