// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the dali tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"cogentcore.org/dali/base/indent"
	"cogentcore.org/dali/jsontree"
	"cogentcore.org/dali/themes"
)

// Parse checks that the given JSON files parse, writing "ok" or the
// error location of each. It returns an error if any file fails.
func Parse(w io.Writer, files ...string) error {
	failed := 0
	for _, f := range files {
		p := jsontree.New()
		err := p.ParseFile(f)
		if err == nil {
			fmt.Fprintf(w, "%s: ok\n", f)
			continue
		}
		failed++
		var jerr *jsontree.Error
		if errors.As(err, &jerr) {
			fmt.Fprintf(w, "%s:%d:%d: %s\n", f, jerr.Line+1, jerr.Column, jerr.Description)
		} else {
			fmt.Fprintf(w, "%s: %v\n", f, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(files))
	}
	return nil
}

// Merge merges the given JSON files in order and writes the result,
// indented by the given number of spaces or compact if it is 0.
func Merge(ctx context.Context, w io.Writer, width int, files ...string) error {
	set, err := themes.NewSet(files...)
	if err != nil {
		return err
	}
	if err := set.Load(ctx); err != nil {
		return err
	}
	return writeJSON(w, set.Root(), width)
}

// writeJSON writes the tree, ending with a new line.
func writeJSON(w io.Writer, n *jsontree.Node, width int) error {
	if err := n.Write(w, width); err != nil {
		return err
	}
	if width <= 0 {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// Tree writes the tree of the given JSON file from the node at the
// given path, with the type and value of each node in aligned columns.
func Tree(w io.Writer, file, path string) error {
	p := jsontree.New()
	if err := p.ParseFile(file); err != nil {
		return err
	}
	n := p.Root().FindByPath(path)
	if n == nil {
		return fmt.Errorf("no node at %q in %s", path, file)
	}
	var t table
	treeRows(&t, n, 0, -1)
	return t.write(w)
}

func treeRows(t *table, n *jsontree.Node, level, index int) {
	label := n.Name()
	if index < 0 && n.Parent() != nil {
		index = slices.Index(n.Parent().Children(), n)
	}
	switch {
	case !n.HasName() && n.Parent() != nil:
		label = "[" + strconv.Itoa(index) + "]"
	case n.Parent() == nil:
		label = "."
	case label == "":
		label = `""`
	}
	value := ""
	switch n.Type() {
	case jsontree.Object, jsontree.Array:
		value = strconv.Itoa(n.Size())
	default:
		value = n.String()
	}
	if n.HasSubstitution() {
		value += " (substitution)"
	}
	t.add(indent.Spaces(level, 2)+label, n.Type().String(), value)
	for i, c := range n.Children() {
		treeRows(t, c, level+1, i)
	}
}

// Watch merges and writes the given JSON files like [Merge], and then
// again whenever they change, until the context is done.
func Watch(ctx context.Context, w io.Writer, width int, files ...string) error {
	set, err := themes.NewSet(files...)
	if err != nil {
		return err
	}
	show := func(err error) {
		if err != nil {
			fmt.Fprintln(w, err)
			return
		}
		if err := writeJSON(w, set.Root(), width); err != nil {
			fmt.Fprintln(w, err)
		}
	}
	show(set.Load(ctx))
	err = set.Watch(ctx, show)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
