// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan provides a mechanism for updating a keyed pool of
// elements to contain exactly a target set of keys, generating the
// minimal edits: elements whose key is still wanted are kept as they
// are, and only the missing and unwanted ones are created and destroyed.
package plan

import (
	"cmp"
	"log/slog"
	"slices"

	"golang.org/x/exp/maps"
)

// Update ensures that the pool contains the elements for the target keys,
// with n = total number of keys in the target set, given by key(i).
// If a new element is needed then new is called to create it; if it
// returns false, nothing is added for that key.
// If destroy is non-nil, it is called on any element being removed
// from the pool, in ascending key order.
// It returns the number of elements created and destroyed.
func Update[K cmp.Ordered, V any](pool map[K]V, n int, key func(i int) K, new func(k K) (V, bool), destroy func(k K, e V)) (created, destroyed int) {
	want := make(map[K]struct{}, n)
	for i := range n {
		k := key(i)
		if _, has := want[k]; has {
			slog.Error("plan.Update: duplicate key", "key", k)
		}
		want[k] = struct{}{}
	}
	// first remove anything we don't want
	keys := maps.Keys(pool)
	slices.Sort(keys)
	for _, k := range keys {
		if _, ok := want[k]; ok {
			continue
		}
		if destroy != nil {
			destroy(k, pool[k])
		}
		delete(pool, k)
		destroyed++
	}
	// next add the missing ones, in order
	for i := range n {
		k := key(i)
		if _, ok := pool[k]; ok {
			continue
		}
		e, ok := new(k)
		if !ok {
			continue
		}
		pool[k] = e
		created++
	}
	return
}

// Keys returns the keys of the pool in ascending order.
func Keys[K cmp.Ordered, V any](pool map[K]V) []K {
	keys := maps.Keys(pool)
	slices.Sort(keys)
	return keys
}
