// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements a generic map that keeps its items in
// the order they were added, with fast lookup by key.
package ordmap

import (
	"fmt"
	"slices"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map. Order holds the items in the order added,
// and Map holds the index of each key in Order.
type Map[K comparable, V any] struct {

	// Order is the list of items in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{Map: make(map[K]int)}
}

// Add sets the value for the given key. An existing key keeps its
// position, and a new one is added to the end.
func (om *Map[K, V]) Add(key K, val V) {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
	if i, has := om.Map[key]; has {
		om.Order[i].Value = val
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// ValueByKey returns the value for the given key, or the zero value.
func (om *Map[K, V]) ValueByKey(key K) V {
	v, _ := om.ValueByKeyTry(key)
	return v
}

// ValueByKeyTry returns the value for the given key and whether it exists.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	i, has := om.Map[key]
	if !has {
		var zv V
		return zv, false
	}
	return om.Order[i].Value, true
}

// IndexByKey returns the index of the given key, or -1.
func (om *Map[K, V]) IndexByKey(key K) int {
	if i, has := om.Map[key]; has {
		return i
	}
	return -1
}

// KeyByIndex returns the key at the given index, which must be valid.
func (om *Map[K, V]) KeyByIndex(idx int) K {
	return om.Order[idx].Key
}

// ValueByIndex returns the value at the given index, which must be valid.
func (om *Map[K, V]) ValueByIndex(idx int) V {
	return om.Order[idx].Value
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// DeleteKey deletes the item with the given key, returning false
// if it does not exist.
func (om *Map[K, V]) DeleteKey(key K) bool {
	i, has := om.Map[key]
	if !has {
		return false
	}
	om.Order = slices.Delete(om.Order, i, i+1)
	delete(om.Map, key)
	for j := i; j < len(om.Order); j++ {
		om.Map[om.Order[j].Key] = j
	}
	return true
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	keys := make([]K, len(om.Order))
	for i, kv := range om.Order {
		keys[i] = kv.Key
	}
	return keys
}

// Values returns the values in order.
func (om *Map[K, V]) Values() []V {
	vals := make([]V, len(om.Order))
	for i, kv := range om.Order {
		vals[i] = kv.Value
	}
	return vals
}

// String returns the keys and values in order.
func (om *Map[K, V]) String() string {
	return fmt.Sprint(om.Order)
}
